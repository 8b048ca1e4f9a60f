package xgt

// LS XGT device memory addressing types.
// Addresses reference the M (internal relay) area of the controller, which the
// FEnet dedicated protocol treats as one flat, circular bit space.

import (
	"encoding/binary"
	"fmt"
)

// DataType is the access width of a parsed address.
type DataType uint8

const (
	DataTypeBit        DataType = iota // X - single bit
	DataTypeByte                       // B - 8 bits
	DataTypeWord                       // W - 16 bits
	DataTypeDword                      // D - 32 bits
	DataTypeContinuous                 // B with an explicit end offset spanning more than one byte
)

// typeChars are the characters that select a data type, in lookup order.
var typeChars = []byte{'X', 'B', 'W', 'D'}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case DataTypeBit:
		return "Bit"
	case DataTypeByte:
		return "Byte"
	case DataTypeWord:
		return "Word"
	case DataTypeDword:
		return "Dword"
	case DataTypeContinuous:
		return "Continuous"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(dt))
	}
}

// BitWidth returns how many memory bits one addressed unit spans.
// Continuous spans are counted in bytes, so one unit is 8 bits.
func (dt DataType) BitWidth() int64 {
	switch dt {
	case DataTypeBit:
		return 1
	case DataTypeByte, DataTypeContinuous:
		return 8
	case DataTypeWord:
		return 16
	case DataTypeDword:
		return 32
	default:
		panic(unmanagedDataType(dt))
	}
}

// TypeChar returns the address character for the data type.
func (dt DataType) TypeChar() byte {
	switch dt {
	case DataTypeBit:
		return 'X'
	case DataTypeByte, DataTypeContinuous:
		return 'B'
	case DataTypeWord:
		return 'W'
	case DataTypeDword:
		return 'D'
	default:
		panic(unmanagedDataType(dt))
	}
}

// DataTypes lists every data type.
func DataTypes() []DataType {
	return []DataType{DataTypeBit, DataTypeByte, DataTypeWord, DataTypeDword, DataTypeContinuous}
}

// Address is a parsed and resolved M-area address.
type Address struct {
	DataType    DataType
	StartBit    int64   // in [0, MemorySize)
	EndBit      int64   // in [0, MemorySize)
	Text        string  // canonical first segment, e.g. "%MX10"
	HeaderBytes [2]byte // data type tag for the instruction header
	MemorySize  int64   // modulus the bits were resolved against
}

// StartByte returns the byte offset of the first addressed bit.
func (a Address) StartByte() int64 {
	return a.StartBit / 8
}

// EndByte returns the byte offset one past the addressed region.
func (a Address) EndByte() int64 {
	return a.EndBit / 8
}

// ByteSpan returns the number of bytes between StartByte and EndByte.
func (a Address) ByteSpan() int64 {
	return a.EndByte() - a.StartByte()
}

// ValueSizeBytes returns the value-size field used in the value portion of a
// request. Continuous addresses encode their byte span little-endian.
func (a Address) ValueSizeBytes() [2]byte {
	switch a.DataType {
	case DataTypeBit, DataTypeByte:
		return [2]byte{0x01, 0x00}
	case DataTypeWord:
		return [2]byte{0x02, 0x00}
	case DataTypeDword:
		return [2]byte{0x04, 0x00}
	case DataTypeContinuous:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16((a.EndBit-a.StartBit)/8))
		return buf
	default:
		panic(unmanagedDataType(a.DataType))
	}
}

// String returns the canonical address text.
func (a Address) String() string {
	return a.Text
}
