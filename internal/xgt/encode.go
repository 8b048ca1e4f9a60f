package xgt

// Fixed 2-byte fields for the FEnet dedicated protocol.
//
// The instruction header carries a data type tag; the value portion of a write
// carries the value size. Both are little-endian.

import "fmt"

// HeaderBytes returns the instruction-header data type tag.
// It panics for a DataType outside the enumeration.
func HeaderBytes(dt DataType) [2]byte {
	switch dt {
	case DataTypeBit:
		return [2]byte{0x00, 0x00}
	case DataTypeByte:
		return [2]byte{0x01, 0x00}
	case DataTypeWord:
		return [2]byte{0x02, 0x00}
	case DataTypeDword:
		return [2]byte{0x03, 0x00}
	case DataTypeContinuous:
		return [2]byte{0x14, 0x00}
	default:
		panic(unmanagedDataType(dt))
	}
}

// AddressField returns the header tag followed by the value-size field.
func AddressField(a Address) []byte {
	vs := a.ValueSizeBytes()
	return []byte{a.HeaderBytes[0], a.HeaderBytes[1], vs[0], vs[1]}
}

// FormatHex renders bytes as space-separated hex pairs, e.g. "14 00 03 00".
func FormatHex(data []byte) string {
	out := make([]byte, 0, len(data)*3)
	for i, b := range data {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, fmt.Sprintf("%02X", b)...)
	}
	return string(out)
}
