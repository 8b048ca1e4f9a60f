package xgt

// M-area address parsing.
//
// Supported formats (case-insensitive):
//   %MX10     - bit 10
//   MX10      - same, '%' added
//   X10       - same, '%M' added
//   %MB5      - byte 5 (bits 40-48)
//   %MW100    - word 100 (bits 1600-1616)
//   %MD7      - double word 7
//   %MB5,8    - continuous bytes 5 up to 8
//   %MB5,6    - adjacent offsets collapse to a plain byte
//
// Canonical text always starts with "%M".

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	validPrefixes = []string{"%", "M", "X", "B", "W", "D"}
	typePrefixes  = []string{"X", "B", "W", "D"}
)

// addressParts holds the pieces of a validated address.
type addressParts struct {
	canonical string // full canonical string, including any end offset
	segment   string // canonical first segment
	typeChar  byte
	start     int64
	end       int64
	hasEnd    bool
}

// Validate normalizes raw into canonical form and checks that it is well
// formed. It does not infer the data type or resolve bit ranges.
func Validate(raw string) (string, error) {
	parts, err := normalize(raw)
	if err != nil {
		return "", err
	}
	return parts.canonical, nil
}

// IsValid reports whether raw is a well-formed address.
func IsValid(raw string) bool {
	_, err := normalize(raw)
	return err == nil
}

func normalize(raw string) (addressParts, error) {
	addr := strings.ToUpper(strings.TrimSpace(raw))

	if !hasAnyPrefix(addr, validPrefixes) {
		return addressParts{}, newAddressError(KindMalformedPrefix, raw, "must start with %, M, X, B, W or D", nil)
	}
	if !exactlyOneOf(addr, typeChars) {
		n := countAny(addr, typeChars)
		if n == 0 {
			return addressParts{}, newAddressError(KindAmbiguousType, raw, "no data type character (X, B, W or D)", nil)
		}
		return addressParts{}, newAddressError(KindAmbiguousType, raw,
			fmt.Sprintf("%d data type characters, want exactly one", n), nil)
	}

	switch {
	case strings.HasPrefix(addr, "M"):
		addr = "%" + addr
	case hasAnyPrefix(addr, typePrefixes):
		addr = "%M" + addr
	case strings.HasPrefix(addr, "%") && !strings.HasPrefix(addr, "%M"):
		addr = "%M" + addr[1:]
	}

	segments := strings.Split(addr, ",")
	if len(segments) == 0 || len(segments) > 2 {
		return addressParts{}, newAddressError(KindMalformedSegments, raw,
			fmt.Sprintf("%d comma-separated segments, want 1 or 2", len(segments)), nil)
	}

	if !containsAny(segments[0], typeChars) {
		return addressParts{}, newAddressError(KindMalformedSegments, raw, "data type character must precede the first offset", nil)
	}
	prefix, typeChar, offset, _ := splitOnFirstOf(segments[0], typeChars)
	if prefix != "%M" {
		return addressParts{}, newAddressError(KindMalformedPrefix, raw,
			fmt.Sprintf("unexpected %q before data type character", strings.TrimPrefix(prefix, "%M")), nil)
	}

	parts := addressParts{canonical: addr, segment: segments[0], typeChar: typeChar}

	start, err := strconv.ParseInt(offset, 10, 64)
	if err != nil {
		return addressParts{}, newAddressError(KindInvalidOffset, raw, fmt.Sprintf("offset %q", offset), err)
	}
	parts.start = start

	if len(segments) == 2 {
		end, err := strconv.ParseInt(segments[1], 10, 64)
		if err != nil {
			return addressParts{}, newAddressError(KindInvalidOffset, raw, fmt.Sprintf("end offset %q", segments[1]), err)
		}
		parts.end = end
		parts.hasEnd = true
	}

	return parts, nil
}

// inferDataType picks the data type from the type character and offsets.
// A B address whose end offset is exactly one past the start is a plain byte.
func inferDataType(parts addressParts) DataType {
	switch parts.typeChar {
	case 'X':
		return DataTypeBit
	case 'W':
		return DataTypeWord
	case 'D':
		return DataTypeDword
	case 'B':
		if !parts.hasEnd || parts.end-parts.start == 1 {
			return DataTypeByte
		}
		return DataTypeContinuous
	default:
		panic(fmt.Sprintf("xgt: unmanaged type character %q", parts.typeChar))
	}
}

// Parser resolves addresses against a fixed memory space.
type Parser struct {
	space MemorySpace
}

// NewParser returns a parser for a controller whose M area is memorySize bits.
func NewParser(memorySize int64) (Parser, error) {
	space, err := NewMemorySpace(memorySize)
	if err != nil {
		return Parser{}, err
	}
	return Parser{space: space}, nil
}

// MemorySize returns the parser's modulus in bits.
func (p Parser) MemorySize() int64 {
	return p.space.Size()
}

// Parse validates text and resolves it into an Address.
func (p Parser) Parse(text string) (Address, error) {
	parts, err := normalize(text)
	if err != nil {
		return Address{}, err
	}
	return p.resolve(parts), nil
}

// TryParse is Parse without the failure reason.
func (p Parser) TryParse(text string) (Address, bool) {
	addr, err := p.Parse(text)
	if err != nil {
		return Address{}, false
	}
	return addr, true
}

func (p Parser) resolve(parts addressParts) Address {
	dt := inferDataType(parts)
	addr := Address{
		DataType:    dt,
		StartBit:    p.space.Resolve(parts.start, dt),
		Text:        parts.segment,
		HeaderBytes: HeaderBytes(dt),
		MemorySize:  p.space.Size(),
	}
	if parts.hasEnd {
		addr.EndBit = p.space.Resolve(parts.end, dt)
	} else {
		addr.EndBit = p.space.Resolve(parts.start+1, dt)
	}
	return addr
}

// defaultParser snapshots the process-wide memory size.
func defaultParser() Parser {
	return Parser{space: MemorySpace{size: BaseMemorySize()}}
}

// Parse parses text against the process-wide memory size.
func Parse(text string) (Address, error) {
	return defaultParser().Parse(text)
}

// TryParse parses text against the process-wide memory size, reporting only
// whether it succeeded.
func TryParse(text string) (Address, bool) {
	return defaultParser().TryParse(text)
}

// MustParse is like Parse but panics on error. Intended for constant addresses.
func MustParse(text string) Address {
	addr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return addr
}
