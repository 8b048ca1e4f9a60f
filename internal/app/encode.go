package app

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/tonylturner/lsaddr/internal/errors"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

// Encoded fields
const (
	FieldAll       = "all"        // header tag followed by value size
	FieldHeader    = "header"     // instruction-header data type tag
	FieldValueSize = "value-size" // value-size field
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

type EncodeOptions struct {
	CommonOptions
	Address string
	Field   string
	Copy    bool
}

// EncodeField returns the requested byte field for addr.
func EncodeField(addr xgt.Address, field string) ([]byte, error) {
	switch field {
	case "", FieldAll:
		return xgt.AddressField(addr), nil
	case FieldHeader:
		return addr.HeaderBytes[:], nil
	case FieldValueSize:
		vs := addr.ValueSizeBytes()
		return vs[:], nil
	default:
		return nil, fmt.Errorf("unknown field %q (want %s, %s or %s)", field, FieldAll, FieldHeader, FieldValueSize)
	}
}

// RunEncode prints the hex bytes of an address field, optionally copying them
// to the clipboard.
func RunEncode(opts EncodeOptions) error {
	if opts.Address == "" {
		return fmt.Errorf("address is required")
	}
	s, err := newSession("encode", opts.CommonOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	addr, err := s.parse(opts.Address)
	if err != nil {
		return errors.WrapAddressError(err, opts.Address)
	}
	data, err := EncodeField(addr, opts.Field)
	if err != nil {
		return err
	}
	s.logger.LogHex(addr.Text, data)

	hex := xgt.FormatHex(data)
	s.printf("%s\n", hex)

	if opts.Copy {
		if err := clipboardWrite(hex); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		s.logger.Info("copied %s to clipboard", hex)
	}
	return nil
}
