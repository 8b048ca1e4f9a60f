package app

import (
	"encoding/json"
	"fmt"

	"github.com/tonylturner/lsaddr/internal/errors"
	"github.com/tonylturner/lsaddr/internal/ui"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

type ParseOptions struct {
	CommonOptions
	Addresses []string
	JSON      bool
}

// AddressReport is the JSON form of a parsed address.
type AddressReport struct {
	Input          string `json:"input"`
	Canonical      string `json:"canonical"`
	DataType       string `json:"data_type"`
	StartBit       int64  `json:"start_bit"`
	EndBit         int64  `json:"end_bit"`
	StartByte      int64  `json:"start_byte"`
	EndByte        int64  `json:"end_byte"`
	HeaderBytes    string `json:"header_bytes"`
	ValueSizeBytes string `json:"value_size_bytes"`
	MemorySizeBits int64  `json:"memory_size_bits"`
}

// NewAddressReport flattens an address for JSON output.
func NewAddressReport(input string, addr xgt.Address) AddressReport {
	hb := addr.HeaderBytes
	vs := addr.ValueSizeBytes()
	return AddressReport{
		Input:          input,
		Canonical:      addr.Text,
		DataType:       addr.DataType.String(),
		StartBit:       addr.StartBit,
		EndBit:         addr.EndBit,
		StartByte:      addr.StartByte(),
		EndByte:        addr.EndByte(),
		HeaderBytes:    xgt.FormatHex(hb[:]),
		ValueSizeBytes: xgt.FormatHex(vs[:]),
		MemorySizeBits: addr.MemorySize,
	}
}

// RunParse parses each address and prints its resolved range and byte fields.
// Parsing stops at the first invalid address.
func RunParse(opts ParseOptions) error {
	if len(opts.Addresses) == 0 {
		return fmt.Errorf("at least one address is required")
	}
	s, err := newSession("parse", opts.CommonOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	reports := make([]AddressReport, 0, len(opts.Addresses))
	for i, input := range opts.Addresses {
		addr, err := s.parse(input)
		if err != nil {
			return errors.WrapAddressError(err, input)
		}
		s.logger.LogHex(addr.Text+" field", xgt.AddressField(addr))

		if opts.JSON {
			reports = append(reports, NewAddressReport(input, addr))
			continue
		}
		if i > 0 {
			s.printf("\n")
		}
		s.printf("%s\n", ui.RenderAddress(addr, s.styles))
	}

	if opts.JSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	}
	return nil
}
