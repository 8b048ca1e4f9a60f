package app

import (
	"fmt"

	"github.com/tonylturner/lsaddr/internal/ui"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

type ValidateOptions struct {
	CommonOptions
	Addresses []string
	Quiet     bool // only the exit status
}

// RunValidate checks each address without resolving it and prints the
// canonical form or the rejection reason. It fails if any address is invalid.
func RunValidate(opts ValidateOptions) error {
	if len(opts.Addresses) == 0 {
		return fmt.Errorf("at least one address is required")
	}
	s, err := newSession("validate", opts.CommonOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	invalid := 0
	for _, input := range opts.Addresses {
		canonical, err := xgt.Validate(s.cfg.ResolveAlias(input))
		if err != nil {
			invalid++
			s.logger.Verbose("invalid address %q: %v", input, err)
		}
		if !opts.Quiet {
			s.printf("%s\n", ui.RenderValidation(input, canonical, err, s.styles))
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d addresses invalid", invalid, len(opts.Addresses))
	}
	return nil
}
