package app

import (
	"fmt"

	"github.com/tonylturner/lsaddr/internal/config"
	"github.com/tonylturner/lsaddr/internal/tui"
	"github.com/tonylturner/lsaddr/internal/ui"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

type ExploreOptions struct {
	CommonOptions
	Address string
	Prompt  bool // ask for model and address before starting
}

// RunExplore starts the interactive explorer and prints the kept addresses on exit.
func RunExplore(opts ExploreOptions) error {
	if opts.Prompt {
		choice := &ui.ExploreChoice{Model: xgt.DefaultModel, Address: opts.Address}
		if opts.Model != "" {
			choice.Model = opts.Model
		}
		models, err := promptModels(opts.CommonOptions)
		if err != nil {
			return err
		}
		if err := ui.BuildExploreForm(models, choice).Run(); err != nil {
			return fmt.Errorf("explore form: %w", err)
		}
		opts.Model = choice.Model
		opts.Address = choice.Address
	}

	s, err := newSession("explore", opts.CommonOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	kept, err := tui.Run(s.parser, s.model.Name, opts.Address, s.styled)
	if err != nil {
		return fmt.Errorf("explorer: %w", err)
	}
	for _, line := range kept {
		s.printf("%s\n", line)
	}
	return nil
}

func promptModels(opts CommonOptions) ([]xgt.Model, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return nil, err
	}
	return cfg.AllModels(), nil
}
