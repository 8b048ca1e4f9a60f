package app

import "github.com/tonylturner/lsaddr/internal/ui"

type ModelsOptions struct {
	CommonOptions
}

// RunModels lists the known controller models, marking the active one.
func RunModels(opts ModelsOptions) error {
	s, err := newSession("models", opts.CommonOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	s.printf("%s\n", ui.RenderModels(s.cfg.AllModels(), s.model.Name, s.styles))
	return nil
}
