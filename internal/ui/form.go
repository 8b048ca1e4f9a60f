package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tonylturner/lsaddr/internal/xgt"
)

// ExploreChoice holds the answers collected before the explorer starts.
type ExploreChoice struct {
	Model   string
	Address string
}

// BuildExploreForm asks for a controller model and a starting address.
func BuildExploreForm(models []xgt.Model, choice *ExploreChoice) *huh.Form {
	options := make([]huh.Option[string], 0, len(models))
	for _, m := range models {
		label := fmt.Sprintf("%s (%d bits)", m.Name, m.MemorySizeBits)
		options = append(options, huh.NewOption(label, m.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Controller model").
				Description("Sets the size of the M area that addresses wrap around.").
				Key("model").
				Options(options...).
				Value(&choice.Model),
			huh.NewInput().
				Title("Address (optional)").
				Description("Starting address, e.g. %MW100 or MB5,8.").
				Key("address").
				Value(&choice.Address).
				Validate(validateOptionalAddress),
		),
	)
}

func validateOptionalAddress(s string) error {
	if s == "" {
		return nil
	}
	_, err := xgt.Validate(s)
	return err
}
