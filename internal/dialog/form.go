package dialog

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
)

// Form prompts on the terminal with a single-input huh form.
type Form struct{}

func (Form) Input(ctx context.Context, title string, placeholder string) (Result, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Value(&value),
	))

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return Result{Canceled: true}, nil
	}
	if err != nil {
		return Result{}, errors.Wrapf(err, "error prompting for input: %s", title)
	}
	return Result{Value: strings.TrimSpace(value)}, nil
}
