// Package dialog abstracts inline user input behind an explicit result type
// so cancellation is a value, not an error, and nothing blocks outside the
// prompter itself.
package dialog

import "context"

type Result struct {
	Value    string
	Canceled bool
}

type Prompter interface {
	// Input asks the user for a single line of text. A user abort comes back
	// as Canceled=true with a nil error.
	Input(ctx context.Context, title string, placeholder string) (Result, error)
}
