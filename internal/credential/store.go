// Package credential persists the single bearer credential that survives
// restarts. The session manager is its only writer.
package credential

import "github.com/pkg/errors"

// ErrNotFound reports that no credential is stored; any other error is a
// storage failure.
var ErrNotFound = errors.New("credential not found")

type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}
