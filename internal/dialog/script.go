package dialog

import (
	"context"
	"sync"
)

// Script replays canned answers in order; once they run out, every further
// prompt is a cancellation. Used by tests.
type Script struct {
	mu      sync.Mutex
	answers []Result
}

func NewScript(answers ...Result) *Script {
	return &Script{answers: answers}
}

func (s *Script) Input(_ context.Context, _ string, _ string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.answers) == 0 {
		return Result{Canceled: true}, nil
	}
	r := s.answers[0]
	s.answers = s.answers[1:]
	return r, nil
}
