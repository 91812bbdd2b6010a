package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidGrammar   = errors.New("invalid grammar")
	ErrMisaligned       = errors.New("token and tag sequences misaligned")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StageError reports which processing stage failed and on what input.
type StageError struct {
	Stage string
	Input string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed on %q: %v", e.Stage, e.Input, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Wrap returns nil when err is nil, otherwise a *StageError for stage.
func Wrap(stage, input string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Input: input, Err: err}
}
