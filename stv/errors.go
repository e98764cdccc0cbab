// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput means the candidates, ballots or seat count were rejected
	// before any round ran.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlgorithm means an internal invariant failed. It is not retryable.
	ErrAlgorithm = errors.New("voting algorithm error")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func algorithmError(msg string) error {
	return fmt.Errorf("%w: %s", ErrAlgorithm, msg)
}
