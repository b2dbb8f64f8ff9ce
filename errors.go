package shumway

import (
	"errors"
	"fmt"
)

var (
	// ErrRange reports an index argument outside the valid window.
	ErrRange = errors.New("index out of range")

	// ErrArgument reports an invalid node argument, such as attaching a node
	// to itself or removing a node that is not a child.
	ErrArgument = errors.New("invalid argument")

	// ErrNotImplemented reports an operation that is recognized but not
	// supported. It is never transient.
	ErrNotImplemented = errors.New("not implemented")

	// ErrDegenerateTransform reports that a matrix with a zero determinant had
	// to be inverted. Coordinates derived from it are meaningless.
	ErrDegenerateTransform = errors.New("degenerate transform")
)

func rangeError(op string, index, limit int) error {
	return fmt.Errorf("shumway: %s: index %d outside [0, %d]: %w", op, index, limit, ErrRange)
}

func argumentError(op, reason string) error {
	return fmt.Errorf("shumway: %s: %s: %w", op, reason, ErrArgument)
}

func notImplemented(op string) error {
	return fmt.Errorf("shumway: %s: %w", op, ErrNotImplemented)
}
