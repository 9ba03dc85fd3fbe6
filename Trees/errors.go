package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTree matches every *EmptyTreeError.
	ErrEmptyTree = errors.New("bst: empty tree")
	// ErrInvalidArgument matches every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("bst: invalid argument")
	// ErrCorrupt signals a broken ordering or size invariant.
	ErrCorrupt = errors.New("bst: corrupt tree")
)

// EmptyTreeError is returned by operations that need at least one key.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "bst: " + e.Op + " on empty tree"
}

func (e *EmptyTreeError) Is(target error) bool {
	return target == ErrEmptyTree
}

// InvalidArgumentError is returned by Select when the rank is outside [0, Size).
type InvalidArgumentError struct {
	Op      string
	K, Size int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("bst: %s(%d) outside [0, %d)", e.Op, e.K, e.Size)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
