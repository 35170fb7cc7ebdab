package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	// ErrNotStarted is the state error: the operation needs a dealt game.
	ErrNotStarted = errors.New("game not started")
	// ErrInvalidInput is the argument error: the caller can correct the input.
	ErrInvalidInput = errors.New("invalid input")
)

// Kind classifies a game error so callers can branch without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	NotStarted
	InvalidDeck
	InvalidIndex
	IllegalRetrieval
	IllegalPlacement
	InsufficientCapacity
)

func (k Kind) String() string {
	switch k {
	case NotStarted:
		return "not_started"
	case InvalidDeck:
		return "invalid_deck"
	case InvalidIndex:
		return "invalid_index"
	case IllegalRetrieval:
		return "illegal_retrieval"
	case IllegalPlacement:
		return "illegal_placement"
	case InsufficientCapacity:
		return "insufficient_capacity"
	default:
		return "unknown"
	}
}

// GameError is returned by every failed board operation.
type GameError struct {
	Kind    Kind
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func (e *GameError) Unwrap() error {
	if e.Kind == NotStarted {
		return ErrNotStarted
	}
	return ErrInvalidInput
}

// ValidationError indicates invalid user input outside of game rules
// (flags, settings, card notation).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Helper constructors for common cases

func GameNotStarted(op string) error {
	return &GameError{Kind: NotStarted, Message: fmt.Sprintf("cannot %s before the game has started", op)}
}

func BadDeck(format string, args ...any) error {
	return &GameError{Kind: InvalidDeck, Message: "invalid deck: " + fmt.Sprintf(format, args...)}
}

func BadIndex(format string, args ...any) error {
	return &GameError{Kind: InvalidIndex, Message: fmt.Sprintf(format, args...)}
}

func BadRetrieval(format string, args ...any) error {
	return &GameError{Kind: IllegalRetrieval, Message: fmt.Sprintf(format, args...)}
}

func BadPlacement(format string, args ...any) error {
	return &GameError{Kind: IllegalPlacement, Message: fmt.Sprintf(format, args...)}
}

func NotEnoughCapacity(moving, capacity int) error {
	return &GameError{
		Kind:    InsufficientCapacity,
		Message: fmt.Sprintf("insufficient free piles for multi-card move: moving %d cards, capacity is %d", moving, capacity),
	}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsStateError checks if an error means the game has not been dealt yet.
func IsStateError(err error) bool {
	return errors.Is(err, ErrNotStarted)
}

// IsArgumentError checks if an error is a caller-correctable rule or input violation.
func IsArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// KindOf returns the Kind of a game error, or KindUnknown.
func KindOf(err error) Kind {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}
