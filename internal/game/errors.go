package game

import (
	"errors"
	"fmt"
)

// RejectionKind classifies why a command was refused.
type RejectionKind int

const (
	InvalidAction RejectionKind = iota + 1
	InvalidPlacement
	InsufficientResources
	EffectConflict
	IllegalCardState
)

func (k RejectionKind) String() string {
	switch k {
	case InvalidAction:
		return "InvalidAction"
	case InvalidPlacement:
		return "InvalidPlacement"
	case InsufficientResources:
		return "InsufficientResources"
	case EffectConflict:
		return "EffectConflict"
	case IllegalCardState:
		return "IllegalCardState"
	default:
		return "Unknown"
	}
}

// Rejection is returned when a command breaks a rule. The game state is
// unchanged and the caller may retry with a legal command.
type Rejection struct {
	Kind   RejectionKind
	Reason string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.Reason)
}

func reject(kind RejectionKind, format string, args ...any) *Rejection {
	return &Rejection{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is (or wraps) a Rejection.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

// KindOf returns the rejection kind carried by err, or 0 if err is not a rejection.
func KindOf(err error) RejectionKind {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Kind
	}
	return 0
}

var (
	// ErrInvalidEffect is wrapped by Install when an effect is malformed.
	ErrInvalidEffect = errors.New("invalid effect")
	// ErrInvalidCatalog is wrapped by ValidateCatalog for card authoring errors.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
