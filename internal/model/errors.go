package model

import "errors"

// Standard errors shared by the repositories and the food model. Callers
// match with errors.Is; call sites add context with fmt.Errorf("...: %w", err).
var (
	ErrNotFound        = errors.New("not found")
	ErrUnknownFood     = errors.New("unknown food")
	ErrDuplicateFood   = errors.New("food already exists")
	ErrInvalidServings = errors.New("servings must be positive")
	ErrCycleDetected   = errors.New("cycle detected in food graph")
	ErrCycleWouldForm  = errors.New("component would form a cycle")
)
