// Package command wraps every repository mutation in a reversible command
// object and manages the bounded undo history. A command is executed once
// and undone at most once; it captures everything its undo needs before or
// during execution, so undo never consults state the forward operation
// already changed.
package command

import (
	"errors"
	"fmt"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrUndoBlocked   = errors.New("undo blocked")
	ErrNotExecuted   = errors.New("command was not executed")
	ErrAlreadyRun    = errors.New("command was already executed")
)

// Command is one reversible mutation. Execute returns a one-line summary
// for the user. Commands are not re-executable after undo; redo-like
// behavior builds a fresh command.
type Command interface {
	Execute() (string, error)
	Undo() error
	Description() string
}

// DefaultUndoDepth bounds the history when configuration does not say
// otherwise.
const DefaultUndoDepth = 20

// Manager owns the undo stack. On a successful execute the command is
// pushed; when the stack exceeds its bound the oldest command is evicted
// and becomes permanently unrecoverable. Execute failures leave the stack
// untouched; undo failures discard the popped command rather than
// re-pushing it, surfacing the possibly partial state to the caller.
type Manager struct {
	stack []Command
	depth int
}

func NewManager(depth int) *Manager {
	if depth <= 0 {
		depth = DefaultUndoDepth
	}
	return &Manager{depth: depth}
}

// Run executes the command and records it for undo on success.
func (m *Manager) Run(c Command) (string, error) {
	summary, err := c.Execute()
	if err != nil {
		return "", err
	}
	m.stack = append(m.stack, c)
	if len(m.stack) > m.depth {
		m.stack = m.stack[1:]
	}
	return summary, nil
}

// UndoLast pops and reverses the most recent command, returning its
// description. The popped command is never re-pushed.
func (m *Manager) UndoLast() (string, error) {
	if len(m.stack) == 0 {
		return "", ErrNothingToUndo
	}
	c := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if err := c.Undo(); err != nil {
		return "", fmt.Errorf("undo %s: %w", c.Description(), err)
	}
	return c.Description(), nil
}

// Depth reports how many commands can currently be undone.
func (m *Manager) Depth() int {
	return len(m.stack)
}

// History lists undoable command descriptions, most recent first.
func (m *Manager) History() []string {
	out := make([]string, 0, len(m.stack))
	for i := len(m.stack) - 1; i >= 0; i-- {
		out = append(out, m.stack[i].Description())
	}
	return out
}
