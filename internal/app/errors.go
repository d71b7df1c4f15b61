package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuit is returned by an event hook to end Run normally.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")
	ErrClosed         = errors.New("application closed")

	// ErrSessionActive is returned by BeginRebind while a session is open.
	ErrSessionActive = errors.New("rebind session already active")

	// ErrNoSession is returned when the session passed to Commit or Abort
	// is not the open one.
	ErrNoSession = errors.New("no such rebind session")

	// ErrStaleSession is returned by Commit when the live bindings were
	// replaced after the session was opened.
	ErrStaleSession = errors.New("rebind session is stale")
)

// OperationError reports a failed operation ("load", "reload", "commit",
// ...) on a target such as a profile path or a session id.
type OperationError struct {
	Op     string
	Target string
	Err    error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Target != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.Target)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ComponentError reports a failure inside a collaborator such as the
// backend or the profile watcher.
type ComponentError struct {
	Component string
	Action    string
	Err       error
}

// NewComponentError creates a new ComponentError.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{Component: component, Action: action, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	parts := []string{e.Component}
	if e.Action != "" {
		parts = append(parts, e.Action)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError carries a panic recovered from a hook, with the
// stack when one was captured.
type RecoveredPanicError struct {
	Value any
	Stack string
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}
