package app

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/dshills/rebind/internal/backend"
	"github.com/dshills/rebind/internal/input"
	"github.com/dshills/rebind/internal/input/keymap"
)

// OnTranslated registers fn to receive every translated event.
func (app *Application) OnTranslated(fn func(keymap.Translated[string])) {
	app.hookMu.Lock()
	defer app.hookMu.Unlock()
	app.onTranslated = append(app.onTranslated, fn)
}

// OnEvent registers fn to see every raw event before translation.
// Returning ErrQuit stops Run; other errors are logged.
func (app *Application) OnEvent(fn func(input.Event) error) {
	app.hookMu.Lock()
	defer app.hookMu.Unlock()
	app.onEvent = append(app.onEvent, fn)
}

// HandleEvent feeds one raw event through the hooks and the live
// bindings. Resize events also resize the viewport.
func (app *Application) HandleEvent(ev input.Event) error {
	if ev.Kind == input.EventResize {
		app.Resize(ev.Size)
	}

	app.hookMu.RLock()
	eventHooks := app.onEvent
	translatedHooks := app.onTranslated
	app.hookMu.RUnlock()

	for _, fn := range eventHooks {
		err := app.safeCall(func() error { return fn(ev) })
		if errors.Is(err, ErrQuit) {
			return ErrQuit
		}
		if err != nil {
			app.logger.WithComponent("hooks").Warn("event hook for %s: %v", ev, err)
		}
	}

	t, ok := app.Translate(ev)
	if !ok {
		if ev.IsButton() && app.logger.Enabled(LogLevelDebug) {
			app.logger.Debug("unbound %s", ev)
		}
		return nil
	}
	for _, fn := range translatedHooks {
		err := app.safeCall(func() error {
			fn(t)
			return nil
		})
		if err != nil {
			app.logger.WithComponent("hooks").Warn("translated hook for %s: %v", t, err)
		}
	}
	return nil
}

// safeCall runs fn, converting a panic into a RecoveredPanicError.
func (app *Application) safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		}
	}()
	return fn()
}

// Run reads events from b until the backend runs out of input, a hook
// returns ErrQuit, or ctx is canceled. All three are a normal exit.
func (app *Application) Run(ctx context.Context, b backend.Backend) error {
	if app.closed.Load() {
		return ErrClosed
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer b.Shutdown()

	if size := b.Size(); !size.IsZero() {
		app.Resize(size)
	}

	stop := context.AfterFunc(ctx, b.Interrupt)
	defer stop()

	app.logger.Info("event loop started")
	defer app.logger.Info("event loop stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}
		events, ok := b.PollEvents()
		if !ok {
			return nil
		}
		for _, ev := range events {
			if err := app.HandleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
