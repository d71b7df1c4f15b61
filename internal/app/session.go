package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/rebind/internal/input/keymap"
)

// Session is an open rebind edit. Rebind is a private copy of the live
// bindings that the caller may mutate freely until Commit or Abort.
type Session struct {
	ID      uuid.UUID
	Rebind  *keymap.Rebind[string]
	Started time.Time

	// generation of the live bindings the session was opened from
	generation uint64
}

// BeginRebind opens a session on a copy of the live bindings. Only one
// session may be open at a time.
func (app *Application) BeginRebind() (*Session, error) {
	if app.closed.Load() {
		return nil, ErrClosed
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if app.session != nil {
		return nil, NewOperationError("begin", app.session.ID.String(), ErrSessionActive)
	}

	s := &Session{
		ID:         uuid.New(),
		Rebind:     app.translator.ToRebind(),
		Started:    time.Now(),
		generation: app.generation,
	}
	app.session = s

	log := app.logger.WithField("session", s.ID)
	for _, b := range app.translator.Overflow() {
		log.Warn("action %q has more than %d buttons, commit drops %s", b.Action, keymap.MaxButtons, b.Button)
	}
	log.Debug("rebind session opened with %d actions", s.Rebind.Len())
	return s, nil
}

// ActiveSession returns the open session, if any.
func (app *Application) ActiveSession() (*Session, bool) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.session, app.session != nil
}

// Commit converts the session's Rebind into the live Translator and
// closes the session. A session opened before the last reload or commit
// is stale: it is closed and the live bindings are left alone.
func (app *Application) Commit(s *Session) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if err := app.checkSession(s); err != nil {
		return NewOperationError("commit", sessionID(s), err)
	}
	app.session = nil

	log := app.logger.WithField("session", s.ID)
	if s.generation != app.generation {
		log.Warn("rebind session is stale (opened at generation %d, now %d)", s.generation, app.generation)
		return NewOperationError("commit", s.ID.String(), ErrStaleSession)
	}

	for _, c := range s.Rebind.Conflicts() {
		log.Warn("button %s claimed by %v, bound to %q", c.Button, c.Actions, c.Winner)
	}

	t := s.Rebind.ToTranslator()
	if app.sized {
		t.SetSize(app.size)
	}
	app.translator = t
	app.generation++

	log.WithFields(map[string]any{
		"bindings":   t.Len(),
		"generation": app.generation,
	}).Info("rebind committed")
	return nil
}

// Abort closes the session without touching the live bindings.
func (app *Application) Abort(s *Session) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if err := app.checkSession(s); err != nil {
		return NewOperationError("abort", sessionID(s), err)
	}
	app.session = nil
	app.logger.WithField("session", s.ID).Debug("rebind session aborted")
	return nil
}

// checkSession reports whether s is the open session.
// Caller must hold app.mu.
func (app *Application) checkSession(s *Session) error {
	if s == nil || app.session != s {
		return ErrNoSession
	}
	return nil
}

func sessionID(s *Session) string {
	if s == nil {
		return ""
	}
	return s.ID.String()
}
