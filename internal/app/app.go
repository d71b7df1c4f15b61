// Package app hosts a live binding engine. It loads a binding profile,
// serializes access to the Translator, runs rebind sessions, and reloads
// the profile when it changes on disk.
package app

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/rebind/internal/config"
	"github.com/dshills/rebind/internal/config/watcher"
	"github.com/dshills/rebind/internal/input"
	"github.com/dshills/rebind/internal/input/keymap"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Application owns the live Translator and everything that replaces it.
type Application struct {
	mu sync.RWMutex

	// Live bindings
	profile    *config.Profile
	translator *keymap.Translator[string]
	size       mouse.Size
	sized      bool
	generation uint64
	reloads    uint64
	session    *Session

	// Callbacks
	hookMu       sync.RWMutex
	onTranslated []func(keymap.Translated[string])
	onEvent      []func(input.Event) error

	metrics *input.Metrics
	watcher *watcher.Watcher
	logger  *Logger

	// State
	running atomic.Bool
	closed  atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// ProfilePath is the binding profile to load. Empty means the
	// default profile plus REBIND_* overrides.
	ProfilePath string

	// Profile, when set, is used instead of reading ProfilePath.
	Profile *config.Profile

	// LogLevel overrides the profile's log level.
	LogLevel string

	// Debug forces debug logging.
	Debug bool

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Watch reloads the profile when ProfilePath changes.
	Watch bool

	// WatchDebounce coalesces bursts of file events. Defaults to 100ms.
	WatchDebounce time.Duration
}

// Stats is a point-in-time view of the application.
type Stats struct {
	Metrics       input.MetricsSnapshot
	Profile       string
	Generation    uint64
	Reloads       uint64
	Bindings      int
	Size          mouse.Size
	SessionActive bool
}

// New loads the profile and builds the live Translator.
func New(opts Options) (*Application, error) {
	p, err := loadProfile(opts)
	if err != nil {
		return nil, NewOperationError("load", opts.ProfilePath, err)
	}

	level := ParseLogLevel(p.Log.Level)
	if opts.LogLevel != "" {
		level = ParseLogLevel(opts.LogLevel)
	}
	if opts.Debug {
		level = LogLevelDebug
	}
	logger := NewLogger(LoggerConfig{
		Level:  level,
		Output: opts.LogOutput,
		Prefix: defaultLogPrefix,
	})

	app := &Application{
		opts:    opts,
		logger:  logger,
		metrics: input.NewMetrics(),
	}

	t, err := app.build(p)
	if err != nil {
		return nil, NewOperationError("load", opts.ProfilePath, err)
	}
	app.profile = p
	app.translator = t
	app.generation = 1

	logger.WithFields(map[string]any{
		"profile":  p.Name,
		"bindings": t.Len(),
	}).Info("profile loaded")

	if opts.Watch && opts.ProfilePath != "" && opts.Profile == nil {
		if err := app.startWatcher(); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// loadProfile reads and validates the configured profile.
func loadProfile(opts Options) (*config.Profile, error) {
	var p *config.Profile
	if opts.Profile != nil {
		p = opts.Profile.Clone()
	} else {
		var err error
		if p, err = config.LoadWithEnv(opts.ProfilePath); err != nil {
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return p, nil
}

// build converts a validated profile into a Translator and reports
// bindings that will not survive the conversion unchanged.
func (app *Application) build(p *config.Profile) (*keymap.Translator[string], error) {
	bd, err := p.Builder()
	if err != nil {
		return nil, err
	}
	log := app.logger.WithComponent("profile")

	for _, d := range p.Duplicates() {
		log.Warn("button %s listed under %v, bound to %q", d.Button, d.Actions, d.Winner)
	}

	t := bd.BuildTranslator()
	for _, b := range t.Overflow() {
		log.Warn("action %q has more than %d buttons, %s is hidden from rebinding",
			b.Action, keymap.MaxButtons, b.Button)
	}
	return t, nil
}

// Translate converts ev with the live bindings.
func (app *Application) Translate(ev input.Event) (keymap.Translated[string], bool) {
	start := time.Now()

	app.mu.RLock()
	out, ok := app.translator.Translate(ev)
	app.mu.RUnlock()

	app.metrics.Record(ev, ok, time.Since(start))
	return out, ok
}

// Resize sets the viewport used to mirror cursor positions. The size
// survives reloads and commits.
func (app *Application) Resize(size mouse.Size) {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.size = size
	app.sized = true
	app.translator.SetSize(size)
	app.logger.Debug("viewport resized to %s", size)
}

// Translator returns a copy of the live Translator.
func (app *Application) Translator() *keymap.Translator[string] {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.translator.Clone()
}

// Profile returns a copy of the loaded profile.
func (app *Application) Profile() *config.Profile {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.profile.Clone()
}

// Generation increases every time the live bindings are replaced.
func (app *Application) Generation() uint64 {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.generation
}

// Reload re-reads the profile and swaps in the new bindings. On failure
// the current bindings stay live.
func (app *Application) Reload() error {
	if app.closed.Load() {
		return ErrClosed
	}
	log := app.logger.WithField("path", app.opts.ProfilePath)

	p, err := loadProfile(app.opts)
	if err != nil {
		err = NewOperationError("reload", app.opts.ProfilePath, err)
		log.Error("reload failed, keeping current bindings: %v", err)
		return err
	}
	t, err := app.build(p)
	if err != nil {
		err = NewOperationError("reload", app.opts.ProfilePath, err)
		log.Error("reload failed, keeping current bindings: %v", err)
		return err
	}

	app.mu.Lock()
	if app.sized {
		t.SetSize(app.size)
	}
	app.profile = p
	app.translator = t
	app.generation++
	app.reloads++
	gen := app.generation
	app.mu.Unlock()

	log.WithFields(map[string]any{
		"bindings":   t.Len(),
		"generation": gen,
	}).Info("profile reloaded")
	return nil
}

// Stats returns a snapshot of counters and binding state.
func (app *Application) Stats() Stats {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return Stats{
		Metrics:       app.metrics.Snapshot(),
		Profile:       app.profile.Name,
		Generation:    app.generation,
		Reloads:       app.reloads,
		Bindings:      app.translator.Len(),
		Size:          app.translator.Size(),
		SessionActive: app.session != nil,
	}
}

// Close stops watching the profile. Close is idempotent.
func (app *Application) Close() error {
	if !app.closed.CompareAndSwap(false, true) {
		return nil
	}
	if app.watcher != nil {
		app.watcher.Stop()
	}
	return nil
}

// startWatcher reloads the profile whenever it is written or recreated.
func (app *Application) startWatcher() error {
	log := app.logger.WithComponent("watcher")

	debounce := app.opts.WatchDebounce
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	w := watcher.New(
		watcher.WithDebounce(debounce),
		watcher.WithErrorHandler(func(err error) {
			log.Warn("watch error: %v", err)
		}),
	)
	if err := w.Watch(app.opts.ProfilePath); err != nil {
		return NewComponentError("watcher", "watch", err)
	}

	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			log.Warn("profile %s: %s, keeping current bindings", ev.Path, ev.Op)
			return
		}
		log.Debug("profile %s: %s", ev.Path, ev.Op)
		_ = app.Reload() // failure is logged and the old bindings stay
	})

	if err := w.Start(); err != nil {
		return NewComponentError("watcher", "start", err)
	}
	app.watcher = w
	return nil
}
