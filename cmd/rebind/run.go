package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/rebind/internal/app"
	"github.com/dshills/rebind/internal/backend"
	"github.com/dshills/rebind/internal/input"
	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/keymap"
)

var (
	flagWatch   bool
	flagLogFile string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show live translations of terminal input",
		Long: `Open a terminal view that translates every key, mouse and resize event
with the profile and shows the resulting action. Esc or Ctrl-C quits.`,
		Args: cobra.NoArgs,
		RunE: runLive,
	}
	cmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Reload the profile when it changes")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	return cmd
}

func runLive(cmd *cobra.Command, args []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	application, err := app.New(app.Options{
		ProfilePath: profilePath(cmd),
		LogLevel:    flagLogLevel,
		LogOutput:   logOut,
		Watch:       flagWatch,
	})
	if err != nil {
		return err
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	view := &liveView{term: term, app: application}
	application.OnEvent(view.onEvent)
	application.OnTranslated(view.onTranslated)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := application.Run(ctx, term)

	m := application.Stats().Metrics
	application.Logger().WithFields(map[string]any{
		"presses":  m.PressesTotal,
		"releases": m.ReleasesTotal,
		"moves":    m.MovesTotal,
		"unbound":  m.UnboundTotal,
	}).Info("live view closed")
	return runErr
}

// liveView draws the most recent raw and translated events.
type liveView struct {
	term *backend.Terminal
	app  *app.Application

	mu         sync.Mutex
	lastEvent  string
	lastAction string
}

var escape = button.Keyboard(button.KeyEscape)

func (v *liveView) onEvent(ev input.Event) error {
	if ev.Kind == input.EventPress && ev.Button == escape {
		return app.ErrQuit
	}

	v.mu.Lock()
	v.lastEvent = ev.String()
	if ev.IsButton() {
		v.lastAction = "(unbound)"
	}
	v.mu.Unlock()

	v.draw()
	return nil
}

func (v *liveView) onTranslated(t keymap.Translated[string]) {
	v.mu.Lock()
	v.lastAction = t.String()
	v.mu.Unlock()

	v.draw()
}

func (v *liveView) draw() {
	v.mu.Lock()
	lastEvent, lastAction := v.lastEvent, v.lastAction
	v.mu.Unlock()

	stats := v.app.Stats()
	m := stats.Metrics
	title := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorAqua)
	subtle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	v.term.DrawLines([]backend.Line{
		{Text: "rebind: " + stats.Profile, Style: title},
		{Text: fmt.Sprintf("bindings %d  generation %d  reloads %d  viewport %s",
			stats.Bindings, stats.Generation, stats.Reloads, stats.Size)},
		{},
		{Text: "event:  " + lastEvent},
		{Text: "action: " + lastAction},
		{},
		{Text: fmt.Sprintf("presses %d  releases %d  moves %d  unbound %d  ignored %d",
			m.PressesTotal, m.ReleasesTotal, m.MovesTotal, m.UnboundTotal, m.IgnoredTotal), Style: subtle},
		{Text: "Esc or Ctrl-C quits", Style: subtle},
	})
}
