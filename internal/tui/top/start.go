package top

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mthorpe/grip/internal/grid"
	"github.com/mthorpe/grip/internal/history"
	"github.com/mthorpe/grip/internal/logging"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/stretchr/testify/require"
)

type Options struct {
	Grid    *grid.Grid
	Service *resize.Service
	History *history.Stack
	Logger  *logging.Logger

	// Debug dumps bubbletea messages to messages.log
	Debug bool
	// DeferWrites enables the deferred-commit preview overlay.
	DeferWrites bool
}

// Start starts the TUI and blocks until the user exits.
func Start(opts Options) error {
	zone.NewGlobal()

	m, err := newModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// Track all mouse motion so that hovering over a column border can
		// surface the resize affordance before any button is pressed.
		tea.WithMouseAllMotion(),
	)

	ch, unsub := setupSubscriptions(opts)
	defer unsub()

	// Relay events to model in background
	go func() {
		for msg := range ch {
			p.Send(msg)
		}
	}()

	// Blocks until user quits
	_, err = p.Run()
	return err
}

// StartTest starts the TUI and returns a test model for testing purposes.
func StartTest(t *testing.T, opts Options, width, height int) *teatest.TestModel {
	zone.NewGlobal()

	m, err := newModel(opts)
	require.NoError(t, err)

	ch, unsub := setupSubscriptions(opts)
	t.Cleanup(unsub)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(width, height))

	// Relay events to model in background
	go func() {
		for msg := range ch {
			tm.Send(msg)
		}
	}()

	t.Cleanup(func() {
		tm.Quit()
	})
	return tm
}

func setupSubscriptions(opts Options) (chan tea.Msg, func()) {
	// Relay events to TUI. Deliberately set up subscriptions *before* any
	// events are triggered, to ensure the TUI receives all messages.
	ch := make(chan tea.Msg)
	wg := sync.WaitGroup{} // sync closure of subscriptions

	ctx, cancel := context.WithCancel(context.Background())

	{
		sub := opts.Logger.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	{
		sub := opts.Service.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	// cleanup function to be invoked when program is terminated.
	return ch, func() {
		cancel()
		// Wait for relays to finish before closing channel, to avoid sends
		// to a closed channel, which would result in a panic.
		wg.Wait()
		close(ch)
	}
}
