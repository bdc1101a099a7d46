package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestApp_startsOnGridPage(t *testing.T) {
	tm := setup(t, defaultConfig())

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Grid") &&
			strings.Contains(s, "NAME") &&
			strings.Contains(s, "STATUS") &&
			strings.Contains(s, "gateway-00")
	})
}

func TestApp_resizeColumnWithMouse(t *testing.T) {
	tm := setup(t, defaultConfig())

	// Wait for the grid to render so its on-screen region is registered for
	// hit-testing.
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "NAME")
	})

	// The first demo column is 20 wide, putting its border at x=20. The
	// header block occupies the top five lines, so y=6 lands on the grid.
	// Hit-test regions are registered asynchronously after the first render,
	// so nudge the pointer until the hover affordance confirms the region is
	// live before arming the drag.
	waitFor(t, tm, func(s string) bool {
		if strings.Contains(s, "↔ column 0") {
			return true
		}
		tm.Send(tea.MouseMsg{X: 20, Y: 6, Action: tea.MouseActionMotion})
		return false
	})

	tm.Send(tea.MouseMsg{X: 20, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 30, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 30, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})

	// The commit surfaces in the footer.
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "column 0 resized 20 → 30")
	})
}

func TestApp_strategySwitch(t *testing.T) {
	tm := setup(t, defaultConfig())

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "NAME")
	})

	tm.Type("3")

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "strategy: symmetric")
	})
}

func TestApp_logs(t *testing.T) {
	tm := setup(t, defaultConfig())

	// Go to logs
	tm.Type("l")

	// Wait for the log message recorded when the demo grid was built.
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Logs") &&
			matchPattern(t, `INFO\s+loaded grid`, s)
	})
}

func TestApp_quit(t *testing.T) {
	tm := setup(t, defaultConfig())

	tm.Send(tea.KeyMsg{
		Type: tea.KeyCtrlC,
	})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Quit grip? (y/N):")
	})

	tm.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{'y'},
	})

	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}
