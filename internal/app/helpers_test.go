package app

import (
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/mthorpe/grip/internal/logging"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/mthorpe/grip/internal/tui/top"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return Config{
		Strategy:          resize.Single,
		ZoneWidth:         3,
		MinWidth:          5,
		SampleSize:        resize.DefaultSampleSize,
		Padding:           2,
		ValidationTimeout: resize.DefaultValidationTimeout,
	}
}

func setup(t *testing.T, cfg Config) *teatest.TestModel {
	t.Helper()

	cfg.Logging = logging.Options{
		Level: "debug",
		AdditionalWriters: []io.Writer{
			&testLogger{t},
		},
	}

	app, err := New(cfg)
	require.NoError(t, err)

	return top.StartTest(t, top.Options{
		Grid:        app.Grid,
		Service:     app.Resizes,
		History:     app.History,
		Logger:      app.Logger,
		DeferWrites: cfg.Preview,
	}, 120, 40)
}

type testLogger struct {
	t *testing.T
}

func (l *testLogger) Write(b []byte) (int, error) {
	l.t.Helper()

	l.t.Log(string(b))
	return len(b), nil
}

func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(string(b))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}

func matchPattern(t *testing.T, pattern string, s string) bool {
	matched, err := regexp.MatchString(pattern, s)
	require.NoError(t, err)
	return matched
}
