package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mthorpe/grip/internal/logging"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/mthorpe/grip/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	t.Setenv("GRIP_DEBUG", "")
	t.Setenv("GRIP_LOG_LEVEL", "")
	t.Setenv("GRIP_STRATEGY", "")
	t.Setenv("GRIP_ZONE_WIDTH", "")
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got Config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got Config) {
				want := Config{
					Strategy:          resize.Single,
					ZoneWidth:         3,
					MinWidth:          5,
					SampleSize:        resize.DefaultSampleSize,
					Padding:           2,
					ValidationTimeout: resize.DefaultValidationTimeout,
					Logging: logging.Options{
						Level: "info",
					},
				}
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"strategy: symmetric\n",
			nil,
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, resize.Symmetric, got.Strategy)
			},
		},
		{
			"env var override default",
			"",
			nil,
			[]string{"GRIP_STRATEGY=proportional"},
			func(t *testing.T, got Config) {
				assert.Equal(t, resize.Proportional, got.Strategy)
			},
		},
		{
			"flag override default",
			"",
			[]string{"--strategy", "symmetric"},
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, resize.Symmetric, got.Strategy)
			},
		},
		{
			"flag overrides both env var and config",
			"strategy: proportional\n",
			[]string{"--strategy", "symmetric"},
			[]string{"GRIP_STRATEGY=single"},
			func(t *testing.T, got Config) {
				assert.Equal(t, resize.Symmetric, got.Strategy)
			},
		},
		{
			"numeric flags",
			"",
			[]string{"--zone-width", "6", "--min-width", "10", "--max-width", "80", "--padding", "4"},
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, float64(6), got.ZoneWidth)
				assert.Equal(t, float64(10), got.MinWidth)
				assert.Equal(t, float64(80), got.MaxWidth)
				assert.Equal(t, float64(4), got.Padding)
			},
		},
		{
			"validation timeout",
			"",
			[]string{"--validation-timeout", "500ms"},
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, 500*time.Millisecond, got.ValidationTimeout)
			},
		},
		{
			"column spec path via env var",
			"",
			nil,
			[]string{"GRIP_COLUMNS=./columns.yaml"},
			func(t *testing.T, got Config) {
				assert.Equal(t, "./columns.yaml", got.SpecPath)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// change into a temp dir in case the host computer has a grip.yaml file
			testutils.ChTempDir(t, t.TempDir())

			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".grip.yaml")
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
			}

			// and pass in flags
			got, err := Parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_invalidStrategy(t *testing.T) {
	testutils.ChTempDir(t, t.TempDir())

	_, err := Parse(io.Discard, []string{"--strategy", "cascade"})
	require.Error(t, err)
}
