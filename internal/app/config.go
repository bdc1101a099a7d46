package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mthorpe/grip/internal/logging"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type Config struct {
	Debug   bool
	Preview bool

	// SpecPath optionally points at a YAML column spec with which to populate
	// the grid. Empty means the built-in demo dataset.
	SpecPath string

	Strategy          resize.StrategyKind
	ZoneWidth         float64
	MinWidth          float64
	MaxWidth          float64
	SampleSize        int
	Padding           float64
	ValidationTimeout time.Duration

	Logging logging.Options

	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".grip.yaml")

	fs := ff.NewFlagSet("grip")
	fs.StringVar(&cfg.SpecPath, 0, "columns", "", "Path to a YAML column spec. Defaults to a built-in demo dataset.")
	fs.Float64Var(&cfg.ZoneWidth, 'z', "zone-width", 3, "Width of the resize zone straddling each column border.")
	fs.Float64Var(&cfg.MinWidth, 0, "min-width", 5, "Default minimum column width.")
	fs.Float64Var(&cfg.MaxWidth, 0, "max-width", 0, "Default maximum column width. Zero means unbounded.")
	fs.IntVar(&cfg.SampleSize, 0, "sample-size", resize.DefaultSampleSize, "Number of rows auto-fit samples per column.")
	fs.Float64Var(&cfg.Padding, 0, "padding", 2, "Cell padding added to auto-fitted widths.")
	fs.DurationVar(&cfg.ValidationTimeout, 0, "validation-timeout", resize.DefaultValidationTimeout, "Time budget for hooks and validators.")
	fs.BoolVar(&cfg.Preview, 'p', "preview", "Defer width writes until commit, showing a preview while dragging.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	var strategy string
	{
		kinds := resize.StrategyKinds()
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		usage := fmt.Sprintf("Resize strategy (valid: %s).", strings.Join(names, ","))
		fs.StringEnumVar(&strategy, 's', "strategy", usage, names...)
	}
	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("GRIP"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	// Perform any conversions from the flag parsed primitive types to grip
	// defined types.
	cfg.Strategy, err = resize.ParseStrategyKind(strategy)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
