package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/spencer-p/beachride/pkg/config"
	"github.com/spencer-p/beachride/pkg/timetricks"
)

// Options are the command line flags. Flags that were set win over the
// config file and environment.
type Options struct {
	ConfigPath   string
	Early        timetricks.Clock
	Late         timetricks.Clock
	Month        string
	LowTideLevel float64
	Test         bool
	Test12       bool
	Print        bool
	Source       string
	Daylight     bool
	Schedule     string
	Listen       string
}

func newRootCommand() *cobra.Command {
	cmd, _ := newCommand()
	return cmd
}

func newCommand() (*cobra.Command, *Options) {
	defaults := config.Default()
	opts := &Options{
		Early: defaults.Early,
		Late:  defaults.Late,
	}

	cmd := &cobra.Command{
		Use:   "beachride",
		Short: "Find low tides that are good for riding on the beach",
		Long: `beachride fetches NOAA tide predictions for Monterey Bay, picks the low
tides at or below a level that fall within a daily window, and mails a
summary.

Mail, Telegram, and other settings come from an optional YAML file and
BEACHRIDE_* environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			r := newRunner(cfg, opts)
			if cfg.Schedule != "" {
				return r.schedule(cmd.Context())
			}
			return r.run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	f.Var(&opts.Early, "early", "Earliest time each day")
	f.Var(&opts.Late, "late", "Latest time each day")
	f.StringVar(&opts.Month, "month", defaults.Month, "Month to check for tides. Default is next 31 days. Using 'next' will fetch next month's data")
	f.Float64Var(&opts.LowTideLevel, "lowTideLevel", defaults.LowTideLevel, "Low tide maximum level")
	f.BoolVar(&opts.Test, "test", false, "Use test structures and don't fetch")
	f.BoolVar(&opts.Test12, "test12", false, "Test December change")
	f.BoolVar(&opts.Print, "print", false, "Print out message")
	f.StringVar(&opts.Source, "source", defaults.Source, "Where to fetch tides from (page|api)")
	f.BoolVar(&opts.Daylight, "daylight", false, "Only report low tides between sunrise and sunset")
	f.StringVar(&opts.Schedule, "schedule", "", "Cron spec to keep running on, e.g. \"0 7 * * *\"")
	f.StringVar(&opts.Listen, "listen", defaults.Listen, "Address to serve metrics on while scheduled")

	return cmd, opts
}

// loadConfig reads the config file and environment, then applies any flags
// that were given explicitly.
func loadConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("early") {
		cfg.Early = opts.Early
	}
	if f.Changed("late") {
		cfg.Late = opts.Late
	}
	if f.Changed("month") {
		cfg.Month = opts.Month
	}
	if f.Changed("lowTideLevel") {
		cfg.LowTideLevel = opts.LowTideLevel
	}
	if f.Changed("source") {
		cfg.Source = opts.Source
	}
	if f.Changed("daylight") {
		cfg.Daylight = opts.Daylight
	}
	if f.Changed("schedule") {
		cfg.Schedule = opts.Schedule
	}
	if f.Changed("listen") {
		cfg.Listen = opts.Listen
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Printf("Failed to run: %+v", err)
		os.Exit(1)
	}
}
