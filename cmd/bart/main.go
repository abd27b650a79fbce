package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/bart-cli/internal/api"
	"github.com/mobil-koeln/bart-cli/internal/board"
	"github.com/mobil-koeln/bart-cli/internal/config"
	"github.com/mobil-koeln/bart-cli/internal/models"
	"github.com/mobil-koeln/bart-cli/internal/output"
	"github.com/mobil-koeln/bart-cli/internal/tui"
)

var version = "0.1.0"

// errNoStations is returned when neither arguments nor configuration name a station
var errNoStations = errors.New("no stations given: pass station codes or set " + config.EnvStations)

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bart [STN...]",
	Short: "Display real time BART estimates",
	Long: `bart shows a live, color-coded departure board for one or more BART
stations in the terminal, refreshed until you press 'q'.

Stations default to the BART_STATIONS environment variable or the
stations list of the config file.

Examples:
  bart mcar          get estimates for the MacArthur station
  bart embr cols     get estimates for the Embarcadero and Coliseum stations
  bart --list        print the station abbreviations
  bart pick          choose stations interactively`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagList {
			return runStations(cmd, nil)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		stations := cfg.Stations
		if len(args) > 0 {
			stations = args
		}
		if len(stations) == 0 {
			_ = cmd.Help()
			return errNoStations
		}
		return runBoard(cmd, cfg, stations)
	},
}

// Global flags
var (
	flagConfig  string
	flagColor   string
	flagNoCache bool
	flagLogFile string
	flagJSON    bool
)

// Board flags
var (
	flagList    bool
	flagColumns int
	flagRefresh int
)

func init() {
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(advisoriesCmd)
	rootCmd.AddCommand(fareCmd)
	rootCmd.AddCommand(pickCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/bart/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write board diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output listings as JSON")

	// Board flags
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "Print list of station abbreviations and exit")
	rootCmd.PersistentFlags().IntVar(&flagColumns, "columns", 0, "Number of estimate columns (default 4)")
	rootCmd.PersistentFlags().IntVar(&flagRefresh, "refresh", 0, "Refresh interval in milliseconds (default 10000)")
}

// loadConfig reads the configuration, applies command-line overrides and
// validates the result
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Columns = flagColumns
	}
	if flags.Changed("refresh") {
		cfg.RefreshMS = flagRefresh
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// createClient creates an API client with common options
func createClient(cfg config.Config) (*api.Client, error) {
	opts := []api.ClientOption{api.WithAPIKey(cfg.APIKey)}
	if cfg.APIURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.APIURL))
	}

	// Enable caching unless disabled
	if !flagNoCache {
		opts = append(opts, api.WithDefaultCache())
	}

	return api.NewClient(opts...)
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

// newLogger opens the diagnostics log. Without a path everything is discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// runBoard takes over the terminal and shows the live board until quit
func runBoard(cmd *cobra.Command, cfg config.Config, stations []string) error {
	cfg.Stations = stations
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	surface, err := board.Open(cfg.Refresh(), board.WithSignals(output.SetupSignalHandler()))
	if err != nil {
		return err
	}

	logger.Info("starting board", "stations", cfg.Stations, "columns", cfg.Columns, "refresh", cfg.Refresh())
	b := board.New(surface, client, cfg.Stations, cfg.Columns, board.WithLogger(logger))
	return b.Run(cmd.Context())
}

var stationsCmd = &cobra.Command{
	Use:   "stations [query]",
	Short: "List station abbreviations",
	Long: `List the abbreviations and names of all BART stations.

An optional query filters by code or name and tolerates small typos:
  bart stations oakland
  bart stations embarcadro`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStations,
}

func runStations(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	stations, err := client.GetStations(cmd.Context())
	if err != nil {
		return err
	}
	if len(args) > 0 {
		stations = models.FilterStations(stations, args[0])
	}

	if flagJSON {
		return printJSON(stations)
	}

	opts := output.TableOptions{Colors: output.NewColors(getColorMode())}
	if age, ok := client.StationsCacheAge(); ok && age >= time.Minute {
		opts.CacheAge = age
	}
	output.RenderStations(os.Stdout, stations, opts)
	return nil
}

var advisoriesCmd = &cobra.Command{
	Use:   "advisories",
	Short: "Show current service advisories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := createClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create API client: %w", err)
		}

		advisories, err := client.GetAdvisories(cmd.Context())
		if err != nil {
			return err
		}

		if flagJSON {
			reportable := make([]models.Advisory, 0, len(advisories))
			for _, adv := range advisories {
				if !adv.Reportable() {
					break
				}
				reportable = append(reportable, adv)
			}
			return printJSON(reportable)
		}

		output.RenderAdvisories(os.Stdout, advisories, output.TableOptions{Colors: output.NewColors(getColorMode())})
		return nil
	},
}

var fareCmd = &cobra.Command{
	Use:   "fare <orig> <dest>",
	Short: "Show the fares between two stations",
	Long: `Show the fare classes for a trip between two stations.

Example:
  bart fare 12th embr`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := createClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create API client: %w", err)
		}

		fare, err := client.GetFare(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fare)
		}

		output.RenderFare(os.Stdout, fare, output.TableOptions{Colors: output.NewColors(getColorMode())})
		return nil
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick stations interactively, then show their board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := createClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create API client: %w", err)
		}

		p := tea.NewProgram(tui.New(client, cfg.Stations), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return err
		}

		picker, ok := final.(tui.Model)
		if !ok || picker.Canceled() {
			return nil
		}
		stations := picker.Selected()
		if len(stations) == 0 {
			return errNoStations
		}
		return runBoard(cmd, cfg, stations)
	},
}

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
