package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/pkg/printer"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	outFormat string
	logLevel  string
	logFile   string
	logJSON   bool

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Build, inspect and edit trees stored as YAML",
	Long: `treectl works with two kinds of trees stored as nested YAML mappings:

  binary search trees  {value, left, right}
  general trees        {value, name, children}

It can build and edit binary search trees, walk and query general trees by
index path or name, and render either kind as text, JSON or YAML.`,
	Version:            versioninfo.Short(),
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format (same as --format json)")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON records")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setupLogging enables the library logger when any logging flag is given.
func setupLogging(_ *cobra.Command, _ []string) error {
	opts := logger.Options{
		Enabled: verbose || logLevel != "" || logFile != "",
		Level:   slog.LevelDebug,
		JSON:    logJSON,
		LogFile: logFile,
	}
	if logLevel != "" {
		opts.Level = logger.ParseLevel(logLevel)
	}

	closer, err := logger.Init(opts)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	logCloser = closer
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// newPrinter returns a stdout printer configured from the global flags.
func newPrinter(configure func(*printer.Options)) (*printer.Printer, error) {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	} else {
		f, err := printer.ParseFormat(outFormat)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	}
	if configure != nil {
		configure(&opts)
	}
	return printer.New(os.Stdout, opts), nil
}

// textOutput reports whether results go out as plain text.
func textOutput() bool {
	if jsonOut {
		return false
	}
	f, err := printer.ParseFormat(outFormat)
	return err != nil || f == printer.FormatText
}
