package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newFlagCommand creates a cobra command with all flags configured.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "thor [flags] URL",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureFlags(cmd.Flags())
	return cmd
}

func configureFlags(flags *pflag.FlagSet) {
	flags.IntP("processes", "p", 1, "Number of parallel workers to run")
	flags.IntP("requests", "r", 1, "Number of requests issued by each worker")
	flags.BoolP("verbose", "v", false, "Include the failure breakdown in the report")
	flags.Duration("timeout", DefaultTimeout, "Per-request timeout")
	flags.Int("rate", 0, "Total requests per second across workers (0 means unlimited)")
	flags.Bool("json-output", false, "Emit JSON formatted output")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")
}

// displayHelp prints the help message for a command.
func displayHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s\n\nFlags:\n", cmd.UseLine())
	fs := cmd.Flags()
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// applyFlagOverrides applies command-line flag values to the config,
// overriding values from the config file.
func applyFlagOverrides(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed("processes") {
		val, err := fs.GetInt("processes")
		if err != nil {
			return err
		}
		cfg.Processes = val
	}
	if fs.Changed("requests") {
		val, err := fs.GetInt("requests")
		if err != nil {
			return err
		}
		cfg.Requests = val
	}
	if fs.Changed("verbose") {
		val, err := fs.GetBool("verbose")
		if err != nil {
			return err
		}
		cfg.Verbose = val
	}
	if fs.Changed("timeout") {
		val, err := fs.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = val
	}
	if fs.Changed("rate") {
		val, err := fs.GetInt("rate")
		if err != nil {
			return err
		}
		cfg.Rate = val
	}
	if fs.Changed("json-output") {
		val, err := fs.GetBool("json-output")
		if err != nil {
			return err
		}
		cfg.JSONOutput = val
	}

	// URL is the final positional argument; it wins over a file-supplied
	// target so the command line always names what gets hit.
	if rest := fs.Args(); len(rest) > 0 {
		cfg.TargetURL = strings.TrimSpace(rest[len(rest)-1])
	}

	return nil
}
