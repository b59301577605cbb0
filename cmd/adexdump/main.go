package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"adexdump/internal/report"
)

const (
	version = "0.1"

	// banner is printed before anything else, even on usage errors.
	banner = "\nADExplorerDump.py v" + version + "\n"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options holds the parsed command line.
type options struct {
	descriptionSearch    string
	longStandingAccounts bool
	maxPasswordAge       int
	outfile              string
	format               string
	configPath           string
	verbose              bool
	utc                  bool

	// started is set once flag validation has passed.
	started bool
}

const (
	flagDescriptionSearch = "description-search"
	flagLongStanding      = "long-standing-accounts"
	flagMaxPasswordAge    = "max-password-age"
	flagOutfile           = "outfile"
	flagFormat            = "format"
	flagUTC               = "utc"
)

// newRootCmd builds the adexdump command, parsing into opts. Report output
// and status lines go to stdout.
func newRootCmd(stdout io.Writer, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adexdump <filename>",
		Short: "Dumps selected data from ADExplorerSnapshot JSON output",
		Long: `adexdump reads the JSON written by ADExplorerSnapshot and reports either
long standing accounts (passwords older than --max-password-age days) or
objects whose description contains the given text.

Examples:
  adexdump snapshot.json -L
  adexdump snapshot.json -L --max-password-age 90 -F csv -O stale.csv
  adexdump snapshot.json -S password`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFlags(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.started = true
			return runReport(cmd, opts, args[0], stdout)
		},
	}
	cmd.SetOut(stdout)

	flags := cmd.Flags()
	flags.StringVarP(&opts.descriptionSearch, flagDescriptionSearch, "S", "", "search principal description fields for the text provided")
	flags.BoolVarP(&opts.longStandingAccounts, flagLongStanding, "L", false, "look for long standing accounts without recent password changes")
	flags.IntVar(&opts.maxPasswordAge, flagMaxPasswordAge, report.DefaultMaxPasswordAge, "the maximum password age (in days) for determining long standing accounts")
	flags.StringVarP(&opts.outfile, flagOutfile, "O", "-", "file to output to")
	flags.StringVarP(&opts.format, flagFormat, "F", "txt", "output file format (txt, csv, json, sqlite)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&opts.utc, flagUTC, false, "render password timestamps in UTC instead of local time")

	cmd.MarkFlagsMutuallyExclusive(flagDescriptionSearch, flagLongStanding)
	cmd.MarkFlagsOneRequired(flagDescriptionSearch, flagLongStanding)

	return cmd
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "%s\n", banner)

	opts := &options{}
	cmd := newRootCmd(stdout, opts)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		if !opts.started {
			fmt.Fprint(stderr, cmd.UsageString())
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
