package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		Split:      1,
		TipPercent: 0,
	}

	fs := flag.NewFlagSet("tipcalc", flag.ContinueOnError)

	fs.StringVar(&cfg.Bill, "b", "", "Bill amount (required)")
	fs.StringVar(&cfg.Bill, "bill", "", "Bill amount (required)")
	fs.IntVar(&cfg.Split, "s", cfg.Split, "Number of people sharing the bill")
	fs.IntVar(&cfg.Split, "split", cfg.Split, "Number of people sharing the bill")
	fs.IntVar(&cfg.TipPercent, "t", cfg.TipPercent, "Tip percentage (0-100)")
	fs.IntVar(&cfg.TipPercent, "tip", cfg.TipPercent, "Tip percentage (0-100)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.Bill == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -bill <amount>\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Tip Calculator

Usage: tipcalc [flags]
       tipcalc            (start the GUI)
       tipcalc help       (show this message)

FLAGS:
  -b, -bill <amount>       Bill amount before tip (required)
  -s, -split <num>         People sharing the bill (default: 1)
  -t, -tip <pct>           Tip percentage 0-100 (default: 0)
  -v, -verbose             Verbose output

ENVIRONMENT:
  TIPCALC_LOG_LEVEL        debug, info, warn, error (default: info)
  TIPCALC_LOCALE           Number formatting and bill parsing locale (default: en-US)
  TIPCALC_APP_ID           Application ID for the GUI (default: com.example.tipcalculator)

EXAMPLES:
  # Four people, 20%% tip
  tipcalc -bill 100 -split 4 -tip 20

  # Bill with cents, no tip
  tipcalc -b 57.80 -s 2

`)
}
