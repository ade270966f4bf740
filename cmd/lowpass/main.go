package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/lowpass"
	"github.com/esimov/lowpass/utils"
)

const usage = "Usage: lowpass [flags] <input.png> <output.png>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line utility and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "lowpass: ", 0)

	flags := flag.NewFlagSet("lowpass", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		passes        = flags.Int("passes", 1, "Number of filter passes")
		preserveAlpha = flags.Bool("preserve-alpha", false, "Copy the alpha channel instead of filtering it")
		compare       = flags.String("compare", "", "Write a side by side comparison sheet to this path")
		verbose       = flags.Bool("v", false, "Print a summary once the image is saved")
	)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() < 2 {
		flags.Usage()
		return 1
	}
	input, output := flags.Arg(0), flags.Arg(1)

	p := &lowpass.Processor{
		Passes:        *passes,
		PreserveAlpha: *preserveAlpha,
		ComparePath:   *compare,
	}

	colored := utils.IsTerminal(stderr)
	spinner := utils.NewSpinner(stderr, "Filtering image...")
	if *verbose && colored {
		spinner.Start()
	}
	start := time.Now()
	stats, err := p.Process(input, output)
	spinner.Stop()

	if err != nil {
		logger.Println(utils.Colorize(err.Error(), utils.ErrorColor, colored))
		return 1
	}

	if *verbose {
		fmt.Fprintf(stdout, "Filtered %dx%d image with %d pass(es) in %s\n",
			stats.Width, stats.Height, stats.Passes, utils.FormatTime(time.Since(start)))
		fmt.Fprintf(stdout, "Saved as: %s %s\n", filepath.Base(output),
			utils.Colorize("✓", utils.SuccessColor, utils.IsTerminal(stdout)))
	}
	return 0
}
