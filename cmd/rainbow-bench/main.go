package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/lixenwraith/rainbow-bench/bench"
	"github.com/lixenwraith/rainbow-bench/parameter"
	"github.com/lixenwraith/rainbow-bench/ribbon"
	"github.com/lixenwraith/rainbow-bench/terminal"
)

var (
	fgFlag       = flag.Bool("fg", false, "Foreground-only color mode")
	bgFlag       = flag.Bool("bg", false, "Background-only color mode")
	ngFlag       = flag.Bool("ng", false, "No-color mode")
	chFlag       = flag.String("ch", "", "Fixed glyph override (Unicode code point, hex)")
	cellsFlag    = flag.Bool("cells", false, "Report throughput in cells/s instead of MB/s")
	durationFlag = flag.Duration("duration", 0, "Stop after this long (0 = until interrupted)")
	debugFlag    = flag.Bool("debug", false, "Log to "+logDir+"/"+logFileName)
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rainbow-bench [-fg|-bg|-ng] [-ch=<hex>] [-cells] [-duration=<d>] [<num_colors>]")
}

// parseOptions maps flags and the positional color count to run options.
// Any malformed value is a configuration error: report and exit before any
// terminal-mode change is made.
func parseOptions() (bench.Options, error) {
	opts := bench.Options{
		Colors:   parameter.DefaultRainbowColors,
		Duration: *durationFlag,
	}

	switch {
	case *ngFlag:
		opts.Mode = ribbon.ColorNone
	case *bgFlag:
		opts.Mode = ribbon.ColorBackground
	case *fgFlag:
		opts.Mode = ribbon.ColorForeground
	default:
		opts.Mode = ribbon.ColorAll
	}

	if *cellsFlag {
		opts.Unit = bench.UnitCells
	}

	if *chFlag != "" {
		cp, err := strconv.ParseUint(*chFlag, 16, 32)
		if err != nil {
			return opts, fmt.Errorf("invalid glyph code point %q", *chFlag)
		}
		// Out-of-range code points leave the cycling glyph in place
		opts.Glyph = ribbon.EncodeGlyph(uint32(cp))
	}

	if flag.NArg() > 1 {
		return opts, fmt.Errorf("too many arguments")
	}
	if flag.NArg() == 1 {
		n, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			return opts, fmt.Errorf("invalid color count %q", flag.Arg(0))
		}
		opts.Colors = ribbon.ClampColors(n)
	}

	return opts, nil
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the benchmark crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAINBOW-BENCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = usage
	flag.Parse()

	opts, err := parseOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rainbow-bench: %v\n", err)
		usage()
		os.Exit(1)
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	session := terminal.NewSession()
	if err := session.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "rainbow-bench: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup; also runs on the error paths below
	defer session.Fini()

	notifier := &bench.Notifier{}
	stop := bench.Watch(notifier)
	defer stop()

	log.Printf("starting: colors=%d mode=%d duration=%v", opts.Colors, opts.Mode, opts.Duration)

	runner := bench.NewRunner(session, notifier, opts)
	summary, runErr := runner.Run()

	// Restore the terminal before printing anything to stdout
	stop()
	session.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "rainbow-bench: %v\n", runErr)
		os.Exit(1)
	}

	printSummary(summary)
}

func printSummary(s bench.Summary) {
	elapsed := s.Elapsed
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Resolution:   %dx%d (%d cells)\n", s.Width, s.Height, s.Width*s.Height)
	fmt.Printf("  Total Frames: %d\n", s.Frames)
	fmt.Printf("  Total Time:   %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Avg FPS:      %.2f\n", float64(s.Frames)/elapsed.Seconds())
	fmt.Printf("  Throughput:   %.3f MB/s\n", float64(s.Bytes)/elapsed.Seconds()/1e6)
}
