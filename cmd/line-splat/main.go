package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/line-splat/line-splat/internal/imaging"
	"github.com/line-splat/line-splat/internal/splat"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes
const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

// usageError is a problem with the command line. It is reported before any
// image is read or written.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// config is the validated command line.
type config struct {
	input       string
	output      string
	opts        splat.Options
	seed        uint64
	jpegQuality int
	version     bool
	help        bool
}

func main() {
	// Configure logging to stderr (stdout is reserved for --help/--version)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n       See --help\n", err)
		return exitUsage
	}
	if cfg.help {
		printUsage(stdout)
		return exitOK
	}
	if cfg.version {
		fmt.Fprintf(stdout, "line-splat %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return exitOK
	}

	debug := os.Getenv("LINE_SPLAT_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("line-splat v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		cfg.opts.Logger = log.Default()
	}

	src, err := imaging.Decode(cfg.input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}
	if debug {
		log.Printf("decoded %s: %dx%d, style=%s seed=%d", cfg.input, src.Width, src.Height, cfg.opts.Style, cfg.seed)
	}

	out, stats := splat.Run(src, cfg.opts, splat.NewRand(cfg.seed))
	if debug {
		log.Printf("drew %d of %d lines (%d skipped)", stats.Drawn, stats.Requested, stats.Skipped)
	}

	if err := imaging.Encode(out, cfg.output, cfg.jpegQuality); err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}
	return exitOK
}

// parseArgs parses and validates the command line. Flags may appear before,
// between or after the INPUT and OUTPUT positional arguments.
func parseArgs(args []string) (*config, error) {
	fs := flag.NewFlagSet("line-splat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		lineCount     string
		style         string
		seed          uint64
		linesPerPoint int
		cfg           config
	)
	fs.StringVar(&lineCount, "line-count", strconv.Itoa(splat.DefaultLineCount), "")
	fs.StringVar(&lineCount, "l", strconv.Itoa(splat.DefaultLineCount), "")
	fs.StringVar(&style, "style", splat.StyleRandom.String(), "")
	fs.StringVar(&style, "s", splat.StyleRandom.String(), "")
	fs.Uint64Var(&seed, "seed", 0, "")
	fs.IntVar(&linesPerPoint, "lines-per-point", splat.DefaultLinesPerPoint, "")
	fs.IntVar(&cfg.jpegQuality, "jpeg-quality", imaging.DefaultJPEGQuality, "")
	fs.BoolVar(&cfg.opts.Jitter, "jitter", false, "")
	fs.BoolVar(&cfg.version, "version", false, "")
	fs.BoolVar(&cfg.version, "v", false, "")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				cfg.help = true
				return &cfg, nil
			}
			return nil, usagef("%v", err)
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if cfg.version {
		return &cfg, nil
	}

	if len(positional) != 2 {
		return nil, usagef("expected INPUT and OUTPUT paths, got %d argument(s)", len(positional))
	}
	cfg.input, cfg.output = positional[0], positional[1]

	if filepath.Clean(cfg.input) == filepath.Clean(cfg.output) {
		return nil, usagef("Input and output file paths cannot be the same")
	}

	n, err := strconv.ParseUint(lineCount, 10, 64)
	if err != nil || n == 0 {
		return nil, usagef("Line count must be a positive integer.")
	}

	s, err := splat.ParseStyle(style)
	if err != nil {
		return nil, usagef("%v", err)
	}

	if linesPerPoint < 1 {
		return nil, usagef("Lines per point must be a positive integer.")
	}
	if cfg.jpegQuality < 1 || cfg.jpegQuality > 100 {
		return nil, usagef("JPEG quality must be between 1 and 100.")
	}

	if err := imaging.CheckOutputPath(cfg.output); err != nil {
		return nil, usagef("Unsupported output file format. Must have a .png or .jpg extension")
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg.seed = seed
	cfg.opts.Style = s
	cfg.opts.LineCount = n
	cfg.opts.LinesPerPoint = linesPerPoint
	return &cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "line-splat - stylize images by drawing random lines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: line-splat [options] INPUT OUTPUT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supports JPEG and PNG output; INPUT may also be GIF, WebP, BMP or TIFF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --line-count, -l N      Number of lines to draw (default 1000000)")
	fmt.Fprintln(w, "  --style, -s NAME        random, steered, energy, or edgeweb (default random)")
	fmt.Fprintln(w, "  --seed N                Random seed; 0 seeds from the clock (default 0)")
	fmt.Fprintln(w, "  --lines-per-point N     Partners kept per edge point in edgeweb (default 1)")
	fmt.Fprintln(w, "  --jitter                Randomly shift line colors (random and steered)")
	fmt.Fprintln(w, "  --jpeg-quality N        JPEG output quality 1-100 (default 95)")
	fmt.Fprintln(w, "  --version, -v           Print version information")
	fmt.Fprintln(w, "  --help, -h              Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  LINE_SPLAT_LOG_LEVEL=debug    Enable debug logging")
}
