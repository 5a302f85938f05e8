package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/google/gops/agent"
)

const (
	usage   = "mandelbrot FILE THREADS LIMIT PIXELS UPPER_LEFT LOWER_RIGHT"
	example = "example: mandelbrot pic.png 8 100 1500x750 -1.0,1.0 1.0,-1.0"
)

var (
	heartBeat                            time.Duration
	enableGops                           bool
	logFileName, settingsFile, verbosity string
)

func main() {
	parseFlags()

	if flag.NArg() != 6 {
		fmt.Fprintln(os.Stderr, usage)
		fmt.Fprintln(os.Stderr, example)
		os.Exit(1)
	}

	if err := misc.SetVerbosity(verbosity); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFileName != "" {
		logFile, err := os.Create(logFileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log file %s - %s\n", logFileName, err)
			os.Exit(1)
		}
		defer logFile.Close()
		misc.SetLogFile(logFile)
	}
	logger := misc.NewLogger("Main")

	if enableGops {
		misc.CheckError(agent.Listen(agent.Options{}), &logger, misc.Fatal, "Starting gops agent")
		defer agent.Close()
	}

	fileName := flag.Arg(0)
	settings := parseSettings(flag.Args(), &logger)
	settings.HeartBeat = heartBeat

	c, err := coordinator.NewCoordinator(settings)
	misc.CheckError(err, &logger, misc.Fatal, "Creating coordinator")

	pixels, err := c.Render()
	misc.CheckError(err, &logger, misc.Fatal, "Rendering")

	misc.CheckError(misc.WriteImage(fileName, pixels, settings.Bounds.Width, settings.Bounds.Height), &logger, misc.Fatal, "Saving image")
	logger.Infof("Saved image to %s", fileName)

	if settingsFile != "" {
		misc.CheckError(c.SaveRecord(settingsFile, fileName), &logger, misc.Fatal, "Saving settings")
	}
}

func parseFlags() {
	flag.DurationVar(&heartBeat, "heartBeat", 30*time.Second, "Interval between progress reports, 0 disables them")
	flag.BoolVar(&enableGops, "gops", false, "Start the gops diagnostics agent")
	flag.StringVar(&logFileName, "logFile", "", "File to mirror log output to")
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file to save the render settings and stats to")
	flag.StringVar(&verbosity, "verbosity", "normal", "Logging verbosity: minimal, normal or all")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s\n%s\n", usage, example)
		flag.PrintDefaults()
	}

	flag.Parse()
}

// parseSettings turns THREADS LIMIT PIXELS UPPER_LEFT LOWER_RIGHT into settings, exiting on the first malformed one
func parseSettings(args []string, logger *bslogger.Logger) mandelbrot.Settings {
	workers, err := strconv.Atoi(args[1])
	if err != nil || workers <= 0 {
		logger.Fatalf("expected THREADS: 8 - got %q", args[1])
	}
	limit, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil || limit == 0 {
		logger.Fatalf("expected LIMIT: 100 - got %q", args[2])
	}
	width, height, ok := misc.ParsePair[int](args[3], "x")
	if !ok || width <= 0 || height <= 0 {
		logger.Fatalf("expected PIXELS: 1500x750 - got %q", args[3])
	}
	upperLeft, ok := misc.ParseComplex(args[4])
	if !ok {
		logger.Fatalf("expected UPPER_LEFT: -1.0,1.25 - got %q", args[4])
	}
	lowerRight, ok := misc.ParseComplex(args[5])
	if !ok {
		logger.Fatalf("expected LOWER_RIGHT: 1.0,-1.0 - got %q", args[5])
	}

	return mandelbrot.Settings{
		Bounds:        mandelbrot.Bounds{Width: width, Height: height},
		LowerRight:    lowerRight,
		MaxIterations: uint(limit),
		UpperLeft:     upperLeft,
		Workers:       workers,
	}
}
