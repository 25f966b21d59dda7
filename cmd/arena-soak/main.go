// Command arena-soak runs many headless matches with scripted input and
// jittered frame times, replays each one, and reports whether every replay
// reproduced the same final state.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML arena configuration.")
	matches := flag.Int("matches", 64, "Number of matches to run.")
	simulated := flag.Duration("simulated", 2*time.Minute, "Simulated time per match.")
	seed := flag.Uint64("seed", 1, "Seed for the first match; match i uses seed+i.")
	parallel := flag.Int("parallel", runtime.GOMAXPROCS(0), "Matches run concurrently.")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := logging.Must(*logLevel, false)
	defer logger.Sync()

	cfg := arena.Default()
	if *configPath != "" {
		loaded, err := arena.LoadFile(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", zap.Error(err))
		}
		cfg = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := Options{
		Config:    cfg,
		Matches:   *matches,
		Simulated: *simulated,
		Seed:      *seed,
		Parallel:  *parallel,
	}

	logger.Info("starting soak", zap.Int("matches", opts.Matches), zap.Duration("simulated", opts.Simulated))

	report, err := Run(ctx, opts, logger)
	if err != nil {
		logger.Fatal("soak failed", zap.Error(err))
	}
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")

	if report.Mismatches > 0 {
		os.Exit(1)
	}
}
