package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/game"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Config    arena.Config
	Matches   int
	Simulated time.Duration
	Seed      uint64
	Parallel  int
}

// MatchResult is the outcome of one seed: the first run and its replay.
type MatchResult struct {
	Seed         uint64
	Ticks        uint64
	Frames       int
	Digest       uint64
	ReplayDigest uint64
}

func (r MatchResult) Reproduced() bool {
	return r.Digest == r.ReplayDigest
}

// Run plays opts.Matches seeds concurrently and collects a report.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (*Report, error) {
	if opts.Matches <= 0 {
		return nil, fmt.Errorf("matches must be positive, got %d", opts.Matches)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Matches:   opts.Matches,
		Simulated: opts.Simulated,
		TickRate:  opts.Config.TickRate,
	}
	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}

	for i := range opts.Matches {
		seed := opts.Seed + uint64(i)
		g.Go(func() error {
			result, frameTimes, err := playSeed(ctx, opts, seed)
			if err != nil {
				return err
			}

			if !result.Reproduced() {
				logger.Warn("replay diverged",
					zap.Uint64("seed", seed),
					zap.String("digest", fmt.Sprintf("%016x", result.Digest)),
					zap.String("replay", fmt.Sprintf("%016x", result.ReplayDigest)),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			report.add(result, frameTimes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.TotalTime = time.Since(start)
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report, nil
}

// playSeed runs a match for the simulated duration, then replays the exact
// frame sequence and input script on a fresh match.
func playSeed(ctx context.Context, opts Options, seed uint64) (MatchResult, []time.Duration, error) {
	frames := jitteredFrames(seed, opts.Simulated)

	digest, ticks, times, err := play(ctx, &opts.Config, seed, frames)
	if err != nil {
		return MatchResult{}, nil, err
	}
	replay, _, _, err := play(ctx, &opts.Config, seed, frames)
	if err != nil {
		return MatchResult{}, nil, err
	}

	return MatchResult{
		Seed:         seed,
		Ticks:        ticks,
		Frames:       len(frames),
		Digest:       digest,
		ReplayDigest: replay,
	}, times, nil
}

func play(ctx context.Context, cfg *arena.Config, seed uint64, frames []time.Duration) (uint64, uint64, []time.Duration, error) {
	input := game.NewRandomInput(seed)
	m, err := game.NewMatch(cfg, input, nil)
	if err != nil {
		return 0, 0, nil, err
	}

	times := make([]time.Duration, 0, len(frames))
	for i, frame := range frames {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, nil, err
			}
		}

		input.Shuffle()
		begin := time.Now()
		m.Advance(frame)
		times = append(times, time.Since(begin))
	}

	return m.Digest(), m.Tick(), times, nil
}

// jitteredFrames produces frame durations between 1ms and 40ms summing to
// roughly total, seeded so every run of a seed sees the same sequence.
func jitteredFrames(seed uint64, total time.Duration) []time.Duration {
	rng := rand.New(rand.NewPCG(seed, ^seed))

	var frames []time.Duration
	var elapsed time.Duration
	for elapsed < total {
		frame := time.Millisecond + time.Duration(rng.Int64N(int64(39*time.Millisecond)))
		frames = append(frames, frame)
		elapsed += frame
	}
	return frames
}
