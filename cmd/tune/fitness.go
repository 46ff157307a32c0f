package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/game"
	"github.com/pthm-cable/roids/telemetry"
)

// FitnessEvaluator runs headless autopilot games and scores how close their
// level pace is to the target.
type FitnessEvaluator struct {
	knobs          Knobs
	maxTicks       int
	seeds          []int64
	baseConfig     *config.Config
	targetDuration float64 // Seconds per level the tuning aims for
	deathPenalty   float64 // Fitness added per ship death per minute

	mu          sync.Mutex
	lastSummary telemetry.Summary
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(knobs Knobs, maxTicks int, seeds []int64, baseCfg *config.Config, target float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		knobs:          knobs,
		maxTicks:       maxTicks,
		seeds:          seeds,
		baseConfig:     baseCfg,
		targetDuration: target,
		deathPenalty:   0.25,
	}
}

// LastSummary returns the level summary from the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() telemetry.Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// runResult holds the results from a single game.
type runResult struct {
	levels  []telemetry.LevelRecord
	seconds float64
}

// Evaluate scores knob values, lower is better. Invalid configs score +Inf.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.knobs.Apply(cfg, x)
	if err := cfg.Validate(); err != nil {
		return math.Inf(1)
	}
	cfg.ComputeDerived()

	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Go(func() { results[i] = fe.runGame(cfg, seed) })
	}
	wg.Wait()

	var all []telemetry.LevelRecord
	var seconds float64
	for _, r := range results {
		all = append(all, r.levels...)
		seconds += r.seconds
	}
	summary := telemetry.Summarize(all)

	fe.mu.Lock()
	fe.lastSummary = summary
	fe.mu.Unlock()

	return fe.computeFitness(all, seconds)
}

// computeFitness scores completed levels against the target duration.
// Runs that never finish a level score as if each level took the whole run.
func (fe *FitnessEvaluator) computeFitness(levels []telemetry.LevelRecord, seconds float64) float64 {
	durations := make([]float64, 0, len(levels))
	deaths := 0
	for _, l := range levels {
		durations = append(durations, l.Duration)
		deaths += l.ShipDeaths
	}
	if len(durations) == 0 {
		durations = append(durations, seconds/float64(max(len(fe.seeds), 1)))
	}
	mean := stat.Mean(durations, nil)
	miss := (mean - fe.targetDuration) / fe.targetDuration

	fitness := miss * miss
	if seconds > 0 {
		fitness += fe.deathPenalty * float64(deaths) / (seconds / 60)
	}
	return fitness
}

// runGame plays one autopilot game and returns its finished levels.
func (fe *FitnessEvaluator) runGame(cfg *config.Config, seed int64) runResult {
	tracker := telemetry.NewLevelTracker()
	g := game.New(cfg, seed, game.Options{Tracker: tracker})
	pilot := game.NewAutopilot()
	for int(g.Tick()) < fe.maxTicks {
		g.Update(pilot.Next(g))
	}
	return runResult{levels: tracker.Completed(), seconds: g.Now()}
}

// copyConfig returns a copy of the base config. Slices are shared; they are
// not modified by tuning.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	c := *fe.baseConfig
	return &c
}
