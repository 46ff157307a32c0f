package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/telemetry"
)

type options struct {
	configPath string
	outputDir  string
	maxTicks   int
	seeds      int
	maxEvals   int
	population int
	target     float64
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Base config YAML file (empty = use defaults)")
	flag.StringVar(&opts.outputDir, "output", "", "Output directory for results (required)")
	flag.IntVar(&opts.maxTicks, "max-ticks", 36000, "Ticks per autopilot game")
	flag.IntVar(&opts.seeds, "seeds", 4, "Autopilot games per evaluation")
	flag.IntVar(&opts.maxEvals, "max-evals", 120, "Maximum number of evaluations")
	flag.IntVar(&opts.population, "population", 0, "CMA-ES population size (0 = 4 + 1.5 * dimensions)")
	flag.Float64Var(&opts.target, "target", 45, "Target seconds per level")
	flag.Parse()

	// Game logs are per event; keep only warnings while tuning
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "tune:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.outputDir == "" {
		return errors.New("-output is required")
	}
	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	knobs := DifficultyKnobs()
	seeds := make([]int64, opts.seeds)
	for i := range seeds {
		seeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(knobs, opts.maxTicks, seeds, base, opts.target)

	tlog, err := newTuneLog(filepath.Join(opts.outputDir, "tune_log.csv"), knobs)
	if err != nil {
		return err
	}
	defer tlog.Close()

	best := bestSoFar{fitness: 1e9}
	prog := progress{total: opts.maxEvals, start: time.Now()}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			fitness := evaluator.Evaluate(knobs.FromUnit(x))
			values := knobs.Clamp(knobs.FromUnit(x))
			summary := evaluator.LastSummary()

			best.offer(fitness, values)
			prog.done++
			if err := tlog.Row(prog.done, fitness, summary, values); err != nil {
				slog.Warn("tune_log_write_failed", "error", err)
			}
			fmt.Printf("Eval %d/%d: fitness=%.4f levels=%d mean=%.1fs deaths=%d (best=%.4f) | %s\n",
				prog.done, prog.total, fitness, summary.Levels, summary.MeanDuration, summary.Deaths, best.fitness, prog)
			return fitness
		},
	}

	population := opts.population
	if population == 0 {
		population = 4 + 3*len(knobs)/2
	}
	method := &optimize.CmaEsChol{InitStepSize: 0.3, Population: population}
	// Evaluations stay sequential; each one already runs its seeds in parallel
	settings := &optimize.Settings{FuncEvaluations: opts.maxEvals}

	fmt.Printf("Tuning %d knobs: population=%d max_evals=%d seeds=%d ticks=%d target=%.0fs\n",
		len(knobs), population, opts.maxEvals, opts.seeds, opts.maxTicks, opts.target)

	result, err := optimize.Minimize(problem, knobs.ToUnit(knobs.Read(base)), settings, method)
	if err != nil {
		slog.Warn("optimization_ended", "error", err)
	}
	if best.values == nil && result != nil {
		best.values = knobs.Clamp(knobs.FromUnit(result.X))
	}
	if best.values == nil {
		return errors.New("no evaluations completed")
	}

	fmt.Printf("\nDone after %d evaluations in %s, best fitness %.4f\n", prog.done, formatDuration(time.Since(prog.start)), best.fitness)
	for i, k := range knobs {
		fmt.Printf("  %-24s %10.4f  (default %g)\n", k.Path, best.values[i], k.Default)
	}

	tuned, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	knobs.Apply(tuned, best.values)
	out := filepath.Join(opts.outputDir, "best_config.yaml")
	if err := tuned.WriteYAML(out); err != nil {
		return fmt.Errorf("writing best config: %w", err)
	}
	fmt.Printf("Best config saved to %s\n", out)
	return nil
}

// bestSoFar remembers the lowest-fitness knob values seen.
type bestSoFar struct {
	fitness float64
	values  []float64
}

func (b *bestSoFar) offer(fitness float64, values []float64) {
	if fitness < b.fitness {
		b.fitness = fitness
		b.values = slices.Clone(values)
	}
}

// progress formats elapsed time and an ETA from the mean evaluation time.
type progress struct {
	done, total int
	start       time.Time
}

func (p progress) String() string {
	elapsed := time.Since(p.start)
	if p.done == 0 {
		return "elapsed " + formatDuration(elapsed)
	}
	eta := time.Duration(p.total-p.done) * (elapsed / time.Duration(p.done))
	return "elapsed " + formatDuration(elapsed) + ", ETA " + formatDuration(eta)
}

// tuneLog appends one CSV row per evaluation, flushed immediately so a
// killed run keeps its history.
type tuneLog struct {
	f *os.File
	w *csv.Writer
}

func newTuneLog(path string, knobs Knobs) (*tuneLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating tune log: %w", err)
	}
	l := &tuneLog{f: f, w: csv.NewWriter(f)}
	header := []string{"eval", "fitness", "levels", "mean_duration", "deaths"}
	for _, k := range knobs {
		header = append(header, k.Path)
	}
	if err := l.write(header); err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}

// Row records one evaluation.
func (l *tuneLog) Row(eval int, fitness float64, s telemetry.Summary, values []float64) error {
	row := []string{
		strconv.Itoa(eval),
		strconv.FormatFloat(fitness, 'f', 6, 64),
		strconv.Itoa(s.Levels),
		strconv.FormatFloat(s.MeanDuration, 'f', 2, 64),
		strconv.Itoa(s.Deaths),
	}
	for _, v := range values {
		row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
	}
	return l.write(row)
}

func (l *tuneLog) write(record []string) error {
	if err := l.w.Write(record); err != nil {
		return err
	}
	l.w.Flush()
	return l.w.Error()
}

// Close flushes and closes the file.
func (l *tuneLog) Close() error {
	l.w.Flush()
	return l.f.Close()
}

// formatDuration formats a duration as 1h02m03s, or 2m03s under an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h, m, s := d/time.Hour, d%time.Hour/time.Minute, d%time.Minute/time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
