package game

import "log/slog"

// beginLevel starts level statistics for the current level.
func (g *Game) beginLevel() {
	if g.tracker != nil {
		g.tracker.Begin(g.level, g.waveSize, g.now)
	}
}

// finishLevel closes the current level's statistics and writes them out.
func (g *Game) finishLevel() {
	if g.tracker == nil {
		return
	}
	rec := g.tracker.Finish(g.now, g.score)
	slog.Info("level_complete",
		"level", rec.Level,
		"duration", rec.Duration,
		"shots", rec.ShotsFired,
		"accuracy", rec.Accuracy,
		"deaths", rec.ShipDeaths,
	)
	if err := g.output.WriteLevel(rec); err != nil {
		slog.Error("failed to write level", "error", err)
	}
}

// flushPerf writes a perf row every telemetry interval.
func (g *Game) flushPerf() {
	interval := int64(g.cfg.Telemetry.PerfInterval)
	if interval <= 0 || g.tick%interval != 0 {
		return
	}
	stats := g.perf.Stats()
	slog.Debug("perf", "stats", stats)
	if err := g.output.WritePerf(stats, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// Close finishes the level in progress so its statistics are recorded.
func (g *Game) Close() {
	g.finishLevel()
}
