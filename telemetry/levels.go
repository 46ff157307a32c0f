package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// LevelRecord is one row of levels.csv: gameplay totals for a finished level.
type LevelRecord struct {
	Level              int     `csv:"level"`
	WaveSize           int     `csv:"wave_size"`
	StartTime          float64 `csv:"start_time"`
	EndTime            float64 `csv:"end_time"`
	Duration           float64 `csv:"duration"`
	ShotsFired         int     `csv:"shots_fired"`
	ChargedShots       int     `csv:"charged_shots"`
	Hits               int     `csv:"hits"`
	AsteroidsDestroyed int     `csv:"asteroids_destroyed"`
	TurretsDestroyed   int     `csv:"turrets_destroyed"`
	ShipHits           int     `csv:"ship_hits"`
	ShipDeaths         int     `csv:"ship_deaths"`
	Score              int     `csv:"score"`
	Accuracy           float64 `csv:"accuracy"`
}

// LevelTracker accumulates gameplay counters for the level in progress.
type LevelTracker struct {
	current   LevelRecord
	completed []LevelRecord
}

// NewLevelTracker creates an empty tracker.
func NewLevelTracker() *LevelTracker {
	return &LevelTracker{}
}

// Begin starts counting a new level.
func (t *LevelTracker) Begin(level, waveSize int, now float64) {
	t.current = LevelRecord{Level: level, WaveSize: waveSize, StartTime: now}
}

// RecordShot counts a fired bullet.
func (t *LevelTracker) RecordShot(charged bool) {
	t.current.ShotsFired++
	if charged {
		t.current.ChargedShots++
	}
}

// RecordHit counts a player bullet that struck a target.
func (t *LevelTracker) RecordHit() { t.current.Hits++ }

// RecordAsteroid counts a destroyed asteroid.
func (t *LevelTracker) RecordAsteroid() { t.current.AsteroidsDestroyed++ }

// RecordTurret counts a destroyed turret.
func (t *LevelTracker) RecordTurret() { t.current.TurretsDestroyed++ }

// RecordShipHit counts damage taken by the ship.
func (t *LevelTracker) RecordShipHit() { t.current.ShipHits++ }

// RecordShipDeath counts a destroyed ship.
func (t *LevelTracker) RecordShipDeath() { t.current.ShipDeaths++ }

// Finish closes the current level and returns its record.
func (t *LevelTracker) Finish(now float64, score int) LevelRecord {
	r := t.current
	r.EndTime = now
	r.Duration = now - r.StartTime
	r.Score = score
	if r.ShotsFired > 0 {
		r.Accuracy = float64(r.Hits) / float64(r.ShotsFired)
	}
	t.completed = append(t.completed, r)
	return r
}

// Current returns the counters of the level in progress.
func (t *LevelTracker) Current() LevelRecord { return t.current }

// Completed returns every finished level in order.
func (t *LevelTracker) Completed() []LevelRecord { return t.completed }

// Summary aggregates a session's finished levels.
type Summary struct {
	Levels       int
	MeanDuration float64
	StdDuration  float64
	MeanAccuracy float64
	Deaths       int
	FinalScore   int
}

// Summarize computes session statistics over records.
func Summarize(records []LevelRecord) Summary {
	s := Summary{Levels: len(records)}
	if len(records) == 0 {
		return s
	}
	durations := make([]float64, len(records))
	accuracy := make([]float64, len(records))
	for i, r := range records {
		durations[i] = r.Duration
		accuracy[i] = r.Accuracy
		s.Deaths += r.ShipDeaths
	}
	s.FinalScore = records[len(records)-1].Score
	if len(records) > 1 {
		s.MeanDuration, s.StdDuration = stat.MeanStdDev(durations, nil)
	} else {
		s.MeanDuration = durations[0]
	}
	s.MeanAccuracy = stat.Mean(accuracy, nil)
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("levels", s.Levels),
		slog.Float64("mean_duration", s.MeanDuration),
		slog.Float64("std_duration", s.StdDuration),
		slog.Float64("mean_accuracy", s.MeanAccuracy),
		slog.Int("deaths", s.Deaths),
		slog.Int("final_score", s.FinalScore),
	)
}
