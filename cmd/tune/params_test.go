package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/telemetry"
)

func TestUnitRoundtrip(t *testing.T) {
	ks := DifficultyKnobs()
	raw := ks.Defaults()
	back := ks.FromUnit(ks.ToUnit(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", ks[i].Path, raw[i], back[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	ks := DifficultyKnobs()
	got := ks.Read(config.Default())
	for i, k := range ks {
		if got[i] != k.Default {
			t.Errorf("%s: config has %v, knob default %v", k.Path, got[i], k.Default)
		}
	}
}

func TestApplyReadRoundtrip(t *testing.T) {
	ks := DifficultyKnobs()
	cfg := config.Default()
	want := []float64{20, 200, 180, 2, 120, 500, 30}
	ks.Apply(cfg, want)
	got := ks.Read(cfg)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: got %v, want %v", ks[i].Path, got[i], want[i])
		}
	}
}

func TestApplyClampsAndKeepsRangesOrdered(t *testing.T) {
	ks := DifficultyKnobs()
	cfg := config.Default()
	ks.Apply(cfg, []float64{500, -5, 0, 99, 0, 0, 0})

	if cfg.Asteroid.SpeedMin != 120 {
		t.Errorf("SpeedMin = %v, want clamped 120", cfg.Asteroid.SpeedMin)
	}
	if cfg.Asteroid.SpeedMax < cfg.Asteroid.SpeedMin {
		t.Errorf("SpeedMax %v below SpeedMin %v", cfg.Asteroid.SpeedMax, cfg.Asteroid.SpeedMin)
	}
	if cfg.Turret.Dwell != 3 {
		t.Errorf("Dwell = %v, want clamped 3", cfg.Turret.Dwell)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("clamped config invalid: %v", err)
	}
}

func TestComputeFitness(t *testing.T) {
	fe := NewFitnessEvaluator(DifficultyKnobs(), 0, []int64{1}, config.Default(), 40)

	onTarget := fe.computeFitness([]telemetry.LevelRecord{{Duration: 40}, {Duration: 40}}, 80)
	if onTarget != 0 {
		t.Errorf("on-target fitness = %v, want 0", onTarget)
	}
	slow := fe.computeFitness([]telemetry.LevelRecord{{Duration: 80}}, 80)
	if slow <= onTarget {
		t.Errorf("slow levels should score worse: %v", slow)
	}
	deaths := fe.computeFitness([]telemetry.LevelRecord{{Duration: 40, ShipDeaths: 2}}, 60)
	if deaths != fe.deathPenalty*2 {
		t.Errorf("death fitness = %v, want %v", deaths, fe.deathPenalty*2)
	}
	none := fe.computeFitness(nil, 120)
	if math.Abs(none-2.0*2.0) > 1e-9 {
		t.Errorf("no-level fitness = %v, want 4", none)
	}
}
