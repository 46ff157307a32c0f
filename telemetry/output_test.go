package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/roids/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteLevel(LevelRecord{}); err != nil {
		t.Errorf("nil manager WriteLevel: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil manager Close: %v", err)
	}
}

func TestOutputManagerWritesLevels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []LevelRecord{
		{Level: 1, WaveSize: 4, Duration: 31.5, Score: 16},
		{Level: 2, WaveSize: 8, Duration: 48.25, Score: 44},
	}
	for _, r := range want {
		if err := om.WriteLevel(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WritePerf(PerfStats{TicksPerSecond: 1000}, 600); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "levels.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var got []LevelRecord
	if err := gocsv.UnmarshalFile(f, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].WaveSize != 8 || got[1].Duration != 48.25 {
		t.Errorf("levels.csv = %+v", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 2 {
		t.Errorf("perf.csv has %d lines, want header + 1", lines)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}
}
