package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Population != 1000 {
		t.Errorf("expected population 1000, got %g", cfg.Population)
	}
	if cfg.TransmissionRate != 0.3 {
		t.Errorf("expected transmission rate 0.3, got %g", cfg.TransmissionRate)
	}
	if cfg.Timesteps != 160 {
		t.Errorf("expected 160 timesteps, got %d", cfg.Timesteps)
	}
	if cfg.Intervention.Enabled {
		t.Error("intervention should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episim.yaml")

	cfg := DefaultConfig()
	cfg.Population = 5000
	cfg.Intervention.Enabled = true
	cfg.Intervention.Time = 25
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Population != 5000 {
		t.Errorf("expected population 5000, got %g", loaded.Population)
	}
	if !loaded.Intervention.Enabled || loaded.Intervention.Time != 25 {
		t.Errorf("intervention not round-tripped: %+v", loaded.Intervention)
	}
	if loaded.TransmissionRate != cfg.TransmissionRate {
		t.Errorf("expected transmission rate %g, got %g", cfg.TransmissionRate, loaded.TransmissionRate)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPartial(t *testing.T) {
	// Omitted keys keep their defaults.
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("population: 2000\ntimesteps: 100\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Population != 2000 {
		t.Errorf("expected population 2000, got %g", loaded.Population)
	}
	if loaded.RecoveryRate != DefaultRecoveryRate {
		t.Errorf("expected default recovery rate, got %g", loaded.RecoveryRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"population too small", func(c *Config) { c.Population = 50 }, false},
		{"population too large", func(c *Config) { c.Population = 20000 }, false},
		{"no infectious", func(c *Config) { c.InitialInfectious = 0 }, false},
		{"too many infectious", func(c *Config) { c.InitialInfectious = 500 }, false},
		{"negative recovered", func(c *Config) { c.InitialRecovered = -1 }, false},
		{"transmission above one", func(c *Config) { c.TransmissionRate = 1.5 }, false},
		{"negative recovery", func(c *Config) { c.RecoveryRate = -0.1 }, false},
		{"too few timesteps", func(c *Config) { c.Timesteps = 10 }, false},
		{"too many timesteps", func(c *Config) { c.Timesteps = 500 }, false},
		{"intervention off ignores time", func(c *Config) { c.Intervention.Time = 0 }, true},
		{"intervention at zero", func(c *Config) {
			c.Intervention.Enabled = true
			c.Intervention.Time = 0
		}, false},
		{"intervention past end", func(c *Config) {
			c.Intervention.Enabled = true
			c.Intervention.Time = 160
		}, false},
		{"intervention at last step", func(c *Config) {
			c.Intervention.Enabled = true
			c.Intervention.Time = 159
		}, true},
		{"after rate above one", func(c *Config) {
			c.Intervention.Enabled = true
			c.Intervention.TransmissionAfter = 1.2
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lockdown")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Intervention.Enabled {
		t.Error("lockdown should enable intervention")
	}
	if cfg.Intervention.TransmissionAfter != 0.05 {
		t.Errorf("expected after rate 0.05, got %g", cfg.Intervention.TransmissionAfter)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestPresetsValid(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestParameters(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Parameters()
	if p.Population != cfg.Population || p.Timesteps != cfg.Timesteps {
		t.Errorf("parameters do not match config: %+v", p)
	}
	if p.TransmissionRate != cfg.TransmissionRate {
		t.Errorf("expected transmission rate %g, got %g", cfg.TransmissionRate, p.TransmissionRate)
	}
}

func TestInterventionParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Intervention.Enabled = true
	ip := cfg.InterventionParameters()
	if ip.TransmissionBefore != cfg.TransmissionRate {
		t.Errorf("expected before rate %g, got %g", cfg.TransmissionRate, ip.TransmissionBefore)
	}
	if ip.TransmissionAfter != cfg.Intervention.TransmissionAfter {
		t.Errorf("expected after rate %g, got %g", cfg.Intervention.TransmissionAfter, ip.TransmissionAfter)
	}
	if ip.InterventionTime != cfg.Intervention.Time {
		t.Errorf("expected intervention time %d, got %d", cfg.Intervention.Time, ip.InterventionTime)
	}
}
