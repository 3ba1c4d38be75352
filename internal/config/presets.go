package config

var Presets = map[string]*Config{
	"baseline": {
		Population: 1000, InitialInfectious: 1, InitialRecovered: 0,
		TransmissionRate: 0.3, RecoveryRate: 0.1, Timesteps: 160,
	},
	"slow-burn": {
		Population: 1000, InitialInfectious: 1, InitialRecovered: 0,
		TransmissionRate: 0.15, RecoveryRate: 0.1, Timesteps: 300,
	},
	"fast-spread": {
		Population: 1000, InitialInfectious: 5, InitialRecovered: 0,
		TransmissionRate: 0.5, RecoveryRate: 0.1, Timesteps: 120,
	},
	"distancing": {
		Population: 1000, InitialInfectious: 1, InitialRecovered: 0,
		TransmissionRate: 0.3, RecoveryRate: 0.1, Timesteps: 160,
		Intervention: InterventionConfig{Enabled: true, Time: 40, TransmissionAfter: 0.15},
	},
	"lockdown": {
		Population: 1000, InitialInfectious: 1, InitialRecovered: 0,
		TransmissionRate: 0.3, RecoveryRate: 0.1, Timesteps: 160,
		Intervention: InterventionConfig{Enabled: true, Time: 30, TransmissionAfter: 0.05},
	},
	"late-response": {
		Population: 1000, InitialInfectious: 1, InitialRecovered: 0,
		TransmissionRate: 0.4, RecoveryRate: 0.1, Timesteps: 200,
		Intervention: InterventionConfig{Enabled: true, Time: 80, TransmissionAfter: 0.2},
	},
	"small-town": {
		Population: 5000, InitialInfectious: 10, InitialRecovered: 0,
		TransmissionRate: 0.35, RecoveryRate: 0.1, Timesteps: 160,
	},
	"partial-immunity": {
		Population: 1000, InitialInfectious: 1, InitialRecovered: 100,
		TransmissionRate: 0.3, RecoveryRate: 0.1, Timesteps: 160,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
