package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML shape of an optional run-config file: the same
// knobs runCmd accepts as flags, for callers who'd rather check a config
// into version control than pass flags on every invocation. Flags
// explicitly set on the command line always win over a loaded file.
type FileConfig struct {
	Days        int   `yaml:"days"`
	HoursPerDay int   `yaml:"hours_per_day"`
	Seed        int64 `yaml:"seed"`
	HasSeed     bool  `yaml:"-"`
}

// loadFileConfig reads and parses path as a FileConfig. HasSeed is
// derived from the presence of a "seed" key rather than the YAML tag
// (which is ignored via "-"), since yaml.v3 doesn't report which int
// fields were present vs. defaulted to zero.
func loadFileConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return FileConfig{}, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, err
	}
	_, cfg.HasSeed = raw["seed"]

	return cfg, nil
}
