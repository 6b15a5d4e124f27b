package corpus

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// RunConfig supplies defaults for a run from a YAML file. Flags given
// explicitly on the command line take precedence over file values.
type RunConfig struct {
	Current    string   `yaml:"current"`
	Historical string   `yaml:"historical"`
	OutDir     string   `yaml:"outdir"`
	Start      string   `yaml:"start"`
	End        string   `yaml:"end"`
	Documents  []string `yaml:"documents"`
}

// LoadRunConfig parses a YAML run-configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
