package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds per-project defaults for the generate command. Flags always
// win over file values.
type Config struct {
	Profile                 string `yaml:"profile"`
	Instance                string `yaml:"instance"`
	TemplateFile            string `yaml:"template_file"`
	MaxResourcesPerTemplate int    `yaml:"max_resources_per_template"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func CreateDefault(path string) error {
	defaultConfig := Config{
		TemplateFile:            "template.yaml",
		MaxResourcesPerTemplate: 200,
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
