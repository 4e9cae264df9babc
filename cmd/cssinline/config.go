package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config is the content of a cssinline TOML configuration file.
type config struct {
	RemoveStyleTags bool   `toml:"remove_style_tags"`
	Trace           string `toml:"trace"`
}

// loadConfig reads the configuration file at path. An empty path yields the
// zero configuration.
func loadConfig(path string) (config, error) {
	var c config
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
