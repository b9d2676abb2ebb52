package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "skill-gomoku/config.json"

type fileOverlay struct {
	Settings *GameSettings `json:"settings,omitempty"`
	Config   *Config       `json:"config,omitempty"`
}

// loadConfigOverlay merges an optional JSON file from the XDG config
// directory over the compiled-in defaults. A missing file is fine; a
// broken one is logged and skipped.
func loadConfigOverlay(defaults GameSettings) GameSettings {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return defaults
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return defaults
	}
	settings := defaults.Clone()
	config := GetConfig()
	overlay := fileOverlay{Settings: &settings, Config: &config}
	if err := json.Unmarshal(data, &overlay); err != nil {
		log.Printf("[backend] ignoring invalid config file %s: %v", absPath, err)
		return defaults
	}
	configStore.Update(config)
	return settings
}

func saveConfigOverlay(settings GameSettings) error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	config := GetConfig()
	data, err := json.MarshalIndent(fileOverlay{Settings: &settings, Config: &config}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(absPath, data, 0o644)
}
