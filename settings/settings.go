package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/immersion/game"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured about block interactions.
type Settings struct {
	Interaction struct {
		// Reach is the maximum distance from the eyes of a player that blocks may be clicked at.
		Reach float32
		// ScanRadius is the radius around a player that enchanting tables are looked for in.
		ScanRadius int
	}
	Features struct {
		CraftingDrag  bool
		EnchantingUI  bool
		AnvilText     bool
		FurnaceClicks bool
		BrewingClicks bool
		BeaconScroll  bool
	}
	Server struct {
		// QueueSize is the amount of messages that may be waiting to be handled.
		QueueSize int
		// MaxMessagesPerSecond is the amount of messages a player may send each second.
		MaxMessagesPerSecond int
		LogLevel             string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Interaction.Reach = game.CreativeReach + 1
	settings.Interaction.ScanRadius = 8

	settings.Features.CraftingDrag = true
	settings.Features.EnchantingUI = true
	settings.Features.AnvilText = true
	settings.Features.FurnaceClicks = true
	settings.Features.BrewingClicks = true
	settings.Features.BeaconScroll = true

	settings.Server.QueueSize = 256
	settings.Server.MaxMessagesPerSecond = 40
	settings.Server.LogLevel = "info"
	return settings
}

// Level parses the log level of the settings. Info is returned for unknown levels.
func (s Settings) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(s.Server.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return settings, nil
}
