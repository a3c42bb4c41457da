package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type Config struct {
	// ProfileName is the display name used for outgoing self mentions.
	ProfileName string `json:"profile_name"`

	// Theme is "auto", "light" or "dark". Auto probes the terminal.
	Theme string `json:"theme"`

	ContactsPath   string `json:"contacts_path"`
	TranscriptPath string `json:"transcript_path"`
	IdentityPath   string `json:"identity_path"`
}

func Default() Config {
	return Config{
		ProfileName: "anonymous",
		Theme:       "auto",
	}
}

var (
	config     = Config{}
	Dir        string
	ConfigFile string
)

func Load() error {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}

	Dir = filepath.Join(userConfigDir, "ripple")
	err = os.MkdirAll(Dir, 0o755)
	if err != nil {
		return err
	}

	ConfigFile = filepath.Join(Dir, "config.json")
	contents, err := os.ReadFile(ConfigFile)
	if errors.Is(err, os.ErrNotExist) {
		config = Default()
		fillDefaults(&config)
		return write()
	}
	if err != nil {
		return err
	}

	err = json.Unmarshal(contents, &config)
	if err != nil {
		return err
	}
	fillDefaults(&config)

	return nil
}

func fillDefaults(c *Config) {
	if c.ContactsPath == "" {
		c.ContactsPath = filepath.Join(Dir, "contacts.db")
	}
	if c.TranscriptPath == "" {
		c.TranscriptPath = filepath.Join(Dir, "inbox.transcript")
	}
	if c.IdentityPath == "" {
		c.IdentityPath = filepath.Join(Dir, "identity.key")
	}
}

func write() error {
	b, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigFile, b, 0o644)
}

func Read() Config {
	return config
}

func Use(f func(config *Config)) error {
	f(&config)
	return write()
}
