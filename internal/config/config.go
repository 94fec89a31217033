package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Audio         AudioConfig         `yaml:"audio"`
	Paths         PathsConfig         `yaml:"paths"`
}

// TranscriptionConfig specifies which backend to use and its settings.
type TranscriptionConfig struct {
	Backend string             `yaml:"backend"`
	Local   LocalWhisperConfig `yaml:"local"`
	OpenAI  OpenAIConfig       `yaml:"openai"`
}

// LocalWhisperConfig contains settings for local whisper.cpp transcription.
type LocalWhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Threads    int    `yaml:"threads"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
}

// OpenAIConfig contains settings for OpenAI Whisper API transcription.
type OpenAIConfig struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	Prompt   string `yaml:"prompt"`
}

// AudioConfig contains audio capture settings.
type AudioConfig struct {
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
	Device     string `yaml:"device"`
}

// PathsConfig contains file system paths.
type PathsConfig struct {
	TempDir string `yaml:"temp_dir"`
}

// Load reads configuration from ~/.config/dictate/config.yaml.
// If the file doesn't exist, returns a Config with empty values.
// Callers should use ApplyDefaults() after Load() to set defaults.
func Load() (*Config, error) {
	configPath := filepath.Join(os.Getenv("HOME"), ".config", "dictate", "config.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// ExpandPaths replaces ~ with $HOME in all path fields.
func (c *Config) ExpandPaths() {
	home := os.Getenv("HOME")

	c.Transcription.Local.ModelPath = expandPath(c.Transcription.Local.ModelPath, home)
	c.Transcription.Local.BinaryPath = expandPath(c.Transcription.Local.BinaryPath, home)
	c.Paths.TempDir = expandPath(c.Paths.TempDir, home)
}

func expandPath(path, home string) string {
	if path == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ApplyDefaults sets default values for empty configuration fields.
func (c *Config) ApplyDefaults() {
	if c.Paths.TempDir == "" {
		c.Paths.TempDir = filepath.Join(os.Getenv("HOME"), ".cache", "dictate")
	}

	if c.Transcription.Backend == "" {
		c.Transcription.Backend = "local"
	}
	if c.Transcription.Local.Threads == 0 {
		c.Transcription.Local.Threads = 4
	}
	if c.Transcription.Local.Language == "" {
		c.Transcription.Local.Language = "en"
	}
	if c.Transcription.OpenAI.Model == "" {
		c.Transcription.OpenAI.Model = "whisper-1"
	}

	// 16kHz mono is whisper's native input format.
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Audio.Device == "" {
		c.Audio.Device = "default"
	}
}
