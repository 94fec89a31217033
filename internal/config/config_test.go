package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	originalHome := os.Getenv("HOME")
	defer os.Setenv("HOME", originalHome)

	tempDir := t.TempDir()
	os.Setenv("HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with missing file should not error, got: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	originalHome := os.Getenv("HOME")
	defer os.Setenv("HOME", originalHome)

	tempDir := t.TempDir()
	os.Setenv("HOME", tempDir)

	configDir := filepath.Join(tempDir, ".config", "dictate")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	invalidYAML := "this is not: valid: yaml: content:"
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write invalid YAML: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should return error for invalid YAML")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	originalHome := os.Getenv("HOME")
	defer os.Setenv("HOME", originalHome)

	tempDir := t.TempDir()
	os.Setenv("HOME", tempDir)

	configDir := filepath.Join(tempDir, ".config", "dictate")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	validYAML := `
transcription:
  backend: local
  local:
    model_path: ~/whisper.cpp/models/model.bin
    binary_path: ~/whisper.cpp/whisper-cli
    threads: 8
    language: es
    prompt: Transcribe with proper punctuation.
audio:
  sample_rate: 16000
  channels: 1
  device: usb
paths:
  temp_dir: ~/dictate/temp
`
	if err := os.WriteFile(configPath, []byte(validYAML), 0644); err != nil {
		t.Fatalf("Failed to write valid YAML: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed with valid YAML: %v", err)
	}

	if cfg.Transcription.Backend != "local" {
		t.Errorf("Expected backend 'local', got '%s'", cfg.Transcription.Backend)
	}
	if cfg.Transcription.Local.Threads != 8 {
		t.Errorf("Expected threads 8, got %d", cfg.Transcription.Local.Threads)
	}
	if cfg.Transcription.Local.Prompt != "Transcribe with proper punctuation." {
		t.Errorf("Unexpected prompt: %s", cfg.Transcription.Local.Prompt)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("Expected sample rate 16000, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Device != "usb" {
		t.Errorf("Expected device 'usb', got '%s'", cfg.Audio.Device)
	}
}

func TestExpandPaths(t *testing.T) {
	originalHome := os.Getenv("HOME")
	defer os.Setenv("HOME", originalHome)

	os.Setenv("HOME", "/home/testuser")

	cfg := &Config{
		Transcription: TranscriptionConfig{
			Local: LocalWhisperConfig{
				ModelPath:  "~/models/model.bin",
				BinaryPath: "~/bin/whisper",
			},
		},
		Paths: PathsConfig{
			TempDir: "~/temp",
		},
	}

	cfg.ExpandPaths()

	if cfg.Transcription.Local.ModelPath != "/home/testuser/models/model.bin" {
		t.Errorf("ModelPath: expected /home/testuser/models/model.bin, got %s", cfg.Transcription.Local.ModelPath)
	}
	if cfg.Transcription.Local.BinaryPath != "/home/testuser/bin/whisper" {
		t.Errorf("BinaryPath: expected /home/testuser/bin/whisper, got %s", cfg.Transcription.Local.BinaryPath)
	}
	if cfg.Paths.TempDir != "/home/testuser/temp" {
		t.Errorf("TempDir: expected /home/testuser/temp, got %s", cfg.Paths.TempDir)
	}
}

func TestApplyDefaults(t *testing.T) {
	originalHome := os.Getenv("HOME")
	defer os.Setenv("HOME", originalHome)

	os.Setenv("HOME", "/home/testuser")

	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Paths.TempDir != "/home/testuser/.cache/dictate" {
		t.Errorf("TempDir: expected /home/testuser/.cache/dictate, got %s", cfg.Paths.TempDir)
	}
	if cfg.Transcription.Backend != "local" {
		t.Errorf("Backend: expected local, got %s", cfg.Transcription.Backend)
	}
	if cfg.Transcription.Local.Threads != 4 {
		t.Errorf("Threads: expected 4, got %d", cfg.Transcription.Local.Threads)
	}
	if cfg.Transcription.Local.Language != "en" {
		t.Errorf("Language: expected en, got %s", cfg.Transcription.Local.Language)
	}
	if cfg.Transcription.OpenAI.Model != "whisper-1" {
		t.Errorf("OpenAI model: expected whisper-1, got %s", cfg.Transcription.OpenAI.Model)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("SampleRate: expected 16000, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels != 1 {
		t.Errorf("Channels: expected 1, got %d", cfg.Audio.Channels)
	}
	if cfg.Audio.Device != "default" {
		t.Errorf("Device: expected default, got %s", cfg.Audio.Device)
	}
}

func TestApplyDefaults_PreservesExistingValues(t *testing.T) {
	originalHome := os.Getenv("HOME")
	defer os.Setenv("HOME", originalHome)

	os.Setenv("HOME", "/home/testuser")

	cfg := &Config{
		Transcription: TranscriptionConfig{Backend: "openai"},
		Audio:         AudioConfig{SampleRate: 48000},
		Paths:         PathsConfig{TempDir: "/custom/temp"},
	}
	cfg.ApplyDefaults()

	if cfg.Transcription.Backend != "openai" {
		t.Errorf("Backend should be preserved, got %s", cfg.Transcription.Backend)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("SampleRate should be preserved, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Paths.TempDir != "/custom/temp" {
		t.Errorf("TempDir should be preserved, got %s", cfg.Paths.TempDir)
	}
	if cfg.Audio.Channels != 1 {
		t.Errorf("Channels should be defaulted, got %d", cfg.Audio.Channels)
	}
}
