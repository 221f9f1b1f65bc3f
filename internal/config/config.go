package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/wake-gate/internal/logger"
	"github.com/oshokin/wake-gate/internal/service/sound"
	"github.com/oshokin/wake-gate/internal/service/volume"
)

// Config holds the settings of the server and the CLI.
type Config struct {
	// ServerAddress is the gRPC address of the wake-gate server.
	ServerAddress string `yaml:"server_addr" env:"WAKE_GATE_SERVER_ADDR"`
	// Timeout bounds network operations and unary RPC calls.
	Timeout time.Duration `yaml:"timeout" env:"WAKE_GATE_TIMEOUT"`
	// JournalFile is the path of the wake journal JSON file.
	JournalFile string `yaml:"journal_file" env:"WAKE_GATE_JOURNAL_FILE"`
	// LogLevel is the minimum level of server logs.
	LogLevel string `yaml:"log_level" env:"WAKE_GATE_LOG_LEVEL"`
	// InhibitSleep keeps the machine awake while an alarm is pending.
	InhibitSleep bool `yaml:"inhibit_sleep" env:"WAKE_GATE_INHIBIT_SLEEP"`
	// Sound configures the cue rotation.
	Sound SoundConfig `yaml:"sound"`
	// Volume configures volume enforcement.
	Volume VolumeConfig `yaml:"volume"`
}

// SoundConfig configures the cue rotation.
type SoundConfig struct {
	// Backend is "auto" or "none".
	Backend string `yaml:"backend" env:"WAKE_GATE_SOUND_BACKEND"`
	// PrimaryFor is how long the primary cue plays.
	PrimaryFor time.Duration `yaml:"primary_for" env:"WAKE_GATE_SOUND_PRIMARY_FOR"`
	// SecondaryFor is how long the secondary cue plays.
	SecondaryFor time.Duration `yaml:"secondary_for" env:"WAKE_GATE_SOUND_SECONDARY_FOR"`
}

// VolumeConfig configures volume enforcement.
type VolumeConfig struct {
	// Backend is "auto", "pulse", "command" or "none".
	Backend string `yaml:"backend" env:"WAKE_GATE_VOLUME_BACKEND"`
	// InitialDelay is the pause before the ramp starts.
	InitialDelay time.Duration `yaml:"initial_delay" env:"WAKE_GATE_VOLUME_INITIAL_DELAY"`
	// RampDuration is the time from Floor to Target.
	RampDuration time.Duration `yaml:"ramp_duration" env:"WAKE_GATE_VOLUME_RAMP_DURATION"`
	// RampSteps is the number of ramp increments.
	RampSteps int `yaml:"ramp_steps" env:"WAKE_GATE_VOLUME_RAMP_STEPS"`
	// Floor is the first volume applied, in percent.
	Floor int `yaml:"floor" env:"WAKE_GATE_VOLUME_FLOOR"`
	// Target is the held volume, in percent.
	Target int `yaml:"target" env:"WAKE_GATE_VOLUME_TARGET"`
	// HoldInterval is the period of Target re-assertion.
	HoldInterval time.Duration `yaml:"hold_interval" env:"WAKE_GATE_VOLUME_HOLD_INTERVAL"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "wake-gate-settings.yaml"

	// DefaultJournalFilename is the default filename of the wake journal.
	DefaultJournalFilename = "wake-gate-journal.json"

	// DefaultServerAddress is used when no address is configured.
	DefaultServerAddress = "127.0.0.1:50051"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is the default server log level.
	DefaultLogLevel = "info"

	// DefaultBackend lets the server pick the backend.
	DefaultBackend = "auto"

	// DefaultFilePermissions is the default file permission for settings and journal files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

var (
	//nolint:gochecknoglobals // Lookup table.
	soundBackends = []string{"auto", "none"}
	//nolint:gochecknoglobals // Lookup table.
	volumeBackends = []string{"auto", "pulse", "command", "none"}
)

// Default returns the stock configuration.
func Default() *Config {
	stockVolume := volume.DefaultSettings()

	return &Config{
		ServerAddress: DefaultServerAddress,
		Timeout:       DefaultTimeout,
		JournalFile:   DefaultJournalFilename,
		LogLevel:      DefaultLogLevel,
		InhibitSleep:  true,
		Sound: SoundConfig{
			Backend:      DefaultBackend,
			PrimaryFor:   sound.DefaultPrimaryFor,
			SecondaryFor: sound.DefaultSecondaryFor,
		},
		Volume: VolumeConfig{
			Backend:      DefaultBackend,
			InitialDelay: stockVolume.InitialDelay,
			RampDuration: stockVolume.RampDuration,
			RampSteps:    stockVolume.RampSteps,
			Floor:        stockVolume.Floor,
			Target:       stockVolume.Target,
			HoldInterval: stockVolume.HoldInterval,
		},
	}
}

// Load reads configuration from path on top of the defaults, applies
// environment overrides and validates the result. A missing file is not an
// error when path is empty, so the defaults and the environment suffice.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Defaults and environment only.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills unset optional fields with defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		settings.ServerAddress = DefaultServerAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("%w: invalid server socket: %w", ErrInvalidConfig, err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.JournalFile == "" {
		settings.JournalFile = DefaultJournalFilename
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, settings.LogLevel)
	}

	if err := settings.Sound.validate(); err != nil {
		return err
	}

	return settings.Volume.validate()
}

func (s *SoundConfig) validate() error {
	if s.Backend == "" {
		s.Backend = DefaultBackend
	}

	if !slices.Contains(soundBackends, s.Backend) {
		return fmt.Errorf("%w: unknown sound backend %q", ErrInvalidConfig, s.Backend)
	}

	if s.PrimaryFor <= 0 {
		s.PrimaryFor = sound.DefaultPrimaryFor
	}

	if s.SecondaryFor <= 0 {
		s.SecondaryFor = sound.DefaultSecondaryFor
	}

	return nil
}

func (v *VolumeConfig) validate() error {
	if v.Backend == "" {
		v.Backend = DefaultBackend
	}

	if !slices.Contains(volumeBackends, v.Backend) {
		return fmt.Errorf("%w: unknown volume backend %q", ErrInvalidConfig, v.Backend)
	}

	if err := v.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Settings converts the section to channel settings.
func (s SoundConfig) Settings() sound.Settings {
	return sound.Settings{
		PrimaryFor:   s.PrimaryFor,
		SecondaryFor: s.SecondaryFor,
	}
}

// Settings converts the section to enforcer settings.
func (v VolumeConfig) Settings() volume.Settings {
	return volume.Settings{
		InitialDelay: v.InitialDelay,
		RampDuration: v.RampDuration,
		RampSteps:    v.RampSteps,
		Floor:        v.Floor,
		Target:       v.Target,
		HoldInterval: v.HoldInterval,
	}
}
