package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	cerrors "cloudeng.io/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Settings is the user-editable part of the configuration.
type Settings struct {
	// RunEnv selects the environment (development, staging, production).
	// Logging is disabled outside development unless Debug is set.
	RunEnv string `yaml:"run_env" json:"run_env"`

	// Language selects the message catalog (see SupportedLanguages).
	Language string `yaml:"language" json:"language"`

	// LocalZone overrides the detected process zone (an IANA name, e.g.
	// "America/New_York"). Empty means time.Local.
	LocalZone string `yaml:"local_zone" json:"local_zone"`

	// Debug forces debug logging.
	Debug bool `yaml:"debug" json:"debug"`
}

// DefaultSettings returns an in-memory default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		RunEnv:   RunEnvProduction,
		Language: DefaultLanguage,
	}
}

// Normalize fills in missing values with defaults.
func (s *Settings) Normalize() {
	if s.RunEnv == "" {
		s.RunEnv = RunEnvProduction
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
}

// IsDevelopment reports whether the development environment is selected.
func (s *Settings) IsDevelopment() bool {
	return s.RunEnv == RunEnvDevelopment
}

// Location resolves LocalZone, falling back to time.Local when unset.
func (s *Settings) Location() (*time.Location, error) {
	if s.LocalZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.LocalZone)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrZone, s.LocalZone, err)
	}
	return loc, nil
}

// Validate reports every invalid field at once.
func (s *Settings) Validate() error {
	errs := &cerrors.M{}
	if !slices.Contains(RunEnvs, s.RunEnv) {
		errs.Append(fmt.Errorf("%s: %q", ErrRunEnv, s.RunEnv))
	}
	if tag, err := language.Parse(s.Language); err != nil {
		errs.Append(fmt.Errorf("%s %q: %w", ErrLanguage, s.Language, err))
	} else if base, _ := tag.Base(); !slices.Contains(SupportedLanguages, base.String()) {
		errs.Append(fmt.Errorf("%s: %q", ErrLanguage, s.Language))
	}
	if _, err := s.Location(); err != nil {
		errs.Append(err)
	}
	return errs.Err()
}

// applyEnv lets the process environment override file values.
func (s *Settings) applyEnv() {
	if v := os.Getenv(EnvRunEnv); v != "" {
		s.RunEnv = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		s.Language = v
	}
}

// LoadSettings loads settings from the given YAML path.
//
// Behavior:
//   - If path is empty or the file does not exist, defaults are used.
//   - Otherwise the YAML document is decoded over the defaults.
//   - RUN_ENV and DATEKIT_LANG override the file.
//   - The result is normalized and validated.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		default:
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrSettingsParse, err)
			}
		}
	}

	s.applyEnv()
	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsInvalid, err)
	}
	return s, nil
}

// SaveSettings writes settings atomically via a temp file and rename.
func SaveSettings(path string, s *Settings) error {
	if path == "" {
		return errors.New(ErrSettingsPath)
	}
	s.Normalize()

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermUserRWX); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".datekit-settings-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, FilePermUserRW); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
