package config

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/rexfelix/ini-ai/internal/branding"
	"github.com/rexfelix/ini-ai/internal/bundled"
	"github.com/rexfelix/ini-ai/internal/platform"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName     = "config"
	fileType     = "yaml"
	templatesDir = "templates"
)

// Config is the persisted configuration record.
type Config struct {
	// TemplatePath is the absolute directory holding <name>.md templates.
	TemplatePath string `yaml:"template_path" mapstructure:"template_path"`
	// DefaultTemplate is the template used when none is specified.
	DefaultTemplate string `yaml:"default_template" mapstructure:"default_template"`
}

// New returns a Config for templatePath with the built-in default template.
func New(templatePath string) *Config {
	return &Config{
		TemplatePath:    templatePath,
		DefaultTemplate: bundled.DefaultName,
	}
}

// Dir returns the directory holding the config file. INITAI_CONFIG_DIR
// overrides the OS default of <os config dir>/initai.
func Dir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v, nil
	}
	root, err := os.UserConfigDir()
	if err != nil {
		return "", apperr.IO(err, "cannot determine the user config directory")
	}
	return filepath.Join(root, branding.ConfigDir()), nil
}

// Locate returns the config file path, creating its directory if missing.
func Locate() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := platform.MkdirAll(dir); err != nil {
		return "", apperr.IO(err, "cannot create config directory %s", dir).WithPath(dir)
	}
	return filepath.Join(dir, fileName+"."+fileType), nil
}

// DefaultTemplatePath suggests a template store location next to the config
// file. Used as the prompt default when no config exists yet.
func DefaultTemplatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, templatesDir), nil
}

// Exists reports whether the config file is present.
func Exists() (bool, error) {
	path, err := Locate()
	if err != nil {
		return false, err
	}
	ok, err := platform.Exists(path)
	if err != nil {
		return false, apperr.IO(err, "checking config file %s", path).WithPath(path)
	}
	return ok, nil
}

// Load reads, validates and decodes the config file. Values can be
// overridden by INITAI_TEMPLATE_PATH and INITAI_DEFAULT_TEMPLATE.
func Load() (*Config, error) {
	path, err := Locate()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.New(apperr.KindNotConfigured,
				"config file does not exist; set the template path first with '%s config --set-template-path <path>'",
				branding.CLIName()).WithPath(path)
		}
		return nil, apperr.IO(err, "cannot read config file %s", path).WithPath(path)
	}

	if err := validate(path, data); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, apperr.Parse(err, "config file %s is malformed", path).WithPath(path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperr.Parse(err, "config file %s is malformed", path).WithPath(path)
	}

	// An env override may be relative; the stored value never is.
	if !filepath.IsAbs(cfg.TemplatePath) {
		abs, err := filepath.Abs(cfg.TemplatePath)
		if err != nil {
			return nil, apperr.IO(err, "resolving template path %s", cfg.TemplatePath)
		}
		cfg.TemplatePath = abs
	}

	slog.Debug("config_loaded", slog.String("path", path), slog.String("template_path", cfg.TemplatePath))
	return &cfg, nil
}

// Save writes the whole record to the config file, replacing its content.
func Save(cfg *Config) error {
	path, err := Locate()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return apperr.IO(err, "cannot serialize config")
	}

	if err := os.WriteFile(path, data, platform.FilePerm); err != nil {
		return apperr.IO(err, "cannot write config file %s", path).WithPath(path)
	}

	slog.Debug("config_saved", slog.String("path", path))
	return nil
}

// SetTemplatePath resolves path against the working directory, creates the
// directory, and saves a fresh Config pointing at it. The default template is
// always reset to the built-in one. The directory is not removed if the save
// fails.
func SetTemplatePath(path string) (*Config, error) {
	abs := path
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, apperr.IO(err, "cannot determine the current directory")
		}
		abs = filepath.Join(cwd, path)
	}

	if err := platform.MkdirAll(abs); err != nil {
		return nil, apperr.IO(err, "cannot create directory %s", abs).WithPath(abs)
	}

	cfg := New(abs)
	if err := Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
