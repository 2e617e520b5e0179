package config

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360/semstreams-opcua/errors"
)

// Loader reads settings files. Environment expansion and validation are
// enabled by default.
type Loader struct {
	logger       *slog.Logger
	envExpansion bool
	validation   bool
	lookupEnv    lookupFunc
}

// NewLoader creates a new settings loader. A nil logger uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:       logger,
		envExpansion: true,
		validation:   true,
		lookupEnv:    os.LookupEnv,
	}
}

// EnableEnvExpansion enables or disables environment variable expansion.
func (l *Loader) EnableEnvExpansion(enable bool) {
	l.envExpansion = enable
}

// EnableValidation enables or disables Settings.Validate after decoding.
// The schema check of recognized options always runs.
func (l *Loader) EnableValidation(enable bool) {
	l.validation = enable
}

// LoadFile loads settings from a .yaml or .yml file.
func (l *Loader) LoadFile(path string) (*Settings, error) {
	data, err := safeReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapInvalid(errors.ErrConfigNotFound, "Loader", "LoadFile", path)
		}
		return nil, errors.WrapInvalid(err, "Loader", "LoadFile", "read settings file")
	}

	settings, err := l.Decode(data)
	if err != nil {
		return nil, err
	}
	l.logger.Info("Loaded settings",
		"path", path,
		"application", settings.ApplicationName,
		"aliases", len(settings.Nodes))
	return settings, nil
}

// Decode parses a YAML settings document on top of DefaultSettings.
func (l *Loader) Decode(data []byte) (*Settings, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Loader", "Decode", "empty settings document")
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "Decode", "parse YAML")
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Loader", "Decode", "settings document has no content")
	}
	if err := validateYAMLDepth(&doc); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "Decode", "check document depth")
	}

	if l.envExpansion {
		if failed := expandEnv(&doc, l.lookupEnv); failed > 0 {
			l.logger.Warn("Unresolved environment references replaced with null", "count", failed)
		}
	}

	if err := validateSchema(&doc); err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := doc.Decode(settings); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "Decode", "decode settings")
	}

	if l.validation {
		if err := settings.Validate(); err != nil {
			l.logger.Debug("Settings validation failed", "error", err)
			return nil, err
		}
	}
	return settings, nil
}
