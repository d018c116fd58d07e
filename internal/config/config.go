// Package config contains utilities for loading configs
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/matt-dz/formcheck/internal/email"
)

const (
	defaultConfigFilePath = "/data/formcheck.yaml"
	configFilePathEnv     = "FORMCHECK_CONFIG"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultHost       = "0.0.0.0"
	defaultPort       = 8080
	defaultHostOrigin = "http://localhost:8080"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	}
	return fmt.Errorf("unknown log level: %q", l)
}

// SlogLevel converts the level for slog. Unknown levels map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing is a cross-field validator for go-playground/validator.
//
// It is attached to a placeholder field and passes only when every field
// named in the tag parameter is zero or every one of them is non-zero, e.g.
// `validate:"allOrNothing=Cert Key"`. Nil pointers and interfaces count as
// zero; non-nil ones are dereferenced first.
//
// A non-struct parent, an unknown field name or an empty list fails, so that
// a misconfigured tag is caught.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
	return v
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// "Config.Server.TLS.Validate" -> "TLS"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "TLS":
				fields = "Cert and Key"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

type TLS struct {
	Cert string `yaml:"cert" validate:"omitempty,filepath"`
	Key  string `yaml:"key" validate:"omitempty,filepath"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Cert Key"`
}

// Enabled reports whether the server should serve TLS.
func (t TLS) Enabled() bool {
	return t.Cert != "" && t.Key != ""
}

type Server struct {
	Host string `yaml:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port uint16 `yaml:"port" validate:"required"`
	TLS  TLS    `yaml:"tls"`
}

// Addr is the listen address, e.g. "0.0.0.0:8080".
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Log struct {
	Level LogLevel `yaml:"level" validate:"omitempty,validateFn"`
}

type Validation struct {
	EmailMessageOrder email.Order `yaml:"email_message_order" validate:"omitempty,validateFn"`
}

type Config struct {
	Server     Server     `yaml:"server"`
	Log        Log        `yaml:"log"`
	Validation Validation `yaml:"validation"`
	HostOrigin string     `yaml:"host_origin" validate:"url"`
	Env        string     `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:        loadWithDefault("ENV", EnvDev),
		HostOrigin: loadWithDefault("HOST_ORIGIN", defaultHostOrigin),
		Server: Server{
			Host: loadWithDefault("SERVER_HOST", defaultHost),
			TLS: TLS{
				Cert: loadWithDefault("SERVER_TLS_CERT", ""),
				Key:  loadWithDefault("SERVER_TLS_KEY", ""),
			},
		},
		Log: Log{
			Level: LogLevel(loadWithDefault("LOG_LEVEL", string(LogLevelInfo))),
		},
		Validation: Validation{
			EmailMessageOrder: email.Order(loadWithDefault("EMAIL_MESSAGE_ORDER", string(email.OrderLast))),
		},
	}

	serverPort := loadWithDefault("SERVER_PORT", strconv.Itoa(defaultPort))
	if port, err := strconv.ParseUint(serverPort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid SERVER_PORT (%q): %w", serverPort, err)
	} else {
		conf.Server.Port = uint16(port)
	}

	if err := newValidator().Struct(conf); err != nil {
		return conf, formatValidationError(err)
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = defaultHostOrigin
	}
	if config.Server.Host == "" {
		config.Server.Host = defaultHost
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaultPort
	}
	if config.Log.Level == "" {
		config.Log.Level = LogLevelInfo
	}
	if config.Validation.EmailMessageOrder == "" {
		config.Validation.EmailMessageOrder = email.OrderLast
	}

	if err := newValidator().Struct(config); err != nil {
		return Config{}, formatValidationError(err)
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML config file when one exists and falls back to
// environment variables otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault(configFilePathEnv, defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
