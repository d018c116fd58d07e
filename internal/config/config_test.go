package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-dz/formcheck/internal/email"
)

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testing.T)
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:      "all defaults",
			setup:     func(t *testing.T) {},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected Env %q, got %q", EnvDev, c.Env)
				}
				if c.HostOrigin != defaultHostOrigin {
					t.Errorf("expected HostOrigin %q, got %q", defaultHostOrigin, c.HostOrigin)
				}
				if c.Server.Addr() != "0.0.0.0:8080" {
					t.Errorf("expected Server.Addr %q, got %q", "0.0.0.0:8080", c.Server.Addr())
				}
				if c.Server.TLS.Enabled() {
					t.Error("expected TLS to be disabled")
				}
				if c.Log.Level != LogLevelInfo {
					t.Errorf("expected Log.Level %q, got %q", LogLevelInfo, c.Log.Level)
				}
				if c.Validation.EmailMessageOrder != email.OrderLast {
					t.Errorf("expected EmailMessageOrder %q, got %q", email.OrderLast, c.Validation.EmailMessageOrder)
				}
			},
		},
		{
			name: "custom environment values",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "PROD")
				t.Setenv("HOST_ORIGIN", "https://signup.example.com")
				t.Setenv("SERVER_HOST", "127.0.0.1")
				t.Setenv("SERVER_PORT", "9090")
				t.Setenv("SERVER_TLS_CERT", "/etc/formcheck/tls.crt")
				t.Setenv("SERVER_TLS_KEY", "/etc/formcheck/tls.key")
				t.Setenv("LOG_LEVEL", "debug")
				t.Setenv("EMAIL_MESSAGE_ORDER", "first")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.HostOrigin != "https://signup.example.com" {
					t.Errorf("expected HostOrigin %q, got %q", "https://signup.example.com", c.HostOrigin)
				}
				if c.Server.Addr() != "127.0.0.1:9090" {
					t.Errorf("expected Server.Addr %q, got %q", "127.0.0.1:9090", c.Server.Addr())
				}
				if !c.Server.TLS.Enabled() {
					t.Error("expected TLS to be enabled")
				}
				if c.Log.Level.SlogLevel() != slog.LevelDebug {
					t.Errorf("expected debug level, got %v", c.Log.Level.SlogLevel())
				}
				if c.Validation.EmailMessageOrder != email.OrderFirst {
					t.Errorf("expected EmailMessageOrder %q, got %q", email.OrderFirst, c.Validation.EmailMessageOrder)
				}
			},
		},
		{
			name: "invalid port",
			setup: func(t *testing.T) {
				t.Setenv("SERVER_PORT", "not-a-port")
			},
			wantError: true,
		},
		{
			name: "port out of range",
			setup: func(t *testing.T) {
				t.Setenv("SERVER_PORT", "70000")
			},
			wantError: true,
		},
		{
			name: "invalid env",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "STAGING")
			},
			wantError: true,
		},
		{
			name: "invalid log level",
			setup: func(t *testing.T) {
				t.Setenv("LOG_LEVEL", "verbose")
			},
			wantError: true,
		},
		{
			name: "invalid email message order",
			setup: func(t *testing.T) {
				t.Setenv("EMAIL_MESSAGE_ORDER", "random")
			},
			wantError: true,
		},
		{
			name: "invalid host origin",
			setup: func(t *testing.T) {
				t.Setenv("HOST_ORIGIN", "not a url")
			},
			wantError: true,
		},
		{
			name: "tls cert without key",
			setup: func(t *testing.T) {
				t.Setenv("SERVER_TLS_CERT", "/etc/formcheck/tls.crt")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			config, err := loadConfigFromEnv()
			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tests := []struct {
		name      string
		contents  string
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:     "empty file uses defaults",
			contents: "",
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected Env %q, got %q", EnvDev, c.Env)
				}
				if c.Server.Port != defaultPort {
					t.Errorf("expected port %d, got %d", defaultPort, c.Server.Port)
				}
				if c.Validation.EmailMessageOrder != email.OrderLast {
					t.Errorf("expected EmailMessageOrder %q, got %q", email.OrderLast, c.Validation.EmailMessageOrder)
				}
			},
		},
		{
			name: "full file",
			contents: `env: PROD
host_origin: https://signup.example.com
server:
  host: localhost
  port: 8443
  tls:
    cert: /etc/formcheck/tls.crt
    key: /etc/formcheck/tls.key
log:
  level: warn
validation:
  email_message_order: first
`,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.Server.Addr() != "localhost:8443" {
					t.Errorf("expected addr %q, got %q", "localhost:8443", c.Server.Addr())
				}
				if !c.Server.TLS.Enabled() {
					t.Error("expected TLS to be enabled")
				}
				if c.Log.Level != LogLevelWarn {
					t.Errorf("expected level %q, got %q", LogLevelWarn, c.Log.Level)
				}
				if c.Validation.EmailMessageOrder != email.OrderFirst {
					t.Errorf("expected EmailMessageOrder %q, got %q", email.OrderFirst, c.Validation.EmailMessageOrder)
				}
			},
		},
		{
			name:      "malformed yaml",
			contents:  "server: [",
			wantError: true,
		},
		{
			name: "incomplete tls",
			contents: `server:
  tls:
    key: /etc/formcheck/tls.key
`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "formcheck.yaml")
			if err := os.WriteFile(path, []byte(tt.contents), 0o600); err != nil {
				t.Fatalf("writing config: %v", err)
			}

			config, err := loadConfigFromFile(path)
			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestFormatValidationError_AllOrNothing(t *testing.T) {
	t.Setenv("SERVER_TLS_KEY", "/etc/formcheck/tls.key")

	_, err := loadConfigFromEnv()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "TLS configuration is incomplete") {
		t.Errorf("expected incomplete TLS message, got %q", err.Error())
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("falls back to env without a file", func(t *testing.T) {
		t.Setenv(configFilePathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("SERVER_PORT", "8181")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Server.Port != 8181 {
			t.Errorf("expected port 8181, got %d", config.Server.Port)
		}
	})

	t.Run("prefers the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "formcheck.yaml")
		if err := os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o600); err != nil {
			t.Fatalf("writing config: %v", err)
		}
		t.Setenv(configFilePathEnv, path)
		t.Setenv("SERVER_PORT", "8181")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Server.Port != 9191 {
			t.Errorf("expected port 9191, got %d", config.Server.Port)
		}
	})

	t.Run("directory is not a config file", func(t *testing.T) {
		t.Setenv(configFilePathEnv, t.TempDir())

		if _, err := LoadConfig(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
