package logging_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-bindery/logging"
)

func TestApplyDefaults(t *testing.T) {
	var cfg logging.Config
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
}

func TestNew_ParsesLevel(t *testing.T) {
	l := logging.New(logging.Config{Level: "warn", Format: "json"}, "svc")
	if l.Zero().GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %s, want warn", l.Zero().GetLevel())
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	l := logging.New(logging.Config{Level: "shout", Format: "json"}, "svc")
	if l.Zero().GetLevel() != zerolog.InfoLevel {
		t.Errorf("level = %s, want info", l.Zero().GetLevel())
	}
}

func TestNew_KeepsServiceName(t *testing.T) {
	l := logging.New(logging.Config{}, "api")
	if l.Service() != "api" {
		t.Errorf("Service = %q, want api", l.Service())
	}
}

func TestWith_ChildKeepsService(t *testing.T) {
	l := logging.NewDefault("api").With("request", "abc")
	if l.Service() != "api" {
		t.Errorf("Service = %q, want api", l.Service())
	}
}
