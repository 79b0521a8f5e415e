package logger

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	if l := New(cfg, "test"); l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	if l := NewFromEnv("env-svc"); l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("bridge")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.service != "test" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l := NewDefault("test")
	if fl := l.WithFields(map[string]interface{}{"key": "value"}); fl == nil {
		t.Fatal("expected non-nil logger")
	}
	if el := l.WithError(errors.New("boom")); el == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestInitAndGlobal(t *testing.T) {
	Init(Config{Level: "info", Format: "console", Output: "stdout"})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
}

func TestRegistryGetFallsBack(t *testing.T) {
	l := Get("not-registered")
	if l == nil {
		t.Fatal("expected component-tagged fallback logger")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	custom := NewDefault("custom")
	Register("engine-test", custom)
	if got := Get("engine-test"); got != custom {
		t.Error("expected registered logger to be returned")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = Config{Level: "nope", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFieldsHelpers(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected map: %v", m)
	}

	ef := ErrorFields("submit", errors.New("boom"))
	if ef[FieldOperation] != "submit" || ef[FieldError] != "boom" {
		t.Errorf("unexpected map: %v", ef)
	}

	df := DurationFields("drain", 1500*time.Millisecond)
	if df[FieldDuration] != int64(1500) {
		t.Errorf("unexpected duration: %v", df[FieldDuration])
	}
}

func TestInitInvalidLevelFallsBack(t *testing.T) {
	Init(Config{Level: "nope", Format: "json", Output: "stdout"})
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected info fallback for invalid level, got %v", zerolog.GlobalLevel())
	}
}

func TestRegisterDefaults(t *testing.T) {
	Init(Config{Level: "info", Format: "json", Output: "stdout"})
	RegisterDefaults()

	// The fallback mints a fresh tagged logger per call; a registered
	// component returns the same instance.
	for _, name := range []string{ComponentEngine, ComponentTransport, ComponentBridge, ComponentObservability} {
		if Get(name) != Get(name) {
			t.Errorf("expected registered instance for %q, got fallback", name)
		}
	}
}

func TestForCall(t *testing.T) {
	if l := ForCall(ComponentEngine, "call-123"); l == nil {
		t.Fatal("expected call-tagged logger")
	}
}
