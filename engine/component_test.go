package engine

import (
	"context"
	"testing"

	"github.com/kbukum/httpengine/component"
)

func TestComponentLifecycle(t *testing.T) {
	c := NewComponent(Config{Name: "outbound"}, &mockTransport{session: &mockSession{handle: &mockHandle{}}})

	if c.Name() != "outbound" {
		t.Errorf("expected name 'outbound', got %q", c.Name())
	}
	if h := c.Health(context.Background()); h.Status != component.StatusUnhealthy {
		t.Error("expected unhealthy before start")
	}

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if c.Engine() == nil {
		t.Fatal("expected engine after start")
	}
	if h := c.Health(context.Background()); h.Status != component.StatusHealthy {
		t.Error("expected healthy after start")
	}

	if err := c.Stop(context.Background()); err != nil {
		t.Errorf("stop failed: %v", err)
	}
}

func TestComponentStartRejectsInvalidConfig(t *testing.T) {
	c := NewComponent(Config{Proxy: "proxy.local"}, &mockTransport{})
	if err := c.Start(context.Background()); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestComponentDescribe(t *testing.T) {
	c := NewComponent(Config{Name: "outbound", Proxy: "http://proxy.local:3128"}, nil)
	d := c.Describe()
	if d.Type != "http-engine" {
		t.Errorf("unexpected type %q", d.Type)
	}
	if d.Name != "outbound" {
		t.Errorf("unexpected name %q", d.Name)
	}
}
