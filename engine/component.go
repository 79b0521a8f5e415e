package engine

import (
	"context"

	"github.com/kbukum/httpengine/component"
	"github.com/kbukum/httpengine/transport"
)

// Component wraps an Engine with lifecycle management for managed
// applications.
type Component struct {
	engine    *Engine
	config    Config
	transport transport.Transport
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates an engine component. The engine is created lazily in
// Start. A nil transport selects the net/http default.
func NewComponent(cfg Config, t transport.Transport) *Component {
	return &Component{config: cfg, transport: t}
}

// Name returns the component name.
func (c *Component) Name() string {
	name := c.config.Name
	if name == "" {
		name = "engine"
	}
	return name
}

// Start initializes the engine.
func (c *Component) Start(_ context.Context) error {
	e, err := New(c.config, c.transport)
	if err != nil {
		return err
	}
	c.engine = e
	return nil
}

// Stop releases engine resources.
func (c *Component) Stop(_ context.Context) error {
	return nil
}

// Health reports whether the engine is ready to execute calls.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.engine == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns component description for the startup summary.
func (c *Component) Describe() component.Description {
	details := "net/http transport"
	if c.config.Proxy != "" {
		details += " proxy=" + c.config.Proxy
	}
	return component.Description{
		Name:    c.Name(),
		Type:    "http-engine",
		Details: details,
	}
}

// Engine returns the underlying engine. Must be called after Start.
func (c *Component) Engine() *Engine {
	return c.engine
}
