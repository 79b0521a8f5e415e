package logger

import "sync"

// Component names for the engine's pipeline stages. Sharing these
// constants keeps the component tag stable across log streams, so a
// call_id can be followed from the engine through the transport and
// bridge layers.
const (
	ComponentEngine        = "engine"
	ComponentTransport     = "transport"
	ComponentBridge        = "bridge"
	ComponentObservability = "observability"
)

var registry = struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}{
	loggers: make(map[string]*Logger),
}

// Register stores a named logger. Later Get calls for the same name return
// this instance instead of the tagged-global fallback.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get retrieves a named logger. An unregistered name falls back to the
// global logger tagged with the requested component name, so engine code
// never needs to check registration.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults seeds the registry with the engine's standard component
// loggers. Call after Init so they pick up the configured output.
func RegisterDefaults() {
	for _, name := range []string{
		ComponentEngine,
		ComponentTransport,
		ComponentBridge,
		ComponentObservability,
	} {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}

// ForCall returns the component's logger tagged with a call correlation
// ID, the unit every per-call record carries.
func ForCall(component, callID string) *Logger {
	return Get(component).WithFields(map[string]interface{}{
		FieldCallID: callID,
	})
}
