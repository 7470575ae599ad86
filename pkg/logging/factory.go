package logging

import "sync"

// DefaultLoggerFactory implements LoggerFactory using zap loggers
type DefaultLoggerFactory struct {
	level   string
	loggers map[string]Logger
	mu      sync.RWMutex
}

// NewLoggerFactory creates a new logger factory with the given log level
func NewLoggerFactory(level string) LoggerFactory {
	return &DefaultLoggerFactory{
		level:   level,
		loggers: make(map[string]Logger),
	}
}

// CreateLogger creates a basic logger for the specified component
func (f *DefaultLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	logger := NewZapLogger(component, f.level)
	f.loggers[component] = logger
	return logger
}

// CreateCommandLogger creates a logger for bot command operations
func (f *DefaultLoggerFactory) CreateCommandLogger(commandName string) Logger {
	return f.CreateLogger("commands").WithContext(map[string]interface{}{
		"command": commandName,
	})
}

// CreateHandlerLogger creates a logger for gateway event handlers
func (f *DefaultLoggerFactory) CreateHandlerLogger(handlerName string) Logger {
	return f.CreateLogger("handlers").WithContext(map[string]interface{}{
		"handler": handlerName,
	})
}

var (
	globalFactory   LoggerFactory = NewLoggerFactory("info")
	globalFactoryMu sync.RWMutex
)

// SetGlobalLoggerFactory replaces the global factory, typically at startup
// once the configured log level is known.
func SetGlobalLoggerFactory(factory LoggerFactory) {
	globalFactoryMu.Lock()
	defer globalFactoryMu.Unlock()
	globalFactory = factory
}

// GetGlobalLoggerFactory returns the global logger factory
func GetGlobalLoggerFactory() LoggerFactory {
	globalFactoryMu.RLock()
	defer globalFactoryMu.RUnlock()
	return globalFactory
}
