package kit

import "go.uber.org/zap"

// NewLogger builds the production JSON logger tagged with the service name.
// Stacktraces are left to Recoverer, which attaches them explicitly.
func NewLogger(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}
	cfg.DisableStacktrace = true
	l, _ := cfg.Build()
	return l
}
