//go:build !prod

package logging

import "log/slog"

// Setup initializes logging for development builds: text to the console,
// no files. The returned close function is a no-op.
func Setup(cfg *Config) (*slog.Logger, func() error, error) {
	return SetupConsole(cfg)
}
