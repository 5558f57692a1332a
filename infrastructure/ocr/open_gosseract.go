//go:build gosseract

package ocr

// Open returns the engine compiled into this build: in-process libtesseract.
// Only the language of config is used.
func Open(config *CLIConfig) (Engine, error) {
	if config == nil {
		config = DefaultCLIConfig()
	}
	engine, err := NewGosseractEngine(config.Language)
	if err != nil {
		return nil, err
	}
	return engine, nil
}
