//go:build !gosseract

package ocr

// Open returns the engine compiled into this build: the tesseract CLI.
// ErrEngineNotFound is returned when no executable can be located.
func Open(config *CLIConfig) (Engine, error) {
	engine, err := NewTesseractCLI(config)
	if err != nil {
		return nil, err
	}
	return engine, nil
}
