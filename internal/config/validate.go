package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateOCR(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateIngest() error {
	if len(c.Ingest.Extensions) == 0 {
		return errors.New("ingest.extensions must list at least one image extension")
	}
	return nil
}

func (c *Config) validateOCR() error {
	if c.OCR.Parallelism < 1 {
		return errors.New("ocr.parallelism must be at least 1")
	}
	if c.OCR.LowConfidenceWarn < 0 || c.OCR.LowConfidenceWarn > 100 {
		return errors.New("ocr.low_confidence_warn must be between 0 and 100")
	}
	if len(c.OCR.Languages) == 0 {
		return errors.New("ocr.languages must list at least one language")
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.ZipEnabled && !strings.HasSuffix(strings.ToLower(c.Export.ZipName), ".zip") {
		return fmt.Errorf("export.zip_name must end in .zip, got %q", c.Export.ZipName)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json", "":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
