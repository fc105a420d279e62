package config

const (
	defaultOutputDir         = "~/.local/share/imageorganizer/output"
	defaultLogDir            = "~/.local/share/imageorganizer/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultOCRParallelism    = 1
	defaultLowConfidenceWarn = 30
	defaultZipName           = "organized_images.zip"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Ingest: Ingest{
			Extensions: []string{"jpg", "jpeg", "png", "gif", "bmp", "webp"},
		},
		OCR: OCR{
			Languages:         []string{"eng"},
			Parallelism:       defaultOCRParallelism,
			LowConfidenceWarn: defaultLowConfidenceWarn,
		},
		Export: Export{
			ZipName: defaultZipName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
