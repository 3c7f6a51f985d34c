package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultSourceDir is where the log files are read from
	DefaultSourceDir = "./logs"

	// DefaultDestDir must already exist, it is never created
	DefaultDestDir = "./logs/json"

	// SourcePrefix selects which files in the source directory are logs
	SourcePrefix = "youtube_api"

	// OutputExt is appended to the source file name, not substituted
	OutputExt = ".json"

	// DefaultIndent is the per-level indent of the written array
	DefaultIndent = "  "
)

type Config struct {
	SourceDir string `validate:"required"`
	DestDir   string `validate:"required"`
	Prefix    string `validate:"required"`
	Indent    string
}

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{
		SourceDir: DefaultSourceDir,
		DestDir:   DefaultDestDir,
		Prefix:    SourcePrefix,
		Indent:    DefaultIndent,
	}
}

func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
