package inputs

import (
	"fmt"

	"github.com/jakebark/logarray/internal/config"
	"github.com/spf13/pflag"
)

type UserInput struct {
	Config  config.Config
	Verbose bool
}

// Parse reads flags from args. Positional arguments are rejected.
func Parse(name string, args []string) (UserInput, error) {
	cfg := config.Default()
	var verbose bool

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVarP(&cfg.SourceDir, "src", "s", config.DefaultSourceDir, "directory holding the log files")
	flags.StringVarP(&cfg.DestDir, "dst", "d", config.DefaultDestDir, "existing directory the json array is written to")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := flags.Parse(args); err != nil {
		return UserInput{}, err
	}
	if flags.NArg() > 0 {
		return UserInput{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	return UserInput{
		Config:  cfg,
		Verbose: verbose,
	}, nil
}
