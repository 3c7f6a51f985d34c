package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/jakebark/logarray/internal/core"
	"github.com/jakebark/logarray/internal/inputs"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	log.SetDefaultsForClientTools()

	userInput, err := inputs.Parse(args[0], args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Errf("%v", err)
		return 2
	}
	if userInput.Verbose {
		log.SetLogLevel(log.Debug)
	}

	if _, err := core.Run(userInput.Config, stdout); err != nil {
		log.Errf("%v", err)
		return 1
	}

	fmt.Fprintln(stdout, "process finished!")
	return 0
}
