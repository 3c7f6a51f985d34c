package core

import (
	"io"

	"fortio.org/log"
	"github.com/jakebark/logarray/internal/config"
)

// Run selects the source log, converts it and writes the array. w receives
// a one-line summary on success.
func Run(cfg config.Config, w io.Writer) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	source, err := SelectSourceFile(cfg.SourceDir, cfg.Prefix)
	if err != nil {
		return Result{}, &StageError{Stage: StageSelect, Err: err}
	}
	log.Infof("Selected log file %s", source)

	records, err := ReadLogRecords(source)
	if err != nil {
		return Result{}, &StageError{Stage: StageTransform, Err: err}
	}
	log.Debugf("Parsed %d records from %s", len(records), source)

	destination := DestinationPath(cfg.DestDir, source)
	size, err := WriteLogArray(destination, records, cfg.Indent)
	if err != nil {
		return Result{}, &StageError{Stage: StagePersist, Err: err}
	}

	result := Result{
		Source:      source,
		Destination: destination,
		Records:     len(records),
		Size:        size,
	}
	reportResult(w, result)
	return result, nil
}
