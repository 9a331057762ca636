// Package source implements one loading/cleaning strategy per coding system.
// Every strategy shares the same contract: Load raw bytes into a table of
// candidate rows, then Clean them into validated code/description pairs.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"medref/internal"
	"medref/internal/config"
	"medref/internal/table"
)

type Strategy interface {
	Name() internal.SourceName
	Load(path string) (*table.Table, error)
	Clean(t *table.Table) ([]internal.CodePair, error)
}

// MissingInputError is fatal: the input file does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// ParseExhaustionError is fatal: the fixed-width fallback parsed zero lines
// from the whole file.
type ParseExhaustionError struct {
	Path string
}

func (e *ParseExhaustionError) Error() string {
	return fmt.Sprintf("could not parse any rows from fixed-width file: %s", e.Path)
}

// All returns every strategy in run order.
func All(cfg config.Config) []Strategy {
	return []Strategy{
		&hcpcsSource{},
		&icd10cmSource{},
		&icd10whoSource{},
		&loincSource{},
		&npiSource{sampleRows: cfg.NPISampleRows},
		&rxnormSource{},
		&snomedSource{},
	}
}

func ByName(cfg config.Config, name string) (Strategy, bool) {
	for _, s := range All(cfg) {
		if string(s.Name()) == name {
			return s, true
		}
	}
	return nil, false
}

func requireInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingInputError{Path: path}
		}
		return err
	}
	return nil
}
