package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"medref/internal"
	"medref/internal/config"
	"medref/internal/source"
	"medref/internal/storage"
	"medref/internal/util"
)

// ProcessingService runs one source end to end: load, clean, stamp the run
// timestamp, persist, and write the latest CSV.
type ProcessingService struct {
	db  *storage.DB
	cfg config.Config

	// now is injectable so tests can pin the run timestamp.
	now func() string
}

func NewProcessingService(db *storage.DB, cfg config.Config) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg, now: util.NowUTC}
}

// WithClock overrides the run-timestamp clock.
func (s *ProcessingService) WithClock(now func() string) *ProcessingService {
	s.now = now
	return s
}

type ProcessResult struct {
	Source     string
	Loaded     int
	Kept       int
	OutputPath string
}

// ProcessSource runs a single strategy. An empty inputPath or outputBase
// falls back to the configured defaults. Fatal conditions (missing input,
// unidentifiable columns, fixed-width parse exhaustion) abort with no
// partial output.
func (s *ProcessingService) ProcessSource(strat source.Strategy, inputPath, outputBase string) (ProcessResult, error) {
	start := time.Now()
	name := string(strat.Name())

	if inputPath == "" {
		inputPath = s.cfg.InputFor(name)
	}
	if outputBase == "" {
		outputBase = filepath.Join(s.cfg.OutputDir, name+"_latest")
	}

	raw, err := strat.Load(inputPath)
	if err != nil {
		return ProcessResult{}, err
	}
	loadMs := float64(time.Since(start).Milliseconds())

	pairs, err := strat.Clean(raw)
	if err != nil {
		return ProcessResult{}, err
	}

	stamp := s.now()
	records := make([]internal.StandardizedRecord, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, internal.StandardizedRecord{
			Code:        p.Code,
			Description: p.Description,
			LastUpdated: stamp,
		})
	}

	outputPath, err := WriteLatestCSV(records, outputBase)
	if err != nil {
		return ProcessResult{}, err
	}

	if err := s.db.ReplaceRecords(name, records); err != nil {
		return ProcessResult{}, err
	}
	if err := s.db.SetMetadata("lastInput:"+name, inputPath); err != nil {
		return ProcessResult{}, err
	}

	counts := map[string]int{"loaded": len(raw.Rows), "kept": len(records)}
	timings := map[string]float64{
		"loadMs":  loadMs,
		"totalMs": float64(time.Since(start).Milliseconds()),
	}
	if err := s.db.InsertRun(traceID(), name, inputPath, outputPath, counts, timings); err != nil {
		return ProcessResult{}, err
	}

	return ProcessResult{
		Source:     name,
		Loaded:     len(raw.Rows),
		Kept:       len(records),
		OutputPath: outputPath,
	}, nil
}

// ProcessAll runs every registered source in order, aborting on the first
// fatal error.
func (s *ProcessingService) ProcessAll() ([]ProcessResult, error) {
	results := make([]ProcessResult, 0)
	for _, strat := range source.All(s.cfg) {
		res, err := s.ProcessSource(strat, "", "")
		if err != nil {
			return results, fmt.Errorf("%s: %w", strat.Name(), err)
		}
		results = append(results, res)
	}
	return results, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
