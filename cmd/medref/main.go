package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"medref/internal/config"
	"medref/internal/pipeline"
	"medref/internal/source"
	"medref/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "codes:process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		name := fs.String("source", "", "hcpcs|icd10cm|icd10who|loinc|npi|rxnorm|snomed")
		input := fs.String("input", "", "input file path (default from config)")
		out := fs.String("out", "", "output base path (default <OUTPUT_DIR>/<source>_latest)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*name) == "" {
			must(fmt.Errorf("--source is required"))
		}
		strat, ok := source.ByName(cfg, *name)
		if !ok {
			must(fmt.Errorf("unknown source: %s", *name))
		}
		proc := pipeline.NewProcessingService(db, cfg)
		res, err := proc.ProcessSource(strat, *input, *out)
		must(err)
		fmt.Printf("%s done loaded=%d kept=%d output=%s\n", res.Source, res.Loaded, res.Kept, res.OutputPath)
	case "codes:process-all":
		proc := pipeline.NewProcessingService(db, cfg)
		results, err := proc.ProcessAll()
		for _, res := range results {
			fmt.Printf("%s done loaded=%d kept=%d output=%s\n", res.Source, res.Loaded, res.Kept, res.OutputPath)
		}
		must(err)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		name := fs.String("source", "", "source name")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*name) == "" || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--source and --out are required"))
		}
		records, err := db.ListRecords(*name)
		must(err)
		if len(records) == 0 {
			must(fmt.Errorf("no stored records for source=%s; run codes:process first", *name))
		}
		must(pipeline.ExportRecordsToXLSX(records, *out))
		fmt.Printf("exported %d records to %s\n", len(records), *out)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs to show")
		_ = fs.Parse(os.Args[2:])
		runs, err := db.ListRuns(*limit)
		must(err)
		for _, run := range runs {
			fmt.Printf("%s %s loaded=%d kept=%d input=%s output=%s at=%s\n",
				run.TraceID, run.Source, run.Counts["loaded"], run.Counts["kept"], run.InputPath, run.OutputPath, run.CreatedAt)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: medref <command>")
	fmt.Println("commands:")
	fmt.Println("  codes:process --source=hcpcs|icd10cm|icd10who|loinc|npi|rxnorm|snomed [--input=PATH] [--out=BASE]")
	fmt.Println("  codes:process-all")
	fmt.Println("  export:xlsx --source=NAME --out=./out/records.xlsx")
	fmt.Println("  runs:list [--limit=20]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
