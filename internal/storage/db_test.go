package storage

import (
	"path/filepath"
	"testing"

	"medref/internal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "medref.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestReplaceRecordsOverwrites(t *testing.T) {
	db := openTestDB(t)

	first := []internal.StandardizedRecord{
		{Code: "A1234", Description: "old", LastUpdated: "2025-09-12T00:00:00Z"},
		{Code: "B5678", Description: "kept order", LastUpdated: "2025-09-12T00:00:00Z"},
	}
	if err := db.ReplaceRecords("hcpcs", first); err != nil {
		t.Fatal(err)
	}

	second := []internal.StandardizedRecord{
		{Code: "C9000", Description: "new", LastUpdated: "2025-09-13T00:00:00Z"},
	}
	if err := db.ReplaceRecords("hcpcs", second); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListRecords("hcpcs")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Code != "C9000" {
		t.Fatalf("got %+v", got)
	}
}

func TestListRecordsPreservesOrder(t *testing.T) {
	db := openTestDB(t)

	records := []internal.StandardizedRecord{
		{Code: "Z99", Description: "third alphabetically, first inserted", LastUpdated: "x"},
		{Code: "A00", Description: "second", LastUpdated: "x"},
		{Code: "M54", Description: "third", LastUpdated: "x"},
	}
	if err := db.ReplaceRecords("icd10cm", records); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListRecords("icd10cm")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].Code != "Z99" || got[2].Code != "M54" {
		t.Fatalf("got %+v", got)
	}
}

func TestRunsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	counts := map[string]int{"loaded": 10, "kept": 7}
	timings := map[string]float64{"totalMs": 12.5}
	if err := db.InsertRun("trace-1", "snomed", "in.tsv", "out.csv", counts, timings); err != nil {
		t.Fatal(err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs=%d", len(runs))
	}
	if runs[0].Counts["kept"] != 7 || runs[0].Timings["totalMs"] != 12.5 {
		t.Fatalf("got %+v", runs[0])
	}
}

func TestMetadata(t *testing.T) {
	db := openTestDB(t)

	if err := db.SetMetadata("lastInput:hcpcs", "a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata("lastInput:hcpcs", "b.txt"); err != nil {
		t.Fatal(err)
	}

	v, err := db.GetMetadata("lastInput:hcpcs")
	if err != nil {
		t.Fatal(err)
	}
	if v == nil || *v != "b.txt" {
		t.Fatalf("got %v", v)
	}

	missing, err := db.GetMetadata("nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("got %v", *missing)
	}
}
