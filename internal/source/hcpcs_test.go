package source

import "testing"

func TestHCPCSLoadAndClean(t *testing.T) {
	content := "" +
		"A0021 Outside state ambulance serv          Ambulance service outside state\n" +
		"random preamble line\n" +
		"V5364 Dysphagia screening\tscreening long text\n" +
		"A0021 Duplicate of the first code           dup\n" +
		"Z9999 Not a valid leading letter\n" +
		"A0022\n"
	path := writeFile(t, "hcpcs.txt", content)

	s := &hcpcsSource{}
	raw, err := s.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	// Z9999 fails the line pattern, A0022 has no description text.
	if len(raw.Rows) != 3 {
		t.Fatalf("rows=%d: %v", len(raw.Rows), raw.Rows)
	}
	if raw.Rows[0][1] != "Outside state ambulance serv" {
		t.Fatalf("desc=%q", raw.Rows[0][1])
	}
	if raw.Rows[1][1] != "Dysphagia screening" {
		t.Fatalf("tab-split desc=%q", raw.Rows[1][1])
	}

	pairs, err := s.Clean(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Fatalf("pairs=%v", pairs)
	}
	if pairs[0].Code != "A0021" || pairs[0].Description != "Outside state ambulance serv" {
		t.Fatalf("first=%+v", pairs[0])
	}
}

func TestHCPCSEmptyFileIsEmptyResult(t *testing.T) {
	path := writeFile(t, "hcpcs.txt", "no codes here\n")
	s := &hcpcsSource{}
	raw, err := s.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	pairs, err := s.Clean(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 0 {
		t.Fatalf("pairs=%v", pairs)
	}
}
