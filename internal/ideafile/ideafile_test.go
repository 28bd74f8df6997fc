package ideafile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ideas.jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestLoadFromJSONL(t *testing.T) {
	path := writeTestFile(t, `{"id":"x1","text":"daily streak rewards","author":"dana"}
{"id":"x2","text":"push notification nudges","author":"kim"}
`)

	records, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("loaded %d records, expected 2", len(records))
	}
	if records[0].ID != "x1" || records[0].Text != "daily streak rewards" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].Author != "kim" {
		t.Errorf("second author = %q", records[1].Author)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := writeTestFile(t, `{"id":"x1","text":"good idea"}
not json at all
{"id":"x2","text":"another good idea"}
`)

	records, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("loaded %d records, expected malformed line skipped", len(records))
	}
}

func TestLoadSkipsEmptyText(t *testing.T) {
	path := writeTestFile(t, `{"id":"x1","text":"   "}
{"id":"x2","text":"real idea"}
`)

	records, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(records) != 1 || records[0].ID != "x2" {
		t.Errorf("records = %+v, expected only x2", records)
	}
}

func TestLoadAssignsMissingIDs(t *testing.T) {
	path := writeTestFile(t, `{"text":"first"}
{"id":"given","text":"second"}
{"text":"third"}
`)

	records, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if records[0].ID != "i1" {
		t.Errorf("first id = %q, expected i1", records[0].ID)
	}
	if records[1].ID != "given" {
		t.Errorf("second id = %q, expected given id kept", records[1].ID)
	}
	if records[2].ID != "i3" {
		t.Errorf("third id = %q, expected i3", records[2].ID)
	}
}

func TestLoadErrorsWhenNoValidRecords(t *testing.T) {
	path := writeTestFile(t, "garbage\n\n")
	if _, err := LoadFromJSONL(path); err == nil {
		t.Error("expected error for file with no valid records")
	}

	if _, err := LoadFromJSONL(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	in := []Record{
		{ID: "a", Text: "one idea", Author: "dana", CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "b", Text: "another idea", Author: "kim", CreatedAt: time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC)},
	}

	if err := WriteJSONL(path, in); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}
	out, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("round trip count = %d, expected %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Text != in[i].Text || out[i].Author != in[i].Author {
			t.Errorf("record %d = %+v, expected %+v", i, out[i], in[i])
		}
		if !out[i].CreatedAt.Equal(in[i].CreatedAt) {
			t.Errorf("record %d CreatedAt = %v, expected %v", i, out[i].CreatedAt, in[i].CreatedAt)
		}
	}
}
