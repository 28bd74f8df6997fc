package ideafile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Record represents one idea in a JSONL ideas file
type Record struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// LoadFromJSONL loads idea records from a JSONL file with proper error handling
func LoadFromJSONL(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var records []Record
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if strings.TrimSpace(rec.Text) == "" {
			log.Printf("Warning: skipping record with empty text at line %d in %s", i+1, path)
			continue
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("i%d", len(records)+1)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid ideas found in %s", path)
	}

	return records, nil
}

// WriteJSONL writes idea records to a JSONL file
func WriteJSONL(path string, records []Record) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}
	defer out.Close()

	encoder := json.NewEncoder(out)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("write record %s: %w", rec.ID, err)
		}
	}
	return nil
}
