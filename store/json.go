package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"playstore/shared"
)

//go:embed data/playstore.json
var referenceDataset []byte

// JSONSource reads a JSON array of records. With an empty Path it serves the
// bundled 20-app reference dataset.
type JSONSource struct {
	Path string
}

func (s JSONSource) Load(_ context.Context) ([]shared.AppRecord, error) {
	data := referenceDataset
	name := "embedded dataset"

	if s.Path != "" {
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.Path, err)
		}
		data, name = b, s.Path
	}

	var records []shared.AppRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return records, nil
}
