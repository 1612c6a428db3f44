package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/polymd/internal/analysis"
)

type ExportData struct {
	Metadata TableMetadata     `json:"metadata"`
	Samples  []analysis.Sample `json:"samples"`
}

func ExportJSON(path string, meta TableMetadata, samples []analysis.Sample) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return EncodeJSON(file, meta, samples)
}

// EncodeJSON writes one indented document holding the metadata and
// samples.
func EncodeJSON(w io.Writer, meta TableMetadata, samples []analysis.Sample) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Metadata: meta, Samples: samples})
}
