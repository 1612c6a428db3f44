package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/polymd/internal/analysis"
	"github.com/san-kum/polymd/internal/pair"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Pair holds the particle attributes a table was sampled with.
type Pair struct {
	Di float64 `json:"di"`
	Dj float64 `json:"dj"`
	Qi float64 `json:"qi,omitempty"`
	Qj float64 `json:"qj,omitempty"`
}

// TableMetadata describes one persisted tabulation. Params is the
// potential's record, so Potential reproduces the parameter block exactly.
type TableMetadata struct {
	ID        string           `json:"id"`
	Model     string           `json:"model"`
	Name      string           `json:"name"`
	Timestamp time.Time        `json:"timestamp"`
	Params    pair.Record      `json:"params"`
	RCut      float64          `json:"r_cut"`
	Pair      Pair             `json:"pair"`
	Shift     bool             `json:"shift"`
	RMin      float64          `json:"r_min"`
	RMax      float64          `json:"r_max"`
	Points    int              `json:"points"`
	Report    *analysis.Report `json:"report,omitempty"`
}

// NewMetadata fills the potential and probe fields of a tabulation.
func NewMetadata(p analysis.Probe, rmin, rmax float64, points int) TableMetadata {
	return TableMetadata{
		Model:  string(p.Pot.Kind()),
		Name:   p.Pot.Name(),
		Params: p.Pot.Record(),
		RCut:   p.RCut,
		Pair:   Pair{Di: p.Attr.Di, Dj: p.Attr.Dj, Qi: p.Attr.Qi, Qj: p.Attr.Qj},
		Shift:  p.Shift,
		RMin:   rmin,
		RMax:   rmax,
		Points: points,
	}
}

// Potential decodes the stored parameter record.
func (m *TableMetadata) Potential() (pair.Potential, error) {
	return pair.NewPotential(pair.Kind(m.Model), m.Params)
}

// Probe rebuilds the probe the table was sampled with.
func (m *TableMetadata) Probe() (analysis.Probe, error) {
	pot, err := m.Potential()
	if err != nil {
		return analysis.Probe{}, err
	}
	return analysis.Probe{
		Pot:   pot,
		RCut:  m.RCut,
		Attr:  pair.Attributes{Di: m.Pair.Di, Dj: m.Pair.Dj, Qi: m.Pair.Qi, Qj: m.Pair.Qj},
		Shift: m.Shift,
	}, nil
}

// Save writes metadata.json and table.csv under a fresh <model>_<uuid>
// directory and returns the ID.
func (s *Store) Save(meta TableMetadata, samples []analysis.Sample) (string, error) {
	tableID := fmt.Sprintf("%s_%s", meta.Model, uuid.NewString())
	tableDir := filepath.Join(s.baseDir, tableID)

	if err := os.MkdirAll(tableDir, 0755); err != nil {
		return "", err
	}

	meta.ID = tableID
	meta.Timestamp = time.Now()
	meta.Points = len(samples)

	metaPath := filepath.Join(tableDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(tableDir, "table.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, samples); err != nil {
		return "", err
	}
	return tableID, nil
}

// WriteCSV writes samples with a header row. Floats use the shortest
// representation that parses back to the same value.
func WriteCSV(out io.Writer, samples []analysis.Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"r", "energy", "force_divr", "ok"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.R, 'g', -1, 64),
			strconv.FormatFloat(s.Energy, 'g', -1, 64),
			strconv.FormatFloat(s.ForceDivR, 'g', -1, 64),
			strconv.FormatBool(s.OK),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]TableMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TableMetadata{}, nil
		}
		return nil, err
	}

	tables := make([]TableMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		tables = append(tables, *meta)
	}

	return tables, nil
}

func (s *Store) Load(tableID string) (*TableMetadata, error) {
	metaPath := filepath.Join(s.baseDir, tableID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta TableMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTable(tableID string) ([]analysis.Sample, error) {
	csvPath := filepath.Join(s.baseDir, tableID, "table.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []analysis.Sample{}, nil
	}

	samples := make([]analysis.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		s, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("table %s row %d: %w", tableID, i+1, err)
		}
		samples = append(samples, s)
	}

	return samples, nil
}

func parseRow(record []string) (analysis.Sample, error) {
	var s analysis.Sample
	if len(record) != 4 {
		return s, fmt.Errorf("expected 4 fields, got %d", len(record))
	}
	var err error
	if s.R, err = strconv.ParseFloat(record[0], 64); err != nil {
		return s, err
	}
	if s.Energy, err = strconv.ParseFloat(record[1], 64); err != nil {
		return s, err
	}
	if s.ForceDivR, err = strconv.ParseFloat(record[2], 64); err != nil {
		return s, err
	}
	if s.OK, err = strconv.ParseBool(record[3]); err != nil {
		return s, err
	}
	return s, nil
}
