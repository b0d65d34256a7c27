package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"svw.info/advent/internal/domain"
)

// ErrInvalidID is returned for a report id that is not a UUID.
var ErrInvalidID = errors.New("invalid report id")

// FS stores harness reports as JSON files under dir/reports.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) reportsDir() string { return filepath.Join(s.dir, "reports") }

func (s *FS) pathFor(id string) (string, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	return filepath.Join(s.reportsDir(), id+".json"), nil
}

func (s *FS) Save(ctx context.Context, r *domain.Report) error {
	if r == nil || r.ID == "" {
		return errors.New("invalid report: missing ID")
	}
	target, err := s.pathFor(r.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Report, error) {
	path, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out domain.Report
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every readable report, newest first.
func (s *FS) List(ctx context.Context) ([]domain.ReportMeta, error) {
	ents, err := os.ReadDir(s.reportsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.ReportMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.reportsDir(), e.Name()))
		if err != nil {
			continue
		}
		var r domain.Report
		if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
			continue
		}
		meta := domain.ReportMeta{ID: r.ID, CreatedAt: r.CreatedAt, Puzzles: len(r.Results)}
		for _, res := range r.Results {
			if res.Error != "" {
				meta.Failed++
			}
		}
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
