package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Inputs reads puzzle text from dir/dNN_input.txt.
type Inputs struct{ dir string }

func NewInputs(dir string) *Inputs { return &Inputs{dir: dir} }

// Path is the file holding day's input.
func (in *Inputs) Path(day int) string {
	return filepath.Join(in.dir, fmt.Sprintf("d%02d_input.txt", day))
}

// Load returns os.ErrNotExist (wrapped) when the file is missing.
func (in *Inputs) Load(ctx context.Context, day int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(in.Path(day))
}
