package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		grid      domain.Grid
		wantOK    bool
		conflicts []domain.CellCoord
		wantErr   error
	}{
		{name: "distinct", grid: domain.Grid{{1, 2}, {3, 4}}, wantOK: true},
		{name: "single cell", grid: domain.Grid{{7}}, wantOK: true},
		{
			name:      "repeats after first sighting",
			grid:      domain.Grid{{5, 1, 5}, {2, 1, 3}, {4, 6, 5}},
			conflicts: []domain.CellCoord{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
		{name: "empty", grid: domain.Grid{}, wantErr: ErrNotSquare},
		{name: "ragged", grid: domain.Grid{{1, 2}, {3}}, wantErr: ErrNotSquare},
		{name: "wide", grid: domain.Grid{{1, 2, 3}}, wantErr: ErrNotSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, conf, err := New().Validate(context.Background(), tt.grid)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.conflicts, conf)
		})
	}
}
