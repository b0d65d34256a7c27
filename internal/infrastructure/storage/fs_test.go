package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	older := &domain.Report{ID: uuid.NewString(), CreatedAt: 100, Results: []domain.Result{
		{Day: 4, Name: "giant_squid", Parts: []domain.Part{{Label: "Bingo Part 1 :: winner code", Value: 4512}}, Elapsed: time.Microsecond},
	}}
	newer := &domain.Report{ID: uuid.NewString(), CreatedAt: 200, Results: []domain.Result{
		{Day: 1, Name: "sonar_deep", Error: "open inputs/d01_input.txt: no such file or directory"},
		{Day: 2, Name: "dive"},
	}}
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	got, err := s.Load(ctx, older.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(older, got); diff != "" {
		t.Fatalf("loaded report (-want +got):\n%s", diff)
	}

	metas, err := s.List(ctx)
	require.NoError(t, err)
	want := []domain.ReportMeta{
		{ID: newer.ID, CreatedAt: 200, Puzzles: 2, Failed: 1},
		{ID: older.ID, CreatedAt: 100, Puzzles: 1},
	}
	assert.Equal(t, want, metas)
}

func TestListSkipsJunk(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "reports", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reports", "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reports", "bad.json"), []byte("{"), 0o644))

	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)

	metas, err = NewFS(filepath.Join(dir, "missing")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestRejectsBadIDs(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	assert.Error(t, s.Save(ctx, &domain.Report{}))
	assert.Error(t, s.Save(ctx, &domain.Report{ID: "../escape"}))

	_, err := s.Load(ctx, "../../etc/passwd")
	assert.ErrorContains(t, err, "invalid report id")

	_, err = s.Load(ctx, uuid.NewString())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d04_input.txt"), []byte("1,2\n"), 0o644))
	in := NewInputs(dir)

	b, err := in.Load(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", string(b))

	_, err = in.Load(context.Background(), 5)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
