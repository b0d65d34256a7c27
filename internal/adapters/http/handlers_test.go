package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/generator"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/metrics"
	"svw.info/advent/internal/solver"
	"svw.info/advent/internal/usecase"
	"svw.info/advent/internal/validator"
)

const bingoSample = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func newTestRouter(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()
	dir := t.TempDir()
	in := storage.NewInputs(dir)
	require.NoError(t, os.WriteFile(in.Path(4), []byte(bingoSample), 0o644))

	uc := usecase.NewService(solver.All(), in, generator.New(), validator.New(), storage.NewFS(filepath.Join(dir, "data")))
	uc.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	uc.Metrics = metrics.New(prometheus.NewRegistry())
	uc.Tracer = noop.NewTracerProvider().Tracer("test")

	opts.Logger = uc.Logger
	return NewRouter(New(uc), opts)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, rd))
	return rec
}

func TestSolve(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantParts  []domain.Part
		wantErr    string
	}{
		{
			name:       "bingo sample",
			body:       solveReq{Day: 4, Input: bingoSample},
			wantStatus: http.StatusOK,
			wantParts: []domain.Part{
				{Label: "Bingo Part 1 :: winner code", Value: 4512},
				{Label: "Bingo Part 2 :: winner code", Value: 1924},
			},
		},
		{
			name:       "no winner",
			body:       solveReq{Day: 4, Input: "9\n\n1 2\n3 4\n"},
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    "draws exhausted",
		},
		{
			name:       "duplicate board value",
			body:       solveReq{Day: 4, Input: "1\n\n1 2\n2 4\n"},
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    "invalid board 0",
		},
		{
			name:       "parse error",
			body:       solveReq{Day: 1, Input: "abc"},
			wantStatus: http.StatusBadRequest,
			wantErr:    "bad input",
		},
		{
			name:       "vent coordinate out of range",
			body:       solveReq{Day: 5, Input: "0,0 -> 1000000000000,0"},
			wantStatus: http.StatusBadRequest,
			wantErr:    "out of range",
		},
		{
			name:       "unknown day",
			body:       solveReq{Day: 25, Input: "1"},
			wantStatus: http.StatusNotFound,
			wantErr:    "unknown day",
		},
		{
			name:       "broken json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid JSON",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/solve", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantErr != "" {
				var e errorResp
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
				assert.Contains(t, e.Error, tt.wantErr)
				return
			}
			var resp solveResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantParts, resp.Answer.Parts)
		})
	}
}

func TestWinners(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})
	rec := do(t, h, http.MethodPost, "/api/winners", winnersReq{Input: bingoSample})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Winners []struct {
			Board int `json:"board"`
			Score int `json:"score"`
		} `json:"winners"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Winners, 3)
	assert.Equal(t, 2, resp.Winners[0].Board)
	assert.Equal(t, 1924, resp.Winners[2].Score)
}

func TestValidate(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})

	rec := do(t, h, http.MethodPost, "/api/validate", validateReq{Board: domain.Grid{{1, 2}, {2, 3}}})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp validateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, []domain.CellCoord{{Row: 1, Col: 0}}, resp.Conflicts)

	rec = do(t, h, http.MethodPost, "/api/validate", validateReq{Board: domain.Grid{{1, 2}}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})

	rec := do(t, h, http.MethodPost, "/api/generate", `{"seed": 5, "boards": 4, "size": 3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp generateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Seed)
	assert.Len(t, resp.Puzzle.Boards, 4)

	// an empty body decodes to the defaults
	rec = do(t, h, http.MethodPost, "/api/generate", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var defaults generateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &defaults))
	assert.Len(t, defaults.Puzzle.Boards, 3)

	// the rendered text solves on day 4
	rec = do(t, h, http.MethodPost, "/api/solve", solveReq{Day: 4, Input: resp.Text})
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, body := range []string{
		`{"size": 5, "maxValue": 3}`,
		`{"boards": 1099511627776, "size": 1}`,
		`{"size": 100000}`,
		`{"maxValue": 1073741824}`,
	} {
		rec = do(t, h, http.MethodPost, "/api/generate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestRunAndReports(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})

	rec := do(t, h, http.MethodPost, "/api/run", runReq{Days: []int{4}, Save: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, 4512, report.Results[0].Parts[0].Value)

	rec = do(t, h, http.MethodGet, "/api/reports", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Reports []domain.ReportMeta `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Reports, 1)
	assert.Equal(t, report.ID, list.Reports[0].ID)

	rec = do(t, h, http.MethodGet, "/api/reports/"+report.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/reports/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/reports/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPuzzlesAndMethods(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})

	rec := do(t, h, http.MethodGet, "/api/puzzles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"giant_squid"`)

	rec = do(t, h, http.MethodGet, "/api/solve", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimitAndMetrics(t *testing.T) {
	h := newTestRouter(t, RouterOptions{
		RateLimit: 0.001,
		Burst:     1,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}),
	})

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/puzzles", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/api/puzzles", nil).Code)

	// /metrics is outside the limited group
	rec := do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
