package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"svw.info/advent/internal/bingo"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/generator"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/solver"
	"svw.info/advent/internal/usecase"
	"svw.info/advent/internal/validator"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/puzzles", h.handlePuzzles)
	r.Post("/api/solve", h.handleSolve)
	r.Post("/api/winners", h.handleWinners)
	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/run", h.handleRun)
	r.Get("/api/reports", h.handleList)
	r.Get("/api/reports/{id}", h.handleLoad)
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResp{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, solver.ErrBadInput), errors.Is(err, generator.ErrSpec), errors.Is(err, validator.ErrNotSquare),
		errors.Is(err, storage.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, bingo.ErrInvalidBoard), errors.Is(err, bingo.ErrNoWinner):
		return http.StatusUnprocessableEntity
	case errors.Is(err, usecase.ErrUnknownDay), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func badJSON(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
}

// ---- Puzzles ----

type puzzleInfo struct {
	Day  int    `json:"day"`
	Name string `json:"name"`
}

func (h *Handler) handlePuzzles(w http.ResponseWriter, r *http.Request) {
	out := make([]puzzleInfo, 0, len(h.UC.Solvers))
	for _, s := range h.UC.Solvers {
		out = append(out, puzzleInfo{Day: s.Day(), Name: s.Name()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"puzzles": out})
}

// ---- Solve ----

type solveReq struct {
	Day   int    `json:"day"`
	Input string `json:"input"`
}
type solveResp struct {
	Answer     domain.Answer `json:"answer"`
	DurationUs int64         `json:"durationUs"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := decode(r, &req); err != nil {
		badJSON(w, err)
		return
	}
	ans, st, err := h.UC.Solve(r.Context(), req.Day, []byte(req.Input))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Answer: ans, DurationUs: st.Duration.Microseconds()})
}

// ---- Winners ----

type winnersReq struct {
	Input string `json:"input"`
}

func (h *Handler) handleWinners(w http.ResponseWriter, r *http.Request) {
	var req winnersReq
	if err := decode(r, &req); err != nil {
		badJSON(w, err)
		return
	}
	ws, err := h.UC.Winners(r.Context(), []byte(req.Input))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"winners": ws})
}

// ---- Validate ----

type validateReq struct {
	Board domain.Grid `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := decode(r, &req); err != nil {
		badJSON(w, err)
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Board)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateReq struct {
	Seed int64 `json:"seed,omitempty"`
	domain.GenerateSpec
}
type generateResp struct {
	Seed       int64             `json:"seed"`
	Puzzle     domain.BingoInput `json:"puzzle"`
	Text       string            `json:"text"`
	DurationUs int64             `json:"durationUs"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := decode(r, &req); err != nil {
		badJSON(w, err)
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, req.GenerateSpec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Seed:       seed,
		Puzzle:     *p,
		Text:       string(generator.Format(p)),
		DurationUs: st.Duration.Microseconds(),
	})
}

// ---- Run / Reports ----

type runReq struct {
	Days []int `json:"days,omitempty"`
	Save bool  `json:"save,omitempty"`
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runReq
	if err := decode(r, &req); err != nil {
		badJSON(w, err)
		return
	}
	report, err := h.UC.Run(r.Context(), req.Days...)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Save {
		if err := h.UC.Save(r.Context(), report); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if metas == nil {
		metas = []domain.ReportMeta{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": metas})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	report, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
