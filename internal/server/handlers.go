package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/internal/service"
)

// squareDTO is the JSON form of a board.Square.
type squareDTO struct {
	Row       int    `json:"row"`
	Column    int    `json:"column"`
	Algebraic string `json:"algebraic"`
}

func toDTO(sq board.Square) squareDTO {
	return squareDTO{Row: sq.Row(), Column: sq.Column(), Algebraic: sq.Algebraic()}
}

func toDTOs(sqs []board.Square) []squareDTO {
	out := make([]squareDTO, len(sqs))
	for i, sq := range sqs {
		out[i] = toDTO(sq)
	}
	return out
}

// PathResponse is returned by GET /api/v1/path.
type PathResponse struct {
	From  squareDTO   `json:"from"`
	To    squareDTO   `json:"to"`
	Found bool        `json:"found"`
	Moves int         `json:"moves"`
	Path  []squareDTO `json:"path"`
}

// NeighborsResponse is returned by GET /api/v1/squares/{square}/neighbors.
type NeighborsResponse struct {
	Square    squareDTO   `json:"square"`
	Neighbors []squareDTO `json:"neighbors"`
}

// ReachResponse is returned by GET /api/v1/reach.
type ReachResponse struct {
	From      squareDTO `json:"from"`
	To        squareDTO `json:"to"`
	Reachable bool      `json:"reachable"`
}

type handler struct {
	svc    *service.Service
	logger *zap.Logger
}

// health handles GET /health.
func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// path handles GET /api/v1/path?from=&to=.
func (h *handler) path(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.pair(w, r)
	if !ok {
		return
	}
	p, err := h.svc.ShortestPathSquares(r.Context(), from, to)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}

	h.respondJSON(w, http.StatusOK, PathResponse{
		From:  toDTO(from),
		To:    toDTO(to),
		Found: p.Found(),
		Moves: p.Moves(),
		Path:  toDTOs(p),
	})
}

// reach handles GET /api/v1/reach?from=&to=.
func (h *handler) reach(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.pair(w, r)
	if !ok {
		return
	}

	h.respondJSON(w, http.StatusOK, ReachResponse{
		From:      toDTO(from),
		To:        toDTO(to),
		Reachable: h.svc.Graph().CanReach(from, to),
	})
}

// neighbors handles GET /api/v1/squares/{square}/neighbors.
func (h *handler) neighbors(w http.ResponseWriter, r *http.Request) {
	sq, nbrs, err := h.svc.Neighbors(chi.URLParam(r, "square"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}

	h.respondJSON(w, http.StatusOK, NeighborsResponse{Square: toDTO(sq), Neighbors: toDTOs(nbrs)})
}

// pair parses the from and to query parameters, answering 400 on failure.
func (h *handler) pair(w http.ResponseWriter, r *http.Request) (board.Square, board.Square, bool) {
	q := r.URL.Query()
	if q.Get("from") == "" || q.Get("to") == "" {
		h.respondError(w, http.StatusBadRequest, errors.New("query parameters from and to are required"))
		return board.Square{}, board.Square{}, false
	}
	from, err := board.Parse(q.Get("from"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return board.Square{}, board.Square{}, false
	}
	to, err := board.Parse(q.Get("to"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return board.Square{}, board.Square{}, false
	}

	return from, to, true
}

func (h *handler) respondError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("encode response", zap.Error(err))
	}
}
