// Package service wraps the knight graph with the ambient concerns shared by
// the CLI and the HTTP API: label parsing, visit policy, logging and metrics.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/internal/metrics"
	"github.com/katalvlaran/knightpath/knight"
)

// Service answers knight queries against one shared, immutable graph.
type Service struct {
	graph   *knight.Graph
	policy  bfs.VisitPolicy
	logger  *zap.Logger
	metrics *metrics.Collector
}

// New builds a Service. A nil logger is replaced by zap.NewNop and a nil
// collector disables metrics.
func New(g *knight.Graph, policy bfs.VisitPolicy, logger *zap.Logger, collector *metrics.Collector) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{graph: g, policy: policy, logger: logger, metrics: collector}
}

// Graph returns the underlying graph.
func (s *Service) Graph() *knight.Graph {
	return s.graph
}

// ShortestPath finds a shortest path between two square labels. A label
// that fails to parse is counted as an error query and logged at debug.
func (s *Service) ShortestPath(ctx context.Context, from, to string) (knight.Path, error) {
	start, err := board.Parse(from)
	if err != nil {
		return nil, s.reject(from, to, err)
	}
	end, err := board.Parse(to)
	if err != nil {
		return nil, s.reject(from, to, err)
	}

	return s.ShortestPathSquares(ctx, start, end)
}

func (s *Service) reject(from, to string, err error) error {
	if s.metrics != nil {
		s.metrics.ObserveRejected()
	}
	s.logger.Debug("shortest path rejected",
		zap.String("from", from),
		zap.String("to", to),
		zap.Error(err),
	)

	return err
}

// ShortestPathSquares finds a shortest path between two squares.
func (s *Service) ShortestPathSquares(ctx context.Context, start, end board.Square) (knight.Path, error) {
	began := time.Now()
	p, err := s.graph.ShortestPath(start, end, knight.WithContext(ctx), knight.WithVisitPolicy(s.policy))
	elapsed := time.Since(began)

	result := metrics.ResultFound
	switch {
	case err != nil:
		result = metrics.ResultError
		s.logger.Error("shortest path failed",
			zap.Stringer("from", start),
			zap.Stringer("to", end),
			zap.Error(err),
		)
	case !p.Found():
		result = metrics.ResultNoPath
	case start == end:
		result = metrics.ResultTrivial
	}
	if s.metrics != nil {
		s.metrics.ObserveQuery(result, p.Moves(), elapsed)
	}
	s.logger.Debug("shortest path",
		zap.Stringer("from", start),
		zap.Stringer("to", end),
		zap.String("policy", s.policy.String()),
		zap.String("result", result),
		zap.Int("moves", p.Moves()),
		zap.Duration("elapsed", elapsed),
	)

	return p, err
}

// Neighbors returns the square named by label and its knight neighbors.
func (s *Service) Neighbors(label string) (board.Square, []board.Square, error) {
	sq, err := board.Parse(label)
	if err != nil {
		return board.Square{}, nil, err
	}

	return sq, s.graph.Neighbors(sq), nil
}

// CanReach reports whether the two labelled squares are one move apart.
func (s *Service) CanReach(from, to string) (bool, error) {
	a, err := board.Parse(from)
	if err != nil {
		return false, err
	}
	b, err := board.Parse(to)
	if err != nil {
		return false, err
	}

	return s.graph.CanReach(a, b), nil
}

// Distances returns the square named by label and its move-distance table.
func (s *Service) Distances(ctx context.Context, label string) (board.Square, map[board.Square]int, error) {
	sq, err := board.Parse(label)
	if err != nil {
		return board.Square{}, nil, err
	}
	d, err := s.graph.Distances(sq, knight.WithContext(ctx), knight.WithVisitPolicy(s.policy))
	if err != nil {
		return board.Square{}, nil, err
	}

	return sq, d, nil
}
