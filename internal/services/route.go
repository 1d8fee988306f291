package services

//go:generate mockgen -source=route.go -destination=mock_route.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-router/internal/graph"
	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/sbilibin2017/gw-currency-router/internal/pathfinder"
	"github.com/sbilibin2017/gw-currency-router/internal/ranker"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrRatesUnavailable is returned when no rate table could be obtained. It is fatal to Load.
	ErrRatesUnavailable = errors.New("rates unavailable")
	// ErrUnknownCurrency is returned when the start or goal currency is not in the graph.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrGraphNotLoaded is returned by queries issued before Load succeeded.
	ErrGraphNotLoaded = errors.New("conversion graph is not loaded")
)

// RateTableReader fetches the current rate table from the rate source.
type RateTableReader interface {
	GetRateTable(ctx context.Context) (models.RateTable, error)
}

// RateTableCache caches rate tables per base currency.
type RateTableCache interface {
	GetRateTable(ctx context.Context, base string) (models.RateTable, error)
	SetRateTable(ctx context.Context, base string, rates models.RateTable) error
}

// AdjacencyReader reads the tradable currency pairs.
type AdjacencyReader interface {
	GetAdjacencyList(ctx context.Context) (models.AdjacencyList, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RouteConfig tunes graph search and ranking.
type RouteConfig struct {
	// Base is the base currency of the rate source, used as the cache key.
	Base string
	// ZeroHeuristic disables the rate heuristic, making search return the cheapest path.
	ZeroHeuristic bool
	// RankBy selects the ranking key of enumerated paths.
	RankBy ranker.Aggregation
	// MaxDepth limits enumerated path length in edges. Zero means unlimited.
	MaxDepth int
}

// RouteService builds the conversion graph once and answers route queries against it.
type RouteService struct {
	reader    RateTableReader
	cache     RateTableCache
	adjacency AdjacencyReader
	writer    KafkaWriter
	model     *graph.EdgeModel
	cfg       RouteConfig

	mu        sync.RWMutex
	graph     *graph.Graph
	heuristic pathfinder.Heuristic
}

// NewRouteService creates a new RouteService. cache, adjacency and writer are optional.
func NewRouteService(
	reader RateTableReader,
	cache RateTableCache,
	adjacency AdjacencyReader,
	writer KafkaWriter,
	model *graph.EdgeModel,
	cfg RouteConfig,
) *RouteService {
	return &RouteService{
		reader:    reader,
		cache:     cache,
		adjacency: adjacency,
		writer:    writer,
		model:     model,
		cfg:       cfg,
	}
}

// Load reads the adjacency list and the rate table and builds the conversion graph.
func (s *RouteService) Load(ctx context.Context) error {
	adjacency := models.DefaultAdjacencyList()
	if s.adjacency != nil {
		list, err := s.adjacency.GetAdjacencyList(ctx)
		if err != nil {
			logger.Log.Errorw("failed to read currency pairs", "error", err)
			return fmt.Errorf("reading currency pairs: %w", err)
		}
		if len(list) > 0 {
			adjacency = list
		} else {
			logger.Log.Warnw("no currency pairs stored, using built-in list")
		}
	}

	rates, err := s.loadRates(ctx)
	if err != nil {
		return err
	}

	g := graph.Build(rates, adjacency, s.model)

	h := pathfinder.RateHeuristic(g.Rates())
	if s.cfg.ZeroHeuristic {
		h = pathfinder.ZeroHeuristic
	}

	s.mu.Lock()
	s.graph = g
	s.heuristic = h
	s.mu.Unlock()

	logger.Log.Infow("conversion graph built",
		"nodes", len(g.Nodes()),
		"edges", g.EdgeCount(),
		"base", s.cfg.Base,
	)
	return nil
}

// loadRates returns the cached rate table or fetches and caches a fresh one.
func (s *RouteService) loadRates(ctx context.Context) (models.RateTable, error) {
	if s.cache != nil {
		rates, err := s.cache.GetRateTable(ctx, s.cfg.Base)
		if err == nil && len(rates) > 0 {
			return rates, nil
		}
		logger.Log.Infow("rate cache miss", "base", s.cfg.Base, "error", err)
	}

	rates, err := s.reader.GetRateTable(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read rate table", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRatesUnavailable, err)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table", ErrRatesUnavailable)
	}

	if s.cache != nil {
		if err := s.cache.SetRateTable(ctx, s.cfg.Base, rates); err != nil {
			logger.Log.Errorw("failed to cache rate table", "error", err)
		}
	}
	return rates, nil
}

func (s *RouteService) snapshot() (*graph.Graph, pathfinder.Heuristic) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph, s.heuristic
}

// Currencies returns the graph's currencies in sorted order.
func (s *RouteService) Currencies(ctx context.Context) ([]string, error) {
	g, _ := s.snapshot()
	if g == nil {
		return nil, ErrGraphNotLoaded
	}
	return g.Nodes(), nil
}

// FindRoutes finds the best path from one currency to another and ranks every simple path between them.
func (s *RouteService) FindRoutes(ctx context.Context, fromCurrency, toCurrency string) (*models.RouteResult, error) {
	g, h := s.snapshot()
	if g == nil {
		return nil, ErrGraphNotLoaded
	}

	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))
	for _, c := range []string{from, to} {
		if !g.Contains(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, c)
		}
	}

	res, err := pathfinder.Search(g, from, to, h)
	if err != nil {
		return nil, fmt.Errorf("%s -> %s: %w", from, to, err)
	}
	path, err := pathfinder.Reconstruct(res.CameFrom, from, to)
	if err != nil {
		logger.Log.Errorw("failed to reconstruct path", "from", from, "to", to, "error", err)
		return nil, err
	}

	rates := g.Rates()
	best, err := ranker.Describe(g, rates, path)
	if err != nil {
		return nil, err
	}

	paths := pathfinder.EnumerateAllSimplePaths(g, from, to, pathfinder.WithMaxDepth(s.cfg.MaxDepth))
	if !containsPath(paths, path) {
		// the depth cap can cut off the best path, keep it ranked
		paths = append(paths, path)
	}
	ranked, err := ranker.Rank(g, rates, paths, s.cfg.RankBy)
	if err != nil {
		return nil, err
	}

	result := &models.RouteResult{
		From:   from,
		To:     to,
		Best:   best,
		Ranked: ranked,
	}
	s.publishRoute(ctx, result)

	return result, nil
}

func containsPath(paths []models.Path, p models.Path) bool {
	key := p.String()
	for _, candidate := range paths {
		if candidate.String() == key {
			return true
		}
	}
	return false
}

// publishRoute publishes a route event to Kafka.
func (s *RouteService) publishRoute(ctx context.Context, result *models.RouteResult) {
	if s.writer == nil {
		return
	}

	event := models.RouteEvent{
		EventID:   uuid.New().String(),
		From:      result.From,
		To:        result.To,
		BestPath:  result.Best.Path,
		BestCost:  result.Best.TotalCost,
		PathCount: len(result.Ranked),
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal route event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(result.From + ":" + result.To),
		Value: data,
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish route event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Route event published to Kafka", "event_id", event.EventID, "from", event.From, "to", event.To)
	}
}
