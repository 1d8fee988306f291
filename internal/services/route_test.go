package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-router/internal/graph"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/sbilibin2017/gw-currency-router/internal/pathfinder"
	"github.com/sbilibin2017/gw-currency-router/internal/ranker"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioRates() models.RateTable {
	return models.RateTable{"USD": 1, "EUR": 0.9, "JPY": 140}
}

func scenarioAdjacency() models.AdjacencyList {
	return models.AdjacencyList{
		"USD": {"EUR", "JPY"},
		"EUR": {"JPY"},
		"JPY": {},
	}
}

func newScenarioService(t *testing.T, writer KafkaWriter) *RouteService {
	t.Helper()
	ctrl := gomock.NewController(t)

	reader := NewMockRateTableReader(ctrl)
	adjacency := NewMockAdjacencyReader(ctrl)

	adjacency.EXPECT().GetAdjacencyList(gomock.Any()).Return(scenarioAdjacency(), nil)
	reader.EXPECT().GetRateTable(gomock.Any()).Return(scenarioRates(), nil)

	svc := NewRouteService(reader, nil, adjacency, writer, graph.NewNeutralEdgeModel(), RouteConfig{
		Base:   "USD",
		RankBy: ranker.Sum,
	})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestRouteService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name          string
		mockSetup     func() *RouteService
		expectedErr   error
		expectedNodes []string
	}{
		{
			name: "success_using_cached_rates",
			mockSetup: func() *RouteService {
				mockReader := NewMockRateTableReader(ctrl)
				mockCache := NewMockRateTableCache(ctrl)
				mockAdjacency := NewMockAdjacencyReader(ctrl)

				mockAdjacency.EXPECT().GetAdjacencyList(ctx).Return(scenarioAdjacency(), nil)
				// cache hit, source is never asked
				mockCache.EXPECT().GetRateTable(ctx, "USD").Return(scenarioRates(), nil)

				return NewRouteService(mockReader, mockCache, mockAdjacency, nil, graph.NewNeutralEdgeModel(), RouteConfig{Base: "USD"})
			},
			expectedNodes: []string{"EUR", "JPY", "USD"},
		},
		{
			name: "cache_miss_fetches_and_stores",
			mockSetup: func() *RouteService {
				mockReader := NewMockRateTableReader(ctrl)
				mockCache := NewMockRateTableCache(ctrl)
				mockAdjacency := NewMockAdjacencyReader(ctrl)

				mockAdjacency.EXPECT().GetAdjacencyList(ctx).Return(scenarioAdjacency(), nil)
				mockCache.EXPECT().GetRateTable(ctx, "USD").Return(nil, errors.New("cache miss"))
				mockReader.EXPECT().GetRateTable(ctx).Return(scenarioRates(), nil)
				mockCache.EXPECT().SetRateTable(ctx, "USD", scenarioRates()).Return(nil)

				return NewRouteService(mockReader, mockCache, mockAdjacency, nil, graph.NewNeutralEdgeModel(), RouteConfig{Base: "USD"})
			},
			expectedNodes: []string{"EUR", "JPY", "USD"},
		},
		{
			name: "cache_write_failure_is_not_fatal",
			mockSetup: func() *RouteService {
				mockReader := NewMockRateTableReader(ctrl)
				mockCache := NewMockRateTableCache(ctrl)

				mockCache.EXPECT().GetRateTable(ctx, "USD").Return(nil, errors.New("cache miss"))
				mockReader.EXPECT().GetRateTable(ctx).Return(scenarioRates(), nil)
				mockCache.EXPECT().SetRateTable(ctx, "USD", scenarioRates()).Return(errors.New("redis down"))

				// no adjacency reader: the built-in list is used
				return NewRouteService(mockReader, mockCache, nil, nil, graph.NewNeutralEdgeModel(), RouteConfig{Base: "USD"})
			},
			expectedNodes: []string{"EUR", "JPY", "USD"},
		},
		{
			name: "empty_pairs_fall_back_to_default_list",
			mockSetup: func() *RouteService {
				mockReader := NewMockRateTableReader(ctrl)
				mockAdjacency := NewMockAdjacencyReader(ctrl)

				mockAdjacency.EXPECT().GetAdjacencyList(ctx).Return(models.AdjacencyList{}, nil)
				mockReader.EXPECT().GetRateTable(ctx).Return(models.RateTable{"USD": 1, "GBP": 0.79}, nil)

				return NewRouteService(mockReader, nil, mockAdjacency, nil, graph.NewNeutralEdgeModel(), RouteConfig{Base: "USD"})
			},
			expectedNodes: []string{"GBP", "USD"},
		},
		{
			name: "rate_source_failure",
			mockSetup: func() *RouteService {
				mockReader := NewMockRateTableReader(ctrl)
				mockAdjacency := NewMockAdjacencyReader(ctrl)

				mockAdjacency.EXPECT().GetAdjacencyList(ctx).Return(scenarioAdjacency(), nil)
				mockReader.EXPECT().GetRateTable(ctx).Return(nil, errors.New("service unavailable"))

				return NewRouteService(mockReader, nil, mockAdjacency, nil, graph.NewNeutralEdgeModel(), RouteConfig{Base: "USD"})
			},
			expectedErr: ErrRatesUnavailable,
		},
		{
			name: "empty_rate_table",
			mockSetup: func() *RouteService {
				mockReader := NewMockRateTableReader(ctrl)

				mockReader.EXPECT().GetRateTable(ctx).Return(models.RateTable{}, nil)

				return NewRouteService(mockReader, nil, nil, nil, graph.NewNeutralEdgeModel(), RouteConfig{Base: "USD"})
			},
			expectedErr: ErrRatesUnavailable,
		},
		{
			name: "currency_pairs_failure",
			mockSetup: func() *RouteService {
				mockReader := NewMockRateTableReader(ctrl)
				mockAdjacency := NewMockAdjacencyReader(ctrl)

				mockAdjacency.EXPECT().GetAdjacencyList(ctx).Return(nil, errors.New("db error"))

				return NewRouteService(mockReader, nil, mockAdjacency, nil, graph.NewNeutralEdgeModel(), RouteConfig{Base: "USD"})
			},
			expectedErr: errors.New("reading currency pairs: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := tt.mockSetup()
			err := svc.Load(ctx)

			if tt.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedErr, ErrRatesUnavailable) {
					assert.ErrorIs(t, err, ErrRatesUnavailable)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}

				_, err = svc.Currencies(ctx)
				assert.ErrorIs(t, err, ErrGraphNotLoaded)
				return
			}

			require.NoError(t, err)
			nodes, err := svc.Currencies(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedNodes, nodes)
		})
	}
}

func TestRouteService_FindRoutes(t *testing.T) {
	svc := newScenarioService(t, nil)
	ctx := context.Background()

	result, err := svc.FindRoutes(ctx, " usd", "jpy ")
	require.NoError(t, err)

	assert.Equal(t, "USD", result.From)
	assert.Equal(t, "JPY", result.To)
	assert.Equal(t, models.Path{"USD", "JPY"}, result.Best.Path)
	assert.InDelta(t, 140, result.Best.TotalCost, 1e-9)
	assert.InDelta(t, 140, result.Best.ConvertedAmount, 1e-9)

	require.Len(t, result.Ranked, 2)
	assert.Equal(t, models.Path{"USD", "JPY"}, result.Ranked[0].Path)
	assert.Equal(t, models.Path{"USD", "EUR", "JPY"}, result.Ranked[1].Path)
	assert.InDelta(t, 0.9+140/0.9, result.Ranked[1].TotalCost, 1e-9)
}

func TestRouteService_FindRoutes_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		from        string
		to          string
		expectedErr error
	}{
		{name: "unknown_start", from: "XYZ", to: "JPY", expectedErr: ErrUnknownCurrency},
		{name: "unknown_goal", from: "USD", to: "GBP", expectedErr: ErrUnknownCurrency},
		{name: "empty_input", from: "", to: "JPY", expectedErr: ErrUnknownCurrency},
		{name: "unreachable", from: "JPY", to: "EUR", expectedErr: pathfinder.ErrNoPathFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// a strict mock writer with no expectations fails the test if anything is published
			ctrl := gomock.NewController(t)
			svc := newScenarioService(t, NewMockKafkaWriter(ctrl))

			result, err := svc.FindRoutes(ctx, tt.from, tt.to)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestRouteService_FindRoutes_SameCurrency(t *testing.T) {
	svc := newScenarioService(t, nil)

	result, err := svc.FindRoutes(context.Background(), "EUR", "EUR")
	require.NoError(t, err)
	assert.Equal(t, models.Path{"EUR"}, result.Best.Path)
	assert.Equal(t, 0.0, result.Best.TotalCost)
	require.Len(t, result.Ranked, 1)
	assert.Equal(t, models.Path{"EUR"}, result.Ranked[0].Path)
}

func TestRouteService_FindRoutes_NotLoaded(t *testing.T) {
	svc := NewRouteService(nil, nil, nil, nil, graph.NewNeutralEdgeModel(), RouteConfig{})

	_, err := svc.FindRoutes(context.Background(), "USD", "EUR")
	assert.ErrorIs(t, err, ErrGraphNotLoaded)
}

func TestRouteService_PublishesRouteEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "USD:JPY", string(msgs[0].Key))

			var event models.RouteEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, "USD", event.From)
			assert.Equal(t, "JPY", event.To)
			assert.Equal(t, []string{"USD", "JPY"}, event.BestPath)
			assert.InDelta(t, 140, event.BestCost, 1e-9)
			assert.Equal(t, 2, event.PathCount)
			return nil
		})

	svc := newScenarioService(t, writer)
	_, err := svc.FindRoutes(context.Background(), "USD", "JPY")
	require.NoError(t, err)
}

func TestRouteService_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	svc := newScenarioService(t, writer)
	result, err := svc.FindRoutes(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, models.Path{"USD", "EUR"}, result.Best.Path)
}

func TestRouteService_ZeroHeuristicAndMaxDepth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateTableReader(ctrl)
	reader.EXPECT().GetRateTable(gomock.Any()).Return(scenarioRates(), nil)

	adjacency := NewMockAdjacencyReader(ctrl)
	adjacency.EXPECT().GetAdjacencyList(gomock.Any()).Return(scenarioAdjacency(), nil)

	svc := NewRouteService(reader, nil, adjacency, nil, graph.NewNeutralEdgeModel(), RouteConfig{
		Base:          "USD",
		ZeroHeuristic: true,
		RankBy:        ranker.Product,
		MaxDepth:      1,
	})
	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.FindRoutes(context.Background(), "USD", "JPY")
	require.NoError(t, err)
	assert.Equal(t, models.Path{"USD", "JPY"}, result.Best.Path)
	require.Len(t, result.Ranked, 1)
	assert.Equal(t, models.Path{"USD", "JPY"}, result.Ranked[0].Path)
}

func TestRouteService_MaxDepthKeepsBestRanked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateTableReader(ctrl)
	reader.EXPECT().GetRateTable(gomock.Any()).Return(scenarioRates(), nil)

	adjacency := NewMockAdjacencyReader(ctrl)
	adjacency.EXPECT().GetAdjacencyList(gomock.Any()).Return(models.AdjacencyList{
		"USD": {"EUR"},
		"EUR": {"JPY"},
	}, nil)

	svc := NewRouteService(reader, nil, adjacency, nil, graph.NewNeutralEdgeModel(), RouteConfig{
		Base:     "USD",
		MaxDepth: 1,
	})
	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.FindRoutes(context.Background(), "USD", "JPY")
	require.NoError(t, err)
	assert.Equal(t, models.Path{"USD", "EUR", "JPY"}, result.Best.Path)
	require.Len(t, result.Ranked, 1)
	assert.Equal(t, result.Best.Path, result.Ranked[0].Path)
}
