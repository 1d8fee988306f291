package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-currency-router/docs"
	"github.com/sbilibin2017/gw-currency-router/internal/console"
	"github.com/sbilibin2017/gw-currency-router/internal/facades"
	"github.com/sbilibin2017/gw-currency-router/internal/graph"
	"github.com/sbilibin2017/gw-currency-router/internal/handlers"
	"github.com/sbilibin2017/gw-currency-router/internal/jwt"
	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-router/internal/random"
	"github.com/sbilibin2017/gw-currency-router/internal/ranker"
	"github.com/sbilibin2017/gw-currency-router/internal/repositories"
	"github.com/sbilibin2017/gw-currency-router/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	modeServer  = "server"
	modeConsole = "console"

	sourceHTTP = "http"
	sourceGRPC = "grpc"
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	Mode     string

	RatesSource   string
	RatesAPIURL   string
	RatesAPIKey   string
	RatesBase     string
	GWHost        string
	GWPort        string
	RatesCacheTTL int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret    string
	JWTExpSecond int

	GraphSeed      uint64
	GraphHeuristic string
	GraphRankBy    string
	GraphMaxDepth  int
	VolatilityMin  float64
	VolatilityMax  float64
	TaxMin         float64
	TaxMax         float64
}

// @title gw-currency-router API
// @version 1.0.0
// @description Finds and ranks currency conversion paths over a graph of tradable pairs
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, tokenClient := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if tokenClient != "" {
		if err := issueToken(context.Background(), cfg, tokenClient); err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the client name to issue a token for, if any.
func parseFlags() (configPath, tokenClient string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	t := flag.String("issue-token", "", "Print a bearer token for the named API client and exit")
	flag.Parse()
	return *c, *t
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getFloat := func(key, defaultValue string) (float64, error) {
		v, err := strconv.ParseFloat(getEnv(key, defaultValue), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.Mode = getEnv("APP_MODE", modeServer)
	if cfg.Mode != modeServer && cfg.Mode != modeConsole {
		err = fmt.Errorf("APP_MODE: unknown mode %q", cfg.Mode)
		return
	}

	// Rate source config
	cfg.RatesSource = getEnv("RATES_SOURCE", sourceGRPC)
	if cfg.RatesSource != sourceHTTP && cfg.RatesSource != sourceGRPC {
		err = fmt.Errorf("RATES_SOURCE: unknown source %q", cfg.RatesSource)
		return
	}
	cfg.RatesAPIURL = getEnv("RATES_API_URL", facades.DefaultRatesAPIURL)
	cfg.RatesAPIKey = getEnv("RATES_API_KEY", "")
	cfg.RatesBase = strings.ToUpper(getEnv("RATES_BASE_CURRENCY", "USD"))
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")
	if cfg.RatesCacheTTL, err = getInt("RATES_CACHE_TTL_SECOND", "300"); err != nil {
		return
	}

	// Redis config, an empty host disables the cache
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// PostgreSQL config, an empty host selects the built-in pair list
	cfg.PGHost = getEnv("POSTGRES_HOST", "")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "4"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "1"); err != nil {
		return
	}

	// Kafka config, no brokers disables route events
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "currency-routes")

	// JWT config, an empty secret disables auth
	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// Graph config
	if cfg.GraphSeed, err = strconv.ParseUint(getEnv("GRAPH_SEED", "0"), 10, 64); err != nil {
		err = fmt.Errorf("GRAPH_SEED: %w", err)
		return
	}
	cfg.GraphHeuristic = getEnv("GRAPH_HEURISTIC", "rate")
	if cfg.GraphHeuristic != "rate" && cfg.GraphHeuristic != "zero" {
		err = fmt.Errorf("GRAPH_HEURISTIC: unknown heuristic %q", cfg.GraphHeuristic)
		return
	}
	cfg.GraphRankBy = getEnv("GRAPH_RANK_BY", "sum")
	if _, err = ranker.ParseAggregation(cfg.GraphRankBy); err != nil {
		err = fmt.Errorf("GRAPH_RANK_BY: %w", err)
		return
	}
	if cfg.GraphMaxDepth, err = getInt("GRAPH_MAX_DEPTH", "0"); err != nil {
		return
	}
	if cfg.VolatilityMin, err = getFloat("VOLATILITY_MIN", strconv.FormatFloat(graph.DefaultVolatilityMin, 'f', -1, 64)); err != nil {
		return
	}
	if cfg.VolatilityMax, err = getFloat("VOLATILITY_MAX", strconv.FormatFloat(graph.DefaultVolatilityMax, 'f', -1, 64)); err != nil {
		return
	}
	if cfg.TaxMin, err = getFloat("TAX_MIN", strconv.FormatFloat(graph.DefaultTaxMin, 'f', -1, 64)); err != nil {
		return
	}
	if cfg.TaxMax, err = getFloat("TAX_MAX", strconv.FormatFloat(graph.DefaultTaxMax, 'f', -1, 64)); err != nil {
		return
	}
	if cfg.VolatilityMin <= 0 || cfg.VolatilityMin > cfg.VolatilityMax {
		err = fmt.Errorf("VOLATILITY_MIN/MAX: invalid range [%v, %v]", cfg.VolatilityMin, cfg.VolatilityMax)
		return
	}
	if cfg.TaxMin < 0 || cfg.TaxMin > cfg.TaxMax {
		err = fmt.Errorf("TAX_MIN/MAX: invalid range [%v, %v]", cfg.TaxMin, cfg.TaxMax)
		return
	}

	return
}

// issueToken prints a bearer token for an API client.
func issueToken(ctx context.Context, cfg config, clientID string) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is not set")
	}
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecret),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)
	token, err := tokener.Generate(ctx, clientID)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

// newEdgeModel builds the edge model from the configured ranges and seed.
func newEdgeModel(cfg config) *graph.EdgeModel {
	seed := cfg.GraphSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	model := graph.NewEdgeModel(random.NewSeeded(seed))
	model.VolatilityMin = cfg.VolatilityMin
	model.VolatilityMax = cfg.VolatilityMax
	model.TaxMin = cfg.TaxMin
	model.TaxMax = cfg.TaxMax
	return model
}

// newRouter sets up routes and middleware. Route endpoints require a bearer
// token when tokener is not nil.
func newRouter(cfg config, svc *services.RouteService, tokener middlewares.Tokener) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Group(func(r chi.Router) {
		if tokener != nil {
			r.Use(middlewares.AuthMiddleware(tokener))
		}
		handlers.RegisterFindRoutesHandler(r, handlers.NewFindRoutesHandler(svc))
	})
	handlers.RegisterGetCurrenciesHandler(r, handlers.NewGetCurrenciesHandler(svc))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, optional storage and event backends, the rate
// source and the route service, then serves HTTP or runs the console until
// ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	var adjacency services.AdjacencyReader
	if cfg.PGHost != "" {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("postgres connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)
		adjacency = repositories.NewCurrencyPairReadRepository(db)
	}

	// Connect to Redis
	var cache services.RateTableCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		cache = repositories.NewExchangeRateCacheRepository(rdb, time.Duration(cfg.RatesCacheTTL)*time.Second)
	}

	// Rate source
	var reader services.RateTableReader
	switch cfg.RatesSource {
	case sourceHTTP:
		reader = facades.NewExchangeRatesHTTPFacade(cfg.RatesAPIURL, cfg.RatesAPIKey, cfg.RatesBase)
	default:
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		reader = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
	}

	// Kafka writer
	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		}
		defer kw.Close()
		writer = kw
	}

	rankBy, _ := ranker.ParseAggregation(cfg.GraphRankBy)
	svc := services.NewRouteService(reader, cache, adjacency, writer, newEdgeModel(cfg), services.RouteConfig{
		Base:          cfg.RatesBase,
		ZeroHeuristic: cfg.GraphHeuristic == "zero",
		RankBy:        rankBy,
		MaxDepth:      cfg.GraphMaxDepth,
	})
	if err := svc.Load(ctx); err != nil {
		return err
	}

	if cfg.Mode == modeConsole {
		return console.New(svc, os.Stdin, os.Stdout).Run(ctx)
	}

	var tokener middlewares.Tokener
	if cfg.JWTSecret != "" {
		tokener = jwt.New(jwt.WithSecretKey(cfg.JWTSecret))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, svc, tokener),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
