// Package daemon implements app.Runner for the pangead process.
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/bitnation/pangea-core/pkg/app/http"
	"github.com/bitnation/pangea-core/pkg/config"
	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
	"github.com/bitnation/pangea-core/pkg/events"
	"github.com/bitnation/pangea-core/pkg/msgqueue"
	"github.com/bitnation/pangea-core/pkg/nation"
	"github.com/bitnation/pangea-core/pkg/txqueue"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the daemon.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new daemon server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("daemon config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting pangead",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	store, err := db.Open(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	logger.Info("Store opened", zap.String("path", cfg.Database.Path))

	ethClient, err := ethereum.NewClient(&cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("connect ethereum: %w", err)
	}
	defer ethClient.Close()

	logger.Info("Connected to Ethereum",
		zap.String("rpc_url", cfg.Ethereum.RPCURL),
		zap.Int64("chain_id", cfg.Ethereum.ChainID),
	)

	bus := events.NewBus()
	msgQueue := msgqueue.NewQueue(store, bus, logger)
	txQueue := txqueue.NewQueue(store, ethClient, msgQueue, bus, cfg.Queue.ProcessingInterval, logger)

	nationService := nation.NewService(
		store,
		ethClient,
		txQueue,
		cfg.Indexer.CallDelay,
		uint64(cfg.Indexer.StartBlock),
		logger,
	)

	if err := txQueue.Start(ctx); err != nil {
		return fmt.Errorf("start transaction queue: %w", err)
	}

	stopIndexer := s.startIndexer(ctx, nationService, bus, logger)

	router := s.setupRouter(nationService, msgQueue, txQueue, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before deferred closes kick in.
	stopIndexer()
	txQueue.Stop()

	return err
}

// startIndexer runs one chain sweep at startup and another after every
// receipt-polling cycle, so on-chain state converges shortly after each
// settlement. Returns a stopper for deterministic shutdown ordering.
func (s *Server) startIndexer(
	ctx context.Context,
	service *nation.Service,
	bus *events.Bus,
	logger *zap.Logger,
) func() {
	cycleCh, cancel := bus.Subscribe(events.TopicTransactionCycleFinished)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		index := func() {
			if err := service.Index(ctx); err != nil {
				logger.Warn("Chain index sweep failed", zap.Error(err))
			}
		}

		index()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-cycleCh:
				if !ok {
					return
				}
				index()
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

func (s *Server) setupRouter(
	nationService *nation.Service,
	msgQueue *msgqueue.Queue,
	txQueue *txqueue.Queue,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		nation.RegisterRoutes(r, nationService, logger)
		msgqueue.RegisterRoutes(r, msgQueue, logger)
		txqueue.RegisterRoutes(r, txQueue, logger)
	})

	return r
}
