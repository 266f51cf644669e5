package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/metrics"
	"github.com/goodnatureofminers/txreview-backend/internal/pkg/ledger"
	"github.com/goodnatureofminers/txreview-backend/internal/review/audit"
	"github.com/goodnatureofminers/txreview-backend/internal/review/repository/clickhouse"
	"github.com/goodnatureofminers/txreview-backend/internal/review/service/sections"
	"github.com/goodnatureofminers/txreview-backend/internal/review/wallet"
	"github.com/goodnatureofminers/txreview-backend/internal/transport"
	"github.com/goodnatureofminers/txreview-backend/pkg/batcher"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var config struct {
	Addr                  string        `long:"addr" env:"REVIEW_API_ADDR" description:"grpc addr" default:":8000"`
	RestAddr              string        `long:"rest-addr" env:"REVIEW_API_REST_ADDR" description:"rest addr" default:":8001"`
	ClickhouseDSN         string        `long:"clickhouse-dsn" env:"REVIEW_API_CLICKHOUSE_DSN" description:"ledger metadata ClickHouse DSN" default:"clickhouse://localhost:9000/default"`
	LedgerRPS             int           `long:"ledger-rps" env:"REVIEW_API_LEDGER_RPS" description:"max ledger lookups per second, 0 disables the limit" default:"0"`
	DefaultGuaranteeRatio string        `long:"default-guarantee-ratio" env:"REVIEW_API_DEFAULT_GUARANTEE_RATIO" description:"guarantee ratio for requests without a wallet preference" default:"0.99"`
	AuditFlushSize        int           `long:"audit-flush-size" env:"REVIEW_API_AUDIT_FLUSH_SIZE" description:"review build records per audit insert" default:"500"`
	AuditFlushInterval    time.Duration `long:"audit-flush-interval" env:"REVIEW_API_AUDIT_FLUSH_INTERVAL" description:"max delay before buffered audit records are inserted" default:"5s"`
	AuditRPS              int           `long:"audit-rps" env:"REVIEW_API_AUDIT_RPS" description:"max audit inserts per second, 0 disables the limit" default:"10"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	defaultRatio, err := decimal.NewFromString(config.DefaultGuaranteeRatio)
	if err != nil {
		logger.Fatal("Invalid default guarantee ratio", zap.Error(err))
	}

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Failed to create clickhouse repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close clickhouse repository", zap.Error(err))
		}
	}()
	ledgerGateway := ledger.NewObservedLedger(repo, metrics.NewLedgerGateway(), config.LedgerRPS)

	auditBatcher, err := batcher.New(logger.Named("audit_batcher"), repo.InsertReviewBuilds, batcher.Config{
		FlushSize:     config.AuditFlushSize,
		FlushInterval: config.AuditFlushInterval,
		RPS:           config.AuditRPS,
	})
	if err != nil {
		logger.Fatal("Failed to create audit batcher", zap.Error(err))
	}
	auditBatcher.Start(ctx)
	defer auditBatcher.Stop()

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial gRPC server", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(
		gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)),
	)
	reviewHandler := transport.NewReviewHandler(func(w *wallet.Wallet) (transport.ReviewBuilder, error) {
		service, err := sections.NewService(ledgerGateway, w, w, metrics.NewReviewBuilder(w.Network().String()), logger)
		if err != nil {
			return nil, err
		}
		return audit.NewAuditedBuilder(service, auditBatcher, logger)
	}, defaultRatio, logger)
	if err := reviewHandler.Register(gw); err != nil {
		logger.Fatal("Register review handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
