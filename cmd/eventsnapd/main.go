package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	eventspb "github.com/eventsnap/eventsnap/gen/proto/events/v1"
	"github.com/eventsnap/eventsnap/internal/async"
	"github.com/eventsnap/eventsnap/internal/common"
	"github.com/eventsnap/eventsnap/internal/events"
	"github.com/eventsnap/eventsnap/internal/export"
	"github.com/eventsnap/eventsnap/internal/extract"
	"github.com/eventsnap/eventsnap/internal/ingest"
	"github.com/eventsnap/eventsnap/internal/ocr"
	"github.com/eventsnap/eventsnap/internal/parser"
	pipeline "github.com/eventsnap/eventsnap/internal/pipeline"
	"github.com/eventsnap/eventsnap/internal/profiles"
	repo "github.com/eventsnap/eventsnap/internal/repository"
	svc "github.com/eventsnap/eventsnap/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	profilesRepo := repo.NewProfileRepository(entc, logger)
	eventsRepo := repo.NewEventRepository(entc, logger)
	filesRepo := repo.NewFlyerFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)

	ocrCfg := ocr.Config{
		HeicConverter:       cfg.OCR.HeicConverter,
		TessdataDir:         cfg.OCR.TessdataDir,
		TesseractLang:       cfg.OCR.TesseractLang,
		DPI:                 cfg.OCR.DPI,
		MaxPages:            cfg.OCR.MaxPages,
		EnableTSVConfidence: cfg.OCR.EnableTSVConfidence,
		ArtifactCacheDir:    cfg.OCR.ArtifactCacheDir,
	}
	extractor := ocr.NewExtractor(ocrCfg, logger)
	ocrAdapter := extract.NewOCRAdapter(extractor, logger)
	ocrStage := pipeline.NewOCRStage(filesRepo, jobsRepo, ocrAdapter, logger)

	parserOpts := []parser.Option{parser.WithLogger(logger)}
	if cfg.Parser.ReferenceDate != "" {
		refDate, err := time.Parse("2006-01-02", cfg.Parser.ReferenceDate)
		if err != nil {
			logger.Error("invalid PARSER_REFERENCE_DATE", "value", cfg.Parser.ReferenceDate, "error", err)
			os.Exit(1)
		}
		parserOpts = append(parserOpts, parser.WithReferenceDate(refDate))
	}
	fieldParser := parser.New(parserOpts...)
	parserAdapter := extract.NewParserAdapter(fieldParser, logger)

	parseStage := pipeline.NewParseStage(logger, pipeline.Config{}, jobsRepo, eventsRepo, categoriesRepo, parserAdapter)

	processor := pipeline.NewProcessor(logger, ocrStage, parseStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	profilesService := profiles.NewService(profilesRepo, logger)
	eventspb.RegisterProfilesServiceServer(grpcServer, svc.NewProfileServer(profilesService, logger))

	eventsService := events.NewService(eventsRepo, categoriesRepo, logger)
	eventspb.RegisterEventsServiceServer(grpcServer, svc.NewEventServer(eventsService, logger))

	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)
	eventspb.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionServer(ingestor, queue, profilesRepo, logger))

	exportService := export.NewService(eventsRepo, logger)
	eventspb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("eventsnap listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
