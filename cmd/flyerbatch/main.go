// flyerbatch runs the full ingest and extraction pipeline against a local
// SQLite database, so a directory of flyers can be processed without a
// Postgres server. With -watch it keeps running and picks up new files.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flag"

	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/internal/common"
	"github.com/eventsnap/eventsnap/internal/extract"
	"github.com/eventsnap/eventsnap/internal/ingest"
	"github.com/eventsnap/eventsnap/internal/ocr"
	"github.com/eventsnap/eventsnap/internal/parser"
	pipeline "github.com/eventsnap/eventsnap/internal/pipeline"
	repo "github.com/eventsnap/eventsnap/internal/repository"
)

func main() {
	dbPath := flag.String("db", "eventsnap.db", "SQLite database path")
	dir := flag.String("dir", ".", "directory of flyer files to ingest")
	profileName := flag.String("profile", "default", "profile name to ingest under")
	watch := flag.Bool("watch", false, "keep watching the directory for new files")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, db, err := repo.OpenSQLite(ctx, *dbPath, logger)
	if err != nil {
		logger.Error("failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
		_ = db.Close()
	}()

	profilesRepo := repo.NewProfileRepository(entc, logger)
	eventsRepo := repo.NewEventRepository(entc, logger)
	filesRepo := repo.NewFlyerFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)

	profileID, err := resolveProfile(ctx, profilesRepo, *profileName)
	if err != nil {
		logger.Error("failed to resolve profile", "name", *profileName, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
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
	ocrStage := pipeline.NewOCRStage(filesRepo, jobsRepo, extract.NewOCRAdapter(extractor, logger), logger)

	parserOpts := []parser.Option{parser.WithLogger(logger)}
	if cfg.Parser.ReferenceDate != "" {
		if refDate, err := time.Parse("2006-01-02", cfg.Parser.ReferenceDate); err == nil {
			parserOpts = append(parserOpts, parser.WithReferenceDate(refDate))
		}
	}
	parserAdapter := extract.NewParserAdapter(parser.New(parserOpts...), logger)
	parseStage := pipeline.NewParseStage(logger, pipeline.Config{}, jobsRepo, eventsRepo, categoriesRepo, parserAdapter)
	processor := pipeline.NewProcessor(logger, ocrStage, parseStage)

	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)

	results, stats, err := ingestor.IngestDirectory(ctx, profileID, *dir, true)
	if err != nil {
		logger.Error("directory ingest failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	processed, failed := 0, 0
	for _, r := range results {
		if r.Err != "" || r.FileID == "" || r.Deduplicated {
			continue
		}
		fileUUID, err := uuid.Parse(r.FileID)
		if err != nil {
			continue
		}
		if _, err := processor.ProcessFile(ctx, fileUUID); err != nil {
			logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
			failed++
			continue
		}
		processed++
	}
	logger.Info("batch complete", "processed", processed, "failed", failed)

	if !*watch {
		return
	}

	files, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{*dir},
		Debounce: 2 * time.Second,
	})
	if err != nil {
		logger.Error("failed to start watcher", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("watching for new flyers", "dir", *dir)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", err)
		case path, ok := <-files:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, profileID, path)
			if err != nil {
				logger.Error("ingest failed", "path", path, "error", err)
				continue
			}
			if r.Deduplicated || r.FileID == "" {
				continue
			}
			fileUUID, err := uuid.Parse(r.FileID)
			if err != nil {
				continue
			}
			if _, err := processor.ProcessFile(ctx, fileUUID); err != nil {
				logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
			}
		}
	}
}

// resolveProfile finds a profile by name or creates it.
func resolveProfile(ctx context.Context, profilesRepo repo.ProfileRepository, name string) (uuid.UUID, error) {
	existing, err := profilesRepo.ListProfiles(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	for _, p := range existing {
		if p.Name == name {
			return p.ID, nil
		}
	}
	created, err := profilesRepo.CreateProfile(ctx, &repo.Profile{Name: name})
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}
