package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	eventspb "github.com/eventsnap/eventsnap/gen/proto/events/v1"
	"github.com/eventsnap/eventsnap/internal/async"
	"github.com/eventsnap/eventsnap/internal/common"
	"github.com/eventsnap/eventsnap/internal/ingest"
	"github.com/eventsnap/eventsnap/internal/repository"
)

type IngestionServer struct {
	eventspb.UnimplementedIngestionServiceServer
	ingestor    ingest.Ingestor
	profileRepo repository.ProfileRepository
	queue       async.Queue
	logger      *slog.Logger
}

func NewIngestionServer(ing ingest.Ingestor, queue async.Queue, p repository.ProfileRepository, logger *slog.Logger) *IngestionServer {
	return &IngestionServer{
		ingestor:    ing,
		queue:       queue,
		profileRepo: p,
		logger:      logger,
	}
}

// IngestFile registers one flyer file and queues it for extraction.
func (s *IngestionServer) IngestFile(ctx context.Context, req *eventspb.IngestFileRequest) (*eventspb.IngestResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "profile_id", profileID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, profileID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "profile_id", profileID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResult(r)
	s.enqueue(ctx, r, resp)
	return resp, nil
}

// IngestDirectory registers all matching flyers under a root and queues the
// new ones for extraction.
func (s *IngestionServer) IngestDirectory(ctx context.Context, req *eventspb.IngestDirectoryRequest) (*eventspb.IngestDirectoryResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}

	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "profile_id", profileID, "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, profileID, root, skipHidden)
	if err != nil {
		// DB and file errors are already logged in repository/ingest layers
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "profile_id", profileID, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &eventspb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*eventspb.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toPBIngestResult(r)
		s.enqueue(ctx, r, item)
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *IngestionServer) requireProfile(ctx context.Context, raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	if pid == "" {
		s.logger.Error("ingest request missing profile_id")
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format for ingest", "profile_id", pid, "error", err)
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	if exists, _ := s.profileRepo.Exists(ctx, profileID); !exists {
		s.logger.Error("profile not found for ingest", "profile_id", profileID)
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile not found")
	}
	return profileID, nil
}

// enqueue hands a freshly ingested file to the processing queue. Deduplicated
// files already went through extraction, so they are skipped.
func (s *IngestionServer) enqueue(ctx context.Context, r ingest.IngestionResult, resp *eventspb.IngestResponse) {
	if r.Err != "" || r.FileID == "" || r.Deduplicated {
		return
	}
	fileUUID, err := uuid.Parse(r.FileID)
	if err != nil {
		return
	}
	job := async.Job{FileID: fileUUID, SubmittedAt: time.Now(), TraceID: common.RequestIDFromContext(ctx)}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("queue.enqueue.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
}

func toPBIngestResult(r ingest.IngestionResult) *eventspb.IngestResponse {
	return &eventspb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
