package plans

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"floor-plan/core/floorplan"
	"floor-plan/core/storage"
	"floor-plan/feature/plans/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrStorageDisabled is returned by remote operations when no storage client is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")

// Service parses floor plans from files, request bodies and object storage.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	legend floorplan.Legend
	logger *zap.Logger
}

// NewService creates a new plans service. client may be nil when only local files are parsed.
func NewService(client storage.Client, bucket, prefix string, legend floorplan.Legend, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		legend: legend,
		logger: logger,
	}
}

// Legend returns the configured legend.
func (s *Service) Legend() floorplan.Legend {
	return s.legend
}

// Bucket returns the bucket holding remote plans.
func (s *Service) Bucket() string {
	return s.bucket
}

// Prefix returns the default listing prefix.
func (s *Service) Prefix() string {
	return s.prefix
}

// Analyze runs a full parse over grid.
func (s *Service) Analyze(source string, grid floorplan.Grid, legend floorplan.Legend) (*models.Report, error) {
	scanner, err := floorplan.NewScanner(grid, legend, s.logger.With(zap.String("source", source)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	rooms := scanner.Parse()
	stats := scanner.Stats()

	if stats.UnattributedChairs > 0 {
		s.logger.Info("Chairs found outside any named room",
			zap.String("source", source),
			zap.Int("chairs", stats.UnattributedChairs),
			zap.Int("unnamed_regions", stats.UnnamedRegions),
		)
	}
	return models.NewReport(source, rooms, legend, stats), nil
}

// AnalyzeFile parses the plan file at path with the configured legend.
func (s *Service) AnalyzeFile(path string) (*models.Report, error) {
	if err := s.legend.Validate(); err != nil {
		return nil, err
	}
	s.logger.Debug("Reading floor plan", zap.String("file", path))
	grid, err := floorplan.LoadGrid(path)
	if err != nil {
		return nil, err
	}
	return s.Analyze(path, grid, s.legend)
}

// AnalyzeText parses plan text held in memory.
func (s *Service) AnalyzeText(source string, data []byte, legend floorplan.Legend) (*models.Report, error) {
	if err := legend.Validate(); err != nil {
		return nil, err
	}
	grid, err := floorplan.DecodeGrid(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return s.Analyze(source, grid, legend)
}

// AnalyzeObject parses the plan stored under key in the configured bucket.
func (s *Service) AnalyzeObject(ctx context.Context, key string, legend floorplan.Legend) (*models.Report, error) {
	if err := legend.Validate(); err != nil {
		return nil, err
	}
	grid, err := s.FetchGrid(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.Analyze(key, grid, legend)
}

// FetchGrid downloads and normalises the plan stored under key.
func (s *Service) FetchGrid(ctx context.Context, key string) (floorplan.Grid, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	s.logger.Debug("Fetching floor plan", zap.String("bucket", s.bucket), zap.String("key", key))

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.objectError(key, err)
	}
	defer obj.Close()

	// minio.Object reports a missing key on the first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.objectError(key, err)
	}
	grid, err := floorplan.DecodeGrid(data)
	if err != nil {
		return nil, fmt.Errorf("object %s/%s: %w", s.bucket, key, err)
	}
	return grid, nil
}

// ListPlans returns the keys stored under prefix in key order. Folder markers are skipped.
func (s *Service) ListPlans(ctx context.Context, prefix string) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s does not exist", floorplan.ErrNotFound, s.bucket)
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list plans under %q: %w", prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

// UploadFile normalises the plan at path and stores it under key.
// Plans without rows are rejected before anything is uploaded.
func (s *Service) UploadFile(ctx context.Context, path, key string) (minio.UploadInfo, error) {
	if s.client == nil {
		return minio.UploadInfo{}, ErrStorageDisabled
	}

	grid, err := floorplan.LoadGrid(path)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	if grid.Rows() == 0 {
		return minio.UploadInfo{}, fmt.Errorf("%w: %s", floorplan.ErrEmptyPlan, path)
	}

	data := []byte(grid.String() + "\n")
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s to %s/%s: %w", path, s.bucket, key, err)
	}

	s.logger.Info("Uploaded floor plan",
		zap.String("file", path),
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("rows", grid.Rows()),
	)
	return info, nil
}

func (s *Service) objectError(key string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: object %s/%s", floorplan.ErrNotFound, s.bucket, key)
	}
	return fmt.Errorf("%w: object %s/%s: %w", floorplan.ErrLoad, s.bucket, key, err)
}
