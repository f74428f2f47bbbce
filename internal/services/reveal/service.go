package reveal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"cardreveal/internal/domain"
	"cardreveal/internal/share"
)

const (
	// DownloadName is the file Save writes.
	DownloadName = "card-reveal.png"
	// ContentType of every capture.
	ContentType = "image/png"
)

// Service exports revealed rounds.
type Service struct {
	capturer domain.Capturer
	uploader domain.Uploader
	links    *share.Builder
	outDir   string
	logger   *zap.Logger
}

// New constructs a Service. A nil uploader makes every share link-only.
func New(
	capturer domain.Capturer,
	uploader domain.Uploader,
	links *share.Builder,
	outDir string,
	logger *zap.Logger,
) *Service {
	if links == nil {
		links = share.New("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		capturer: capturer,
		uploader: uploader,
		links:    links,
		outDir:   outDir,
		logger:   logger,
	}
}

// Result is the outcome of a share.
type Result struct {
	Platform domain.Platform
	// URL is the outbound share URL to open.
	URL string
	// ImageURL is where the capture was uploaded; empty when degraded.
	ImageURL string
	// Degraded holds the capture or upload error that forced a link-only
	// share, or nil.
	Degraded error
}

// Save captures view and writes it to the output directory, returning the
// file path.
func (s *Service) Save(ctx context.Context, view domain.RevealView) (string, error) {
	png, err := s.capture(ctx, view)
	if err != nil {
		return "", err
	}
	if s.outDir != "" {
		if err := os.MkdirAll(s.outDir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	path := filepath.Join(s.outDir, DownloadName)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", DownloadName, err)
	}
	s.logger.Info("capture saved", zap.String("path", path), zap.Int("bytes", len(png)))
	return path, nil
}

// Share captures and uploads view, then builds the share URL for platform.
//
// It only returns an error when ctx is done; capture and upload failures
// are reported through Result.Degraded.
func (s *Service) Share(ctx context.Context, platform domain.Platform, view domain.RevealView) (Result, error) {
	imageURL, err := s.Publish(ctx, view)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		s.logger.Warn("share degraded to link only",
			zap.String("platform", string(platform)),
			zap.Error(err),
		)
	}
	return Result{
		Platform: platform,
		URL:      s.links.URL(platform, imageURL),
		ImageURL: imageURL,
		Degraded: err,
	}, nil
}

// Publish captures and uploads view, returning the uploaded image URL.
func (s *Service) Publish(ctx context.Context, view domain.RevealView) (string, error) {
	if s.uploader == nil {
		return "", fmt.Errorf("%w: no upload server configured", domain.ErrUploadFailed)
	}
	png, err := s.capture(ctx, view)
	if err != nil {
		return "", err
	}
	imageURL, err := s.uploader.Upload(ctx, png, ContentType)
	if err != nil {
		if !errors.Is(err, domain.ErrUploadFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
		}
		return "", err
	}
	return imageURL, nil
}

// Links returns share URLs for every platform pointing at imageURL, which
// may be empty.
func (s *Service) Links(imageURL string) map[domain.Platform]string {
	return s.links.All(imageURL)
}

func (s *Service) capture(ctx context.Context, view domain.RevealView) ([]byte, error) {
	if s.capturer == nil {
		return nil, fmt.Errorf("%w: no capture backend", domain.ErrCaptureFailed)
	}
	png, err := s.capturer.Capture(ctx, view)
	if err != nil {
		if !errors.Is(err, domain.ErrCaptureFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
		}
		return nil, err
	}
	return png, nil
}
