// Package upload stores user-submitted avatar images on local disk and
// derives the thumbnail variants served alongside the original.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"skillswap/config"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/service"
)

const (
	minDimension = 200
	jpegQuality  = 85
)

var thumbnailSizes = []int{200, 100}

// avatarService implements service.AvatarService on the local filesystem.
type avatarService struct {
	dir       string
	publicURL string
	maxBytes  int64
	logger    *slog.Logger
}

// NewAvatarService creates the upload directory if needed and returns the
// service.
func NewAvatarService(cfg *config.Config, logger *slog.Logger) (service.AvatarService, error) {
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload directory %s", cfg.Uploads.Dir)
	}

	return &avatarService{
		dir:       cfg.Uploads.Dir,
		publicURL: strings.TrimRight(cfg.Uploads.PublicURL, "/"),
		maxBytes:  cfg.Uploads.MaxBytes,
		logger:    logger,
	}, nil
}

// Store validates the image, writes the original under a random name, and
// renders the thumbnail variants. Validation failures surface as 400s.
func (s *avatarService) Store(_ context.Context, r io.Reader) (*service.AvatarResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read avatar upload")
	}
	if int64(len(data)) > s.maxBytes {
		return nil, domainerrors.BadRequest(
			fmt.Sprintf("avatar must not exceed %d bytes", s.maxBytes))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.BadRequest("avatar must be a JPEG, PNG, or WebP image")
	}

	bounds := img.Bounds()
	if bounds.Dx() < minDimension || bounds.Dy() < minDimension {
		return nil, domainerrors.BadRequest(
			fmt.Sprintf("avatar must be at least %dx%d pixels", minDimension, minDimension))
	}

	name := "avatar-" + uuid.NewString()
	original := name + extensionFor(format)
	if err := os.WriteFile(filepath.Join(s.dir, original), data, 0o644); err != nil {
		return nil, errors.Wrap(err, "write avatar file")
	}

	result := &service.AvatarResult{URL: s.publicURL + "/uploads/avatars/" + original}
	for _, size := range thumbnailSizes {
		thumbName := fmt.Sprintf("%s-%dx%d.jpg", name, size, size)
		if err := s.writeThumbnail(img, size, thumbName); err != nil {
			return nil, err
		}
		result.Thumbnails = append(result.Thumbnails, s.publicURL+"/uploads/avatars/"+thumbName)
	}

	s.logger.Info("stored avatar", "file", original, "format", format,
		"width", bounds.Dx(), "height", bounds.Dy())

	return result, nil
}

// writeThumbnail center-crops the source to a square and scales it down to
// size x size before encoding it as JPEG.
func (s *avatarService) writeThumbnail(img image.Image, size int, name string) error {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, squareCrop(img.Bounds()), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return errors.Wrapf(err, "encode thumbnail %s", name)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write thumbnail %s", name)
	}

	return nil
}

// squareCrop returns the largest centered square inside bounds.
func squareCrop(bounds image.Rectangle) image.Rectangle {
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}

	x := bounds.Min.X + (bounds.Dx()-side)/2
	y := bounds.Min.Y + (bounds.Dy()-side)/2

	return image.Rect(x, y, x+side, y+side)
}

func extensionFor(format string) string {
	switch format {
	case "png":
		return ".png"
	case "webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
