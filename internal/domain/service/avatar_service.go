package service

import (
	"context"
	"io"
)

// AvatarResult describes a stored avatar. URL points at the original upload
// and is what gets written to the user record; Thumbnails lists the derived
// sizes, largest first.
type AvatarResult struct {
	URL        string
	Thumbnails []string
}

// AvatarService validates, stores, and thumbnails user avatar uploads.
type AvatarService interface {
	// Store reads the uploaded image, rejects unsupported formats, oversized
	// payloads, and images below the minimum dimensions, then writes the
	// original plus thumbnails to the upload directory.
	Store(ctx context.Context, r io.Reader) (*AvatarResult, error)
}
