package services

import (
	"context"
	"strings"

	"memoirbox-backend/application/ports"
	pkgerrors "memoirbox-backend/pkg/errors"
)

// MaxUploadSize is the upload size ceiling in bytes.
const MaxUploadSize = 10 << 20 // 10MB

// uploadImage enforces the upload contract shared by the memory and
// timeline surfaces: a non-empty image blob no larger than 10MB. Rejections
// happen before the asset store is contacted.
func uploadImage(ctx context.Context, assets ports.AssetStore, blob []byte, contentType, folder string) (*ports.UploadResult, error) {
	if len(blob) == 0 {
		return nil, pkgerrors.NewValidationError("No file uploaded")
	}
	if len(blob) > MaxUploadSize {
		return nil, pkgerrors.NewValidationError("File exceeds the 10MB limit")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, pkgerrors.NewValidationError("Only image files are allowed")
	}

	result, err := assets.Upload(ctx, blob, contentType, folder)
	if err != nil {
		return nil, pkgerrors.NewExternalError("asset store", err)
	}
	return result, nil
}
