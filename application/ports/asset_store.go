package ports

import "context"

// UploadResult is the asset host's receipt for a stored blob: a durable URL
// and an opaque identifier.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// AssetStore accepts a binary blob and hands back a durable URL plus an
// opaque identifier. The blob is held only in memory for the duration of
// the call; a failed upload leaves no local state behind.
type AssetStore interface {
	Upload(ctx context.Context, blob []byte, contentType, folder string) (*UploadResult, error)
}
