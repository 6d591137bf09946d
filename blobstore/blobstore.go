package blobstore

import "context"

// BlobStore is the narrow contract the API has with object storage: upload a
// blob, get back a public URL. Logos, cover images and product photos go
// through it.
type BlobStore interface {
	Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error)
}
