package handlers

import (
	"delivery-marketplace-api/blobstore"
	"delivery-marketplace-api/storage"

	"go.uber.org/zap"
)

// Handler carries the dependencies every route needs. The store is injected
// at startup so tests can run against fresh instances.
type Handler struct {
	store storage.Store
	blobs blobstore.BlobStore
	log   *zap.Logger
}

func New(store storage.Store, blobs blobstore.BlobStore, log *zap.Logger) *Handler {
	return &Handler{store: store, blobs: blobs, log: log}
}
