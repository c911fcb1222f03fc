package storage

import (
	"context"
	"errors"

	appprocurement "github.com/hsf/backend/internal/application/procurement"
)

// StubAttachmentStore is a placeholder attachment store for development
// environments without object storage. URLs it produces point nowhere.
type StubAttachmentStore struct {
	BaseURL string
}

// NewStubAttachmentStore creates a new StubAttachmentStore
func NewStubAttachmentStore() *StubAttachmentStore {
	return &StubAttachmentStore{
		BaseURL: "https://storage.invalid",
	}
}

var _ appprocurement.AttachmentSigner = (*StubAttachmentStore)(nil)

// PresignGet returns a stub download URL
func (s *StubAttachmentStore) PresignGet(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.BaseURL + "/download/" + key, nil
}

// PresignPut returns a stub upload URL
func (s *StubAttachmentStore) PresignPut(_ context.Context, key, _ string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.BaseURL + "/upload/" + key, nil
}
