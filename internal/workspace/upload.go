package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doculens/doculens/internal/catalog"
	"github.com/doculens/doculens/internal/domain"
	"github.com/rs/zerolog/log"
)

// Uploader is the upload pipeline: quota admission, advisory file checks,
// submission to the backend, and insertion of the confirmed record into the
// catalog. Only one upload may be in flight at a time; a concurrent call gets
// domain.ErrBusy.
type Uploader struct {
	store    *catalog.Store
	backend  domain.Backend
	limit    int
	maxBytes int64

	mu   sync.Mutex
	busy bool
}

// NewUploader creates the upload pipeline. limit is the session document
// quota; maxBytes is the advisory client-side size ceiling.
func NewUploader(store *catalog.Store, backend domain.Backend, limit int, maxBytes int64) *Uploader {
	return &Uploader{
		store:    store,
		backend:  backend,
		limit:    limit,
		maxBytes: maxBytes,
	}
}

// Busy reports whether an upload is currently in flight.
func (u *Uploader) Busy() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.busy
}

// Upload validates the file at path and submits it to the backend. On
// success the confirmed record has been inserted at the front of the catalog.
// Quota and advisory admission failures return before any network call.
//
// The record is inserted only after the backend confirms it; there is no
// optimistic insertion to roll back.
func (u *Uploader) Upload(ctx context.Context, path string) (*domain.DocumentRecord, error) {
	if !catalog.CanUpload(u.store.Len(), u.limit) {
		return nil, domain.ErrQuotaExceeded
	}

	u.mu.Lock()
	if u.busy {
		u.mu.Unlock()
		return nil, domain.ErrBusy
	}
	u.busy = true
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		u.busy = false
		u.mu.Unlock()
	}()

	// Advisory admission; the backend remains the authority.
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return nil, fmt.Errorf("only PDF files are supported")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	if u.maxBytes > 0 && info.Size() > u.maxBytes {
		return nil, fmt.Errorf("file exceeds the %dMB size limit", u.maxBytes/(1<<20))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	defer file.Close()

	record, err := u.backend.Upload(ctx, filepath.Base(path), file)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	if !u.store.InsertFront(*record) {
		// Same identity already present; the catalog keeps the existing
		// record and stays free of duplicates.
		log.Warn().Str("document_id", record.ID).Msg("upload returned an identity already in the catalog")
	}

	log.Info().
		Str("document_id", record.ID).
		Str("status", record.Status).
		Int("total_pages", record.TotalPages).
		Msg("document uploaded")

	return record, nil
}
