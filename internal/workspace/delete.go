package workspace

import (
	"context"
	"fmt"

	"github.com/doculens/doculens/internal/catalog"
	"github.com/doculens/doculens/internal/domain"
	"github.com/rs/zerolog/log"
)

// Deleter is the deletion workflow: confirm intent, delete remotely, then
// remove locally. The local record is never removed before the backend
// confirms the deletion, so a failed remote delete cannot leave the catalog
// ahead of the server.
type Deleter struct {
	store     *catalog.Store
	backend   domain.Backend
	confirm   domain.Confirmer
	summaries domain.SummaryProvider
}

// NewDeleter creates the deletion workflow. summaries may be nil when no
// summary cache is wired.
func NewDeleter(store *catalog.Store, backend domain.Backend, confirm domain.Confirmer, summaries domain.SummaryProvider) *Deleter {
	return &Deleter{
		store:     store,
		backend:   backend,
		confirm:   confirm,
		summaries: summaries,
	}
}

// RequestDelete asks the user to confirm deleting the named document, then
// deletes it remotely and removes it from the catalog. If the removed record
// was selected, the selection is cleared with the removal. Returns false with
// a nil error when the user declines; nothing is sent in that case.
func (d *Deleter) RequestDelete(ctx context.Context, id, displayName string) (bool, error) {
	if !d.confirm.ConfirmDelete(displayName) {
		return false, nil
	}

	if err := d.backend.DeleteDocument(ctx, id); err != nil {
		return false, fmt.Errorf("failed to delete %q: %w", displayName, err)
	}

	d.store.RemoveByID(id)
	if d.summaries != nil {
		d.summaries.Invalidate(id)
	}

	log.Info().Str("document_id", id).Msg("document deleted")
	return true, nil
}
