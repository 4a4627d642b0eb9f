package catalog

import (
	"sync"

	"github.com/doculens/doculens/internal/domain"
)

// Store is the in-memory document catalog for the current session. The
// sequence is ordered most-recently-uploaded first. Selection is a weak
// reference: removing the selected record clears the selection in the same
// operation, so it never dangles.
//
// Every operation is atomic under the store mutex. Serializing conflicting
// network calls is the callers' job (upload and delete pipelines); the store
// itself cannot be corrupted by interleaved completions.
type Store struct {
	mu         sync.Mutex
	docs       []domain.DocumentRecord
	selectedID string
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{}
}

// Initialize replaces the sequence wholesale and clears the selection. Used
// after the initial catalog fetch.
func (s *Store) Initialize(records []domain.DocumentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make([]domain.DocumentRecord, len(records))
	copy(s.docs, records)
	s.selectedID = ""
}

// InsertFront prepends a record. The selection is left untouched. Returns
// false if a record with the same identity is already present, in which case
// the catalog is unchanged.
func (s *Store) InsertFront(record domain.DocumentRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if d.ID == record.ID {
			return false
		}
	}
	s.docs = append([]domain.DocumentRecord{record}, s.docs...)
	return true
}

// RemoveByID removes the matching record. Removing an absent id is a no-op,
// not an error: deletions may race with a concurrent catalog refresh. If the
// removed record was selected, the selection is cleared in the same
// operation. Returns whether a record was removed.
func (s *Store) RemoveByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.docs {
		if d.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
			}
			return true
		}
	}
	return false
}

// Select sets the selection to the given id. Selection is a UI hint, not an
// ownership claim, so the id is not validated against the sequence. An empty
// id clears the selection.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

// ClearSelection clears the selection.
func (s *Store) ClearSelection() {
	s.Select("")
}

// SelectedID returns the currently selected identity, or "" when nothing is
// selected.
func (s *Store) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Selected returns the selected record, if it is present in the sequence.
func (s *Store) Selected() (domain.DocumentRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedID == "" {
		return domain.DocumentRecord{}, false
	}
	for _, d := range s.docs {
		if d.ID == s.selectedID {
			return d, true
		}
	}
	return domain.DocumentRecord{}, false
}

// Documents returns a copy of the sequence, most-recently-uploaded first.
func (s *Store) Documents() []domain.DocumentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.DocumentRecord, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len returns the number of documents in the catalog.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
