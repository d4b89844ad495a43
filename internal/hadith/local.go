package hadith

import "strings"

// LocalStore is the in-process, read-only curated dataset. It is consulted
// before any network source; when it holds too few records for a query the
// resolver falls back to the CDN.
type LocalStore struct {
	byCollection map[string][]Record
}

// NewLocalStore builds a store over the bundled curated records.
func NewLocalStore() *LocalStore {
	return NewLocalStoreWith(curatedRecords)
}

// NewLocalStoreWith builds a store over an explicit record set. Records
// missing Arabic text are dropped on the way in so the store only ever
// serves well-formed data.
func NewLocalStoreWith(records []Record) *LocalStore {
	byCollection := make(map[string][]Record)
	for _, r := range wellFormed(records) {
		byCollection[r.CollectionID] = append(byCollection[r.CollectionID], r)
	}
	return &LocalStore{byCollection: byCollection}
}

// ByCollection returns every curated record for a collection.
func (s *LocalStore) ByCollection(collectionID string) []Record {
	return s.byCollection[collectionID]
}

// ByBook returns the curated records for one book of a collection.
func (s *LocalStore) ByBook(collectionID string, bookNumber int) []Record {
	return filterByBook(s.byCollection[collectionID], bookNumber)
}

// Search does naive case-insensitive substring matching over the English
// text and narrator. collectionID narrows the scan when non-empty.
func (s *LocalStore) Search(query, collectionID string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Record
	for id, records := range s.byCollection {
		if collectionID != "" && id != collectionID {
			continue
		}
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.EnglishText), q) ||
				strings.Contains(strings.ToLower(r.PrimaryNarrator), q) {
				out = append(out, r)
			}
		}
	}
	return out
}
