package hadith

import (
	"context"
	"log"
	"time"
)

// LocalSource is the curated in-process dataset.
type LocalSource interface {
	ByCollection(collectionID string) []Record
	ByBook(collectionID string, bookNumber int) []Record
	Search(query, collectionID string) []Record
}

// CDNSource fetches full collection datasets and book metadata.
type CDNSource interface {
	FetchCollection(ctx context.Context, info CollectionInfo) ([]Record, error)
	FetchBooks(ctx context.Context, info CollectionInfo) ([]BookInfo, error)
}

// APISource covers the capability gaps the CDN path cannot: free-text
// search and direct single-item lookup.
type APISource interface {
	HadithByNumber(ctx context.Context, info CollectionInfo, number int) (*Record, error)
	Search(ctx context.Context, query string, info *CollectionInfo, page, limit int) ([]Record, int, error)
}

// attemptState classifies one source attempt so the fallback decision is an
// explicit state transition rather than exception suppression.
type attemptState int

const (
	attemptOK attemptState = iota
	attemptEmpty
	attemptUnavailable
)

type attempt struct {
	state   attemptState
	records []Record
}

func classify(records []Record, err error, source, collectionID string) attempt {
	if err != nil {
		log.Printf("hadith: source %s unavailable for %s: %v", source, collectionID, err)
		return attempt{state: attemptUnavailable}
	}
	if len(records) == 0 {
		return attempt{state: attemptEmpty}
	}
	return attempt{state: attemptOK, records: records}
}

// ResolverConfig carries the resolver's dependencies. Cache and Sections
// are injected so tests can control the clock and a different cache can be
// swapped in without touching resolver logic.
type ResolverConfig struct {
	Local    LocalSource
	CDN      CDNSource
	API      APISource // optional; nil when no API key is configured
	Cache    *Cache[[]Record]
	Sections *Cache[[]BookInfo]

	// MinLocalRecords is the smallest local result set considered
	// sufficient; below it the resolver falls back to the CDN. Zero means
	// the default of 5.
	MinLocalRecords int
}

// DefaultMinLocalRecords is the fallback threshold used when none is
// configured.
const DefaultMinLocalRecords = 5

const (
	// DefaultCacheTTL applies to full collection datasets.
	DefaultCacheTTL = time.Hour
	// DefaultSectionTTL applies to book/section metadata fetches.
	DefaultSectionTTL = 2 * time.Hour
)

// Resolver answers hadith content queries by consulting sources in priority
// order and caching what the network returns. All public methods absorb
// upstream failures: callers get empty results, never errors.
type Resolver struct {
	local    LocalSource
	cdn      CDNSource
	api      APISource
	cache    *Cache[[]Record]
	sections *Cache[[]BookInfo]
	minLocal int
}

// NewResolver builds a resolver from cfg, applying defaults for anything
// unset.
func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.MinLocalRecords <= 0 {
		cfg.MinLocalRecords = DefaultMinLocalRecords
	}
	if cfg.Cache == nil {
		cfg.Cache = NewCache[[]Record](DefaultCacheTTL)
	}
	if cfg.Sections == nil {
		cfg.Sections = NewCache[[]BookInfo](DefaultSectionTTL)
	}
	return &Resolver{
		local:    cfg.Local,
		cdn:      cfg.CDN,
		api:      cfg.API,
		cache:    cfg.Cache,
		sections: cfg.Sections,
		minLocal: cfg.MinLocalRecords,
	}
}

// CollectionBooks returns the book list of a collection, derived from the
// CDN's section metadata and cached with the longer section TTL.
func (r *Resolver) CollectionBooks(ctx context.Context, collectionID string) []BookInfo {
	info, ok := LookupCollection(collectionID)
	if !ok {
		return nil
	}

	key := "sections:" + info.ID
	if books, ok := r.sections.Get(key); ok {
		return books
	}

	books, err := r.cdn.FetchBooks(ctx, info)
	if err != nil {
		log.Printf("hadith: fetching books for %s failed: %v", info.ID, err)
		return nil
	}
	if len(books) == 0 {
		return nil
	}

	r.sections.SetTTL(key, books, DefaultSectionTTL)
	return books
}

// BookHadiths returns one page of a book's hadiths. Local curated data
// wins when it holds at least the minimum viable record count; otherwise
// the full collection is resolved through the CDN cache and filtered by
// book in memory.
func (r *Resolver) BookHadiths(ctx context.Context, collectionID string, bookNumber, page, limit int) Page {
	return r.BookHadithsByGrade(ctx, collectionID, bookNumber, "", page, limit)
}

// BookHadithsByGrade is BookHadiths with an authenticity grade filter
// applied before pagination. An empty grade means no filtering.
func (r *Resolver) BookHadithsByGrade(ctx context.Context, collectionID string, bookNumber int, grade string, page, limit int) Page {
	info, ok := LookupCollection(collectionID)
	if !ok {
		return emptyPage()
	}

	local := wellFormed(r.local.ByBook(collectionID, bookNumber))
	if len(local) >= r.minLocal {
		return Paginate(FilterByGrade(local, grade), page, limit)
	}

	all, ok := r.collectionRecords(ctx, info)
	if !ok {
		// Sparse local data is still better than nothing.
		return Paginate(FilterByGrade(local, grade), page, limit)
	}
	return Paginate(FilterByGrade(filterByBook(all, bookNumber), grade), page, limit)
}

// Hadith resolves a single hadith by number, or nil if no source has it.
func (r *Resolver) Hadith(ctx context.Context, collectionID string, hadithNumber int) *Record {
	info, ok := LookupCollection(collectionID)
	if !ok {
		return nil
	}

	for _, rec := range wellFormed(r.local.ByCollection(collectionID)) {
		if rec.HadithNumber == hadithNumber {
			found := rec
			return &found
		}
	}

	if all, ok := r.collectionRecords(ctx, info); ok {
		for _, rec := range all {
			if rec.HadithNumber == hadithNumber {
				found := rec
				return &found
			}
		}
	}

	if r.api != nil {
		rec, err := r.api.HadithByNumber(ctx, info, hadithNumber)
		if err != nil {
			log.Printf("hadith: api lookup %s/%d failed: %v", collectionID, hadithNumber, err)
			return nil
		}
		if rec == nil || rec.ArabicText == "" {
			return nil
		}
		return rec
	}
	return nil
}

// Search matches hadiths by naive substring over the curated dataset,
// reaching for the API's search only when local matches are too sparse.
// An unsupported collection filter short-circuits to an empty page.
func (r *Resolver) Search(ctx context.Context, query, collectionID string, page, limit int) Page {
	if query == "" {
		return emptyPage()
	}

	var info *CollectionInfo
	if collectionID != "" {
		found, ok := LookupCollection(collectionID)
		if !ok {
			return emptyPage()
		}
		info = &found
	}

	local := wellFormed(r.local.Search(query, collectionID))
	// The API cannot scope a search to a collection it does not carry:
	// without a book filter it would match across all collections while
	// the results get labeled with the requested one.
	apiScopable := r.api != nil && (info == nil || info.APISlug != "")
	if len(local) >= r.minLocal || !apiScopable {
		return Paginate(local, page, limit)
	}

	if limit < 1 {
		limit = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	records, total, err := r.api.Search(ctx, query, info, page, limit)
	result := classify(wellFormed(records), err, "api", collectionID)
	if result.state != attemptOK {
		return Paginate(local, page, limit)
	}

	return Page{
		Hadiths: result.records,
		Total:   total,
		HasMore: (page-1)*limit+len(result.records) < total,
	}
}

// collectionRecords resolves the full normalized dataset of a collection
// through the cache, fetching from the CDN on a miss. The whole collection
// is cached under one key so the first request for any book pays the full
// fetch and every later request in the collection is a cache hit.
func (r *Resolver) collectionRecords(ctx context.Context, info CollectionInfo) ([]Record, bool) {
	key := "cdn:" + info.ID
	if records, ok := r.cache.Get(key); ok {
		return records, true
	}

	records, err := r.cdn.FetchCollection(ctx, info)
	result := classify(wellFormed(records), err, "cdn", info.ID)
	if result.state != attemptOK {
		return nil, false
	}

	r.cache.Set(key, result.records)
	return result.records, true
}

func emptyPage() Page {
	return Page{Hadiths: []Record{}}
}
