// Package hadith resolves hadith content queries against multiple backing
// sources in priority order: a local curated dataset first, then a public
// CDN of pre-indexed collections, with a paid third-party API reserved for
// single-item lookups and search. Source records are normalized into one
// Record shape and cached in memory with a time-based expiry.
//
// The public Resolver methods never return errors for upstream failures.
// Network problems, malformed payloads and unknown collections all degrade
// to empty results so page rendering keeps working; the underlying cause is
// only visible in server logs.
package hadith
