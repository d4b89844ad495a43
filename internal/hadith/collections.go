package hadith

import "sort"

// CollectionInfo describes a supported hadith collection and the identifiers
// the external sources know it by.
type CollectionInfo struct {
	ID             string // short identifier used in URLs and cache keys
	Slug           string
	Name           string
	ArabicEdition  string // CDN edition carrying the Arabic original
	EnglishEdition string // CDN edition carrying the English translation
	APISlug        string // book slug at the paid API, empty if not offered there
}

// supportedCollections is the registry of collections the resolver will
// serve. Identifiers outside this map short-circuit to empty results so the
// UI degrades gracefully instead of erroring.
var supportedCollections = map[string]CollectionInfo{
	"bukhari": {
		ID:             "bukhari",
		Slug:           "sahih-al-bukhari",
		Name:           "Sahih al-Bukhari",
		ArabicEdition:  "ara-bukhari",
		EnglishEdition: "eng-bukhari",
		APISlug:        "sahih-bukhari",
	},
	"muslim": {
		ID:             "muslim",
		Slug:           "sahih-muslim",
		Name:           "Sahih Muslim",
		ArabicEdition:  "ara-muslim",
		EnglishEdition: "eng-muslim",
		APISlug:        "sahih-muslim",
	},
	"abudawud": {
		ID:             "abudawud",
		Slug:           "sunan-abi-dawud",
		Name:           "Sunan Abi Dawud",
		ArabicEdition:  "ara-abudawud",
		EnglishEdition: "eng-abudawud",
		APISlug:        "abu-dawood",
	},
	"tirmidhi": {
		ID:             "tirmidhi",
		Slug:           "jami-at-tirmidhi",
		Name:           "Jami` at-Tirmidhi",
		ArabicEdition:  "ara-tirmidhi",
		EnglishEdition: "eng-tirmidhi",
		APISlug:        "al-tirmidhi",
	},
	"nasai": {
		ID:             "nasai",
		Slug:           "sunan-an-nasai",
		Name:           "Sunan an-Nasa'i",
		ArabicEdition:  "ara-nasai",
		EnglishEdition: "eng-nasai",
		APISlug:        "sunan-nasai",
	},
	"ibnmajah": {
		ID:             "ibnmajah",
		Slug:           "sunan-ibn-majah",
		Name:           "Sunan Ibn Majah",
		ArabicEdition:  "ara-ibnmajah",
		EnglishEdition: "eng-ibnmajah",
		APISlug:        "ibn-e-majah",
	},
	"malik": {
		ID:             "malik",
		Slug:           "muwatta-malik",
		Name:           "Muwatta Malik",
		ArabicEdition:  "ara-malik",
		EnglishEdition: "eng-malik",
	},
	"nawawi40": {
		ID:             "nawawi40",
		Slug:           "forty-hadith-nawawi",
		Name:           "An-Nawawi's Forty Hadith",
		ArabicEdition:  "ara-nawawi40",
		EnglishEdition: "eng-nawawi40",
	},
}

// LookupCollection returns the registry entry for id.
func LookupCollection(id string) (CollectionInfo, bool) {
	info, ok := supportedCollections[id]
	return info, ok
}

// SupportedCollections lists every collection the resolver serves.
func SupportedCollections() []CollectionInfo {
	out := make([]CollectionInfo, 0, len(supportedCollections))
	for _, info := range supportedCollections {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IsSupported reports whether id names a serveable collection.
func IsSupported(id string) bool {
	_, ok := supportedCollections[id]
	return ok
}
