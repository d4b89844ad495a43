package hadith

// Grade is the authenticity classification of a hadith.
type Grade string

const (
	GradeSahih   Grade = "sahih"   // authentic
	GradeHasan   Grade = "hasan"   // good
	GradeDaif    Grade = "da'if"   // weak
	GradeMawdu   Grade = "mawdu"   // fabricated
	GradeUnknown Grade = "unknown" // unclassified by this system
)

// Record is the normalized hadith shape every source adapter maps into.
// ArabicText is required: records that come out of normalization without it
// are dropped rather than surfaced with a placeholder.
type Record struct {
	CollectionID    string `json:"collection_id"`
	BookNumber      *int   `json:"book_number,omitempty"` // nil if the source lacks book granularity
	HadithNumber    int    `json:"hadith_number"`
	ArabicText      string `json:"arabic_text"`
	EnglishText     string `json:"english_text,omitempty"`
	PrimaryNarrator string `json:"primary_narrator,omitempty"`
	Grade           Grade  `json:"grade"`
	Reference       string `json:"reference,omitempty"`
	InBookReference string `json:"in_book_reference,omitempty"`
}

// BookInfo describes a numbered subdivision of a collection.
type BookInfo struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	FirstHadith int    `json:"first_hadith,omitempty"`
	LastHadith  int    `json:"last_hadith,omitempty"`
	HadithCount int    `json:"hadith_count,omitempty"`
}

// Page is a paginated slice of records.
type Page struct {
	Hadiths []Record `json:"hadiths"`
	Total   int      `json:"total"`
	HasMore bool     `json:"has_more"`
}

// wellFormed drops records that failed normalization. A partial record is
// worse than a missing one for this domain.
func wellFormed(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ArabicText == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func filterByBook(records []Record, bookNumber int) []Record {
	var out []Record
	for _, r := range records {
		if r.BookNumber != nil && *r.BookNumber == bookNumber {
			out = append(out, r)
		}
	}
	return out
}
