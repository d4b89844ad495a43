package hadith

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"
)

const cdnTimeout = 30 * time.Second

// CDNClient fetches pre-indexed collection editions from the public hadith
// CDN. Editions are minified JSON arrays, one edition per language, with
// section metadata carrying first/last hadith numbers per book. No
// authentication is required.
type CDNClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCDNClient creates a CDN client against the given base URL.
func NewCDNClient(baseURL string) *CDNClient {
	return &CDNClient{
		httpClient: &http.Client{
			Timeout: cdnTimeout,
		},
		baseURL: baseURL,
	}
}

// cdnEdition mirrors the CDN's minified per-edition payload.
type cdnEdition struct {
	Metadata struct {
		Name           string                      `json:"name"`
		Sections       map[string]string           `json:"sections"`
		SectionDetails map[string]cdnSectionDetail `json:"section_details"`
	} `json:"metadata"`
	Hadiths []cdnHadith `json:"hadiths"`
}

type cdnSectionDetail struct {
	HadithNumberFirst int `json:"hadithnumber_first"`
	HadithNumberLast  int `json:"hadithnumber_last"`
}

type cdnHadith struct {
	HadithNumber int        `json:"hadithnumber"`
	ArabicNumber float64    `json:"arabicnumber"`
	Text         string     `json:"text"`
	Grades       []cdnGrade `json:"grades"`
	Reference    struct {
		Book   int `json:"book"`
		Hadith int `json:"hadith"`
	} `json:"reference"`
}

type cdnGrade struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// FetchCollection downloads the Arabic and English editions of a collection
// and joins them by hadith number into normalized records. Records whose
// Arabic text is missing from the join are dropped.
func (c *CDNClient) FetchCollection(ctx context.Context, info CollectionInfo) ([]Record, error) {
	arabic, err := c.fetchEdition(ctx, info.ArabicEdition)
	if err != nil {
		return nil, fmt.Errorf("fetch arabic edition: %w", err)
	}

	english, err := c.fetchEdition(ctx, info.EnglishEdition)
	if err != nil {
		return nil, fmt.Errorf("fetch english edition: %w", err)
	}

	arabicByNumber := make(map[int]cdnHadith, len(arabic.Hadiths))
	for _, h := range arabic.Hadiths {
		arabicByNumber[h.HadithNumber] = h
	}

	records := make([]Record, 0, len(english.Hadiths))
	for _, eng := range english.Hadiths {
		ara, ok := arabicByNumber[eng.HadithNumber]
		if !ok || ara.Text == "" {
			continue
		}
		records = append(records, normalizeCDNHadith(info, ara, eng))
	}
	return records, nil
}

// FetchBooks derives the book list of a collection from the English
// edition's section metadata.
func (c *CDNClient) FetchBooks(ctx context.Context, info CollectionInfo) ([]BookInfo, error) {
	edition, err := c.fetchEdition(ctx, info.EnglishEdition)
	if err != nil {
		return nil, fmt.Errorf("fetch edition sections: %w", err)
	}

	books := make([]BookInfo, 0, len(edition.Metadata.Sections))
	for key, name := range edition.Metadata.Sections {
		number, err := strconv.Atoi(key)
		if err != nil || number == 0 {
			// Section "0" is the CDN's preamble pseudo-book.
			continue
		}
		book := BookInfo{Number: number, Name: name}
		if detail, ok := edition.Metadata.SectionDetails[key]; ok {
			book.FirstHadith = detail.HadithNumberFirst
			book.LastHadith = detail.HadithNumberLast
			if detail.HadithNumberLast >= detail.HadithNumberFirst {
				book.HadithCount = detail.HadithNumberLast - detail.HadithNumberFirst + 1
			}
		}
		books = append(books, book)
	}

	sort.Slice(books, func(i, j int) bool { return books[i].Number < books[j].Number })
	return books, nil
}

func (c *CDNClient) fetchEdition(ctx context.Context, edition string) (*cdnEdition, error) {
	url := fmt.Sprintf("%s/editions/%s.min.json", c.baseURL, edition)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch edition %s: %w", edition, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edition %s: unexpected status %d", edition, resp.StatusCode)
	}

	var payload cdnEdition
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode edition %s: %w", edition, err)
	}
	return &payload, nil
}

// normalizeCDNHadith maps a joined CDN pair onto the canonical record.
func normalizeCDNHadith(info CollectionInfo, ara, eng cdnHadith) Record {
	record := Record{
		CollectionID:    info.ID,
		HadithNumber:    eng.HadithNumber,
		ArabicText:      ara.Text,
		EnglishText:     eng.Text,
		PrimaryNarrator: ExtractNarrator(eng.Text),
		Grade:           GradeUnknown,
		Reference:       fmt.Sprintf("%s %d", info.Name, eng.HadithNumber),
	}
	if eng.Reference.Book > 0 {
		book := eng.Reference.Book
		record.BookNumber = &book
		record.InBookReference = fmt.Sprintf("Book %d, Hadith %d", eng.Reference.Book, eng.Reference.Hadith)
	}
	if len(eng.Grades) > 0 {
		record.Grade = NormalizeGrade(eng.Grades[0].Grade)
	}
	return record
}
