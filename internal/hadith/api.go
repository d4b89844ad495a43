package hadith

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const apiTimeout = 15 * time.Second

// APIClient talks to the paid third-party hadith API. It is the most
// expensive source, so the resolver only reaches for it when the CDN path
// cannot cover a case: free-text search and single-item lookups. The client
// is disabled entirely when no API key is configured.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewAPIClient creates a client against baseURL authenticating with apiKey.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Enabled reports whether an API key is configured.
func (c *APIClient) Enabled() bool {
	return c.apiKey != ""
}

// apiResponse mirrors the API's nested pagination envelope.
type apiResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Hadiths struct {
		CurrentPage int         `json:"current_page"`
		LastPage    int         `json:"last_page"`
		Total       int         `json:"total"`
		Data        []apiHadith `json:"data"`
	} `json:"hadiths"`
}

type apiHadith struct {
	HadithNumber    string `json:"hadithNumber"`
	HadithEnglish   string `json:"hadithEnglish"`
	HadithArabic    string `json:"hadithArabic"`
	EnglishNarrator string `json:"englishNarrator"`
	Status          string `json:"status"`
	Chapter         struct {
		ChapterNumber string `json:"chapterNumber"`
	} `json:"chapter"`
	Book struct {
		BookSlug string `json:"bookSlug"`
	} `json:"book"`
}

// HadithByNumber looks up a single hadith of a collection by number.
func (c *APIClient) HadithByNumber(ctx context.Context, info CollectionInfo, number int) (*Record, error) {
	if info.APISlug == "" {
		return nil, fmt.Errorf("collection %s not offered by the API", info.ID)
	}

	params := url.Values{}
	params.Set("book", info.APISlug)
	params.Set("hadithNumber", strconv.Itoa(number))
	params.Set("paginate", "1")

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Hadiths.Data) == 0 {
		return nil, nil
	}

	record, ok := normalizeAPIHadith(info.ID, resp.Hadiths.Data[0])
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Search queries the API's English-text search. info narrows the search to
// one collection when non-nil. Returns the page of records plus the total
// match count reported by the API.
func (c *APIClient) Search(ctx context.Context, query string, info *CollectionInfo, page, limit int) ([]Record, int, error) {
	if info != nil && info.APISlug == "" {
		return nil, 0, fmt.Errorf("collection %s not offered by the API", info.ID)
	}

	params := url.Values{}
	params.Set("hadithEnglish", query)
	if info != nil {
		params.Set("book", info.APISlug)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("paginate", strconv.Itoa(limit))
	}

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	var collectionID string
	if info != nil {
		collectionID = info.ID
	}

	records := make([]Record, 0, len(resp.Hadiths.Data))
	for _, h := range resp.Hadiths.Data {
		record, ok := normalizeAPIHadith(collectionID, h)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records, resp.Hadiths.Total, nil
}

func (c *APIClient) get(ctx context.Context, params url.Values) (*apiResponse, error) {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/hadiths?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch hadiths: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// normalizeAPIHadith maps an API record onto the canonical shape. Records
// without Arabic text fail normalization and are excluded.
func normalizeAPIHadith(collectionID string, h apiHadith) (Record, bool) {
	if h.HadithArabic == "" {
		return Record{}, false
	}

	number, err := strconv.Atoi(h.HadithNumber)
	if err != nil {
		return Record{}, false
	}

	record := Record{
		CollectionID: collectionID,
		HadithNumber: number,
		ArabicText:   h.HadithArabic,
		EnglishText:  h.HadithEnglish,
		Grade:        NormalizeGrade(h.Status),
	}
	if record.CollectionID == "" {
		record.CollectionID = h.Book.BookSlug
	}
	if h.EnglishNarrator != "" {
		record.PrimaryNarrator = h.EnglishNarrator
	} else {
		record.PrimaryNarrator = ExtractNarrator(h.HadithEnglish)
	}
	if chapter, err := strconv.Atoi(h.Chapter.ChapterNumber); err == nil && chapter > 0 {
		record.BookNumber = &chapter
		record.InBookReference = fmt.Sprintf("Book %d, Hadith %d", chapter, number)
	}
	return record, true
}
