// Package quran provides a thin client over the public Quran text API,
// covering surah text, single ayah lookup and tafsir editions.
package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid ayah reference")
	ErrSurahOutOfRange  = errors.New("surah number out of range")
)

// Surah is one chapter of the Quran with its ayahs in a single edition.
type Surah struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"englishName"`
	RevelationType string `json:"revelationType"`
	NumberOfAyahs  int    `json:"numberOfAyahs"`
	Ayahs          []Ayah `json:"ayahs"`
}

// Ayah is a single verse.
type Ayah struct {
	Number        int    `json:"number"`
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
	JuzNumber     int    `json:"juz,omitempty"`
}

// Client fetches Quran text and tafsir from the public API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	textEdition   string
	tafsirEdition string
	rateLimiter   *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		time.Sleep(r.interval - since)
	}
	r.lastCall = time.Now()
}

// NewClient creates a Quran API client. textEdition and tafsirEdition name
// the editions used for GetSurah and GetTafsir respectively.
func NewClient(baseURL, textEdition, tafsirEdition string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:       baseURL,
		textEdition:   textEdition,
		tafsirEdition: tafsirEdition,
		rateLimiter:   newRateLimiter(250 * time.Millisecond),
	}
}

type surahResponse struct {
	Code int    `json:"code"`
	Data *Surah `json:"data"`
}

type ayahResponse struct {
	Code int   `json:"code"`
	Data *Ayah `json:"data"`
}

// GetSurah fetches a full surah (1-114) in the configured text edition.
func (c *Client) GetSurah(ctx context.Context, number int) (*Surah, error) {
	if number < 1 || number > 114 {
		return nil, fmt.Errorf("%w: %d", ErrSurahOutOfRange, number)
	}

	var payload surahResponse
	path := fmt.Sprintf("/surah/%d/%s", number, url.PathEscape(c.textEdition))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("surah %d: empty response", number)
	}
	return payload.Data, nil
}

// GetAyah fetches a single ayah by "surah:ayah" reference in the
// configured text edition.
func (c *Client) GetAyah(ctx context.Context, reference string) (*Ayah, error) {
	return c.fetchAyah(ctx, reference, c.textEdition)
}

// GetTafsir fetches the tafsir of a single ayah by "surah:ayah" reference.
func (c *Client) GetTafsir(ctx context.Context, reference string) (*Ayah, error) {
	return c.fetchAyah(ctx, reference, c.tafsirEdition)
}

func (c *Client) fetchAyah(ctx context.Context, reference, edition string) (*Ayah, error) {
	reference = strings.TrimSpace(reference)
	if !validReference(reference) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}

	var payload ayahResponse
	path := fmt.Sprintf("/ayah/%s/%s", url.PathEscape(reference), url.PathEscape(edition))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("ayah %s: empty response", reference)
	}
	return payload.Data, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	c.rateLimiter.wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch quran data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// validReference accepts "s:a" references like "2:255".
func validReference(reference string) bool {
	parts := strings.Split(reference, ":")
	if len(parts) != 2 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, ch := range part {
			if ch < '0' || ch > '9' {
				return false
			}
		}
	}
	return true
}
