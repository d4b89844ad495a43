package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/quran"
)

// QuranReader is the Quran lookup surface the endpoints depend on.
type QuranReader interface {
	GetSurah(ctx context.Context, number int) (*quran.Surah, error)
	GetAyah(ctx context.Context, reference string) (*quran.Ayah, error)
	GetTafsir(ctx context.Context, reference string) (*quran.Ayah, error)
}

var _ QuranReader = (*quran.Client)(nil)

type QuranController struct {
	client QuranReader
}

func NewQuranController(client QuranReader) *QuranController {
	return &QuranController{client: client}
}

// GetSurah returns a full surah in the configured text edition.
func (ctrl *QuranController) GetSurah(c *gin.Context) {
	number, ok := parseIntParam(c, "number")
	if !ok {
		return
	}

	surah, err := ctrl.client.GetSurah(c.Request.Context(), number)
	if err != nil {
		ctrl.respondLookupError(c, err, "surah")
		return
	}

	c.JSON(http.StatusOK, surah)
}

// GetAyah returns a single ayah by "surah:ayah" reference.
func (ctrl *QuranController) GetAyah(c *gin.Context) {
	ayah, err := ctrl.client.GetAyah(c.Request.Context(), c.Param("reference"))
	if err != nil {
		ctrl.respondLookupError(c, err, "ayah")
		return
	}

	c.JSON(http.StatusOK, ayah)
}

// GetTafsir returns the tafsir of a single ayah.
func (ctrl *QuranController) GetTafsir(c *gin.Context) {
	tafsir, err := ctrl.client.GetTafsir(c.Request.Context(), c.Param("reference"))
	if err != nil {
		ctrl.respondLookupError(c, err, "tafsir")
		return
	}

	c.JSON(http.StatusOK, tafsir)
}

func (ctrl *QuranController) respondLookupError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, quran.ErrInvalidReference), errors.Is(err, quran.ErrSurahOutOfRange):
		respondBadRequest(c, err.Error())
	case errors.Is(err, quran.ErrNotFound):
		respondNotFound(c, resource)
	default:
		respondInternalError(c, err, "quran lookup")
	}
}
