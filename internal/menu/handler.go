package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menu
// every section, ?<category>=<kind> narrows a section
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	catalog, err := h.service.Catalog()
	if err != nil {
		WriteError(c, err)
		return
	}

	sections := make([]Section, 0, len(Categories))
	for _, category := range Categories {
		sections = append(sections, catalog.Section(category, c.Query(string(category))))
	}

	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// --------------------------------------------------
// GET /menu/:category?kind=
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	category, err := ParseCategory(c.Param("category"))
	if err != nil {
		WriteError(c, err)
		return
	}

	catalog, err := h.service.Catalog()
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog.Section(category, c.Query("kind")))
}

// --------------------------------------------------
// Admin: force reload
// --------------------------------------------------
func (h *Handler) Reload(c *gin.Context) {
	if err := h.service.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  err.Error(),
			"status": h.service.Status(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": h.service.Status()})
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// WriteError maps catalog errors onto HTTP answers.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
