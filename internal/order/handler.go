package order

import (
	"errors"
	"net/http"

	"combolunch/internal/menu"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenIssuer signs the bearer token handed out with a new session.
type TokenIssuer interface {
	GenerateToken(sessionID string) (string, error)
}

type Handler struct {
	service *Service
	tokens  TokenIssuer
}

func NewHandler(service *Service, tokens TokenIssuer) *Handler {
	return &Handler{service: service, tokens: tokens}
}

// --------------------------------------------------
// POST /sessions
// --------------------------------------------------
func (h *Handler) CreateSession(c *gin.Context) {
	session := h.service.CreateSession()

	token, err := h.tokens.GenerateToken(session.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"token":      token,
		"order":      session.Summary(),
	})
}

// --------------------------------------------------
// GET /session/menu/:category
// --------------------------------------------------
func (h *Handler) Section(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	category, err := menu.ParseCategory(c.Param("category"))
	if err != nil {
		writeError(c, err)
		return
	}

	section, err := h.service.Section(id, category)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// --------------------------------------------------
// POST /session/filters
// --------------------------------------------------
func (h *Handler) ToggleFilter(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Category string `json:"category" binding:"required"`
		Kind     string `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and kind are required"})
		return
	}

	category, err := menu.ParseCategory(req.Category)
	if err != nil {
		writeError(c, err)
		return
	}

	section, err := h.service.ToggleFilter(id, category, req.Kind)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// --------------------------------------------------
// POST /session/selection
// --------------------------------------------------
func (h *Handler) SelectDish(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Keyword string `json:"keyword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	summary, err := h.service.SelectDish(id, req.Keyword)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// GET /session/order
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// POST /session/submit
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.Submit(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if !result.Verdict.Valid {
		c.JSON(http.StatusUnprocessableEntity, result.Verdict)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"valid": true,
		"order": result.Order,
	})
}

// --------------------------------------------------
// GET /session/orders
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// sessionID reads the id the session middleware put on the context.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session context"})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDishNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		menu.WriteError(c, err)
	}
}
