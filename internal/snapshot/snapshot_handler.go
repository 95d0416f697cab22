package snapshot

import (
	"net/http"
	"strconv"
	"time"

	snapshoterrors "go-workforce/internal/snapshot/errors"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("snapshot.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("snapshot.handler")
	}
	return &Handler{service: service, logger: l}
}

// ListByUser returns recent snapshots, newest first. The limit query
// param caps the page, defaulting in the repository.
func (h *Handler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	snaps, err := h.service.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, snaps, nil)
}

// Generate triggers an on-demand snapshot of the week containing the
// optional date query param (default: current week).
func (h *Handler) Generate(c *gin.Context) {
	userID := c.Param("userId")

	at, ok := h.parseAt(c)
	if !ok {
		return
	}

	snap, err := h.service.Snapshot(c.Request.Context(), userID, at)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, snap, nil)
}

// GenerateTeam runs a batch snapshot for the given user_ids, or for all
// active users when the list is empty.
func (h *Handler) GenerateTeam(c *gin.Context) {
	var req struct {
		UserIDs []string `json:"user_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", nil)
		return
	}

	at, ok := h.parseAt(c)
	if !ok {
		return
	}

	result, err := h.service.GenerateForTeam(c.Request.Context(), req.UserIDs, at)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) parseAt(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	at, err := time.Parse("2006-01-02", raw)
	if err != nil {
		httpErr := apperror.ToHTTP(snapshoterrors.ErrInvalidDateFormat)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return time.Time{}, false
	}
	return at, true
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("snapshot request failed",
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
