package workload

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"
	workloaderrors "go-workforce/internal/workload/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	teamCacheKeyPrefix = "workload:team:"
	teamCacheTTL       = 60 * time.Second
)

func TeamCacheKey(start, end string) string {
	return teamCacheKeyPrefix + start + ":" + end
}

type Handler struct {
	service Service
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("workload.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workload.handler")
	}
	return &Handler{
		service: service,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("workload request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetUser returns the workload summary for one user.
func (h *Handler) GetUser(c *gin.Context) {
	userID := c.Param("userId")

	start, end, err := parseWindowQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), userID, start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// GetTeam returns the team rollup. The all-active-users variant is cached
// in redis for a short TTL and deduplicated with singleflight; explicit
// user_ids requests bypass the cache.
func (h *Handler) GetTeam(c *gin.Context) {
	start, end, err := parseWindowQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var userIDs []string
	if raw := c.Query("user_ids"); raw != "" {
		userIDs = strings.Split(raw, ",")
	}

	ctx := c.Request.Context()

	if len(userIDs) > 0 || h.rdb == nil {
		resp, err := h.service.AnalyzeTeam(ctx, userIDs, start, end)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	key := TeamCacheKey(start.Format("2006-01-02"), end.Format("2006-01-02"))
	result, err, _ := h.sf.Do(key, func() (any, error) {
		return h.teamWithCache(ctx, key, start, end)
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) teamWithCache(ctx context.Context, key string, start, end time.Time) (TeamSummary, error) {
	if cached, err := h.rdb.Get(ctx, key).Result(); err == nil {
		var team TeamSummary
		if jsonErr := json.Unmarshal([]byte(cached), &team); jsonErr == nil {
			return team, nil
		}
		// Unreadable cache entry; recompute below.
		h.logger.Warn("discarding malformed team cache entry", zap.String("key", key))
	}

	team, err := h.service.AnalyzeTeam(ctx, nil, start, end)
	if err != nil {
		return TeamSummary{}, err
	}

	if payload, jsonErr := json.Marshal(team); jsonErr == nil {
		if setErr := h.rdb.Set(ctx, key, payload, teamCacheTTL).Err(); setErr != nil {
			h.logger.Warn("team cache write failed", zap.Error(setErr))
		}
	}
	return team, nil
}

func parseWindowQuery(c *gin.Context) (time.Time, time.Time, error) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, workloaderrors.ErrInvalidDateFormat
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, workloaderrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, workloaderrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, workloaderrors.ErrInvalidDateRange
	}
	return start, end, nil
}
