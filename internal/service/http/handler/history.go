package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/internal/modules/cache"
	"github.com/reusedev/plant-hub/internal/modules/history"
	"github.com/reusedev/plant-hub/internal/modules/logs"
	"github.com/reusedev/plant-hub/internal/modules/storage"
	"github.com/reusedev/plant-hub/internal/service/http/handler/response"
)

func HistoryList(c *gin.Context) {
	entries, ok, err := cache.HistoryCacheManager().GetValue(cache.HistoryListKey)
	if err != nil {
		logs.Logger.Warn().Err(err).Msg("history-GetValue")
	}
	if ok {
		c.JSON(http.StatusOK, entries)
		return
	}
	generation := cache.HistoryGeneration()
	entries, err = history.GStore.List()
	if err != nil {
		logs.Logger.Err(err).Msg("history-List")
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	if _, err = cache.CacheHistoryList(generation, entries, config.GConfig.CacheTTL()); err != nil {
		logs.Logger.Warn().Err(err).Msg("history-CacheHistoryList")
	}
	c.JSON(http.StatusOK, entries)
}

// HistoryDelete removes one entry and its photo. Unknown ids still succeed.
func HistoryDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError("invalid history id"))
		return
	}
	removed, err := history.GStore.Delete(id)
	if err != nil && !errors.Is(err, history.ErrNotFound) {
		logs.Logger.Err(err).Int("id", id).Msg("history-Delete")
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	deleteImages(c.Request.Context(), removed)
	c.JSON(http.StatusOK, response.Success)
}

func HistoryClear(c *gin.Context) {
	removed, err := history.GStore.Clear()
	if err != nil {
		logs.Logger.Err(err).Msg("history-Clear")
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	deleteImages(c.Request.Context(), removed)
	logs.Logger.Info().Int("count", len(removed)).Msg("history cleared")
	c.JSON(http.StatusOK, response.Success)
}

func deleteImages(ctx context.Context, entries []history.Entry) {
	for _, v := range entries {
		if v.ImagePath == nil || *v.ImagePath == "" {
			continue
		}
		if err := storage.GSaver.Delete(ctx, *v.ImagePath); err != nil {
			logs.Logger.Err(err).Int("id", v.Id).Str("image_path", *v.ImagePath).Msg("history-deleteImage")
		}
	}
}
