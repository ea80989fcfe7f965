package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/plant-hub/internal/consts"
	"github.com/reusedev/plant-hub/internal/modules/ai"
	"github.com/reusedev/plant-hub/internal/modules/formatter"
	"github.com/reusedev/plant-hub/internal/service/http/handler/request"
	"github.com/reusedev/plant-hub/internal/service/http/handler/response"
)

// Ask answers a follow-up question about an earlier analysis. Answers are not stored.
func Ask(c *gin.Context) {
	req := request.Ask{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError("Invalid JSON body"))
		return
	}
	if err := req.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError(err.Error()))
		return
	}
	text, err := ai.NewRequester(ai.GModel, consts.Question).Do(c.Request.Context(), ai.AskPrompt(req.Analysis, req.Question), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.NewAnswer(text, formatter.Format(text)))
}
