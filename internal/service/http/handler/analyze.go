package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/internal/consts"
	"github.com/reusedev/plant-hub/internal/modules/ai"
	"github.com/reusedev/plant-hub/internal/modules/formatter"
	"github.com/reusedev/plant-hub/internal/modules/history"
	"github.com/reusedev/plant-hub/internal/modules/http_client"
	"github.com/reusedev/plant-hub/internal/modules/logs"
	"github.com/reusedev/plant-hub/internal/modules/storage"
	"github.com/reusedev/plant-hub/internal/service/http/handler/request"
	"github.com/reusedev/plant-hub/internal/service/http/handler/response"
	"github.com/reusedev/plant-hub/tools"
)

// imageDownloader fetches image_url; it never connects to loopback or
// private networks.
var imageDownloader = http_client.NewPublic(30 * time.Second)

// Analyze diagnoses the health of the plant in the uploaded photo.
func Analyze(c *gin.Context) {
	analyze(c, consts.Diagnosis, ai.DiagnosisPrompt)
}

// Identify identifies the plant in the uploaded photo.
func Identify(c *gin.Context) {
	analyze(c, consts.Identification, ai.IdentificationPrompt)
}

func analyze(c *gin.Context, analysisType consts.AnalysisType, prompt string) {
	maxBytes := int64(config.GConfig.MaxUploadMB) << 20
	form := request.Analyze{}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError(err.Error()))
		return
	}
	if err := form.Valid(maxBytes); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError(err.Error()))
		return
	}
	raw, err := readImage(c.Request.Context(), &form, maxBytes)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("type", analysisType.String()).Msg("analyze-readImage")
		c.JSON(http.StatusBadRequest, response.ParamError(err.Error()))
		return
	}
	img, err := tools.ConvertToJPEG(raw, config.GConfig.Image.JPEGQuality, config.GConfig.Image.MaxSide)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("detected", tools.DetectImageType(raw).String()).Msg("analyze-ConvertToJPEG")
		c.JSON(http.StatusBadRequest, response.ParamError("Invalid image"))
		return
	}

	text, err := ai.NewRequester(ai.GModel, analysisType).Do(c.Request.Context(), prompt, &ai.Image{Data: img, MIMEType: "image/jpeg"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	formatted := formatter.Format(text)

	id, err := history.GStore.NextID()
	if err != nil {
		logs.Logger.Err(err).Msg("analyze-NextID")
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	now := time.Now()
	imagePath := saveImage(c.Request.Context(), id, img, now)
	entry := history.NewEntry(id, analysisType, text, formatted, imagePath, now)
	if err = history.GStore.Append(entry); err != nil {
		logs.Logger.Err(err).Int("id", id).Msg("analyze-Append")
		deleteImages(c.Request.Context(), []history.Entry{entry})
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	logs.Logger.Info().Int("id", id).Str("type", analysisType.String()).Msg("analysis saved")
	c.JSON(http.StatusOK, response.NewAnalysis(text, formatted))
}

func readImage(ctx context.Context, form *request.Analyze, maxBytes int64) ([]byte, error) {
	if form.Image == nil {
		b, _, err := tools.GetOnlineImage(ctx, imageDownloader, form.ImageURL, maxBytes)
		return b, err
	}
	f, err := form.Image.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, errors.New("empty image")
	}
	return b, nil
}

// saveImage stores the photo for the history view. A failed save is logged
// and the entry is kept without an image.
func saveImage(ctx context.Context, id int, img []byte, at time.Time) *string {
	name := fmt.Sprintf("analysis_%d_%s.jpg", id, at.Format(consts.FileTimeLayout))
	ref, err := storage.GSaver.Save(ctx, name, img)
	if err != nil {
		logs.Logger.Err(err).Int("id", id).Str("name", name).Msg("analyze-saveImage")
		return nil
	}
	return &ref
}
