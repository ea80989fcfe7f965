package ai

import (
	"context"
	"errors"
	"time"

	"github.com/reusedev/plant-hub/internal/consts"
	"github.com/reusedev/plant-hub/internal/modules/logs"
	"github.com/reusedev/plant-hub/internal/modules/metrics"
)

var ErrEmptyResponse = errors.New("model returned an empty response")

// Image is an inline image attached to a prompt.
type Image struct {
	Data     []byte
	MIMEType string
}

type VisionModel interface {
	// Generate sends prompt and the optional image, returning the model's text reply.
	Generate(ctx context.Context, prompt string, image *Image) (string, error)
	Name() string
}

// GModel is the model used by the http handlers.
var GModel VisionModel

// Requester wraps a VisionModel with request logging and metrics.
type Requester struct {
	Model VisionModel
	Type  consts.AnalysisType
}

func NewRequester(model VisionModel, analysisType consts.AnalysisType) *Requester {
	return &Requester{Model: model, Type: analysisType}
}

func (r *Requester) Do(ctx context.Context, prompt string, image *Image) (string, error) {
	start := time.Now()
	text, err := r.Model.Generate(ctx, prompt, image)
	duration := time.Since(start)
	if err == nil && text == "" {
		err = ErrEmptyResponse
	}
	metrics.ModelLatency.WithLabelValues(r.Type.String()).Observe(duration.Seconds())
	if err != nil {
		metrics.ModelRequests.WithLabelValues(r.Type.String(), "failed").Inc()
		logs.Logger.Error().Err(err).
			Str("model", r.Model.Name()).
			Str("type", r.Type.String()).
			Bool("with_image", image != nil).
			Dur("duration", duration).
			Msg("model request failed")
		return "", err
	}
	metrics.ModelRequests.WithLabelValues(r.Type.String(), "succeed").Inc()
	logs.Logger.Info().
		Str("model", r.Model.Name()).
		Str("type", r.Type.String()).
		Bool("with_image", image != nil).
		Int("response_len", len(text)).
		Dur("duration", duration).
		Msg("model request")
	return text, nil
}
