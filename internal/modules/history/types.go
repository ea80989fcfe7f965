package history

import (
	"errors"
	"time"

	"github.com/reusedev/plant-hub/internal/consts"
)

var ErrNotFound = errors.New("history entry not found")

// Entry is one stored analysis. Field names match the history file.
type Entry struct {
	Id                int     `json:"id"`
	Timestamp         string  `json:"timestamp"`
	Analysis          string  `json:"analysis"`
	FormattedAnalysis string  `json:"formatted_analysis,omitempty"`
	Type              string  `json:"type"`
	ImagePath         *string `json:"image_path"`
}

func NewEntry(id int, analysisType consts.AnalysisType, analysis, formatted string, imagePath *string, at time.Time) Entry {
	return Entry{
		Id:                id,
		Timestamp:         at.Format(consts.TimestampLayout),
		Analysis:          analysis,
		FormattedAnalysis: formatted,
		Type:              analysisType.String(),
		ImagePath:         imagePath,
	}
}
