package request

import "errors"

var ErrNoQuestion = errors.New("Question is required")

type Ask struct {
	Question string `json:"question"`
	Analysis string `json:"analysis"` // 之前的分析结果，作为上下文
}

func (a *Ask) Valid() error {
	if a.Question == "" {
		return ErrNoQuestion
	}
	return nil
}
