package response

type Analysis struct {
	Success           bool   `json:"success"`
	Analysis          string `json:"analysis"`
	FormattedAnalysis string `json:"formatted_analysis"`
}

func NewAnalysis(analysis, formatted string) *Analysis {
	return &Analysis{Success: true, Analysis: analysis, FormattedAnalysis: formatted}
}

type Answer struct {
	Success         bool   `json:"success"`
	Answer          string `json:"answer"`
	FormattedAnswer string `json:"formatted_answer"`
}

func NewAnswer(answer, formatted string) *Answer {
	return &Answer{Success: true, Answer: answer, FormattedAnswer: formatted}
}
