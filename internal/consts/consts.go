package consts

type AnalysisType string

const (
	Diagnosis      AnalysisType = "diagnosis"
	Identification AnalysisType = "identification"
	Question       AnalysisType = "question"
)

func (a AnalysisType) String() string {
	return string(a)
}

const (
	DefaultModel = "gemini-2.5-flash"

	TimestampLayout = "2006-01-02T15:04:05.000000"
	FileTimeLayout  = "20060102_150405"
)
