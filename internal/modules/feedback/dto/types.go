package dto

type EvaluateInput struct {
	Metrics map[string]float64
}

type FeedbackOutput struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
