package handler

const (
	invalidInputMessage = "Invalid input. 'news_article' is required."
	invalidModeMessage  = "Invalid input. 'mode' must be 'headline' or 'summary'."
)

type GenerateRequest struct {
	NewsArticle string `json:"news_article" binding:"required"`
	Mode        string `json:"mode"`
}

type HeadlineResponse struct {
	Headline          string `json:"headline"`
	SentimentAnalysis string `json:"sentiment_analysis"`
	ImagePath         string `json:"image_path"`
}

type SummaryResponse struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
	ImagePath string `json:"image_path"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
