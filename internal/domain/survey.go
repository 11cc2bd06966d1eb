package domain

import (
	"context"
	"time"
)

// SurveyAnswerModel is one answer option together with its tally.
type SurveyAnswerModel struct {
	Image                  string  `json:"image,omitempty"`
	Answer                 string  `json:"answer"`
	Count                  int     `json:"count"`
	Percent                float64 `json:"percent"`
	IsCurrentAccountAnswer bool    `json:"isCurrentAccountAnswer"`
}

// SurveyResultModel is the aggregated result of a survey.
type SurveyResultModel struct {
	Question string              `json:"question"`
	Answers  []SurveyAnswerModel `json:"answers"`
	Date     time.Time           `json:"date"`
}

// RemoteSurveyResultModel is the wire shape of a survey result; Date is ISO-8601.
type RemoteSurveyResultModel struct {
	Question string              `json:"question"`
	Answers  []SurveyAnswerModel `json:"answers"`
	Date     string              `json:"date"`
}

// SaveSurveyResultParams carries the answer chosen by the current account.
type SaveSurveyResultParams struct {
	Answer string `json:"answer"`
}

// LoadSurveyResult fetches the result of the survey it was built for.
type LoadSurveyResult interface {
	Load(ctx context.Context) (SurveyResultModel, error)
}

// SaveSurveyResult records an answer for the survey it was built for.
type SaveSurveyResult interface {
	Save(ctx context.Context, params SaveSurveyResultParams) error
}
