// Package surveyresult implements the survey result use-cases against the remote API.
package surveyresult

import (
	"fmt"
	"time"

	"surveyor/internal/domain"
)

// dateLayouts are the ISO-8601 forms accepted for a result date, tried in
// order. Forms without an offset are read as UTC.
//
//nolint:gochecknoglobals // Fixed parse table
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ToSurveyResultModel converts the wire survey result into the domain model.
// Question and answers are copied as-is; the ISO-8601 date is parsed.
func ToSurveyResultModel(remote domain.RemoteSurveyResultModel) (domain.SurveyResultModel, error) {
	date, err := parseDate(remote.Date)
	if err != nil {
		return domain.SurveyResultModel{}, fmt.Errorf("invalid survey result date %q: %w", remote.Date, err)
	}

	return domain.SurveyResultModel{
		Question: remote.Question,
		Answers:  remote.Answers,
		Date:     date,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
