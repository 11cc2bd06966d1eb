package surveyresult

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyor/internal/testutil"
)

func TestToSurveyResultModel(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected time.Time
	}{
		{
			name:     "milliseconds in UTC",
			date:     "2021-01-01T00:00:00.000Z",
			expected: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "no fractional seconds",
			date:     "2022-06-15T12:30:45Z",
			expected: time.Date(2022, 6, 15, 12, 30, 45, 0, time.UTC),
		},
		{
			name:     "numeric offset",
			date:     "2022-06-15T09:30:45.250-03:00",
			expected: time.Date(2022, 6, 15, 12, 30, 45, 250_000_000, time.UTC),
		},
		{
			name:     "date only",
			date:     "2021-01-01",
			expected: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "no offset reads as UTC",
			date:     "2021-01-01T00:00:00",
			expected: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "no offset with fraction",
			date:     "2021-01-01T10:20:30.5",
			expected: time.Date(2021, 1, 1, 10, 20, 30, 500_000_000, time.UTC),
		},
		{
			name:     "minutes precision in UTC",
			date:     "2021-01-01T00:00Z",
			expected: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "minutes precision without offset",
			date:     "2021-01-01T08:15",
			expected: time.Date(2021, 1, 1, 8, 15, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := testutil.MockRemoteSurveyResultModel()
			remote.Date = tt.date

			result, err := ToSurveyResultModel(remote)

			require.NoError(t, err)
			assert.Equal(t, remote.Question, result.Question)
			assert.Equal(t, remote.Answers, result.Answers)
			assert.True(t, tt.expected.Equal(result.Date), "expected %s, got %s", tt.expected, result.Date)
		})
	}
}

func TestToSurveyResultModel_InvalidDate(t *testing.T) {
	for _, date := range []string{"", "yesterday", "2021-13-01T00:00:00Z", "01/01/2021", "2021-01-01 00:00:00", "2021-02-30"} {
		remote := testutil.MockRemoteSurveyResultModel()
		remote.Date = date

		_, err := ToSurveyResultModel(remote)

		assert.Error(t, err, "date %q", date)
	}
}
