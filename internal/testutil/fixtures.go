package testutil

import (
	"fmt"

	"github.com/google/uuid"

	"surveyor/internal/domain"
)

// MockURL returns a unique endpoint URL.
func MockURL() string {
	return fmt.Sprintf("https://api.%s.example.com/api", uuid.NewString()[:8])
}

// MockAuthenticationParams returns random login credentials.
func MockAuthenticationParams() domain.AuthenticationParams {
	return domain.AuthenticationParams{
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: uuid.NewString(),
	}
}

// MockAddAccountParams returns random signup fields with a matching confirmation.
func MockAddAccountParams() domain.AddAccountParams {
	password := uuid.NewString()
	return domain.AddAccountParams{
		Name:                 "user-" + uuid.NewString()[:8],
		Email:                uuid.NewString()[:8] + "@example.com",
		Password:             password,
		PasswordConfirmation: password,
	}
}

// MockAccountModel returns an account with a random access token.
func MockAccountModel() domain.AccountModel {
	return domain.AccountModel{
		AccessToken: uuid.NewString(),
		Name:        "user-" + uuid.NewString()[:8],
	}
}

// MockRemoteSurveyResultModel returns a wire survey result dated 2021-01-01.
func MockRemoteSurveyResultModel() domain.RemoteSurveyResultModel {
	return domain.RemoteSurveyResultModel{
		Question: "Which framework do you prefer?",
		Answers: []domain.SurveyAnswerModel{
			{
				Image:                  "https://img.example.com/first.png",
				Answer:                 "first",
				Count:                  3,
				Percent:                75,
				IsCurrentAccountAnswer: true,
			},
			{
				Answer:  "second",
				Count:   1,
				Percent: 25,
			},
		},
		Date: "2021-01-01T00:00:00.000Z",
	}
}

// MockSaveSurveyResultParams returns a random answer.
func MockSaveSurveyResultParams() domain.SaveSurveyResultParams {
	return domain.SaveSurveyResultParams{Answer: "answer-" + uuid.NewString()[:8]}
}
