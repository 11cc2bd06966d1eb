package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyor/internal/domain"
)

func TestLogger(t *testing.T) {
	logger := Logger()
	require.NotNil(t, logger)
}

func TestHTTPClientSpy_RecordsRequest(t *testing.T) {
	spy := NewHTTPClientSpy[domain.SaveSurveyResultParams, domain.NoBody]()
	params := MockSaveSurveyResultParams()

	resp, err := spy.Put(context.Background(), domain.HTTPRequest[domain.SaveSurveyResultParams]{
		URL:    "https://api.example.com/surveys/1/results",
		Method: domain.MethodPut,
		Body:   &params,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, spy.Calls)
	assert.Equal(t, domain.MethodPut, spy.Method)
	assert.Equal(t, &params, spy.Body)
}

func TestHTTPGetClientSpy_ReturnsConfiguredError(t *testing.T) {
	spy := NewHTTPGetClientSpy[domain.RemoteSurveyResultModel]()
	spy.Err = errors.New("connection reset")

	_, err := spy.Get(context.Background(), domain.HTTPRequest[domain.NoBody]{URL: "https://api.example.com"})

	require.Error(t, err)
	assert.Equal(t, "https://api.example.com", spy.URL)
}

func TestFixturesAreRandom(t *testing.T) {
	assert.NotEqual(t, MockAccountModel().AccessToken, MockAccountModel().AccessToken)
	assert.NotEqual(t, MockURL(), MockURL())

	params := MockAddAccountParams()
	assert.Equal(t, params.Password, params.PasswordConfirmation)
}
