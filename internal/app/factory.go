package app

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"surveyor/internal/adapters/http"
	"surveyor/internal/config"
	"surveyor/internal/domain"
	"surveyor/internal/services/auth"
	"surveyor/internal/services/authorize"
	"surveyor/internal/services/surveyresult"
)

// UseCaseFactory builds remote use-cases that share one HTTP adapter.
type UseCaseFactory struct {
	baseURL string
	adapter *http.Adapter
	loader  domain.CurrentAccountLoader
	logger  *slog.Logger
}

// NewUseCaseFactory creates a factory for the API described by cfg.
// Survey use-cases authorize their requests with the account held by loader.
func NewUseCaseFactory(cfg config.APIConfig, loader domain.CurrentAccountLoader, logger *slog.Logger) *UseCaseFactory {
	adapter := http.NewAdapter(http.Options{
		Timeout:            cfg.Timeout,
		InsecureSkipVerify: cfg.Insecure,
		RequestsPerSecond:  cfg.RateLimit,
		Burst:              cfg.RateBurst,
		RetryCount:         cfg.RetryCount,
	}, logger)

	return &UseCaseFactory{
		baseURL: cfg.URL,
		adapter: adapter,
		loader:  loader,
		logger:  logger,
	}
}

// APIURL joins path onto the configured base URL.
func (f *UseCaseFactory) APIURL(path string) string {
	return strings.TrimSuffix(f.baseURL, "/") + path
}

// MakeAuthentication builds the login use-case.
func (f *UseCaseFactory) MakeAuthentication() domain.Authentication {
	client := http.NewClient[domain.AuthenticationParams, domain.AccountModel](f.adapter)
	return auth.NewRemoteAuthentication(f.APIURL("/login"), client, f.logger)
}

// MakeAddAccount builds the signup use-case.
func (f *UseCaseFactory) MakeAddAccount() domain.AddAccount {
	client := http.NewClient[domain.AddAccountParams, domain.AccountModel](f.adapter)
	return auth.NewRemoteAddAccount(f.APIURL("/signup"), client, f.logger)
}

// MakeLoadSurveyResult builds the load use-case for one survey.
func (f *UseCaseFactory) MakeLoadSurveyResult(surveyID string) domain.LoadSurveyResult {
	client := http.NewClient[domain.NoBody, domain.RemoteSurveyResultModel](f.adapter)
	return surveyresult.NewRemoteLoadSurveyResult(
		f.surveyResultURL(surveyID),
		authorize.NewGetClient(client, f.loader, f.logger),
		f.logger,
	)
}

// MakeSaveSurveyResult builds the save use-case for one survey.
func (f *UseCaseFactory) MakeSaveSurveyResult(surveyID string) domain.SaveSurveyResult {
	client := http.NewClient[domain.SaveSurveyResultParams, domain.RemoteSurveyResultModel](f.adapter)
	return surveyresult.NewRemoteSaveSurveyResult(
		f.surveyResultURL(surveyID),
		authorize.NewPutClient(client, f.loader, f.logger),
		f.logger,
	)
}

func (f *UseCaseFactory) surveyResultURL(surveyID string) string {
	return f.APIURL(fmt.Sprintf("/surveys/%s/results", url.PathEscape(surveyID)))
}
