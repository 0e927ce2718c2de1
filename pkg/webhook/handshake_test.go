package webhook

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/pkg/config"
)

func TestHandshakeFitbitVerify(t *testing.T) {
	s := &Service{cfg: &config.WebhookConfig{FitbitVerificationCode: "code-123"}}

	t.Run("correct code", func(t *testing.T) {
		req := &Request{Service: "fitbit", Method: http.MethodGet, Query: url.Values{"verify": []string{"code-123"}}}
		result := s.handshake(req)
		require.NotNil(t, result)
		assert.Equal(t, http.StatusNoContent, result.Status)
	})

	t.Run("wrong code", func(t *testing.T) {
		req := &Request{Service: "fitbit", Method: http.MethodGet, Query: url.Values{"verify": []string{"nope"}}}
		result := s.handshake(req)
		require.NotNil(t, result)
		assert.Equal(t, http.StatusNotFound, result.Status)
	})

	t.Run("regular delivery passes through", func(t *testing.T) {
		req := &Request{Service: "fitbit", Method: http.MethodPost, Query: url.Values{}, Body: []byte(`[]`)}
		assert.Nil(t, s.handshake(req))
	})
}

func TestHandshakeMicrosoftValidationToken(t *testing.T) {
	s := &Service{cfg: &config.WebhookConfig{}}
	req := &Request{
		Service: "microsoft",
		Method:  http.MethodPost,
		Query:   url.Values{"validationToken": []string{"echo-me"}},
	}
	result := s.handshake(req)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "echo-me", result.Text)
}

func TestHandshakeSlackURLVerification(t *testing.T) {
	s := &Service{cfg: &config.WebhookConfig{}}
	req := &Request{
		Service: "slack",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Body:    []byte(`{"type":"url_verification","challenge":"ch-42"}`),
	}
	result := s.handshake(req)
	require.NotNil(t, result)
	assert.Equal(t, "ch-42", result.Text)
}

func TestHandshakeNotionVerificationToken(t *testing.T) {
	s := &Service{cfg: &config.WebhookConfig{}}
	req := &Request{
		Service: "notion",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Body:    []byte(`{"verification_token":"secret_token"}`),
	}
	result := s.handshake(req)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "secret_token", result.JSON["verification_token"])
}
