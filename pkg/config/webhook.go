package config

// WebhookConfig holds per-service webhook ingress settings.
type WebhookConfig struct {
	// Secrets maps service name to its signing secret (Slack signing
	// secret, GitHub webhook secret, Todoist client secret, ...). A service
	// without a secret skips signature verification.
	Secrets map[string]string `yaml:"secrets"`

	// FitbitVerificationCode answers the Fitbit subscriber GET handshake.
	FitbitVerificationCode string `yaml:"fitbit_verification_code"`
}

// Secret returns the signing secret for a service, empty when unset.
func (c *WebhookConfig) Secret(service string) string {
	if c == nil || c.Secrets == nil {
		return ""
	}
	return c.Secrets[service]
}

// OAuthProviderConfig holds the token endpoint credentials for one
// connected service's refresh flow.
type OAuthProviderConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TokenURL     string `yaml:"token_url"`
}
