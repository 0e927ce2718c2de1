package webhook

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"time"
)

// slackTimestampSkew bounds how old a Slack request may be before it is
// rejected as a possible replay.
const slackTimestampSkew = 5 * time.Minute

// verifySignature dispatches to the per-service HMAC construction. A service
// with no configured secret skips verification.
func (s *Service) verifySignature(req *Request) error {
	secret := s.cfg.Secret(req.Service)
	if secret == "" {
		return nil
	}

	switch req.Service {
	case "slack":
		return verifySlack(secret, req)
	case "github":
		return verifyGitHub(secret, req)
	case "gmail", "google":
		return verifyGoogle(secret, req)
	case "microsoft", "outlook":
		return verifyMicrosoft(secret, req)
	case "notion":
		return verifyNotion(secret, req)
	case "todoist":
		return verifyTodoist(secret, req)
	case "fitbit":
		return verifyFitbit(secret, req)
	default:
		// Unknown services fall back to the GitHub-style construction.
		return verifyGitHub(secret, req)
	}
}

// verifySlack checks the v0 signing scheme: HMAC-SHA256 over
// "v0:<timestamp>:<body>" compared against X-Slack-Signature.
func verifySlack(secret string, req *Request) error {
	ts := req.Headers.Get("X-Slack-Request-Timestamp")
	sig := req.Headers.Get("X-Slack-Signature")
	if ts == "" || sig == "" {
		return fmt.Errorf("missing slack signature headers")
	}

	tsVal, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed slack timestamp: %w", err)
	}
	if math.Abs(time.Since(time.Unix(tsVal, 0)).Seconds()) > slackTimestampSkew.Seconds() {
		return fmt.Errorf("slack timestamp outside allowed skew")
	}

	base := fmt.Sprintf("v0:%s:%s", ts, req.Body)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(base))
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("slack signature mismatch")
	}
	return nil
}

// verifyGitHub checks the sha256=<hex> scheme in X-Hub-Signature-256.
func verifyGitHub(secret string, req *Request) error {
	sig := req.Headers.Get("X-Hub-Signature-256")
	if sig == "" {
		return fmt.Errorf("missing X-Hub-Signature-256 header")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(req.Body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// verifyGoogle checks the Pub/Sub push verification token carried in the
// token query parameter.
func verifyGoogle(secret string, req *Request) error {
	token := req.Query.Get("token")
	if token == "" {
		return fmt.Errorf("missing pub/sub verification token")
	}
	if !hmac.Equal([]byte(secret), []byte(token)) {
		return fmt.Errorf("pub/sub token mismatch")
	}
	return nil
}

// verifyMicrosoft checks HMAC-SHA256 over the body, base64-encoded, against
// X-Microsoft-Signature. Graph change notifications additionally carry the
// owner id in clientState, validated during tenant resolution.
func verifyMicrosoft(secret string, req *Request) error {
	sig := req.Headers.Get("X-Microsoft-Signature")
	if sig == "" {
		return fmt.Errorf("missing X-Microsoft-Signature header")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(req.Body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// verifyNotion checks sha256=<hex> over the body with the verification
// token, against X-Notion-Signature.
func verifyNotion(secret string, req *Request) error {
	sig := req.Headers.Get("X-Notion-Signature")
	if sig == "" {
		return fmt.Errorf("missing X-Notion-Signature header")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(req.Body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// verifyTodoist checks base64(HMAC-SHA256(body)) against
// X-Todoist-Hmac-SHA256.
func verifyTodoist(secret string, req *Request) error {
	sig := req.Headers.Get("X-Todoist-Hmac-SHA256")
	if sig == "" {
		return fmt.Errorf("missing X-Todoist-Hmac-SHA256 header")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(req.Body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// verifyFitbit checks base64(HMAC-SHA1(body)) with the client secret plus
// "&" as the key, against X-Fitbit-Signature.
func verifyFitbit(secret string, req *Request) error {
	sig := req.Headers.Get("X-Fitbit-Signature")
	if sig == "" {
		return fmt.Errorf("missing X-Fitbit-Signature header")
	}
	mac := hmac.New(sha1.New, []byte(secret+"&"))
	mac.Write(req.Body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
