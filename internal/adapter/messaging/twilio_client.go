// Package messaging delivers outbound WhatsApp messages through the
// Twilio REST API. One attempt per message; retrying is the caller's
// policy (and the fan-out's policy is not to).
package messaging

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.twilio.com/2010-04-01"

type TwilioClient struct {
	accountSID string
	authToken  string
	from       string // e.g. "whatsapp:+14155238886"
	apiBase    string
	httpClient *http.Client
}

// NewTwilioClient builds a client sending from the given WhatsApp
// number. An empty accountSID disables sending: messages are logged
// and dropped, which keeps local development working without
// credentials.
func NewTwilioClient(accountSID, authToken, from string, timeout time.Duration) *TwilioClient {
	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		apiBase:    defaultAPIBase,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *TwilioClient) SendMessage(ctx context.Context, to, text string) error {
	if c.accountSID == "" {
		log.Printf("twilio not configured, skipping send to %s: %s", to, text)
		return nil
	}

	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.apiBase, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send message: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
