// Package mailchimp is the mailing-list upsert collaborator. It receives
// only accepted contact records (email present) and is responsible for
// create-vs-update semantics: members are addressed by the MD5 of the
// lowercased email, so a PUT is an idempotent upsert.
package mailchimp

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tunde-ajayi/cardscan/internal/entity"
)

type Config struct {
	APIKey       string
	ServerPrefix string // e.g. "us21"
	ListID       string
	Tag          string // applied to every upserted member; "" disables tagging
	Timeout      time.Duration

	// BaseURL overrides the API root; used by tests. Empty means the
	// standard https://{prefix}.api.mailchimp.com/3.0 endpoint.
	BaseURL string
}

type Client struct {
	cfg    Config
	httpc  *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type memberPayload struct {
	EmailAddress string      `json:"email_address"`
	StatusIfNew  string      `json:"status_if_new"`
	Status       string      `json:"status"`
	MergeFields  mergeFields `json:"merge_fields"`
}

type mergeFields struct {
	FirstName string `json:"FNAME"`
	LastName  string `json:"LNAME"`
	Company   string `json:"COMPANY"`
	Phone     string `json:"PHONE"`
	Website   string `json:"WEBSITE"`
}

// UpsertContact creates or updates the list member for an accepted record
// and then applies the configured tag (best effort).
func (c *Client) UpsertContact(ctx context.Context, rec *entity.ContactRecord) error {
	if rec == nil || rec.Email == "" {
		return fmt.Errorf("contact record has no email")
	}

	first, last := SplitName(rec.Name)
	phone := ""
	if len(rec.Phones) > 0 {
		phone = rec.Phones[0]
	}
	payload := memberPayload{
		EmailAddress: strings.ToLower(rec.Email),
		StatusIfNew:  "subscribed",
		Status:       "subscribed",
		MergeFields: mergeFields{
			FirstName: first,
			LastName:  last,
			Company:   rec.Company,
			Phone:     phone,
			Website:   rec.Website,
		},
	}
	if err := validateMemberPayload(payload); err != nil {
		return fmt.Errorf("member payload invalid: %w", err)
	}

	mhash := SubscriberHash(rec.Email)
	memberURL := fmt.Sprintf("%s/lists/%s/members/%s", c.baseURL(), c.cfg.ListID, mhash)

	if _, status, err := c.sendJSON(ctx, http.MethodPut, memberURL, payload); err != nil {
		return fmt.Errorf("mailchimp upsert (status %d): %w", status, err)
	}
	c.logger.Info("mailchimp.upsert.ok", "email", payload.EmailAddress, "source_file_id", rec.SourceFileID)

	if c.cfg.Tag != "" {
		tagURL := memberURL + "/tags"
		body := map[string]any{
			"tags": []map[string]string{{"name": c.cfg.Tag, "status": "active"}},
		}
		if _, status, err := c.sendJSON(ctx, http.MethodPost, tagURL, body); err != nil {
			// tagging is optional; the member is already upserted
			c.logger.Warn("mailchimp.tag.failed", "email", payload.EmailAddress, "status", status, "error", err)
		}
	}
	return nil
}

func (c *Client) baseURL() string {
	if c.cfg.BaseURL != "" {
		return strings.TrimSuffix(c.cfg.BaseURL, "/")
	}
	return fmt.Sprintf("https://%s.api.mailchimp.com/3.0", c.cfg.ServerPrefix)
}

// SubscriberHash is the MD5 of the lowercased address, Mailchimp's member key.
func SubscriberHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(email)))
	return hex.EncodeToString(sum[:])
}

// SplitName splits a printed name into FNAME/LNAME the way the list
// expects: first token, then everything else.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch {
	case len(parts) == 0:
		return "", ""
	case len(parts) == 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
