// Package repairshopr implements the client for the external ticketing
// service. Only the two bulk-read operations the sync engine consumes are
// exposed: list all tickets and list completed tickets.
package repairshopr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/shared/config"
	"repairsync/internal/shared/logger"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 100
	// Maximum response body size per page (4MB). Bulk reads are paginated,
	// so a single page should never come close.
	maxResponseSize = 4 << 20
	// Hard cap on pages per bulk read, guards against a broken meta block.
	maxPages = 500
)

type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	sanitizer  *bluemonday.Policy
	logger     logger.Interface
}

func NewClient(cfg *config.RepairShoprConfig, log logger.Interface) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// External payloads may embed HTML; strip everything before the
		// text reaches derivation or storage.
		sanitizer: bluemonday.StrictPolicy(),
		logger:    log,
	}
}

// ListAllTickets performs the "list all tickets" bulk read.
func (c *Client) ListAllTickets(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
	return c.listTickets(ctx, nil)
}

// ListCompletedTickets performs the "list all completed tickets" bulk read.
func (c *Client) ListCompletedTickets(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
	return c.listTickets(ctx, url.Values{"status": []string{"Completed"}})
}

func (c *Client) listTickets(ctx context.Context, params url.Values) ([]lifecycle.ExternalTicket, error) {
	var tickets []lifecycle.ExternalTicket

	for page := 1; page <= maxPages; page++ {
		pageTickets, totalPages, err := c.fetchPage(ctx, params, page)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, pageTickets...)

		if page >= totalPages {
			break
		}
	}

	c.logger.Debugw("fetched tickets from external service", "count", len(tickets))
	return tickets, nil
}

func (c *Client) fetchPage(ctx context.Context, params url.Values, page int) ([]lifecycle.ExternalTicket, int, error) {
	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.pageSize))

	endpoint := fmt.Sprintf("%s/tickets?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("ticket fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("ticket fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload ticketsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, 0, fmt.Errorf("failed to parse tickets response: %w", err)
	}

	tickets := make([]lifecycle.ExternalTicket, 0, len(payload.Tickets))
	for _, wire := range payload.Tickets {
		tickets = append(tickets, c.toExternalTicket(wire))
	}

	totalPages := payload.Meta.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}

	return tickets, totalPages, nil
}

func (c *Client) toExternalTicket(wire wireTicket) lifecycle.ExternalTicket {
	ticket := lifecycle.ExternalTicket{
		ID:          wire.ID,
		Number:      wire.Number,
		Subject:     c.sanitize(wire.Subject),
		Description: c.sanitize(wire.ProblemDescription),
		Status:      wire.Status,
		CreatedAt:   wire.CreatedAt,

		UpdatedAt:      wire.UpdatedAt,
		Priority:       wire.Priority,
		TicketType:     wire.TicketType,
		Technician:     wire.Technician,
		CustomerID:     wire.CustomerID,
		CustomerName:   wire.CustomerName,
		CustomerEmail:  wire.CustomerEmail,
		PartsUsed:      c.sanitizePtr(wire.PartsUsed),
		WorkCompleted:  c.sanitizePtr(wire.WorkCompleted),
		TestingResults: c.sanitizePtr(wire.TestingResults),
		InternalNotes:  c.sanitizePtr(wire.InternalNotes),
		EstimatedCost:  wire.EstimatedCost,
		ActualCost:     wire.ActualCost,
	}

	for _, wc := range wire.Comments {
		ticket.Comments = append(ticket.Comments, lifecycle.RawComment{
			Subject:   wc.Subject,
			Body:      c.sanitizePtr(wc.Body),
			Text:      c.sanitizePtr(wc.Text),
			Comment:   c.sanitizePtr(wc.Comment),
			Author:    wc.Author,
			UserName:  wc.UserName,
			Tech:      wc.Tech,
			CreatedAt: wc.CreatedAt,
			Date:      wc.Date,
			Timestamp: wc.Timestamp,
			Hidden:    wc.Hidden,
		})
	}

	return ticket
}

func (c *Client) sanitize(s string) string {
	return c.sanitizer.Sanitize(s)
}

func (c *Client) sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := c.sanitizer.Sanitize(*s)
	return &clean
}
