package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to an insight-style ledger-indexing node over HTTP.
// It implements LedgerService and Broadcaster.
type Client struct {
	base   string
	user   string
	pass   string
	client *http.Client
}

// Compile-time interface checks.
var (
	_ LedgerService = (*Client)(nil)
	_ Broadcaster   = (*Client)(nil)
)

// NewClient creates a client for the given node. The client uses HTTP
// Basic Auth when User is non-empty, and maintains a connection pool for
// efficient reuse.
func NewClient(cfg NodeConfig) *Client {
	return &Client{
		base: cfg.URL,
		user: cfg.User,
		pass: cfg.Password,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// coinsToKoinu converts a decimal coin amount (as reported by the node) to
// koinu. math.Round avoids floating-point truncation.
func coinsToKoinu(coins float64) int64 {
	return int64(math.Round(coins * 1e8))
}

// addrSummary maps the JSON fields of the address summary endpoint.
type addrSummary struct {
	Balance float64 `json:"balance"`
}

// GetBalance returns the confirmed balance for the address, in koinu.
// It calls `GET /api/addr/{address}?noTxList=1`.
func (c *Client) GetBalance(ctx context.Context, address string) (int64, error) {
	var summary addrSummary
	query := url.Values{"noTxList": {"1"}}
	if err := c.get(ctx, "/api/addr/"+url.PathEscape(address), query, &summary); err != nil {
		return 0, err
	}
	return coinsToKoinu(summary.Balance), nil
}

// utxoResult maps the JSON fields of the utxo listing endpoint.
type utxoResult struct {
	TxID   string  `json:"txid"`
	Vout   uint32  `json:"vout"`
	Amount float64 `json:"amount"`
}

// ListUnspent returns all unspent transaction outputs for the address, in
// the order the node reports them. It calls `GET /api/addr/{address}/utxo`
// with cache-busting (noCache plus a timestamp) so that two concurrent
// transaction builds never share a stale output list.
func (c *Client) ListUnspent(ctx context.Context, address string) ([]*UTXO, error) {
	query := url.Values{
		"noCache": {"1"},
		"_":       {strconv.FormatInt(time.Now().UnixNano(), 10)},
	}
	var results []utxoResult
	if err := c.get(ctx, "/api/addr/"+url.PathEscape(address)+"/utxo", query, &results); err != nil {
		return nil, err
	}

	utxos := make([]*UTXO, len(results))
	for i, r := range results {
		utxos[i] = &UTXO{
			TxID:   r.TxID,
			Vout:   r.Vout,
			Amount: coinsToKoinu(r.Amount),
		}
	}
	return utxos, nil
}

// sendRequest and sendResult frame the broadcast endpoint.
type sendRequest struct {
	RawTx string `json:"rawtx"`
}

type sendResult struct {
	TxID string `json:"txid"`
}

// BroadcastTx submits a raw transaction hex and returns the acknowledged
// txid. It calls `POST /api/tx/send`. Rejections are wrapped with
// ErrBroadcastRejected.
func (c *Client) BroadcastTx(ctx context.Context, rawTxHex string) (string, error) {
	var result sendResult
	if err := c.post(ctx, "/api/tx/send", sendRequest{RawTx: rawTxHex}, &result); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBroadcastRejected, err)
	}
	return result.TxID, nil
}

// get performs a GET request and decodes the JSON response into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("network: create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the JSON
// response into result.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("network: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("network: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result interface{}) error {
	if c.user != "" {
		req.SetBasicAuth(c.user, c.pass)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: HTTP %d: %s", ErrConnectionFailed, resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: decode response: %w", ErrInvalidResponse, err)
		}
	}
	return nil
}
