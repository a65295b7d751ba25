package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// シークレット未設定。呼び出し側は500で返す（fail closed）。
var ErrMissingSecret = errors.New("paystack secret key is not configured")

// 検証結果。Amountはコボ。
type VerifyResult struct {
	Status    string
	Amount    int64
	Currency  string
	Reference string
}

// Succeeded はゲートウェイが決済成功を報告したかどうか。
func (r VerifyResult) Succeeded() bool {
	return r.Status == "success"
}

type Client struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(secretKey string, opts ...Option) *Client {
	c := &Client{
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		//検証APIが固まってもリクエスト全体を巻き込まないようにタイムアウトを切る
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Reference string `json:"reference"`
	} `json:"data"`
}

// Verify はGET /transaction/verify/:reference を呼ぶ。
// 成否はVerifyResult.Statusで返し、通信・認証エラーだけerrorにする。
func (c *Client) Verify(ctx context.Context, reference string) (VerifyResult, error) {
	if c.secretKey == "" {
		return VerifyResult{}, ErrMissingSecret
	}

	endpoint := c.baseURL + "/transaction/verify/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return VerifyResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	res, err := c.http.Do(req)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("paystack verify: %w", err)
	}
	defer res.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return VerifyResult{}, fmt.Errorf("paystack verify decode: %w", err)
	}

	//404（reference不明）などは「成功していない」扱いで返す
	if res.StatusCode != http.StatusOK || !body.Status {
		return VerifyResult{Status: "failed", Reference: reference}, nil
	}

	return VerifyResult{
		Status:    body.Data.Status,
		Amount:    body.Data.Amount,
		Currency:  body.Data.Currency,
		Reference: body.Data.Reference,
	}, nil
}
