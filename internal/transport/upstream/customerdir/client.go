// Package customerdir HTTP клиент сервиса клиентов: чтение профиля и списание средств
// с кошелька. Любой не-2xx статус или не-JSON ответ трактуется как ошибка.
package customerdir

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/shopspring/decimal"
)

const (
	RouteCustomer     = "/customers/%s"
	RouteWalletDeduct = "/customers/%s/wallet/deduct"
	RouteHealth       = "/health"
)

// CustomerView представление клиента с точки зрения сервиса продаж. Пароль и прочие
// приватные поля сервис клиентов наружу не отдает.
type CustomerView struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Wallet   decimal.Decimal `json:"wallet"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) Client {
	return Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// LookupCustomer получает данные клиента по username. В случае ошибки возвращает
// StatusCodeError, ContentTypeError или не типизированную ошибку.
func (c Client) LookupCustomer(ctx context.Context, username string) (*CustomerView, error) {
	url := c.baseURL + fmt.Sprintf(RouteCustomer, username)

	body, err := c.doJSON(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var view CustomerView
	if jsonErr := json.Unmarshal(body, &view); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return &view, nil
}

// DebitWallet списывает amount с кошелька клиента. Достаточность баланса повторно
// проверяет сам сервис клиентов, здесь важен только факт подтверждения.
func (c Client) DebitWallet(ctx context.Context, username string, amount decimal.Decimal) error {
	url := c.baseURL + fmt.Sprintf(RouteWalletDeduct, username)

	payload, marshalErr := json.Marshal(map[string]decimal.Decimal{"amount": amount})
	if marshalErr != nil {
		return fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	_, err := c.doJSON(ctx, http.MethodPost, url, payload)
	return err
}

// Health проверяет доступность сервиса клиентов.
func (c Client) Health(ctx context.Context) error {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+RouteHealth, nil)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return NewStatusCodeError(resp.StatusCode)
	}
	return nil
}

// doJSON выполняет запрос и возвращает тело успешного JSON ответа.
//
//nolint:nonamedreturns
func (c Client) doJSON(ctx context.Context, method, url string, payload []byte) (body []byte, err error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, url, reqBody)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Токен вызывающего пробрасывается дальше, сервис клиентов сам проверит права.
	if token, ok := tokens.BearerFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	if contentType := resp.Header.Get("Content-Type"); !isJSONContentType(contentType) {
		err = NewContentTypeError(contentType)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}
	return body, nil
}
