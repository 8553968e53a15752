// Package invstore HTTP клиент сервиса склада: чтение карточки товара и списание остатка.
// Любой не-2xx статус или не-JSON ответ трактуется как ошибка.
package invstore

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
	RouteItem        = "/inventory/%d"
	RouteStockRemove = "/inventory/%d/stock/remove"
	RouteHealth      = "/health"
)

type ItemView struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	StockCount   int             `json:"stock_count"`
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

// GetItem получает карточку товара по id. Отсутствующий товар приходит как
// StatusCodeError с кодом 404, интерпретация остается за вызывающим.
func (c Client) GetItem(ctx context.Context, itemID int64) (*ItemView, error) {
	url := c.baseURL + fmt.Sprintf(RouteItem, itemID)

	body, err := c.doJSON(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var view ItemView
	if jsonErr := json.Unmarshal(body, &view); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return &view, nil
}

// RemoveStock списывает quantity единиц товара. Достаточность остатка повторно
// проверяет сам сервис склада, здесь важен только факт подтверждения.
func (c Client) RemoveStock(ctx context.Context, itemID int64, quantity int) error {
	url := c.baseURL + fmt.Sprintf(RouteStockRemove, itemID)

	payload, marshalErr := json.Marshal(map[string]int{"quantity": quantity})
	if marshalErr != nil {
		return fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	_, err := c.doJSON(ctx, http.MethodPost, url, payload)
	return err
}

// Health проверяет доступность сервиса склада.
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
	// Токен вызывающего пробрасывается дальше, сервис склада сам проверит права.
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
