package memberservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPClient клиент для работы с MemberService
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента MemberService
func NewClient(baseURL string, timeout time.Duration, log Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClient получает клиента зала по ID
func (c *HTTPClient) GetClient(ctx context.Context, clientID int64) (*Client, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	var client Client
	if err := c.getJSON(ctx, url, &client, ErrClientNotFound); err != nil {
		return nil, err
	}

	return &client, nil
}

// HasQualifyingContract проверяет, что у клиента есть контракт в статусе
// "active" или "about_to_expire" на текущий момент
func (c *HTTPClient) HasQualifyingContract(ctx context.Context, clientID int64) (bool, error) {
	url := fmt.Sprintf("%s/internal/clients/%d/contract", c.baseURL, clientID)

	var contract ContractStatus
	if err := c.getJSON(ctx, url, &contract, ErrContractNotFound); err != nil {
		// Нет контракта - значит нет и права на запись
		if errors.Is(err, ErrContractNotFound) {
			return false, nil
		}
		return false, err
	}

	return contract.IsQualifying(), nil
}

// getJSON выполняет GET и декодирует ответ; notFoundErr возвращается на 404
func (c *HTTPClient) getJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
