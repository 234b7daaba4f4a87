package settingsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего сервиса настроек салонов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента settings API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Create создает настройки салона
func (c *Client) Create(ctx context.Context, settings *domain.GeneralSettings) (*domain.GeneralSettings, error) {
	url := fmt.Sprintf("%s/internal/salons", c.baseURL)

	var out Settings
	if err := c.do(ctx, http.MethodPost, url, fromDomain(settings), http.StatusCreated, &out); err != nil {
		return nil, err
	}

	c.log.Info("settingsapi: created salon id=%d", out.SalonID)
	return c.toDomain(&out)
}

// Get получает настройки салона
func (c *Client) Get(ctx context.Context, salonID int64) (*domain.GeneralSettings, error) {
	url := fmt.Sprintf("%s/internal/salons/%d/settings", c.baseURL, salonID)

	var out Settings
	if err := c.do(ctx, http.MethodGet, url, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return c.toDomain(&out)
}

// UpdateLocation частично обновляет адрес, часовой пояс и расписание салона
func (c *Client) UpdateLocation(ctx context.Context, salonID int64, info domain.LocationInfo) (*domain.GeneralSettings, error) {
	url := fmt.Sprintf("%s/internal/salons/%d/location", c.baseURL, salonID)

	body := &LocationUpdate{
		Address:      info.Address,
		Timezone:     info.Timezone,
		WorkingHours: info.WorkingHours,
	}

	var out Settings
	if err := c.do(ctx, http.MethodPut, url, body, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return c.toDomain(&out)
}

func (c *Client) toDomain(s *Settings) (*domain.GeneralSettings, error) {
	settings, err := s.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: bad working hours: %v", ErrInvalidResponse, err)
	}
	return settings, nil
}

// do выполняет запрос и декодирует ответ в out
func (c *Client) do(ctx context.Context, method, url string, in interface{}, expected int, out interface{}) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
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
	case expected:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, readError(resp.Body))
	case http.StatusNotFound:
		return ErrSettingsNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("settingsapi: %s %s returned %d", method, url, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readError достает сообщение из тела ошибки
func readError(body io.Reader) string {
	raw, _ := io.ReadAll(body)
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(raw)
}
