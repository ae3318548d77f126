package starliner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для сбора метрик запросов к backend
// nil допустим - метрики в этом случае не собираются
type MetricsObserver interface {
	ObserveUpstreamRequest(operation, outcome string, duration time.Duration)
}

// Client клиент для работы со Starliner backend
// Все вызовы - POST с JSON-телом и bearer-токеном, ответы приходят
// в едином конверте {success, data, message}
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента Starliner
func NewClient(baseURL, token string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// post выполняет POST-запрос к backend и возвращает поле data конверта
// payload == nil означает запрос без тела
func (c *Client) post(ctx context.Context, operation, path string, payload interface{}) (json.RawMessage, error) {
	started := time.Now()

	data, err := c.doPost(ctx, path, payload)

	outcome := "success"
	if err != nil {
		outcome = "error"
		c.log.Warn("Starliner %s failed: path=%s, error=%v", operation, path, err)
	} else {
		c.log.Info("Starliner %s completed: path=%s, duration=%s", operation, path, time.Since(started))
	}
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(operation, outcome, time.Since(started))
	}

	return data, err
}

func (c *Client) doPost(ctx context.Context, path string, payload interface{}) (json.RawMessage, error) {
	url := c.baseURL + path

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	default:
		// Пытаемся достать человекочитаемое сообщение из конверта
		var env envelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr == nil && env.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrBackendRejected, env.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrBackendRejected, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrBackendRejected, env.Message)
		}
		return nil, fmt.Errorf("%w: backend reported failure", ErrBackendRejected)
	}

	return env.Data, nil
}

// decodeData распаковывает поле data конверта в целевую структуру
func decodeData(data json.RawMessage, dst interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty data field", ErrInvalidResponse)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}
	return nil
}

// ============================================================
// Auth
// ============================================================

// Login аутентифицирует администратора
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	data, err := c.post(ctx, "auth_login", "/api/auth/login", req)
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ChangePassword меняет пароль администратора
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	_, err := c.post(ctx, "auth_change_password", "/api/auth/change_password", req)
	return err
}

// ============================================================
// Bookings
// ============================================================

// ListBookings возвращает все бронирования
func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	data, err := c.post(ctx, "bookings_list", "/api/bookings/list", nil)
	if err != nil {
		return nil, err
	}

	var bookings []domain.Booking
	if err := decodeData(data, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	data, err := c.post(ctx, "bookings_create", "/api/bookings/create", req)
	if err != nil {
		return nil, err
	}

	var result CreateBookingResult
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteBooking удаляет бронирование
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	_, err := c.post(ctx, "bookings_delete", "/api/bookings/delete", idPayload{ID: id})
	return err
}

// ============================================================
// Customers
// ============================================================

// ListCustomers возвращает всех клиентов
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	data, err := c.post(ctx, "customers_list", "/api/customers/list", nil)
	if err != nil {
		return nil, err
	}

	var customers []domain.Customer
	if err := decodeData(data, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer возвращает клиента по ID
func (c *Client) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	data, err := c.post(ctx, "customers_single", "/api/customers/single", idPayload{ID: id})
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := decodeData(data, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// ============================================================
// Tours
// ============================================================

// ListTours возвращает все туры
func (c *Client) ListTours(ctx context.Context) ([]domain.Tour, error) {
	data, err := c.post(ctx, "tours_list", "/api/tours/list", nil)
	if err != nil {
		return nil, err
	}

	var tours []domain.Tour
	if err := decodeData(data, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// CreateTour создает тур
func (c *Client) CreateTour(ctx context.Context, tour domain.Tour) (*domain.Tour, error) {
	data, err := c.post(ctx, "tours_create", "/api/tours/create", tour)
	if err != nil {
		return nil, err
	}

	var created domain.Tour
	if err := decodeData(data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTourBySlug возвращает тур по slug
func (c *Client) GetTourBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	data, err := c.post(ctx, "tours_single_slug", "/api/tours/single_slug", slugPayload{Slug: slug})
	if err != nil {
		return nil, err
	}

	var tour domain.Tour
	if err := decodeData(data, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

// ============================================================
// Block days
// ============================================================

// ListBlockDays возвращает все глобальные блокировки дат
func (c *Client) ListBlockDays(ctx context.Context) ([]domain.BlockDayRange, error) {
	data, err := c.post(ctx, "block_days_list", "/api/block_days/list", nil)
	if err != nil {
		return nil, err
	}

	var blocks []domain.BlockDayRange
	if err := decodeData(data, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// CreateBlockDay создает глобальную блокировку дат
func (c *Client) CreateBlockDay(ctx context.Context, block domain.BlockDayRange) (*domain.BlockDayRange, error) {
	data, err := c.post(ctx, "block_days_create", "/api/block_days/create", block)
	if err != nil {
		return nil, err
	}

	var created domain.BlockDayRange
	if err := decodeData(data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteBlockDay удаляет глобальную блокировку дат
func (c *Client) DeleteBlockDay(ctx context.Context, id string) error {
	_, err := c.post(ctx, "block_days_delete", "/api/block_days/delete", idPayload{ID: id})
	return err
}

// ============================================================
// Leads
// ============================================================

// ListLeads возвращает все лиды
func (c *Client) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	data, err := c.post(ctx, "leads_list", "/api/leads/list", nil)
	if err != nil {
		return nil, err
	}

	var leads []domain.Lead
	if err := decodeData(data, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateLead обновляет статус лида
func (c *Client) UpdateLead(ctx context.Context, req UpdateLeadRequest) error {
	_, err := c.post(ctx, "leads_update", "/api/leads/update", req)
	return err
}

// DeleteLead удаляет лид
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	_, err := c.post(ctx, "leads_delete", "/api/leads/delete", idPayload{ID: id})
	return err
}

// ============================================================
// Dashboard
// ============================================================

// DashboardCounts возвращает агрегированные счетчики для дашборда
func (c *Client) DashboardCounts(ctx context.Context) (*domain.DashboardCounts, error) {
	data, err := c.post(ctx, "dashboard_count", "/api/dashboard/count", nil)
	if err != nil {
		return nil, err
	}

	var counts domain.DashboardCounts
	if err := decodeData(data, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}
