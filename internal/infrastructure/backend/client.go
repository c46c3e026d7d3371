// Package backend adaptador de solo lectura sobre la API REST del backend de la
// plataforma de delivery: perfil del vendedor y órdenes.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository  = (*Client)(nil)
	_ repository.VendorRepository = (*Client)(nil)
)

// maxBody límite de lectura de una respuesta (listado completo de órdenes de un vendedor).
const maxBody = 32 << 20

// Client adaptador HTTP. Usa net/http de la librería estándar; no hay SDK del backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL sin barra final, ej: https://api.example.com/v1.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Protocolo ─────────────────────────────────────────────────────────────────

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type vendorPayload struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Commission *float64  `json:"commission"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ── Implementación de los puertos ─────────────────────────────────────────────

// GetByID GET /vendors/{id}. 404 → domain.ErrNotFound.
func (c *Client) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	var env envelope[vendorPayload]
	if err := c.get(ctx, "/vendors/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	p := env.Data
	return &entity.Vendor{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Address:    p.Address,
		Commission: p.Commission,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

// ListByVendor GET /orders?vendorId={id}. El backend devuelve el listado completo.
// Un registro malformado no invalida la respuesta: llega marcado y se rechaza al normalizar.
func (c *Client) ListByVendor(ctx context.Context, vendorID string) ([]entity.RawOrder, error) {
	var env envelope[dto.RawOrderList]
	q := url.Values{"vendorId": []string{vendorID}}
	if err := c.get(ctx, "/orders", q, &env); err != nil {
		return nil, err
	}
	return dto.RawOrdersToEntities(env.Data), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUpstream, ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrUpstream, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: backend rechazó el token (HTTP %d)", domain.ErrUpstream, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrUpstream, resp.StatusCode, truncate(raw, 256))
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: respuesta inválida: %v", domain.ErrUpstream, err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
