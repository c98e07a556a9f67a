// Package upstream implements the PlatformGateway against the platform's
// REST API. It owns the response envelope and the wire-to-entity field
// normalization; nothing outside this package sees upstream field casing.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"squareone/config"
	deliverycontext "squareone/internal/delivery/context"
	"squareone/internal/domain/entity"
	"squareone/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// envelope is the upstream response wrapper: { "status": ..., "data": ... }.
type envelope struct {
	Status json.RawMessage `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// ClientParams holds dependencies for the gateway client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient is the constructor for the platform API gateway.
func NewClient(params ClientParams) service.PlatformGateway {
	return &client{
		baseURL: strings.TrimRight(params.Config.Upstream.BaseURL, "/"),
		httpc:   &http.Client{Timeout: params.Config.Upstream.Timeout},
		logger:  params.Logger,
	}
}

// do issues one request and returns the envelope's data on 2xx. Transport
// failures and non-2xx statuses map to service.ErrUnavailable (401 and 403
// map to service.ErrUnauthorized); a 2xx body that is not the envelope
// shape maps to service.ErrBadPayload.
func (c *client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encode request payload")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	// Propagate the dashboard's request id so upstream logs correlate.
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("platform API request failed",
			slog.String("path", path),
			slog.Any("error", err))

		return nil, errors.Wrapf(service.ErrUnavailable, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, errors.Wrapf(service.ErrUnauthorized, "%s %s: status %d", method, path, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("platform API returned error status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))

		return nil, errors.Wrapf(service.ErrUnavailable, "%s %s: status %d", method, path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(service.ErrUnavailable, "%s %s: read body: %v", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(service.ErrBadPayload, "%s %s: %v", method, path, err)
	}

	return env.Data, nil
}

// fetchList decodes an envelope whose data must be a JSON array. Anything
// else is a bad payload: callers treat that as "no data available", never as
// a successful empty fetch.
func fetchList[W any](ctx context.Context, c *client, path string) ([]W, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.Wrapf(service.ErrBadPayload, "GET %s: data is not an array", path)
	}

	var items []W
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(service.ErrBadPayload, "GET %s: %v", path, err)
	}

	return items, nil
}

func (c *client) Login(ctx context.Context, email, password string) (entity.Admin, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return entity.Admin{}, err
	}

	var admin wireAdmin
	if err := json.Unmarshal(data, &admin); err != nil {
		return entity.Admin{}, errors.Wrapf(service.ErrBadPayload, "login: %v", err)
	}

	return admin.toEntity(), nil
}

func (c *client) EditProfile(ctx context.Context, admin entity.Admin) error {
	_, err := c.do(ctx, http.MethodPut, "/profile/edit", map[string]string{
		"id":       admin.ID,
		"email":    admin.Email,
		"fullname": admin.FullName,
	})

	return err
}

func (c *client) FetchBrands(ctx context.Context) ([]entity.Brand, error) {
	wires, err := fetchList[wireBrand](ctx, c, "/brand/get")
	if err != nil {
		return nil, err
	}

	brands := make([]entity.Brand, 0, len(wires))
	for _, w := range wires {
		brands = append(brands, w.toEntity())
	}

	return brands, nil
}

func (c *client) CreateBrand(ctx context.Context, brand entity.Brand) (entity.Brand, error) {
	data, err := c.do(ctx, http.MethodPost, "/brand/create", brandPayload(brand))
	if err != nil {
		return entity.Brand{}, err
	}

	var created wireBrand
	if err := json.Unmarshal(data, &created); err != nil {
		return entity.Brand{}, errors.Wrapf(service.ErrBadPayload, "create brand: %v", err)
	}
	if created.BrandID == "" {
		return entity.Brand{}, errors.Wrap(service.ErrBadPayload, "create brand: missing brandid")
	}
	brand.ID = created.BrandID

	return brand, nil
}

func (c *client) EditBrand(ctx context.Context, brand entity.Brand) error {
	payload := brandPayload(brand)
	payload["brandid"] = brand.ID
	_, err := c.do(ctx, http.MethodPut, "/brand/edit", payload)

	return err
}

func (c *client) DeleteBrand(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/brand/delete", map[string]string{"id": id})

	return err
}

func (c *client) CreateDeal(ctx context.Context, brandID string, deal entity.Deal) (entity.Deal, error) {
	data, err := c.do(ctx, http.MethodPost, "/deal/create", dealPayload(brandID, deal))
	if err != nil {
		return entity.Deal{}, err
	}

	var created wireDeal
	if err := json.Unmarshal(data, &created); err != nil {
		return entity.Deal{}, errors.Wrapf(service.ErrBadPayload, "create deal: %v", err)
	}
	if created.DealID == "" {
		return entity.Deal{}, errors.Wrap(service.ErrBadPayload, "create deal: missing dealid")
	}
	deal.ID = created.DealID

	return deal, nil
}

func (c *client) EditDeal(ctx context.Context, brandID string, deal entity.Deal) error {
	payload := dealPayload(brandID, deal)
	payload["id"] = deal.ID
	_, err := c.do(ctx, http.MethodPut, "/deal/edit", payload)

	return err
}

func (c *client) DeleteDeal(ctx context.Context, brandID, dealID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/deal/delete", map[string]string{
		"brandId": brandID,
		"id":      dealID,
	})

	return err
}

func (c *client) FetchAds(ctx context.Context) ([]entity.Ad, error) {
	wires, err := fetchList[wireAd](ctx, c, "/ad/get")
	if err != nil {
		return nil, err
	}

	ads := make([]entity.Ad, 0, len(wires))
	for _, w := range wires {
		ads = append(ads, w.toEntity())
	}

	return ads, nil
}

func (c *client) CreateAd(ctx context.Context, ad entity.Ad) (entity.Ad, error) {
	data, err := c.do(ctx, http.MethodPost, "/ad/create", map[string]any{
		"banner":    ad.Banner,
		"brandid":   ad.BrandID,
		"dealid":    ad.DealID,
		"startat":   formatTime(ad.StartAt),
		"endat":     formatTime(ad.EndAt),
		"createdby": ad.CreatedBy,
	})
	if err != nil {
		return entity.Ad{}, err
	}

	var created wireAd
	if err := json.Unmarshal(data, &created); err != nil {
		return entity.Ad{}, errors.Wrapf(service.ErrBadPayload, "create ad: %v", err)
	}
	if created.ID == "" {
		return entity.Ad{}, errors.Wrap(service.ErrBadPayload, "create ad: missing id")
	}
	ad.ID = created.ID

	return ad, nil
}

func (c *client) DeleteAd(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/ad/delete", map[string]string{"id": id})

	return err
}

func (c *client) FetchEvents(ctx context.Context) ([]entity.Event, error) {
	wires, err := fetchList[wireEvent](ctx, c, "/event/get")
	if err != nil {
		return nil, err
	}

	events := make([]entity.Event, 0, len(wires))
	for _, w := range wires {
		events = append(events, w.toEntity())
	}

	return events, nil
}

func (c *client) CreateEvent(ctx context.Context, event entity.Event) (entity.Event, error) {
	data, err := c.do(ctx, http.MethodPost, "/event/create", eventPayload(event))
	if err != nil {
		return entity.Event{}, err
	}

	var created wireEvent
	if err := json.Unmarshal(data, &created); err != nil {
		return entity.Event{}, errors.Wrapf(service.ErrBadPayload, "create event: %v", err)
	}
	if created.ID == "" {
		return entity.Event{}, errors.Wrap(service.ErrBadPayload, "create event: missing id")
	}
	event.ID = created.ID

	return event, nil
}

func (c *client) EditEvent(ctx context.Context, event entity.Event) error {
	payload := eventPayload(event)
	payload["id"] = event.ID
	_, err := c.do(ctx, http.MethodPut, "/event/edit", payload)

	return err
}

func (c *client) DeleteEvent(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/event/delete", map[string]string{"id": id})

	return err
}

func (c *client) FetchUsers(ctx context.Context) ([]entity.User, error) {
	wires, err := fetchList[wireUser](ctx, c, "/user/get")
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(wires))
	for _, w := range wires {
		users = append(users, w.toEntity())
	}

	return users, nil
}

func (c *client) FetchSupportMessages(ctx context.Context) ([]entity.SupportMessage, error) {
	wires, err := fetchList[wireSupportMessage](ctx, c, "/support/get")
	if err != nil {
		return nil, err
	}

	messages := make([]entity.SupportMessage, 0, len(wires))
	for _, w := range wires {
		messages = append(messages, w.toEntity())
	}

	return messages, nil
}

func (c *client) EditSupportStatus(ctx context.Context, id string, open bool) error {
	_, err := c.do(ctx, http.MethodPut, "/support/edit", map[string]any{
		"id":     id,
		"status": open,
	})

	return err
}

func (c *client) SendBroadcast(ctx context.Context, broadcast entity.Broadcast) error {
	payload := map[string]any{
		"title":       broadcast.Title,
		"description": broadcast.Description,
		"type":        broadcast.Type,
		"dealId":      nil,
		"eventId":     nil,
	}
	if broadcast.DealID != "" {
		payload["dealId"] = broadcast.DealID
	}
	if broadcast.EventID != "" {
		payload["eventId"] = broadcast.EventID
	}

	_, err := c.do(ctx, http.MethodPost, "/notification/create", payload)

	return err
}
