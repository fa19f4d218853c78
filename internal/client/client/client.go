package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/auth"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
)

// Client is the request/response channel to the award service.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	CreateAward(ctx context.Context, name, description string) (models.ServerID, error)
	EditAward(ctx context.Context, id models.ServerID, name, description string) error
	DeleteAward(ctx context.Context, id models.ServerID) error
	GetAwards(ctx context.Context) ([]models.Award, error)
	GetConfig(ctx context.Context) (models.RemoteConfig, error)
}

// Method names as they travel over the WebSocket channel. The gRPC
// transport uses the capitalized form (see grpcMethods).
const (
	methodPing        = "ping"
	methodCreateAward = "createAward"
	methodEditAward   = "editAward"
	methodDeleteAward = "deleteAward"
	methodGetAwards   = "getAwards"
	methodGetConfig   = "getConfig"
)

type callFunc func(ctx context.Context, method string, params map[string]any) (json.RawMessage, error)

// api implements the award calls on top of a transport-specific callFunc.
type api struct {
	call    callFunc
	token   string
	timeout time.Duration
}

type (
	createResponse struct {
		ID models.ServerID `json:"id"`
	}

	awardsResponse struct {
		Awards []models.Award `json:"awards"`
	}

	pingResponse struct {
		Status string `json:"status"`
	}
)

func (a *api) do(ctx context.Context, method string, params map[string]any, out any) error {
	if err := auth.CheckExpiry(a.token, time.Now()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	raw, err := a.call(ctx, method, params)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	return nil
}

func (a *api) Ping(ctx context.Context) error {
	var resp pingResponse
	if err := a.do(ctx, methodPing, nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (a *api) CreateAward(ctx context.Context, name, description string) (models.ServerID, error) {
	var resp createResponse
	err := a.do(ctx, methodCreateAward, map[string]any{
		"name":        name,
		"description": description,
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (a *api) EditAward(ctx context.Context, id models.ServerID, name, description string) error {
	return a.do(ctx, methodEditAward, map[string]any{
		"id":          int64(id),
		"name":        name,
		"description": description,
	}, nil)
}

func (a *api) DeleteAward(ctx context.Context, id models.ServerID) error {
	return a.do(ctx, methodDeleteAward, map[string]any{"id": int64(id)}, nil)
}

func (a *api) GetAwards(ctx context.Context) ([]models.Award, error) {
	var resp awardsResponse
	if err := a.do(ctx, methodGetAwards, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Awards, nil
}

func (a *api) GetConfig(ctx context.Context) (models.RemoteConfig, error) {
	var cfg models.RemoteConfig
	if err := a.do(ctx, methodGetConfig, nil, &cfg); err != nil {
		return models.RemoteConfig{}, err
	}
	return cfg, nil
}
