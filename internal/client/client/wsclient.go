package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/common"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type (
	wsRequest struct {
		ID     string         `json:"id"`
		Method string         `json:"method"`
		Params map[string]any `json:"params,omitempty"`
	}

	wsError struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	wsResponse struct {
		ID     string          `json:"id"`
		Result json.RawMessage `json:"result,omitempty"`
		Error  *wsError        `json:"error,omitempty"`
	}
)

// Error codes the award service reports over the WebSocket channel.
const (
	wsCodeUnauthorized = "unauthorized"
	wsCodeNotFound     = "not_found"
	wsCodeConflict     = "conflict"
	wsCodeUnavailable  = "unavailable"
)

func (e *wsError) err() error {
	switch e.Code {
	case wsCodeUnauthorized:
		return ErrUnauthorized
	case wsCodeUnavailable:
		return ErrUnavailable
	case wsCodeNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, e.Message)
	case wsCodeConflict:
		return fmt.Errorf("%w: %s", ErrConflict, e.Message)
	default:
		return &RemoteError{Code: e.Code, Message: e.Message}
	}
}

// WSClient multiplexes award calls over one persistent WebSocket
// connection. Responses are matched to requests by id, so calls from
// several goroutines may be in flight at once.
type WSClient struct {
	api
	conn *websocket.Conn
	log  logging.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan wsResponse
	readErr error
	closed  chan struct{}
}

// WSURL turns a host:port address into the service's WebSocket URL. Full
// ws:// or wss:// URLs are returned unchanged.
func WSURL(addr string) string {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		return addr
	}
	return "ws://" + addr + "/ws"
}

// NewWSClient dials url and starts reading responses.
func NewWSClient(ctx context.Context, url, accessToken string, timeout time.Duration, log logging.Logger) (*WSClient, error) {
	dialer := websocket.Dialer{HandshakeTimeout: timeout}

	header := http.Header{}
	if accessToken != "" {
		header.Set(common.AccessTokenHeaderName, accessToken)
	}

	conn, _, err := dialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c := &WSClient{
		conn:    conn,
		log:     log.With("module", "wsclient"),
		pending: map[string]chan wsResponse{},
		closed:  make(chan struct{}),
	}
	c.api = api{call: c.invoke, token: accessToken, timeout: timeout}

	go c.readLoop()
	return c, nil
}

func (c *WSClient) readLoop() {
	for {
		var resp wsResponse
		if err := c.conn.ReadJSON(&resp); err != nil {
			c.mu.Lock()
			c.readErr = fmt.Errorf("%w: connection lost: %v", ErrUnavailable, err)
			c.mu.Unlock()
			close(c.closed)
			return
		}

		c.mu.Lock()
		ch, ok := c.pending[resp.ID]
		delete(c.pending, resp.ID)
		c.mu.Unlock()

		if !ok {
			c.log.Debug(context.Background(), "response without caller", "id", resp.ID)
			continue
		}
		ch <- resp
	}
}

func (c *WSClient) invoke(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	req := wsRequest{ID: uuid.NewString(), Method: method, Params: params}
	ch := make(chan wsResponse, 1)

	c.mu.Lock()
	if c.readErr != nil {
		err := c.readErr
		c.mu.Unlock()
		return nil, err
	}
	c.pending[req.ID] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, req.ID)
		c.mu.Unlock()
	}()

	c.writeMu.Lock()
	if dl, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(dl)
	} else {
		_ = c.conn.SetWriteDeadline(time.Time{})
	}
	err := c.conn.WriteJSON(req)
	c.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	select {
	case resp := <-ch:
		if resp.Error != nil {
			return nil, resp.Error.err()
		}
		return resp.Result, nil
	case <-c.closed:
		c.mu.Lock()
		defer c.mu.Unlock()
		return nil, c.readErr
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrUnavailable
		}
		return nil, ctx.Err()
	}
}

// Close sends a close frame and drops the connection. Calls still waiting
// fail with ErrUnavailable.
func (c *WSClient) Close() error {
	c.writeMu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	c.writeMu.Unlock()
	return c.conn.Close()
}
