package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/logging"
)

// Transports understood by Dial.
const (
	TransportGRPC = "grpc"
	TransportWS   = "ws"
)

type Options struct {
	Transport      string
	Addr           string
	AccessToken    string
	RequestTimeout time.Duration
	Logger         logging.Logger
}

// Dial builds the Client for o.Transport.
func Dial(ctx context.Context, o Options) (Client, error) {
	switch o.Transport {
	case "", TransportGRPC:
		c, err := NewGRPCClient(o.Addr, o.AccessToken, o.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return c, nil
	case TransportWS:
		c, err := NewWSClient(ctx, WSURL(o.Addr), o.AccessToken, o.RequestTimeout, o.Logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown transport %q", o.Transport)
	}
}
