package client

import (
	"log/slog"
	"net/http"
	"time"

	"vitrina/internal/client/httpc"
	"vitrina/internal/client/transport"
)

type Transport = transport.Transport

type Options struct {
	HTTPClient    *http.Client
	Retries       int
	RatePerMinute int

	BaseDelay time.Duration
	MaxDelay  time.Duration

	Logger *slog.Logger
}

func Build(opts Options) (Transport, error) {
	return transport.Build(transport.Options{
		HTTPClient:    opts.HTTPClient,
		Retries:       opts.Retries,
		RatePerMinute: opts.RatePerMinute,
		BaseDelay:     opts.BaseDelay,
		MaxDelay:      opts.MaxDelay,
		Logger:        opts.Logger,
	})
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return httpc.New(timeout)
}
