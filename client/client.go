// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client binds the Marketstack API to HTTP.
//
// The HTTP client is taken from the context using fetch.GetClient(), which
// allows tests to inject a fetch.TestServer client with fetch.UseClient().
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/marketstack/api"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// DefaultHost of the Marketstack API.
const DefaultHost = "api.marketstack.com"

// Config of the Marketstack client.
type Config struct {
	Host     string `toml:"host"`     // default: DefaultHost
	Key      string `toml:"key"`      // API access key
	Insecure bool   `toml:"insecure"` // use http:// (free plan)
}

// Marketstack is a blocking api.Client.
type Marketstack struct {
	base *url.URL
	auth *api.Auth
}

var _ api.Client = &Marketstack{}

// New creates a Marketstack client. An empty key is accepted, but every
// query will fail with api.KindAuthMissing.
func New(cfg Config) (*Marketstack, error) {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	proto := "https"
	if cfg.Insecure {
		proto = "http"
	}
	base, err := url.Parse(fmt.Sprintf("%s://%s/v1/", proto, host))
	if err != nil {
		return nil, &api.Error{Kind: api.KindURL, Err: err}
	}
	m := &Marketstack{base: base}
	if cfg.Key != "" {
		m.auth = &api.Auth{Token: cfg.Key}
	}
	return m, nil
}

// BaseURL of the API, ending with "/v1/".
func (m *Marketstack) BaseURL() string {
	return m.base.String()
}

// RestEndpoint implements api.RestClient.
func (m *Marketstack) RestEndpoint(path string) (*url.URL, error) {
	u, err := m.base.Parse(path)
	if err != nil {
		return nil, &api.Error{Kind: api.KindURL, Err: err}
	}
	return u, nil
}

// Auth implements api.RestClient.
func (m *Marketstack) Auth() *api.Auth {
	return m.auth
}

// Rest implements api.Client.
func (m *Marketstack) Rest(ctx context.Context, req *api.Request) (*api.Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to create request")
	}
	for k, v := range req.Header {
		hreq.Header[k] = v
	}
	resp, err := fetch.GetClient(ctx).Do(hreq)
	if err != nil {
		return nil, errors.Annotate(err, "%s %s failed", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to read response body")
	}
	if resp.StatusCode >= 400 {
		logging.Warningf(ctx, "%s %s: %s", req.Method, req.URL.Path, resp.Status)
	}
	return &api.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// AsyncMarketstack is a non-blocking api.AsyncClient. Each request runs on its
// own goroutine.
type AsyncMarketstack struct {
	*Marketstack
}

var _ api.AsyncClient = &AsyncMarketstack{}

// NewAsync creates a non-blocking Marketstack client.
func NewAsync(cfg Config) (*AsyncMarketstack, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &AsyncMarketstack{Marketstack: m}, nil
}

// RestAsync implements api.AsyncClient.
func (m *AsyncMarketstack) RestAsync(ctx context.Context, req *api.Request) <-chan api.AsyncResult {
	ch := make(chan api.AsyncResult, 1)
	go func() {
		defer close(ch)
		resp, err := m.Rest(ctx, req)
		ch <- api.AsyncResult{Response: resp, Err: err}
	}()
	return ch
}

// GetClient extracts the Marketstack client from the context, if any.
func GetClient(ctx context.Context) *Marketstack {
	c, ok := ctx.Value(clientContextKey).(*Marketstack)
	if !ok {
		return nil
	}
	return c
}

// UseClient injects the client into the context.
func UseClient(ctx context.Context, m *Marketstack) context.Context {
	return context.WithValue(ctx, clientContextKey, m)
}
