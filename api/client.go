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

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
)

// Request is a fully prepared HTTP request.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// Response is the status, headers and the complete body of an HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Success checks for a 2xx status code.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RestClient resolves endpoint paths and supplies credentials.
type RestClient interface {
	// RestEndpoint resolves the path relative to the API base URL.
	RestEndpoint(path string) (*url.URL, error)
	// Auth returns the configured credentials, or nil.
	Auth() *Auth
}

// Client is a blocking transport.
type Client interface {
	RestClient
	Rest(ctx context.Context, req *Request) (*Response, error)
}

// AsyncResult is the outcome of a non-blocking request.
type AsyncResult struct {
	Response *Response
	Err      error
}

// AsyncClient is a non-blocking transport. RestAsync must return immediately;
// the result is delivered on the channel exactly once.
type AsyncClient interface {
	RestClient
	RestAsync(ctx context.Context, req *Request) <-chan AsyncResult
}

// sendFunc is how a query gets a response for a request, regardless of the
// transport flavor.
type sendFunc func(ctx context.Context, req *Request) (*Response, error)

func blocking(c Client) sendFunc {
	return c.Rest
}

func awaiting(c AsyncClient) sendFunc {
	return func(ctx context.Context, req *Request) (*Response, error) {
		select {
		case res, ok := <-c.RestAsync(ctx, req):
			if !ok {
				return nil, errors.Reason("result channel closed without a response")
			}
			return res.Response, res.Err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
