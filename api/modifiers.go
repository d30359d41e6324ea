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
)

// IgnoreQuery checks that an endpoint call succeeds, discarding the result.
type IgnoreQuery struct {
	endpoint Endpoint
}

// Ignore wraps the endpoint so that the body of a successful response is not
// parsed at all.
func Ignore(e Endpoint) IgnoreQuery {
	return IgnoreQuery{endpoint: e}
}

func (q IgnoreQuery) query(ctx context.Context, rc RestClient, f sendFunc) error {
	resp, err := dispatch(ctx, q.endpoint, rc, f)
	if err != nil {
		return err
	}
	if resp.Success() {
		return nil
	}
	_, err = classify(resp)
	return err
}

// Query sends the request and reports any failure.
func (q IgnoreQuery) Query(ctx context.Context, c Client) error {
	return q.query(ctx, c, blocking(c))
}

// QueryAsync is Query over a non-blocking transport.
func (q IgnoreQuery) QueryAsync(ctx context.Context, c AsyncClient) error {
	return q.query(ctx, c, awaiting(c))
}

// RawQuery returns the body of a successful response verbatim.
type RawQuery struct {
	endpoint Endpoint
}

// Raw wraps the endpoint so that the body of a successful response is returned
// unparsed. Unsuccessful responses are classified as usual.
func Raw(e Endpoint) RawQuery {
	return RawQuery{endpoint: e}
}

func (q RawQuery) query(ctx context.Context, rc RestClient, f sendFunc) ([]byte, error) {
	resp, err := dispatch(ctx, q.endpoint, rc, f)
	if err != nil {
		return nil, err
	}
	if resp.Success() {
		return resp.Body, nil
	}
	_, err = classify(resp)
	return nil, err
}

// Query sends the request and returns the response body.
func (q RawQuery) Query(ctx context.Context, c Client) ([]byte, error) {
	return q.query(ctx, c, blocking(c))
}

// QueryAsync is Query over a non-blocking transport.
func (q RawQuery) QueryAsync(ctx context.Context, c AsyncClient) ([]byte, error) {
	return q.query(ctx, c, awaiting(c))
}
