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
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"

	"github.com/stockparfait/logging"
	"github.com/stockparfait/marketstack/message"
)

func newRequest(method string, u *url.URL, body *Body) *Request {
	req := &Request{Method: method, URL: u, Header: make(http.Header)}
	if body != nil {
		req.Header.Set("Content-Type", body.ContentType)
		req.Body = body.Data
	}
	return req
}

// resolve the endpoint's URL with its parameters and the access key.
func resolve(e Endpoint, rc RestClient) (*url.URL, error) {
	q := NewQueryParams()
	q.Extend(e.Parameters().Params()...)
	if err := rc.Auth().Apply(q); err != nil {
		return nil, err
	}
	u, err := rc.RestEndpoint(e.Path())
	if err != nil {
		if apiErr, ok := err.(*Error); ok {
			return nil, apiErr
		}
		return nil, &Error{Kind: KindURL, Err: err}
	}
	q.AddToURL(u)
	return u, nil
}

// prepare builds the complete request for the endpoint.
func prepare(e Endpoint, rc RestClient) (*Request, error) {
	u, err := resolve(e, rc)
	if err != nil {
		return nil, err
	}
	body, err := endpointBody(e)
	if err != nil {
		return nil, err
	}
	return newRequest(e.Method(), u, body), nil
}

// send the request, wrapping any failure as a KindTransport error.
func send(ctx context.Context, f sendFunc, req *Request) (*Response, error) {
	resp, err := f(ctx, req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	if resp == nil {
		return nil, &Error{Kind: KindTransport, Message: "no response"}
	}
	logging.Debugf(ctx, "%s %s: status %d, %d bytes",
		req.Method, req.URL.Path, resp.StatusCode, len(resp.Body))
	return resp, nil
}

// dispatch sends exactly one request for the endpoint.
func dispatch(ctx context.Context, e Endpoint, rc RestClient, f sendFunc) (*Response, error) {
	req, err := prepare(e, rc)
	if err != nil {
		return nil, err
	}
	return send(ctx, f, req)
}

// decode coerces generic JSON into T. Types built from message.Message are
// initialized by their InitMessage() methods, which check for required fields;
// any other type goes through encoding/json.
func decode[T any](js any) (T, error) {
	var res T
	t := reflect.TypeOf((*T)(nil)).Elem()
	var err error
	if message.Supported(t) {
		err = message.Convert(js, &res)
	} else {
		var b []byte
		if b, err = json.Marshal(js); err == nil {
			err = json.Unmarshal(b, &res)
		}
	}
	if err != nil {
		var zero T
		return zero, &Error{Kind: KindDataType, TypeName: t.String(), Err: err}
	}
	return res, nil
}

func query[T any](ctx context.Context, e Endpoint, rc RestClient, f sendFunc) (T, error) {
	var zero T
	resp, err := dispatch(ctx, e, rc, f)
	if err != nil {
		return zero, err
	}
	js, err := classify(resp)
	if err != nil {
		return zero, err
	}
	return decode[T](js)
}

// Query sends the endpoint's request and parses the response as T.
func Query[T any](ctx context.Context, e Endpoint, c Client) (T, error) {
	return query[T](ctx, e, c, blocking(c))
}

// QueryAsync is Query over a non-blocking transport.
func QueryAsync[T any](ctx context.Context, e Endpoint, c AsyncClient) (T, error) {
	return query[T](ctx, e, c, awaiting(c))
}
