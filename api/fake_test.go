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
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/marketstack/message"
)

// fakeClient records requests and serves canned responses in order. The last
// response is repeated once the others are used up.
type fakeClient struct {
	base      string
	auth      *Auth
	responses []*Response
	err       error
	requests  []*Request
}

var _ Client = &fakeClient{}
var _ AsyncClient = &fakeClient{}

func newFakeClient(responses ...*Response) *fakeClient {
	return &fakeClient{
		base:      "https://api.test/v1/",
		auth:      &Auth{Token: "testkey"},
		responses: responses,
	}
}

func (c *fakeClient) RestEndpoint(path string) (*url.URL, error) {
	base, err := url.Parse(c.base)
	if err != nil {
		return nil, err
	}
	return base.Parse(path)
}

func (c *fakeClient) Auth() *Auth {
	return c.auth
}

func (c *fakeClient) Rest(ctx context.Context, req *Request) (*Response, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	if len(c.responses) == 0 {
		return nil, errors.Reason("no responses configured")
	}
	resp := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return resp, nil
}

func (c *fakeClient) RestAsync(ctx context.Context, req *Request) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	resp, err := c.Rest(ctx, req)
	ch <- AsyncResult{Response: resp, Err: err}
	close(ch)
	return ch
}

// urls of the recorded requests.
func (c *fakeClient) urls() []string {
	res := make([]string, len(c.requests))
	for i, r := range c.requests {
		res[i] = r.URL.String()
	}
	return res
}

func jsonResponse(status int, body string, header ...string) *Response {
	h := make(http.Header)
	for i := 0; i+1 < len(header); i += 2 {
		h.Add(header[i], header[i+1])
	}
	return &Response{StatusCode: status, Header: h, Body: []byte(body)}
}

// itemsJSON is a list of n items with sequential IDs starting at start.
func itemsJSON(start, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id": %d, "name": "item%d"}`, start+i, start+i)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func items(start, n int) []testItem {
	res := make([]testItem, n)
	for i := range res {
		res[i] = testItem{ID: start + i, Name: fmt.Sprintf("item%d", start+i)}
	}
	return res
}

type testItem struct {
	ID   int    `json:"id" required:"true"`
	Name string `json:"name"`
}

func (t *testItem) InitMessage(js interface{}) error {
	return message.InitPartial(t, js)
}

type plainItem struct {
	ID int `json:"id"`
}

type testEndpoint struct {
	path    string
	keyset  bool
	ceiling int
}

var _ Pageable = &testEndpoint{}

func (e *testEndpoint) Method() string { return http.MethodGet }
func (e *testEndpoint) Path() string   { return e.path }

func (e *testEndpoint) Parameters() *QueryParams {
	q := NewQueryParams()
	q.Push("symbols", "AAPL")
	q.Push("symbols", "MSFT")
	q.Push("sort", "DESC")
	return q
}

func (e *testEndpoint) UsesKeysetPagination() bool { return e.keyset }

func (e *testEndpoint) MaxPageSize() int {
	if e.ceiling > 0 {
		return e.ceiling
	}
	return MaxPageSize
}

type formEndpoint struct {
	testEndpoint
	fail bool
}

var _ BodyEndpoint = &formEndpoint{}

func (e *formEndpoint) Method() string { return http.MethodPost }

func (e *formEndpoint) Body() (*Body, error) {
	if e.fail {
		return nil, errors.Reason("cannot encode")
	}
	f := NewFormParams()
	f.Push("name", "test list")
	f.Push("tickers", "A B")
	return f.Body(), nil
}
