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
	"net/http"
)

// MaxPageSize is the largest page the remote service returns.
const MaxPageSize = 1000

// Endpoint describes a single remote operation. Path() and Parameters() must
// not have side effects: rendering an Endpoint twice yields identical requests.
type Endpoint interface {
	// Method is the HTTP verb, e.g. http.MethodGet.
	Method() string
	// Path relative to the API base URL, e.g. "eod/latest".
	Path() string
	// Parameters of the query string. May return nil.
	Parameters() *QueryParams
}

// Body of a request together with its MIME type.
type Body struct {
	ContentType string
	Data        []byte
}

// BodyEndpoint is an Endpoint which sends a request body.
type BodyEndpoint interface {
	Endpoint
	Body() (*Body, error)
}

// Pageable is an Endpoint which supports pagination.
type Pageable interface {
	Endpoint
	// UsesKeysetPagination is true when the next page is identified by the
	// server through a Link header rather than by a page number.
	UsesKeysetPagination() bool
	// MaxPageSize is the largest page size accepted by the endpoint.
	MaxPageSize() int
}

// Get can be embedded into an Endpoint implementation to supply Method().
type Get struct{}

// Method implements Endpoint.
func (Get) Method() string { return http.MethodGet }

// OffsetPagination can be embedded into a Pageable implementation which uses
// page numbers.
type OffsetPagination struct{}

// UsesKeysetPagination implements Pageable.
func (OffsetPagination) UsesKeysetPagination() bool { return false }

// MaxPageSize implements Pageable.
func (OffsetPagination) MaxPageSize() int { return MaxPageSize }

// KeysetPagination can be embedded into a Pageable implementation which
// follows the server's continuation links.
type KeysetPagination struct{}

// UsesKeysetPagination implements Pageable.
func (KeysetPagination) UsesKeysetPagination() bool { return true }

// MaxPageSize implements Pageable.
func (KeysetPagination) MaxPageSize() int { return MaxPageSize }

// endpointBody returns the request body, if any.
func endpointBody(e Endpoint) (*Body, error) {
	be, ok := e.(BodyEndpoint)
	if !ok {
		return nil, nil
	}
	b, err := be.Body()
	if err != nil {
		return nil, &Error{Kind: KindBodyEncoding, Err: err}
	}
	return b, nil
}
