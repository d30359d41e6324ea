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

// Package api implements the protocol layer of the Marketstack REST client.
//
// Official documentation is at https://marketstack.com/documentation .
//
// An Endpoint describes a single remote operation: its HTTP method, its path
// relative to the API base URL and its query parameters. A Client (blocking)
// or an AsyncClient (non-blocking) sends prepared requests; neither knows
// anything about specific endpoints. Query() and QueryAsync() glue the two
// together: they resolve the URL, attach the access key, send the request and
// classify the response into either a typed value or an *Error.
//
// The Ignore() and Raw() modifiers reuse the same dispatch and classification,
// but discard or return verbatim the body of a successful response.
//
// Endpoints implementing Pageable can be queried page by page. Paged() wraps a
// Pageable endpoint with a Pagination policy; QueryAll() fetches all the pages
// eagerly, Iter() returns a lazy pull iterator and Stream() a push sequence
// over an AsyncClient. Pages are always fetched sequentially, and a failed page
// aborts the whole query.
//
// Every failure is reported as *Error, whose Kind identifies the category:
//
//	items, err := api.QueryAll[marketstack.EodDataItem](ctx, q, c)
//	if api.IsKind(err, api.KindRemoteMessage) {
//	  ...
//	}
package api
