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
	"net/url"

	"github.com/stockparfait/logging"
)

type cursorKind int

const (
	cursorNumber      cursorKind = iota // offset pagination, page number
	cursorKeysetFirst                   // keyset pagination, first page
	cursorKeysetNext                    // keyset pagination, continuation URL
	cursorDone
)

// cursor identifies the next page to fetch.
type cursor struct {
	kind cursorKind
	page int      // for cursorNumber
	next *url.URL // for cursorKeysetNext
}

// pager fetches the pages of a single paginated query in sequence. It is owned
// by exactly one query and is not safe for concurrent use.
type pager[T any] struct {
	query  *PagedQuery
	client RestClient
	send   sendFunc
	keyset bool
	base   *url.URL // resolved on the first fetch
	body   *Body
	cur    cursor
	pages  int // number of pages received
	total  int // number of items received
}

func newPager[T any](q *PagedQuery, rc RestClient, f sendFunc) *pager[T] {
	p := &pager[T]{
		query:  q,
		client: rc,
		send:   f,
		keyset: q.endpoint.UsesKeysetPagination(),
	}
	if p.keyset {
		p.cur = cursor{kind: cursorKeysetFirst}
	} else {
		p.cur = cursor{kind: cursorNumber, page: 1}
	}
	return p
}

func (p *pager[T]) done() bool {
	return p.cur.kind == cursorDone
}

func (p *pager[T]) init() error {
	if p.base != nil {
		return nil
	}
	u, err := resolve(p.query.endpoint, p.client)
	if err != nil {
		return err
	}
	body, err := endpointBody(p.query.endpoint)
	if err != nil {
		return err
	}
	p.base = u
	p.body = body
	return nil
}

// pageURL for the current cursor. A continuation URL is used verbatim.
func (p *pager[T]) pageURL() *url.URL {
	if p.cur.kind == cursorKeysetNext {
		return p.cur.next
	}
	u := *p.base
	q := NewQueryParams()
	q.Push(PerPageParam, p.query.pageLimit)
	if p.cur.kind == cursorKeysetFirst {
		q.Push(PaginationParam, KeysetValue)
	} else {
		q.Push(PageParam, p.cur.page)
	}
	q.AddToURL(&u)
	return &u
}

// next fetches the next page and advances the cursor. It returns an empty page
// without a network call once the query is done. Any error finishes the query.
func (p *pager[T]) next(ctx context.Context) (items []T, err error) {
	if p.done() {
		return nil, nil
	}
	defer func() {
		if err != nil {
			p.cur = cursor{kind: cursorDone}
		}
	}()
	if err = p.init(); err != nil {
		return nil, err
	}
	req := newRequest(p.query.endpoint.Method(), p.pageURL(), p.body)
	resp, err := send(ctx, p.send, req)
	if err != nil {
		return nil, err
	}
	js, err := classify(resp)
	if err != nil {
		return nil, err
	}
	// The Link header is only trusted on a successful page.
	var nextURL *url.URL
	if p.keyset {
		if nextURL, err = NextPageFromHeaders(resp.Header); err != nil {
			return nil, err
		}
	}
	if items, err = decodePage[T](js); err != nil {
		return nil, err
	}
	p.pages++
	p.total += len(items)
	logging.Debugf(ctx, "%s: page %d with %d items", p.query.endpoint.Path(),
		p.pages, len(items))

	switch {
	case p.query.pagination.IsLastPage(p.query.pageLimit, len(items), p.total):
		p.cur = cursor{kind: cursorDone}
	case p.keyset && nextURL == nil:
		p.cur = cursor{kind: cursorDone}
	case p.keyset:
		p.cur = cursor{kind: cursorKeysetNext, next: nextURL}
	default:
		p.cur.page++
	}
	return items, nil
}

// decodePage accepts either a JSON list of items, or an object with the list
// in its "data" field as Marketstack sends it.
func decodePage[T any](js any) ([]T, error) {
	if obj, ok := js.(map[string]any); ok {
		if data, ok := obj["data"].([]any); ok {
			js = data
		}
	}
	return decode[[]T](js)
}
