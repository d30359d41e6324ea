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
	"iter"

	"github.com/stockparfait/iterator"
)

func collect[T any](ctx context.Context, p *pager[T]) ([]T, error) {
	res := []T{}
	for !p.done() {
		items, err := p.next(ctx)
		if err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	return res, nil
}

// QueryAll fetches all the pages of the query and returns their items in
// order.
func QueryAll[T any](ctx context.Context, q *PagedQuery, c Client) ([]T, error) {
	return collect(ctx, newPager[T](q, c, blocking(c)))
}

// QueryAllAsync is QueryAll over a non-blocking transport.
func QueryAllAsync[T any](ctx context.Context, q *PagedQuery, c AsyncClient) ([]T, error) {
	return collect(ctx, newPager[T](q, c, awaiting(c)))
}

// PageIterator yields the items of a paginated query, fetching the next page
// only when the current one is consumed. Use Err() to check whether the
// iteration stopped because of an error.
//
// Example:
//
//	it := api.Iter[marketstack.EodDataItem](ctx, q, c)
//	for item, ok := it.Next(); ok; item, ok = it.Next() {
//	  ...
//	}
//	if err := it.Err(); err != nil {
//	  ...
//	}
type PageIterator[T any] struct {
	ctx   context.Context
	pager *pager[T]
	page  []T
	index int
	err   error
}

var _ iterator.Iterator[int] = &PageIterator[int]{}

// Iter creates a lazy iterator over the items of the query. No request is sent
// until the first call to Next().
func Iter[T any](ctx context.Context, q *PagedQuery, c Client) *PageIterator[T] {
	return &PageIterator[T]{ctx: ctx, pager: newPager[T](q, c, blocking(c))}
}

// Next implements iterator.Iterator.
func (it *PageIterator[T]) Next() (T, bool) {
	for it.index >= len(it.page) {
		if it.err != nil || it.pager.done() {
			var zero T
			return zero, false
		}
		it.page, it.err = it.pager.next(it.ctx)
		it.index = 0
	}
	item := it.page[it.index]
	it.index++
	return item, true
}

// Err returns the error which stopped the iteration, if any.
func (it *PageIterator[T]) Err() error {
	return it.err
}

// Stream returns a lazy sequence of the items of the query over a non-blocking
// transport. A failed page yields a single error and ends the sequence. Each
// iteration over the sequence runs the query from the first page.
func Stream[T any](ctx context.Context, q *PagedQuery, c AsyncClient) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		p := newPager[T](q, c, awaiting(c))
		for !p.done() {
			items, err := p.next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}
