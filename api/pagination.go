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
	"fmt"
	"strconv"
)

// Reserved query parameters of paginated requests.
const (
	PerPageParam    = "per_page"
	PageParam       = "page"
	PaginationParam = "pagination"
	KeysetValue     = "keyset"
)

// PageLimit is a validated page size, at most MaxPageSize.
type PageLimit int

// NewPageLimit validates the page size n.
func NewPageLimit(n int) (PageLimit, error) {
	if err := CheckPageSize(n); err != nil {
		return 0, err
	}
	return PageLimit(n), nil
}

// ParamValue implements ParamValue.
func (l PageLimit) ParamValue() string {
	return strconv.Itoa(int(l))
}

// CheckPageSize is a KindPaginationLimit error when n > MaxPageSize.
func CheckPageSize(n int) error {
	if n > MaxPageSize {
		return &Error{
			Kind:    KindPaginationLimit,
			Message: fmt.Sprintf("page size %d is above the maximum of %d", n, MaxPageSize),
		}
	}
	return nil
}

// Pagination is the policy of a paginated query: how many items to fetch and
// how large the pages are.
type Pagination struct {
	limit    int // 0 means all
	pageSize int // 0 means the largest allowed
}

// All fetches every available item.
func All() Pagination {
	return Pagination{}
}

// Limit stops fetching pages once at least n items are received. All the items
// of the last page are returned, so the result may contain more than n items:
// the limit caps the number of requests, not the number of items. Values of n
// below 1 are treated as 1.
func Limit(n int) Pagination {
	if n < 1 {
		n = 1
	}
	return Pagination{limit: n}
}

// WithPageSize requests pages of the given size, which must be between 1 and
// MaxPageSize.
func (p Pagination) WithPageSize(size int) (Pagination, error) {
	if err := CheckPageSize(size); err != nil {
		return p, err
	}
	if size < 1 {
		return p, &Error{
			Kind:    KindPaginationLimit,
			Message: fmt.Sprintf("page size %d must be positive", size),
		}
	}
	p.pageSize = size
	return p, nil
}

// IsAll checks whether the policy fetches all items.
func (p Pagination) IsAll() bool {
	return p.limit == 0
}

// LimitValue is the n of Limit(n), or 0 for All().
func (p Pagination) LimitValue() int {
	return p.limit
}

// PageLimit is the effective page size for an endpoint with the given
// ceiling. A non-positive ceiling means MaxPageSize.
func (p Pagination) PageLimit(ceiling int) int {
	res := MaxPageSize
	if ceiling > 0 && ceiling < res {
		res = ceiling
	}
	if p.pageSize > 0 && p.pageSize < res {
		res = p.pageSize
	}
	if p.limit > 0 && p.limit < res {
		res = p.limit
	}
	return res
}

// IsLastPage is the termination rule: a page shorter than pageLimit means the
// data is exhausted, and Limit(n) stops once total reaches n.
func (p Pagination) IsLastPage(pageLimit, pageLen, total int) bool {
	if pageLen < pageLimit {
		return true
	}
	return p.limit > 0 && p.limit <= total
}

func (p Pagination) String() string {
	if p.IsAll() {
		return "All"
	}
	return fmt.Sprintf("Limit(%d)", p.limit)
}

// PagedQuery is a Pageable endpoint with a Pagination policy.
type PagedQuery struct {
	endpoint   Pageable
	pagination Pagination
	pageLimit  int
}

// Paged wraps the endpoint for paginated queries. A page size above the
// endpoint's ceiling is a KindPaginationLimit error.
func Paged(e Pageable, p Pagination) (*PagedQuery, error) {
	if p.pageSize > e.MaxPageSize() {
		return nil, &Error{
			Kind: KindPaginationLimit,
			Message: fmt.Sprintf("page size %d is above the maximum of %d for %s",
				p.pageSize, e.MaxPageSize(), e.Path()),
		}
	}
	return &PagedQuery{
		endpoint:   e,
		pagination: p,
		pageLimit:  p.PageLimit(e.MaxPageSize()),
	}, nil
}

// Endpoint being paginated.
func (q *PagedQuery) Endpoint() Pageable { return q.endpoint }

// Pagination policy of the query.
func (q *PagedQuery) Pagination() Pagination { return q.pagination }

// PageLimit is the page size requested from the server.
func (q *PagedQuery) PageLimit() int { return q.pageLimit }
