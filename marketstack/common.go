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

package marketstack

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/marketstack/api"
	"github.com/stockparfait/marketstack/types"
)

// SortOrder of the results by date.
type SortOrder string

const (
	Ascending  SortOrder = "ASC"
	Descending SortOrder = "DESC" // server default
)

// ParamValue implements api.ParamValue.
func (s SortOrder) ParamValue() string { return string(s) }

// Interval of intraday data.
type Interval string

const (
	OneMinute       Interval = "1min"
	FiveMinutes     Interval = "5min"
	TenMinutes      Interval = "10min"
	FifteenMinutes  Interval = "15min"
	ThirtyMinutes   Interval = "30min"
	OneHour         Interval = "1hour" // server default
	ThreeHours      Interval = "3hour"
	SixHours        Interval = "6hour"
	TwelveHours     Interval = "12hour"
	TwentyFourHours Interval = "24hour"
)

// ParamValue implements api.ParamValue.
func (i Interval) ParamValue() string { return string(i) }

var validate = validator.New()

// checkOptions validates endpoint options. A page size above the limit is
// reported as api.KindPaginationLimit.
func checkOptions(name string, opts any, limit int) error {
	if err := api.CheckPageSize(limit); err != nil {
		return err
	}
	if err := validate.Struct(opts); err != nil {
		return errors.Annotate(err, "invalid %s options", name)
	}
	return nil
}

func checkDates(from, to *types.Date) error {
	if from != nil && to != nil && to.Before(*from) {
		return errors.Reason("date_to %s is before date_from %s", *to, *from)
	}
	return nil
}

// symbolSet de-duplicates and sorts the symbols.
func symbolSet(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	var res []string
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	sort.Strings(res)
	return res
}

func pushSymbols(q *api.QueryParams, symbols []string) {
	for _, s := range symbols {
		q.Push("symbols", s)
	}
}

// pushPage adds limit and offset, when set.
func pushPage(q *api.QueryParams, limit, offset int) {
	if limit > 0 {
		q.Push("limit", api.PageLimit(limit))
	}
	if offset > 0 {
		q.Push("offset", offset)
	}
}

// nonEmpty returns a pointer to s, or nil when s is empty.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
