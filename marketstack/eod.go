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
	"github.com/stockparfait/errors"
	"github.com/stockparfait/marketstack/api"
	"github.com/stockparfait/marketstack/types"
)

// EodOptions select end-of-day prices. Latest and Date are mutually exclusive;
// when neither is set, the whole date range is queried.
type EodOptions struct {
	Symbols  []string `validate:"dive,required"`
	Exchange string
	Sort     SortOrder `validate:"omitempty,oneof=ASC DESC"`
	DateFrom *types.Date
	DateTo   *types.Date
	Limit    int  `validate:"gte=0"`
	Offset   int  `validate:"gte=0"`
	Latest   bool `validate:"excluded_with=Date"`
	Date     *types.Date
}

// Eod is the end-of-day prices endpoint: eod, eod/latest or eod/{date}.
type Eod struct {
	api.Get
	api.OffsetPagination
	opts    EodOptions
	symbols []string
}

var _ api.Pageable = &Eod{}

// NewEod validates the options and creates the endpoint.
func NewEod(opts EodOptions) (*Eod, error) {
	if err := checkOptions("Eod", opts, opts.Limit); err != nil {
		return nil, err
	}
	if err := checkDates(opts.DateFrom, opts.DateTo); err != nil {
		return nil, errors.Annotate(err, "invalid Eod options")
	}
	return &Eod{opts: opts, symbols: symbolSet(opts.Symbols)}, nil
}

// Path implements api.Endpoint.
func (e *Eod) Path() string {
	switch {
	case e.opts.Latest:
		return "eod/latest"
	case e.opts.Date != nil:
		return "eod/" + e.opts.Date.String()
	}
	return "eod"
}

// Parameters implements api.Endpoint.
func (e *Eod) Parameters() *api.QueryParams {
	q := api.NewQueryParams()
	pushSymbols(q, e.symbols)
	q.PushOpt("exchange", nonEmpty(e.opts.Exchange))
	q.PushOpt("sort", nonEmpty(string(e.opts.Sort)))
	q.PushOpt("date_from", e.opts.DateFrom)
	q.PushOpt("date_to", e.opts.DateTo)
	pushPage(q, e.opts.Limit, e.opts.Offset)
	return q
}

// IntradayOptions select intraday prices. Latest and Date are mutually
// exclusive.
type IntradayOptions struct {
	Symbols  []string `validate:"dive,required"`
	Exchange string
	Interval Interval  `validate:"omitempty,oneof=1min 5min 10min 15min 30min 1hour 3hour 6hour 12hour 24hour"`
	Sort     SortOrder `validate:"omitempty,oneof=ASC DESC"`
	DateFrom *types.Date
	DateTo   *types.Date
	Limit    int  `validate:"gte=0"`
	Offset   int  `validate:"gte=0"`
	Latest   bool `validate:"excluded_with=Date"`
	Date     *types.Date
}

// Intraday is the intraday prices endpoint: intraday, intraday/latest or
// intraday/{date}.
type Intraday struct {
	api.Get
	api.OffsetPagination
	opts    IntradayOptions
	symbols []string
}

var _ api.Pageable = &Intraday{}

// NewIntraday validates the options and creates the endpoint.
func NewIntraday(opts IntradayOptions) (*Intraday, error) {
	if err := checkOptions("Intraday", opts, opts.Limit); err != nil {
		return nil, err
	}
	if err := checkDates(opts.DateFrom, opts.DateTo); err != nil {
		return nil, errors.Annotate(err, "invalid Intraday options")
	}
	return &Intraday{opts: opts, symbols: symbolSet(opts.Symbols)}, nil
}

// Path implements api.Endpoint.
func (e *Intraday) Path() string {
	switch {
	case e.opts.Latest:
		return "intraday/latest"
	case e.opts.Date != nil:
		return "intraday/" + e.opts.Date.String()
	}
	return "intraday"
}

// Parameters implements api.Endpoint.
func (e *Intraday) Parameters() *api.QueryParams {
	q := api.NewQueryParams()
	pushSymbols(q, e.symbols)
	q.PushOpt("exchange", nonEmpty(e.opts.Exchange))
	q.PushOpt("interval", nonEmpty(string(e.opts.Interval)))
	q.PushOpt("sort", nonEmpty(string(e.opts.Sort)))
	q.PushOpt("date_from", e.opts.DateFrom)
	q.PushOpt("date_to", e.opts.DateTo)
	pushPage(q, e.opts.Limit, e.opts.Offset)
	return q
}
