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
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/marketstack/api"
)

// TickersOptions select tickers, or data of a single ticker. At most one of
// Eod, Splits and Dividends may be set, and each of them requires Ticker.
type TickersOptions struct {
	Ticker    string `validate:"required_with=Eod Splits Dividends"`
	Exchange  string
	Search    string
	Limit     int `validate:"gte=0"`
	Offset    int `validate:"gte=0"`
	Eod       *EodOptions
	Splits    *EventOptions
	Dividends *EventOptions
}

// Tickers is the tickers endpoint: tickers, tickers/{ticker} and its eod,
// splits and dividends sub-resources.
type Tickers struct {
	api.Get
	api.OffsetPagination
	opts TickersOptions
	sub  api.Endpoint // sub-resource, may be nil
}

var _ api.Pageable = &Tickers{}

// NewTickers validates the options and creates the endpoint.
func NewTickers(opts TickersOptions) (*Tickers, error) {
	if err := checkOptions("Tickers", opts, opts.Limit); err != nil {
		return nil, err
	}
	subs := 0
	for _, set := range []bool{opts.Eod != nil, opts.Splits != nil, opts.Dividends != nil} {
		if set {
			subs++
		}
	}
	if subs > 1 {
		return nil, errors.Reason(
			"invalid Tickers options: at most one of Eod, Splits and Dividends may be set")
	}
	t := &Tickers{opts: opts}
	var err error
	switch {
	case opts.Eod != nil:
		t.sub, err = NewEod(*opts.Eod)
	case opts.Splits != nil:
		t.sub, err = NewSplits(*opts.Splits)
	case opts.Dividends != nil:
		t.sub, err = NewDividends(*opts.Dividends)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Path implements api.Endpoint.
func (e *Tickers) Path() string {
	if e.opts.Ticker == "" {
		return "tickers"
	}
	p := "tickers/" + url.PathEscape(e.opts.Ticker)
	if e.sub != nil {
		p += "/" + e.sub.Path()
	}
	return p
}

// Parameters implements api.Endpoint.
func (e *Tickers) Parameters() *api.QueryParams {
	q := api.NewQueryParams()
	if e.sub != nil {
		q.Extend(e.sub.Parameters().Params()...)
	}
	q.PushOpt("exchange", nonEmpty(e.opts.Exchange))
	q.PushOpt("search", nonEmpty(e.opts.Search))
	pushPage(q, e.opts.Limit, e.opts.Offset)
	return q
}

// ExchangesOptions select stock exchanges.
type ExchangesOptions struct {
	Search string
	Limit  int `validate:"gte=0"`
	Offset int `validate:"gte=0"`
}

// Exchanges is the stock exchanges endpoint.
type Exchanges struct {
	api.Get
	api.OffsetPagination
	opts ExchangesOptions
}

var _ api.Pageable = &Exchanges{}

// NewExchanges validates the options and creates the endpoint.
func NewExchanges(opts ExchangesOptions) (*Exchanges, error) {
	if err := checkOptions("Exchanges", opts, opts.Limit); err != nil {
		return nil, err
	}
	return &Exchanges{opts: opts}, nil
}

// Path implements api.Endpoint.
func (e *Exchanges) Path() string { return "exchanges" }

// Parameters implements api.Endpoint.
func (e *Exchanges) Parameters() *api.QueryParams {
	q := api.NewQueryParams()
	q.PushOpt("search", nonEmpty(e.opts.Search))
	pushPage(q, e.opts.Limit, e.opts.Offset)
	return q
}

// ListOptions page through a plain list.
type ListOptions struct {
	Limit  int `validate:"gte=0"`
	Offset int `validate:"gte=0"`
}

// Currencies is the list of supported currencies.
type Currencies struct {
	api.Get
	api.OffsetPagination
	opts ListOptions
}

var _ api.Pageable = &Currencies{}

// NewCurrencies validates the options and creates the endpoint.
func NewCurrencies(opts ListOptions) (*Currencies, error) {
	if err := checkOptions("Currencies", opts, opts.Limit); err != nil {
		return nil, err
	}
	return &Currencies{opts: opts}, nil
}

// Path implements api.Endpoint.
func (e *Currencies) Path() string { return "currencies" }

// Parameters implements api.Endpoint.
func (e *Currencies) Parameters() *api.QueryParams {
	q := api.NewQueryParams()
	pushPage(q, e.opts.Limit, e.opts.Offset)
	return q
}

// Timezones is the list of supported timezones.
type Timezones struct {
	api.Get
	api.OffsetPagination
	opts ListOptions
}

var _ api.Pageable = &Timezones{}

// NewTimezones validates the options and creates the endpoint.
func NewTimezones(opts ListOptions) (*Timezones, error) {
	if err := checkOptions("Timezones", opts, opts.Limit); err != nil {
		return nil, err
	}
	return &Timezones{opts: opts}, nil
}

// Path implements api.Endpoint.
func (e *Timezones) Path() string { return "timezones" }

// Parameters implements api.Endpoint.
func (e *Timezones) Parameters() *api.QueryParams {
	q := api.NewQueryParams()
	pushPage(q, e.opts.Limit, e.opts.Offset)
	return q
}
