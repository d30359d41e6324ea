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

// EventOptions select corporate actions (dividends or splits) of symbols.
type EventOptions struct {
	Symbols  []string `validate:"dive,required"`
	Sort     SortOrder `validate:"omitempty,oneof=ASC DESC"`
	DateFrom *types.Date
	DateTo   *types.Date
	Limit    int `validate:"gte=0"`
	Offset   int `validate:"gte=0"`
}

func (o EventOptions) check(name string) error {
	if err := checkOptions(name, o, o.Limit); err != nil {
		return err
	}
	if err := checkDates(o.DateFrom, o.DateTo); err != nil {
		return errors.Annotate(err, "invalid %s options", name)
	}
	return nil
}

func (o EventOptions) parameters() *api.QueryParams {
	q := api.NewQueryParams()
	pushSymbols(q, symbolSet(o.Symbols))
	q.PushOpt("sort", nonEmpty(string(o.Sort)))
	q.PushOpt("date_from", o.DateFrom)
	q.PushOpt("date_to", o.DateTo)
	pushPage(q, o.Limit, o.Offset)
	return q
}

// Dividends is the dividends endpoint.
type Dividends struct {
	api.Get
	api.OffsetPagination
	opts EventOptions
}

var _ api.Pageable = &Dividends{}

// NewDividends validates the options and creates the endpoint.
func NewDividends(opts EventOptions) (*Dividends, error) {
	if err := opts.check("Dividends"); err != nil {
		return nil, err
	}
	return &Dividends{opts: opts}, nil
}

// Path implements api.Endpoint.
func (e *Dividends) Path() string { return "dividends" }

// Parameters implements api.Endpoint.
func (e *Dividends) Parameters() *api.QueryParams { return e.opts.parameters() }

// Splits is the stock splits endpoint.
type Splits struct {
	api.Get
	api.OffsetPagination
	opts EventOptions
}

var _ api.Pageable = &Splits{}

// NewSplits validates the options and creates the endpoint.
func NewSplits(opts EventOptions) (*Splits, error) {
	if err := opts.check("Splits"); err != nil {
		return nil, err
	}
	return &Splits{opts: opts}, nil
}

// Path implements api.Endpoint.
func (e *Splits) Path() string { return "splits" }

// Parameters implements api.Endpoint.
func (e *Splits) Parameters() *api.QueryParams { return e.opts.parameters() }
