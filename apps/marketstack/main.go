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

// Command marketstack queries the Marketstack API and prints the results as a
// table.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/marketstack/api"
	"github.com/stockparfait/marketstack/client"
	"github.com/stockparfait/marketstack/marketstack"
	"github.com/stockparfait/marketstack/table"
	"github.com/stockparfait/marketstack/types"

	toml "github.com/pelletier/go-toml/v2"
)

var endpoints = []string{
	"eod", "intraday", "dividends", "splits", "tickers", "exchanges",
	"currencies", "timezones"}

type Flags struct {
	ConfigDir string // default: ~/.marketstack
	LogLevel  logging.Level
	Endpoint  string   // required, one of endpoints
	Symbols   []string // comma-separated on the command line
	Exchange  string
	Interval  string
	Sort      string
	Search    string
	Latest    bool
	Date      *types.Date
	From      *types.Date
	To        *types.Date
	Limit     int // 0 = all items
	PageSize  int // 0 = the largest page the endpoint allows
	CSV       bool
}

func parseDate(s string) (*types.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := types.NewDateFromString(s)
	if err != nil {
		return nil, errors.Annotate(err, "invalid date '%s'", s)
	}
	return &d, nil
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	var symbols, date, from, to string
	fs := flag.NewFlagSet("marketstack", flag.ExitOnError)
	fs.StringVar(&flags.ConfigDir, "config",
		filepath.Join(os.Getenv("HOME"), ".marketstack"),
		"directory with config.toml")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.StringVar(&flags.Endpoint, "endpoint", "",
		"required, one of: "+strings.Join(endpoints, ", "))
	fs.StringVar(&symbols, "symbols", "", "comma-separated list of tickers")
	fs.StringVar(&flags.Exchange, "exchange", "", "exchange MIC filter")
	fs.StringVar(&flags.Interval, "interval", "", "intraday interval, e.g. 1hour")
	fs.StringVar(&flags.Sort, "sort", "", "sort order: ASC or DESC")
	fs.StringVar(&flags.Search, "search", "", "search string for tickers and exchanges")
	fs.BoolVar(&flags.Latest, "latest", false, "only the latest eod or intraday data")
	fs.StringVar(&date, "date", "", "eod or intraday data for this date (YYYY-MM-DD)")
	fs.StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	fs.StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	fs.IntVar(&flags.Limit, "limit", 0, "max. number of items; 0 = all")
	fs.IntVar(&flags.PageSize, "page-size", 0, "items per request; 0 = max")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	found := false
	for _, e := range endpoints {
		if e == flags.Endpoint {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Reason("-endpoint must be one of: %s",
			strings.Join(endpoints, ", "))
	}
	if symbols != "" {
		flags.Symbols = strings.Split(symbols, ",")
	}
	var err error
	if flags.Date, err = parseDate(date); err != nil {
		return nil, errors.Annotate(err, "invalid -date")
	}
	if flags.From, err = parseDate(from); err != nil {
		return nil, errors.Annotate(err, "invalid -from")
	}
	if flags.To, err = parseDate(to); err != nil {
		return nil, errors.Annotate(err, "invalid -to")
	}
	return &flags, nil
}

func parseConfig(dir string) (*client.Config, error) {
	filePath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `key = "YourSecretMarketstackKey"
# insecure = true  # for the free plan without https
`
			return nil, errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, sample)
		}
		return nil, errors.Annotate(err,
			"cannot check config file for existence: '%s'", filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	d.DisallowUnknownFields()
	var c client.Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

func (f *Flags) pagination() (api.Pagination, error) {
	p := api.All()
	if f.Limit > 0 {
		p = api.Limit(f.Limit)
	}
	if f.PageSize > 0 {
		return p.WithPageSize(f.PageSize)
	}
	return p, nil
}

// endpoint creates the paginated endpoint selected by the flags.
func (f *Flags) endpoint() (api.Pageable, error) {
	switch f.Endpoint {
	case "eod":
		return marketstack.NewEod(marketstack.EodOptions{
			Symbols:  f.Symbols,
			Exchange: f.Exchange,
			Sort:     marketstack.SortOrder(f.Sort),
			DateFrom: f.From,
			DateTo:   f.To,
			Latest:   f.Latest,
			Date:     f.Date,
		})
	case "intraday":
		return marketstack.NewIntraday(marketstack.IntradayOptions{
			Symbols:  f.Symbols,
			Exchange: f.Exchange,
			Interval: marketstack.Interval(f.Interval),
			Sort:     marketstack.SortOrder(f.Sort),
			DateFrom: f.From,
			DateTo:   f.To,
			Latest:   f.Latest,
			Date:     f.Date,
		})
	case "dividends", "splits":
		opts := marketstack.EventOptions{
			Symbols:  f.Symbols,
			Sort:     marketstack.SortOrder(f.Sort),
			DateFrom: f.From,
			DateTo:   f.To,
		}
		if f.Endpoint == "splits" {
			return marketstack.NewSplits(opts)
		}
		return marketstack.NewDividends(opts)
	case "tickers":
		return marketstack.NewTickers(marketstack.TickersOptions{
			Exchange: f.Exchange,
			Search:   f.Search,
		})
	case "exchanges":
		return marketstack.NewExchanges(marketstack.ExchangesOptions{Search: f.Search})
	case "currencies":
		return marketstack.NewCurrencies(marketstack.ListOptions{})
	case "timezones":
		return marketstack.NewTimezones(marketstack.ListOptions{})
	}
	return nil, errors.Reason("unsupported endpoint: %s", f.Endpoint)
}

// listTable pages through the query and collects the items into a table.
func listTable[R table.Record](ctx context.Context, q *api.PagedQuery, c api.Client) (*table.Table, error) {
	it := api.Iter[R](ctx, q, c)
	t := table.FromRecords[R](it)
	if err := it.Err(); err != nil {
		return nil, errors.Annotate(err, "failed to query %s", q.Endpoint().Path())
	}
	logging.Debugf(ctx, "%s: %d items", q.Endpoint().Path(), len(t.Rows))
	return t, nil
}

type tickerResult struct {
	item marketstack.TickerItem
	err  error
}

// tickersTable fetches the details of each ticker concurrently.
func tickersTable(ctx context.Context, symbols []string, c api.Client) (*table.Table, error) {
	f := func(symbol string) tickerResult {
		e, err := marketstack.NewTickers(marketstack.TickersOptions{Ticker: symbol})
		if err != nil {
			return tickerResult{err: err}
		}
		item, err := api.Query[marketstack.TickerItem](ctx, e, c)
		if err != nil {
			return tickerResult{err: errors.Annotate(err, "failed to query ticker %s", symbol)}
		}
		return tickerResult{item: item}
	}
	pm := iterator.ParallelMap(ctx, 2*runtime.NumCPU(), iterator.FromSlice(symbols), f)
	defer pm.Close()

	var err error
	t := iterator.Reduce[tickerResult, *table.Table](pm,
		table.NewTable(marketstack.TickerItem{}.CSVHeader()...),
		func(r tickerResult, t *table.Table) *table.Table {
			if r.err != nil {
				if err == nil {
					err = r.err
				}
				return t
			}
			t.AddRow(r.item)
			return t
		})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func query(ctx context.Context, flags *Flags, c api.Client) (*table.Table, error) {
	if flags.Endpoint == "tickers" && len(flags.Symbols) > 0 {
		return tickersTable(ctx, flags.Symbols, c)
	}
	e, err := flags.endpoint()
	if err != nil {
		return nil, errors.Annotate(err, "invalid query")
	}
	p, err := flags.pagination()
	if err != nil {
		return nil, errors.Annotate(err, "invalid pagination")
	}
	q, err := api.Paged(e, p)
	if err != nil {
		return nil, errors.Annotate(err, "invalid pagination")
	}
	switch flags.Endpoint {
	case "eod":
		return listTable[marketstack.EodDataItem](ctx, q, c)
	case "intraday":
		return listTable[marketstack.IntradayDataItem](ctx, q, c)
	case "dividends":
		return listTable[marketstack.DividendsDataItem](ctx, q, c)
	case "splits":
		return listTable[marketstack.SplitsDataItem](ctx, q, c)
	case "tickers":
		return listTable[marketstack.TickerItem](ctx, q, c)
	case "exchanges":
		return listTable[marketstack.ExchangeItem](ctx, q, c)
	case "currencies":
		return listTable[marketstack.CurrencyItem](ctx, q, c)
	default: // "timezones"
		return listTable[marketstack.TimezoneItem](ctx, q, c)
	}
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	cfg, err := parseConfig(flags.ConfigDir)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	c, err := client.New(*cfg)
	if err != nil {
		return errors.Annotate(err, "failed to create client")
	}
	t, err := query(ctx, flags, c)
	if err != nil {
		return err
	}
	if err := t.Write(w, table.Params{CSV: flags.CSV}); err != nil {
		return errors.Annotate(err, "failed to print table")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
