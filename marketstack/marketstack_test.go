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
	"testing"

	"github.com/stockparfait/marketstack/api"
	"github.com/stockparfait/marketstack/types"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func date(s string) *types.Date {
	d, err := types.NewDateFromString(s)
	So(err, ShouldBeNil)
	return &d
}

func TestEndpoints(t *testing.T) {
	t.Parallel()

	Convey("Eod", t, func() {
		Convey("defaults are sufficient", func() {
			e, err := NewEod(EodOptions{})
			So(err, ShouldBeNil)
			So(e.Method(), ShouldEqual, "GET")
			So(e.Path(), ShouldEqual, "eod")
			So(e.Parameters().Encode(), ShouldEqual, "")
			So(e.UsesKeysetPagination(), ShouldBeFalse)
			So(e.MaxPageSize(), ShouldEqual, api.MaxPageSize)
		})

		Convey("symbols are a sorted set", func() {
			e, err := NewEod(EodOptions{Symbols: []string{"MSFT", "AAPL", "MSFT"}})
			So(err, ShouldBeNil)
			So(e.Parameters().Encode(), ShouldEqual, "symbols=AAPL&symbols=MSFT")
		})

		Convey("all parameters", func() {
			e, err := NewEod(EodOptions{
				Symbols:  []string{"AAPL"},
				Exchange: "XNAS",
				Sort:     Ascending,
				DateFrom: date("2021-01-01"),
				DateTo:   date("2021-02-01"),
				Limit:    100,
				Offset:   5,
			})
			So(err, ShouldBeNil)
			So(e.Parameters().Encode(), ShouldEqual,
				"symbols=AAPL&exchange=XNAS&sort=ASC&date_from=2021-01-01&date_to=2021-02-01&limit=100&offset=5")
			So(e.Parameters().Encode(), ShouldEqual, e.Parameters().Encode())
		})

		Convey("latest and date", func() {
			e, err := NewEod(EodOptions{Latest: true})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "eod/latest")

			e, err = NewEod(EodOptions{Date: date("2021-04-09")})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "eod/2021-04-09")

			_, err = NewEod(EodOptions{Latest: true, Date: date("2021-04-09")})
			So(err, ShouldNotBeNil)
		})

		Convey("invalid options", func() {
			_, err := NewEod(EodOptions{Limit: 1001})
			So(api.IsKind(err, api.KindPaginationLimit), ShouldBeTrue)

			_, err = NewEod(EodOptions{Limit: 1000})
			So(err, ShouldBeNil)

			_, err = NewEod(EodOptions{Sort: "UP"})
			So(err, ShouldNotBeNil)

			_, err = NewEod(EodOptions{Offset: -1})
			So(err, ShouldNotBeNil)

			_, err = NewEod(EodOptions{Symbols: []string{"AAPL", ""}})
			So(err, ShouldNotBeNil)

			_, err = NewEod(EodOptions{DateFrom: date("2021-02-01"), DateTo: date("2021-01-01")})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Intraday", t, func() {
		e, err := NewIntraday(IntradayOptions{
			Symbols:  []string{"AAPL"},
			Interval: FiveMinutes,
			Sort:     Descending,
		})
		So(err, ShouldBeNil)
		So(e.Path(), ShouldEqual, "intraday")
		So(e.Parameters().Encode(), ShouldEqual, "symbols=AAPL&interval=5min&sort=DESC")

		e, err = NewIntraday(IntradayOptions{Latest: true})
		So(err, ShouldBeNil)
		So(e.Path(), ShouldEqual, "intraday/latest")

		e, err = NewIntraday(IntradayOptions{Date: date("2021-04-09")})
		So(err, ShouldBeNil)
		So(e.Path(), ShouldEqual, "intraday/2021-04-09")

		_, err = NewIntraday(IntradayOptions{Interval: "2min"})
		So(err, ShouldNotBeNil)
		_, err = NewIntraday(IntradayOptions{Latest: true, Date: date("2021-04-09")})
		So(err, ShouldNotBeNil)
		_, err = NewIntraday(IntradayOptions{Limit: 5000})
		So(api.IsKind(err, api.KindPaginationLimit), ShouldBeTrue)
	})

	Convey("Dividends and Splits", t, func() {
		opts := EventOptions{
			Symbols:  []string{"MSFT", "AAPL"},
			Sort:     Ascending,
			DateFrom: date("2020-01-01"),
			Limit:    10,
		}
		d, err := NewDividends(opts)
		So(err, ShouldBeNil)
		So(d.Path(), ShouldEqual, "dividends")
		So(d.Parameters().Encode(), ShouldEqual,
			"symbols=AAPL&symbols=MSFT&sort=ASC&date_from=2020-01-01&limit=10")

		s, err := NewSplits(opts)
		So(err, ShouldBeNil)
		So(s.Path(), ShouldEqual, "splits")
		So(s.Parameters().Encode(), ShouldEqual, d.Parameters().Encode())

		_, err = NewSplits(EventOptions{Limit: 1001})
		So(api.IsKind(err, api.KindPaginationLimit), ShouldBeTrue)
		_, err = NewDividends(EventOptions{DateFrom: date("2021-02-01"), DateTo: date("2021-01-01")})
		So(err, ShouldNotBeNil)
	})

	Convey("Tickers", t, func() {
		Convey("list", func() {
			e, err := NewTickers(TickersOptions{Exchange: "XNAS", Search: "apple", Limit: 5})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "tickers")
			So(e.Parameters().Encode(), ShouldEqual, "exchange=XNAS&search=apple&limit=5")
		})

		Convey("single ticker", func() {
			e, err := NewTickers(TickersOptions{Ticker: "AAPL"})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "tickers/AAPL")
			So(e.Parameters().Encode(), ShouldEqual, "")
		})

		Convey("sub-resources", func() {
			e, err := NewTickers(TickersOptions{Ticker: "AAPL", Eod: &EodOptions{}})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "tickers/AAPL/eod")

			e, err = NewTickers(TickersOptions{Ticker: "AAPL", Eod: &EodOptions{Latest: true}})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "tickers/AAPL/eod/latest")

			e, err = NewTickers(TickersOptions{
				Ticker: "AAPL",
				Eod:    &EodOptions{Date: date("2021-04-09"), Sort: Ascending},
			})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "tickers/AAPL/eod/2021-04-09")
			So(e.Parameters().Encode(), ShouldEqual, "sort=ASC")

			e, err = NewTickers(TickersOptions{
				Ticker:   "AAPL",
				Exchange: "XNAS",
				Splits:   &EventOptions{DateFrom: date("2000-01-01")},
			})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "tickers/AAPL/splits")
			So(e.Parameters().Encode(), ShouldEqual, "date_from=2000-01-01&exchange=XNAS")

			e, err = NewTickers(TickersOptions{Ticker: "AAPL", Dividends: &EventOptions{}})
			So(err, ShouldBeNil)
			So(e.Path(), ShouldEqual, "tickers/AAPL/dividends")
		})

		Convey("invalid combinations", func() {
			_, err := NewTickers(TickersOptions{
				Ticker:    "AAPL",
				Eod:       &EodOptions{},
				Dividends: &EventOptions{},
			})
			So(err, ShouldNotBeNil)

			_, err = NewTickers(TickersOptions{Splits: &EventOptions{}})
			So(err, ShouldNotBeNil)

			_, err = NewTickers(TickersOptions{
				Ticker: "AAPL",
				Eod:    &EodOptions{Latest: true, Date: date("2021-04-09")},
			})
			So(err, ShouldNotBeNil)

			_, err = NewTickers(TickersOptions{Ticker: "AAPL", Eod: &EodOptions{Limit: 1001}})
			So(api.IsKind(err, api.KindPaginationLimit), ShouldBeTrue)
		})
	})

	Convey("Reference data", t, func() {
		e, err := NewExchanges(ExchangesOptions{Search: "nasdaq", Offset: 10})
		So(err, ShouldBeNil)
		So(e.Path(), ShouldEqual, "exchanges")
		So(e.Parameters().Encode(), ShouldEqual, "search=nasdaq&offset=10")

		c, err := NewCurrencies(ListOptions{Limit: 3})
		So(err, ShouldBeNil)
		So(c.Path(), ShouldEqual, "currencies")
		So(c.Parameters().Encode(), ShouldEqual, "limit=3")

		tz, err := NewTimezones(ListOptions{})
		So(err, ShouldBeNil)
		So(tz.Path(), ShouldEqual, "timezones")
		So(tz.Parameters().Encode(), ShouldEqual, "")

		_, err = NewTimezones(ListOptions{Limit: 1001})
		So(api.IsKind(err, api.KindPaginationLimit), ShouldBeTrue)
		_, err = NewCurrencies(ListOptions{Offset: -3})
		So(err, ShouldNotBeNil)
	})
}

func TestData(t *testing.T) {
	t.Parallel()

	Convey("EodData", t, func() {
		js := testutil.JSON(`{
  "pagination": {"limit": 100, "offset": 0, "count": 100, "total": 9944},
  "data": [
    {
      "open": 129.8,
      "high": 133.04,
      "low": 129.47,
      "close": 132.995,
      "volume": 106686703.0,
      "adj_high": 133.04,
      "adj_low": 129.47,
      "adj_close": 132.995,
      "adj_open": 129.8,
      "adj_volume": 106686703.0,
      "split_factor": 1.0,
      "dividend": 0.0,
      "symbol": "AAPL",
      "exchange": "XNAS",
      "date": "2021-04-09T00:00:00+0000"
    }
  ]
}`)
		var d EodData
		So(d.InitMessage(js), ShouldBeNil)
		So(d.Pagination, ShouldResemble, PaginationInfo{Limit: 100, Count: 100, Total: 9944})
		So(len(d.Data), ShouldEqual, 1)
		item := d.Data[0]
		So(item.Symbol, ShouldEqual, "AAPL")
		So(item.Date, ShouldResemble, types.NewTime(2021, 4, 9, 0, 0, 0))
		So(item.Open, ShouldEqual, 129.8)
		So(testutil.RoundFixed(item.Close, 3), ShouldEqual, 132.995)
		So(testutil.RoundFixed(item.Volume/1e6, 1), ShouldEqual, 106.7)
		So(item.CSV(), ShouldResemble, []string{"2021-04-09", "AAPL", "XNAS",
			"129.8", "133.04", "129.47", "132.995", "106686703", "132.995", "1", "0"})
		So(len(item.CSVHeader()), ShouldEqual, len(item.CSV()))
	})

	Convey("EodDataItem requires prices", t, func() {
		var item EodDataItem
		err := item.InitMessage(testutil.JSON(`{
      "symbol": "AAPL", "exchange": "XNAS", "date": "2021-04-09",
      "open": 1, "high": 1, "low": 1, "volume": 10, "adj_close": null}`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "close")
	})

	Convey("SplitsData", t, func() {
		js := testutil.JSON(`{
  "pagination": {"limit": 100, "offset": 0, "count": 5, "total": 5},
  "data": [
    {"date": "2020-08-31", "split_factor": 4, "symbol": "AAPL"},
    {"date": "2014-06-09", "split_factor": 7, "symbol": "AAPL"},
    {"date": "2005-02-28", "split_factor": 2, "symbol": "AAPL"},
    {"date": "2000-06-21", "split_factor": 2, "symbol": "AAPL"},
    {"date": "1987-06-16", "split_factor": 2, "symbol": "AAPL"}
  ]
}`)
		var d SplitsData
		So(d.InitMessage(js), ShouldBeNil)
		So(len(d.Data), ShouldEqual, 5)
		So(d.Data[0], ShouldResemble, SplitsDataItem{
			Date: types.NewDate(2020, 8, 31), SplitFactor: 4, Symbol: "AAPL"})
		So(d.Data[4], ShouldResemble, SplitsDataItem{
			Date: types.NewDate(1987, 6, 16), SplitFactor: 2, Symbol: "AAPL"})
		So(d.Data[1].CSV(), ShouldResemble, []string{"2014-06-09", "AAPL", "7"})
	})

	Convey("DividendsDataItem", t, func() {
		var d DividendsDataItem
		So(d.InitMessage(testutil.JSON(
			`{"date": "2021-05-07", "dividend": 0.22, "symbol": "AAPL"}`)), ShouldBeNil)
		So(d, ShouldResemble, DividendsDataItem{
			Date: types.NewDate(2021, 5, 7), Dividend: 0.22, Symbol: "AAPL"})
		So(d.CSV(), ShouldResemble, []string{"2021-05-07", "AAPL", "0.22"})
	})

	Convey("IntradayDataItem tolerates missing prices", t, func() {
		var d IntradayDataItem
		So(d.InitMessage(testutil.JSON(`{
      "date": "2021-04-09T15:30:00+0000", "symbol": "AAPL", "exchange": "IEXG",
      "open": 132.1, "high": null, "last": 132.5, "volume": null}`)), ShouldBeNil)
		So(d.Date, ShouldResemble, types.NewTime(2021, 4, 9, 15, 30, 0))
		So(d.High, ShouldEqual, 0.0)
		So(d.Last, ShouldEqual, 132.5)
		So(d.CSV()[0], ShouldEqual, "2021-04-09T15:30:00Z")
	})

	Convey("TickerItem with nested exchange", t, func() {
		var ti TickerItem
		So(ti.InitMessage(testutil.JSON(`{
      "name": "Apple Inc", "symbol": "AAPL", "has_intraday": false, "has_eod": true,
      "country": null,
      "stock_exchange": {
        "name": "NASDAQ Stock Exchange", "acronym": "NASDAQ", "mic": "XNAS",
        "country": "USA", "country_code": "US", "city": "New York",
        "website": "www.nasdaq.com",
        "timezone": {"timezone": "America/New_York", "abbr": "EST", "abbr_dst": "EDT"},
        "currency": {"code": "USD", "symbol": "$", "name": "US Dollar"}
      }}`)), ShouldBeNil)
		So(ti.HasEod, ShouldBeTrue)
		So(ti.Country, ShouldEqual, "")
		So(ti.StockExchange.MIC, ShouldEqual, "XNAS")
		So(ti.StockExchange.Timezone, ShouldResemble, &TimezoneItem{
			Timezone: "America/New_York", Abbr: "EST", AbbrDST: "EDT"})
		So(ti.StockExchange.Currency.Code, ShouldEqual, "USD")
		So(ti.CSV(), ShouldResemble, []string{"AAPL", "Apple Inc", "XNAS", "true", "false"})
		So(ti.StockExchange.CSV(), ShouldResemble, []string{
			"XNAS", "NASDAQ", "NASDAQ Stock Exchange", "US", "New York", "USD"})
	})

	Convey("ExchangeItem without nested objects", t, func() {
		var e ExchangeItem
		So(e.InitMessage(testutil.JSON(`{"name": "Test", "mic": "XTST"}`)), ShouldBeNil)
		So(e.Timezone, ShouldBeNil)
		So(e.CSV()[5], ShouldEqual, "")
	})

	Convey("Currencies and timezones", t, func() {
		var c CurrenciesData
		So(c.InitMessage(testutil.JSON(`{
      "pagination": {"limit": 3, "offset": 0, "count": 1, "total": 41},
      "data": [{"code": "USD", "symbol": "$", "name": "US Dollar"}]}`)), ShouldBeNil)
		So(c.Data[0].CSV(), ShouldResemble, []string{"USD", "$", "US Dollar"})

		var tz TimezonesData
		So(tz.InitMessage(testutil.JSON(`{
      "pagination": {"limit": 3, "offset": 0, "count": 1, "total": 57},
      "data": [{"timezone": "Asia/Tokyo", "abbr": "JST", "abbr_dst": "JST"}]}`)), ShouldBeNil)
		So(tz.Data[0].CSV(), ShouldResemble, []string{"Asia/Tokyo", "JST", "JST"})

		var bad TimezonesData
		So(bad.InitMessage(testutil.JSON(`{"data": []}`)), ShouldNotBeNil)
	})
}
