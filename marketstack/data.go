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
	"fmt"
	"strconv"

	"github.com/stockparfait/marketstack/message"
	"github.com/stockparfait/marketstack/types"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// PaginationInfo is the paging summary of a list response.
type PaginationInfo struct {
	Limit  int `json:"limit" required:"true"`
	Offset int `json:"offset" required:"true"`
	Count  int `json:"count" required:"true"`
	Total  int `json:"total" required:"true"`
}

var _ message.Message = &PaginationInfo{}

// InitMessage implements message.Message.
func (p *PaginationInfo) InitMessage(js interface{}) error {
	return message.InitPartial(p, js)
}

// EodDataItem is the end-of-day price of a symbol.
type EodDataItem struct {
	Date        types.Time `json:"date" required:"true"`
	Symbol      string     `json:"symbol" required:"true"`
	Exchange    string     `json:"exchange" required:"true"`
	SplitFactor float64    `json:"split_factor" default:"1"`
	Dividend    float64    `json:"dividend"`
	Open        float64    `json:"open" required:"true"`
	High        float64    `json:"high" required:"true"`
	Low         float64    `json:"low" required:"true"`
	Close       float64    `json:"close" required:"true"`
	Volume      float64    `json:"volume" required:"true"`
	AdjOpen     float64    `json:"adj_open"`
	AdjHigh     float64    `json:"adj_high"`
	AdjLow      float64    `json:"adj_low"`
	AdjClose    float64    `json:"adj_close"`
	AdjVolume   float64    `json:"adj_volume"`
}

var _ message.Message = &EodDataItem{}

// InitMessage implements message.Message.
func (e *EodDataItem) InitMessage(js interface{}) error {
	return message.InitPartial(e, js)
}

// CSVHeader lists the columns of CSV().
func (e EodDataItem) CSVHeader() []string {
	return []string{"Date", "Symbol", "Exchange", "Open", "High", "Low", "Close",
		"Volume", "Adj Close", "Split", "Dividend"}
}

// CSV implements table.Row.
func (e EodDataItem) CSV() []string {
	return []string{
		e.Date.Date().String(),
		e.Symbol,
		e.Exchange,
		formatFloat(e.Open),
		formatFloat(e.High),
		formatFloat(e.Low),
		formatFloat(e.Close),
		formatFloat(e.Volume),
		formatFloat(e.AdjClose),
		formatFloat(e.SplitFactor),
		formatFloat(e.Dividend),
	}
}

// EodData is a page of end-of-day prices.
type EodData struct {
	Pagination PaginationInfo `json:"pagination" required:"true"`
	Data       []EodDataItem  `json:"data" required:"true"`
}

var _ message.Message = &EodData{}

// InitMessage implements message.Message.
func (e *EodData) InitMessage(js interface{}) error {
	return message.InitPartial(e, js)
}

// IntradayDataItem is an intraday price bar of a symbol. Prices may be missing
// outside of trading hours.
type IntradayDataItem struct {
	Date     types.Time `json:"date" required:"true"`
	Symbol   string     `json:"symbol" required:"true"`
	Exchange string     `json:"exchange" required:"true"`
	Open     float64    `json:"open"`
	High     float64    `json:"high"`
	Low      float64    `json:"low"`
	Close    float64    `json:"close"`
	Last     float64    `json:"last"`
	Volume   float64    `json:"volume"`
}

var _ message.Message = &IntradayDataItem{}

// InitMessage implements message.Message.
func (e *IntradayDataItem) InitMessage(js interface{}) error {
	return message.InitPartial(e, js)
}

// CSVHeader lists the columns of CSV().
func (e IntradayDataItem) CSVHeader() []string {
	return []string{"Time", "Symbol", "Exchange", "Open", "High", "Low", "Close",
		"Last", "Volume"}
}

// CSV implements table.Row.
func (e IntradayDataItem) CSV() []string {
	return []string{
		e.Date.String(),
		e.Symbol,
		e.Exchange,
		formatFloat(e.Open),
		formatFloat(e.High),
		formatFloat(e.Low),
		formatFloat(e.Close),
		formatFloat(e.Last),
		formatFloat(e.Volume),
	}
}

// IntradayData is a page of intraday prices.
type IntradayData struct {
	Pagination PaginationInfo     `json:"pagination" required:"true"`
	Data       []IntradayDataItem `json:"data" required:"true"`
}

var _ message.Message = &IntradayData{}

// InitMessage implements message.Message.
func (e *IntradayData) InitMessage(js interface{}) error {
	return message.InitPartial(e, js)
}

// DividendsDataItem is a single dividend payment.
type DividendsDataItem struct {
	Date     types.Date `json:"date" required:"true"`
	Dividend float64    `json:"dividend" required:"true"`
	Symbol   string     `json:"symbol" required:"true"`
}

var _ message.Message = &DividendsDataItem{}

// InitMessage implements message.Message.
func (d *DividendsDataItem) InitMessage(js interface{}) error {
	return message.InitPartial(d, js)
}

// CSVHeader lists the columns of CSV().
func (d DividendsDataItem) CSVHeader() []string {
	return []string{"Date", "Symbol", "Dividend"}
}

// CSV implements table.Row.
func (d DividendsDataItem) CSV() []string {
	return []string{d.Date.String(), d.Symbol, formatFloat(d.Dividend)}
}

// DividendsData is a page of dividends.
type DividendsData struct {
	Pagination PaginationInfo      `json:"pagination" required:"true"`
	Data       []DividendsDataItem `json:"data" required:"true"`
}

var _ message.Message = &DividendsData{}

// InitMessage implements message.Message.
func (d *DividendsData) InitMessage(js interface{}) error {
	return message.InitPartial(d, js)
}

// SplitsDataItem is a single stock split.
type SplitsDataItem struct {
	Date        types.Date `json:"date" required:"true"`
	SplitFactor float64    `json:"split_factor" required:"true"`
	Symbol      string     `json:"symbol" required:"true"`
}

var _ message.Message = &SplitsDataItem{}

// InitMessage implements message.Message.
func (s *SplitsDataItem) InitMessage(js interface{}) error {
	return message.InitPartial(s, js)
}

// CSVHeader lists the columns of CSV().
func (s SplitsDataItem) CSVHeader() []string {
	return []string{"Date", "Symbol", "Split Factor"}
}

// CSV implements table.Row.
func (s SplitsDataItem) CSV() []string {
	return []string{s.Date.String(), s.Symbol, formatFloat(s.SplitFactor)}
}

// SplitsData is a page of splits.
type SplitsData struct {
	Pagination PaginationInfo   `json:"pagination" required:"true"`
	Data       []SplitsDataItem `json:"data" required:"true"`
}

var _ message.Message = &SplitsData{}

// InitMessage implements message.Message.
func (s *SplitsData) InitMessage(js interface{}) error {
	return message.InitPartial(s, js)
}

// TimezoneItem describes a timezone.
type TimezoneItem struct {
	Timezone string `json:"timezone" required:"true"`
	Abbr     string `json:"abbr"`
	AbbrDST  string `json:"abbr_dst"`
}

var _ message.Message = &TimezoneItem{}

// InitMessage implements message.Message.
func (t *TimezoneItem) InitMessage(js interface{}) error {
	return message.InitPartial(t, js)
}

// CSVHeader lists the columns of CSV().
func (t TimezoneItem) CSVHeader() []string {
	return []string{"Timezone", "Abbr", "Abbr DST"}
}

// CSV implements table.Row.
func (t TimezoneItem) CSV() []string {
	return []string{t.Timezone, t.Abbr, t.AbbrDST}
}

// TimezonesData is a page of timezones.
type TimezonesData struct {
	Pagination PaginationInfo `json:"pagination" required:"true"`
	Data       []TimezoneItem `json:"data" required:"true"`
}

var _ message.Message = &TimezonesData{}

// InitMessage implements message.Message.
func (t *TimezonesData) InitMessage(js interface{}) error {
	return message.InitPartial(t, js)
}

// CurrencyItem describes a currency.
type CurrencyItem struct {
	Code         string `json:"code" required:"true"`
	Symbol       string `json:"symbol"`
	SymbolNative string `json:"symbol_native"`
	Name         string `json:"name"`
}

var _ message.Message = &CurrencyItem{}

// InitMessage implements message.Message.
func (c *CurrencyItem) InitMessage(js interface{}) error {
	return message.InitPartial(c, js)
}

// CSVHeader lists the columns of CSV().
func (c CurrencyItem) CSVHeader() []string {
	return []string{"Code", "Symbol", "Name"}
}

// CSV implements table.Row.
func (c CurrencyItem) CSV() []string {
	return []string{c.Code, c.Symbol, c.Name}
}

// CurrenciesData is a page of currencies.
type CurrenciesData struct {
	Pagination PaginationInfo `json:"pagination" required:"true"`
	Data       []CurrencyItem `json:"data" required:"true"`
}

var _ message.Message = &CurrenciesData{}

// InitMessage implements message.Message.
func (c *CurrenciesData) InitMessage(js interface{}) error {
	return message.InitPartial(c, js)
}

// ExchangeItem describes a stock exchange.
type ExchangeItem struct {
	Name        string        `json:"name" required:"true"`
	Acronym     string        `json:"acronym"`
	MIC         string        `json:"mic" required:"true"`
	Country     string        `json:"country"`
	CountryCode string        `json:"country_code"`
	City        string        `json:"city"`
	Website     string        `json:"website"`
	Timezone    *TimezoneItem `json:"timezone"`
	Currency    *CurrencyItem `json:"currency"`
}

var _ message.Message = &ExchangeItem{}

// InitMessage implements message.Message.
func (e *ExchangeItem) InitMessage(js interface{}) error {
	return message.InitPartial(e, js)
}

// CSVHeader lists the columns of CSV().
func (e ExchangeItem) CSVHeader() []string {
	return []string{"MIC", "Acronym", "Name", "Country", "City", "Currency"}
}

// CSV implements table.Row.
func (e ExchangeItem) CSV() []string {
	currency := ""
	if e.Currency != nil {
		currency = e.Currency.Code
	}
	return []string{e.MIC, e.Acronym, e.Name, e.CountryCode, e.City, currency}
}

// ExchangesData is a page of stock exchanges.
type ExchangesData struct {
	Pagination PaginationInfo `json:"pagination" required:"true"`
	Data       []ExchangeItem `json:"data" required:"true"`
}

var _ message.Message = &ExchangesData{}

// InitMessage implements message.Message.
func (e *ExchangesData) InitMessage(js interface{}) error {
	return message.InitPartial(e, js)
}

// TickerItem describes a ticker symbol.
type TickerItem struct {
	Name          string        `json:"name" required:"true"`
	Symbol        string        `json:"symbol" required:"true"`
	HasIntraday   bool          `json:"has_intraday"`
	HasEod        bool          `json:"has_eod"`
	Country       string        `json:"country"`
	StockExchange *ExchangeItem `json:"stock_exchange"`
}

var _ message.Message = &TickerItem{}

// InitMessage implements message.Message.
func (t *TickerItem) InitMessage(js interface{}) error {
	return message.InitPartial(t, js)
}

// CSVHeader lists the columns of CSV().
func (t TickerItem) CSVHeader() []string {
	return []string{"Symbol", "Name", "Exchange", "EOD", "Intraday"}
}

// CSV implements table.Row.
func (t TickerItem) CSV() []string {
	exchange := ""
	if t.StockExchange != nil {
		exchange = t.StockExchange.MIC
	}
	return []string{t.Symbol, t.Name, exchange,
		fmt.Sprintf("%t", t.HasEod), fmt.Sprintf("%t", t.HasIntraday)}
}

// TickersData is a page of tickers.
type TickersData struct {
	Pagination PaginationInfo `json:"pagination" required:"true"`
	Data       []TickerItem   `json:"data" required:"true"`
}

var _ message.Message = &TickersData{}

// InitMessage implements message.Message.
func (t *TickersData) InitMessage(js interface{}) error {
	return message.InitPartial(t, js)
}
