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

// Package marketstack implements the endpoints of the Marketstack API v1 and
// the data types of their responses.
//
// Endpoints are created from an options struct, which is validated in full
// by the constructor:
//
//	e, err := marketstack.NewEod(marketstack.EodOptions{
//	  Symbols: []string{"AAPL", "MSFT"},
//	  Latest:  true,
//	})
//	data, err := api.Query[marketstack.EodData](ctx, e, c)
//
// All the endpoints are paginated with limit and offset, and can also be
// queried page by page:
//
//	q, err := api.Paged(e, api.Limit(5000))
//	items, err := api.QueryAll[marketstack.EodDataItem](ctx, q, c)
package marketstack
