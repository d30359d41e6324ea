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
	"net/url"
	"testing"
	"time"

	"github.com/stockparfait/marketstack/types"

	. "github.com/smartystreets/goconvey/convey"
)

type testEnum string

func (e testEnum) ParamValue() string { return "enum:" + string(e) }

type testStringer struct{}

func (testStringer) String() string { return "stringer" }

func TestParams(t *testing.T) {
	t.Parallel()

	Convey("QueryParams", t, func() {
		q := NewQueryParams()

		Convey("preserves insertion order and repeated keys", func() {
			q.Push("a", 1)
			q.Push("b", 2)
			q.Push("a", 3)
			So(q.Encode(), ShouldEqual, "a=1&b=2&a=3")
			So(q.Len(), ShouldEqual, 3)
		})

		Convey("converts typed values", func() {
			q.Push("str", "x")
			q.Push("int", -5)
			q.Push("int64", int64(7))
			q.Push("uint", uint64(8))
			q.Push("bool", true)
			q.Push("date", types.NewDate(2021, 4, 9))
			q.Push("time", time.Date(2021, 4, 9, 13, 30, 0, 0, time.UTC))
			q.Push("enum", testEnum("v"))
			q.Push("stringer", testStringer{})
			q.Push("float", 1.5)
			So(q.Params(), ShouldResemble, []Param{
				{"str", "x"},
				{"int", "-5"},
				{"int64", "7"},
				{"uint", "8"},
				{"bool", "true"},
				{"date", "2021-04-09"},
				{"time", "2021-04-09T13:30:00Z"},
				{"enum", "enum:v"},
				{"stringer", "stringer"},
				{"float", "1.5"},
			})
		})

		Convey("PushOpt skips nil values and dereferences pointers", func() {
			var missing *int
			limit := 10
			date := types.NewDate(2020, 1, 2)
			q.PushOpt("missing", missing)
			q.PushOpt("nil", nil)
			q.PushOpt("limit", &limit)
			q.PushOpt("date", &date)
			q.PushOpt("plain", "v")
			So(q.Encode(), ShouldEqual, "limit=10&date=2020-01-02&plain=v")
		})

		Convey("Extend appends in order", func() {
			q.Push("a", "1")
			q.Extend(Param{"b", "2"}, Param{"a", "3"})
			So(q.Encode(), ShouldEqual, "a=1&b=2&a=3")
		})

		Convey("escapes keys and values", func() {
			q.Push("search", "a b&c=d")
			So(q.Encode(), ShouldEqual, "search=a+b%26c%3Dd")
		})

		Convey("rendering is idempotent", func() {
			e := &testEndpoint{path: "eod"}
			So(e.Parameters().Encode(), ShouldEqual, e.Parameters().Encode())
			So(e.Parameters().Encode(), ShouldEqual, "symbols=AAPL&symbols=MSFT&sort=DESC")
			So(q.Encode(), ShouldEqual, "")
		})

		Convey("AddToURL appends to the existing query", func() {
			u, err := url.Parse("https://api.test/v1/eod?x=y")
			So(err, ShouldBeNil)
			q.Push("a", 1)
			q.AddToURL(u)
			So(u.String(), ShouldEqual, "https://api.test/v1/eod?x=y&a=1")

			u2, err := url.Parse("https://api.test/v1/eod")
			So(err, ShouldBeNil)
			q.AddToURL(u2)
			So(u2.String(), ShouldEqual, "https://api.test/v1/eod?a=1")

			u3, err := url.Parse("https://api.test/v1/eod")
			So(err, ShouldBeNil)
			NewQueryParams().AddToURL(u3)
			So(u3.String(), ShouldEqual, "https://api.test/v1/eod")
		})

		Convey("nil params render empty", func() {
			var nilParams *QueryParams
			So(nilParams.Encode(), ShouldEqual, "")
			So(nilParams.Len(), ShouldEqual, 0)
			So(nilParams.Params(), ShouldBeNil)
		})
	})

	Convey("FormParams renders a urlencoded body", t, func() {
		f := NewFormParams()
		f.Push("name", "my list")
		f.PushOpt("skip", (*string)(nil))
		f.Extend(Param{"n", "2"})
		b := f.Body()
		So(b.ContentType, ShouldEqual, "application/x-www-form-urlencoded")
		So(string(b.Data), ShouldEqual, "name=my+list&n=2")
	})

	Convey("Auth", t, func() {
		q := NewQueryParams()

		Convey("adds the access key", func() {
			So((&Auth{Token: "k"}).Apply(q), ShouldBeNil)
			So(q.Encode(), ShouldEqual, "access_key=k")
		})

		Convey("requires a token", func() {
			var a *Auth
			So(IsKind(a.Apply(q), KindAuthMissing), ShouldBeTrue)
			So(IsKind((&Auth{}).Apply(q), KindAuthMissing), ShouldBeTrue)
			So(q.Len(), ShouldEqual, 0)
		})
	})
}
