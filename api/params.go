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
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Param is a single key=value pair of a query string or a form.
type Param struct {
	Key   string
	Value string
}

// ParamValue is implemented by values with a dedicated wire representation,
// such as enums and dates.
type ParamValue interface {
	ParamValue() string
}

// paramString converts a typed value into its wire string.
func paramString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case time.Time:
		return x.Format(time.RFC3339)
	case ParamValue:
		return x.ParamValue()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// deref returns the value a non-nil pointer points to, or the value itself if
// it's not a pointer. The result is false for nil values.
func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		return rv.Elem().Interface(), true
	}
	return v, true
}

// params is an ordered multi-map shared by QueryParams and FormParams.
type params struct {
	list []Param
}

func (p *params) push(key string, value any) {
	p.list = append(p.list, Param{Key: key, Value: paramString(value)})
}

func (p *params) pushOpt(key string, value any) {
	if v, ok := deref(value); ok {
		p.push(key, v)
	}
}

func (p *params) encode() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for i, kv := range p.list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// QueryParams is an ordered list of URL query parameters. Keys may repeat, and
// the insertion order is preserved when rendering.
type QueryParams struct {
	p params
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// Push appends key=value, converting the value to its wire representation.
func (q *QueryParams) Push(key string, value any) {
	q.p.push(key, value)
}

// PushOpt appends key=value only when value is not nil. Pointers are
// dereferenced, so optional fields of endpoints can be passed as is.
func (q *QueryParams) PushOpt(key string, value any) {
	q.p.pushOpt(key, value)
}

// Extend appends all the params in order.
func (q *QueryParams) Extend(ps ...Param) {
	q.p.list = append(q.p.list, ps...)
}

// Params returns a copy of the current list of parameters.
func (q *QueryParams) Params() []Param {
	if q == nil {
		return nil
	}
	return append([]Param(nil), q.p.list...)
}

// Len is the number of parameters, counting repeated keys.
func (q *QueryParams) Len() int {
	if q == nil {
		return 0
	}
	return len(q.p.list)
}

// Encode renders the parameters as an escaped query string.
func (q *QueryParams) Encode() string {
	if q == nil {
		return ""
	}
	return q.p.encode()
}

// AddToURL appends the parameters to the URL's existing query string.
func (q *QueryParams) AddToURL(u *url.URL) {
	s := q.Encode()
	if s == "" {
		return
	}
	if u.RawQuery == "" {
		u.RawQuery = s
		return
	}
	u.RawQuery += "&" + s
}

// FormParams is an ordered list of form fields, rendered as a request body.
type FormParams struct {
	p params
}

// NewFormParams creates an empty FormParams.
func NewFormParams() *FormParams {
	return &FormParams{}
}

// Push appends key=value, converting the value to its wire representation.
func (f *FormParams) Push(key string, value any) {
	f.p.push(key, value)
}

// PushOpt appends key=value only when value is not nil.
func (f *FormParams) PushOpt(key string, value any) {
	f.p.pushOpt(key, value)
}

// Extend appends all the params in order.
func (f *FormParams) Extend(ps ...Param) {
	f.p.list = append(f.p.list, ps...)
}

// Encode renders the form fields in the urlencoded format.
func (f *FormParams) Encode() string {
	if f == nil {
		return ""
	}
	return f.p.encode()
}

// Body renders the form as an application/x-www-form-urlencoded request body.
func (f *FormParams) Body() *Body {
	return &Body{
		ContentType: "application/x-www-form-urlencoded",
		Data:        []byte(f.Encode()),
	}
}
