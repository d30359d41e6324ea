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
	"net/http"
	"net/url"
	"strings"

	"github.com/stockparfait/errors"
)

// LinkHeader is a single entry of an RFC 8288 Link header.
type LinkHeader struct {
	URL    string
	Params map[string]string
}

// splitParams splits the parameters of a single link entry at ';' and stops
// at the ',' which starts the next entry. Separators inside quoted values are
// kept. It returns the parameters and the rest of the header value.
func splitParams(value string) ([]string, string) {
	var params []string
	quoted := false
	begin := 0
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c == '"':
			quoted = !quoted
		case c == '\\' && quoted:
			i++
		case c == ';' && !quoted:
			params = append(params, value[begin:i])
			begin = i + 1
		case c == ',' && !quoted:
			return append(params, value[begin:i]), value[i+1:]
		}
	}
	return append(params, value[begin:]), ""
}

// ParseLinkHeader parses a Link header value, which may hold several
// comma-separated entries: <url>; rel="next", <url>; rel="prev".
func ParseLinkHeader(value string) ([]LinkHeader, error) {
	var res []LinkHeader
	for len(strings.TrimSpace(value)) > 0 {
		value = strings.TrimSpace(value)
		if value[0] != '<' {
			return nil, errors.Reason("link must start with '<': %s", value)
		}
		end := strings.IndexByte(value, '>')
		if end < 0 {
			return nil, errors.Reason("link is missing a closing '>': %s", value)
		}
		link := LinkHeader{URL: value[1:end], Params: make(map[string]string)}
		var params []string
		params, value = splitParams(value[end+1:])
		for _, p := range params {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			k, v, ok := strings.Cut(p, "=")
			if !ok {
				return nil, errors.Reason("malformed link parameter: %s", p)
			}
			k = strings.ToLower(strings.TrimSpace(k))
			v = strings.Trim(strings.TrimSpace(v), `"`)
			link.Params[k] = v
		}
		res = append(res, link)
	}
	return res, nil
}

// HasRel checks whether rel, a space-separated list of relation types,
// includes the given one.
func (l LinkHeader) HasRel(rel string) bool {
	for _, r := range strings.Fields(l.Params["rel"]) {
		if strings.EqualFold(r, rel) {
			return true
		}
	}
	return false
}

// NextPageFromHeaders returns the URL of the Link header entry with
// rel="next", or nil if there isn't one. A malformed header is a KindURL error.
func NextPageFromHeaders(h http.Header) (*url.URL, error) {
	for _, value := range h.Values("Link") {
		links, err := ParseLinkHeader(value)
		if err != nil {
			return nil, &Error{Kind: KindURL, Err: err}
		}
		for _, l := range links {
			if !l.HasRel("next") {
				continue
			}
			u, err := url.Parse(l.URL)
			if err != nil {
				return nil, &Error{Kind: KindURL, Err: err}
			}
			return u, nil
		}
	}
	return nil, nil
}
