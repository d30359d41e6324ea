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

package types

import (
	"encoding/json"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/marketstack/message"
)

// Time is a wrapper around time.Time with JSON and Message methods. Values are
// always in UTC.
type Time time.Time

var _ json.Marshaler = Time{}
var _ json.Unmarshaler = &Time{}
var _ message.Message = &Time{}

// NewTime creates a Time in UTC.
func NewTime(year, month, day, hour, minute, second int) Time {
	return Time(time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC))
}

// String representation of Time in RFC 3339 format.
func (t Time) String() string {
	return time.Time(t).Format(time.RFC3339)
}

// ParamValue is the query parameter representation.
func (t Time) ParamValue() string {
	return t.String()
}

// Date part of the timestamp.
func (t Time) Date() Date {
	return NewDateFromTime(time.Time(t))
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Annotate(err, "Time JSON must be a string")
	}
	return t.set(s)
}

// InitMessage implements message.Message.
func (t *Time) InitMessage(js interface{}) error {
	switch s := js.(type) {
	case string:
		return t.set(s)
	case map[string]interface{}: // missing or null
		*t = Time{}
		return nil
	}
	return errors.Reason("expected a time string or {}, got %v", js)
}

func (t *Time) set(s string) error {
	tm, err := parseTime(s)
	if err != nil {
		return errors.Annotate(err, "failed to parse time string: '%s'", s)
	}
	*t = Time(tm)
	return nil
}
