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
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind is the category of an *Error.
type ErrorKind int

const (
	// KindAuthMissing: a query was attempted without an access key.
	KindAuthMissing ErrorKind = iota + 1
	// KindURL: the URL could not be resolved, or a Link header is malformed.
	KindURL
	// KindBodyEncoding: the request body could not be produced.
	KindBodyEncoding
	// KindTransport: the request could not be sent.
	KindTransport
	// KindService: the response body is not JSON. Carries Status and Data.
	KindService
	// KindRemoteMessage: the remote error has a string message. Carries Status
	// and Message.
	KindRemoteMessage
	// KindRemoteObject: the remote error has a non-string message. Carries
	// Status and Value.
	KindRemoteObject
	// KindRemoteUnrecognized: the remote error has no recognized fields.
	// Carries Status and Value.
	KindRemoteUnrecognized
	// KindDataType: the response doesn't fit the requested type. Carries
	// TypeName and Err.
	KindDataType
	// KindPaginationLimit: the requested page size is above the limit.
	KindPaginationLimit
)

var kindNames = map[ErrorKind]string{
	KindAuthMissing:        "AuthMissing",
	KindURL:                "URL",
	KindBodyEncoding:       "BodyEncoding",
	KindTransport:          "Transport",
	KindService:            "Service",
	KindRemoteMessage:      "RemoteMessage",
	KindRemoteObject:       "RemoteObject",
	KindRemoteUnrecognized: "RemoteUnrecognized",
	KindDataType:           "DataType",
	KindPaginationLimit:    "PaginationLimit",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single error type returned by the queries of this package.
// Only the fields relevant to the Kind are set.
type Error struct {
	Kind     ErrorKind
	Status   int    // HTTP status of the response
	Data     []byte // raw response body for KindService
	Message  string // remote message, or details of a local error
	Value    any    // remote error payload
	TypeName string // requested Go type for KindDataType
	Err      error  // underlying cause
}

var _ error = &Error{}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAuthMissing:
		return "missing Marketstack access key"
	case KindURL:
		return fmt.Sprintf("failed to resolve URL: %v", e.Err)
	case KindBodyEncoding:
		return fmt.Sprintf("failed to encode request body: %v", e.Err)
	case KindTransport:
		return fmt.Sprintf("failed to send request: %v", e.Err)
	case KindService:
		return fmt.Sprintf("service error (status %d): response is not JSON: %q",
			e.Status, truncate(e.Data, 200))
	case KindRemoteMessage:
		return fmt.Sprintf("marketstack error (status %d): %s", e.Status, e.Message)
	case KindRemoteObject:
		return fmt.Sprintf("marketstack error (status %d): %s", e.Status, jsonString(e.Value))
	case KindRemoteUnrecognized:
		return fmt.Sprintf("unrecognized marketstack error (status %d): %s",
			e.Status, jsonString(e.Value))
	case KindDataType:
		return fmt.Sprintf("failed to parse response as %s: %v", e.TypeName, e.Err)
	case KindPaginationLimit:
		return fmt.Sprintf("pagination limit exceeded: %s", e.Message)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind checks whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func jsonString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// remoteError classifies a non-success response with a JSON body js.
func remoteError(status int, js any) *Error {
	if obj, ok := js.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			v, ok := obj[key]
			if !ok {
				continue
			}
			if s, ok := v.(string); ok {
				return &Error{Kind: KindRemoteMessage, Status: status, Message: s}
			}
			return &Error{Kind: KindRemoteObject, Status: status, Value: v}
		}
	}
	return &Error{Kind: KindRemoteUnrecognized, Status: status, Value: js}
}

// classify parses the response body as generic JSON. It returns the parsed
// value for a successful response, or the appropriate *Error otherwise.
func classify(resp *Response) (any, error) {
	var js any
	if err := json.Unmarshal(resp.Body, &js); err != nil {
		return nil, &Error{Kind: KindService, Status: resp.StatusCode, Data: resp.Body}
	}
	if !resp.Success() {
		return nil, remoteError(resp.StatusCode, js)
	}
	return js, nil
}
