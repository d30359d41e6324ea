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

// AccessKeyParam is the query parameter carrying the API access key.
const AccessKeyParam = "access_key"

// Auth holds the Marketstack API access key.
type Auth struct {
	Token string
}

// Apply adds the access key to the query. A nil Auth or an empty token is a
// KindAuthMissing error.
func (a *Auth) Apply(q *QueryParams) error {
	if a == nil || a.Token == "" {
		return &Error{Kind: KindAuthMissing}
	}
	q.Push(AccessKeyParam, a.Token)
	return nil
}
