// Copyright 2026 The Uhlumagama Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import "strings"

// NGrams produces the len(tokens)-n+1 contiguous windows of size n,
// each represented as its tokens joined by a single space. Fewer
// tokens than n yields an empty sequence. For n == 1 the token
// sequence itself is returned (copied) without re-joining. n must
// be at least 1.
func NGrams(tokens []string, n int) ([]string, error) {
	if n < 1 {
		return nil, InvalidParameterError{
			Name:   "n",
			Reason: "must be at least 1",
		}
	}
	if len(tokens) < n {
		return []string{}, nil
	}
	if n == 1 {
		return append([]string{}, tokens...), nil
	}
	ans := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		ans = append(ans, strings.Join(tokens[i:i+n], " "))
	}
	return ans, nil
}
