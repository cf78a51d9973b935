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

// ConcordanceEntry is one keyword-in-context occurrence. Match keeps
// the token as it appears in the corpus (original case).
type ConcordanceEntry struct {
	MatchIndex   int      `json:"matchIndex"`
	LeftContext  []string `json:"leftContext"`
	Match        string   `json:"match"`
	RightContext []string `json:"rightContext"`
}

// Concordance finds all occurrences of query in tokens and returns
// them with up to contextWidth tokens of context on each side,
// clamped at the sequence boundaries. Matching is case-insensitive:
// the query is folded once and each token is folded at compare time,
// stored tokens themselves stay untouched. An empty or whitespace
// query matches nothing. contextWidth must not be negative.
func Concordance(tokens []string, query string, contextWidth int, folder *Folder) ([]ConcordanceEntry, error) {
	if contextWidth < 0 {
		return nil, InvalidParameterError{
			Name:   "contextWidth",
			Reason: "must not be negative",
		}
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []ConcordanceEntry{}, nil
	}
	folded := folder.Fold(query)
	ans := make([]ConcordanceEntry, 0, 10)
	for i, tok := range tokens {
		if folder.Fold(tok) != folded {
			continue
		}
		left := i - contextWidth
		if left < 0 {
			left = 0
		}
		right := i + contextWidth + 1
		if right > len(tokens) {
			right = len(tokens)
		}
		ans = append(ans, ConcordanceEntry{
			MatchIndex:   i,
			LeftContext:  append([]string{}, tokens[left:i]...),
			Match:        tok,
			RightContext: append([]string{}, tokens[i+1:right]...),
		})
	}
	return ans, nil
}
