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

import (
	"strings"
	"unicode"
)

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosing(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == ']' || r == '”' || r == '’'
}

// SplitSentences segments text into sentence substrings. A sentence
// ends at a run of terminal punctuation (optionally followed by a
// closing quote or bracket) when the next non-whitespace rune starts
// a new sentence (upper-case letter, digit or opening quote) or the
// text ends. Empty text yields zero sentences.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0
	i := 0
	for i < len(runes) {
		if !isTerminal(runes[i]) {
			i++
			continue
		}
		for i < len(runes) && isTerminal(runes[i]) {
			i++
		}
		for i < len(runes) && isClosing(runes[i]) {
			i++
		}
		// a boundary requires trailing whitespace (or EOF); inspect
		// what follows it to avoid cutting after e.g. "3.5 million"
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i && i < len(runes) {
			continue
		}
		if j >= len(runes) || unicode.IsUpper(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '"' || runes[j] == '“' || runes[j] == '‘' {
			sent := strings.TrimSpace(string(runes[start:i]))
			if sent != "" {
				sentences = append(sentences, sent)
			}
			start = j
			i = j
		}
	}
	if start < len(runes) {
		sent := strings.TrimSpace(string(runes[start:]))
		if sent != "" {
			sentences = append(sentences, sent)
		}
	}
	return sentences
}

// SentenceTokens tokenizes each sentence independently, preserving
// the sentence grouping keyness consumes.
func SentenceTokens(sentences []string) [][]string {
	ans := make([][]string, len(sentences))
	for i, s := range sentences {
		ans[i] = Tokenize(s)
	}
	return ans
}
