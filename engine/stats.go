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

import "unicode/utf8"

// CorpusStats aggregates basic metrics of a corpus. All lengths
// are measured in runes, not bytes.
type CorpusStats struct {
	TotalWords       int     `json:"totalWords"`
	UniqueWords      int     `json:"uniqueWords"`
	TotalChars       int     `json:"totalChars"`
	TotalSentences   int     `json:"totalSentences"`
	AvgWordLength    float64 `json:"avgWordLength"`
	MinWordLength    int     `json:"minWordLength"`
	MaxWordLength    int     `json:"maxWordLength"`
	LexicalDiversity float64 `json:"lexicalDiversity"`
}

// Stats computes aggregate metrics over already tokenized input.
// Unique words are counted case-insensitively (folded). An empty
// token sequence yields word metrics of zero rather than dividing
// by zero; TotalChars and TotalSentences are still reported.
func Stats(tokens, sentences []string, text string, folder *Folder) CorpusStats {
	ans := CorpusStats{
		TotalChars:     utf8.RuneCountInString(text),
		TotalSentences: len(sentences),
	}
	if len(tokens) == 0 {
		return ans
	}
	uniq := make(map[string]struct{}, len(tokens))
	lenSum := 0
	ans.MinWordLength = utf8.RuneCountInString(tokens[0])
	for _, tok := range tokens {
		uniq[folder.Fold(tok)] = struct{}{}
		tokLen := utf8.RuneCountInString(tok)
		lenSum += tokLen
		if tokLen < ans.MinWordLength {
			ans.MinWordLength = tokLen
		}
		if tokLen > ans.MaxWordLength {
			ans.MaxWordLength = tokLen
		}
	}
	ans.TotalWords = len(tokens)
	ans.UniqueWords = len(uniq)
	ans.AvgWordLength = float64(lenSum) / float64(len(tokens))
	ans.LexicalDiversity = float64(ans.UniqueWords) / float64(ans.TotalWords)
	return ans
}
