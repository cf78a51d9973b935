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
	"sort"
	"unicode"
)

// FreqItem is a single entry of a frequency distribution.
type FreqItem struct {
	Value string `json:"value"`
	Freq  int    `json:"freq"`
}

type FreqItemList []FreqItem

func (flist FreqItemList) Cut(maxItems int) FreqItemList {
	if maxItems >= 0 && len(flist) > maxItems {
		return flist[:maxItems]
	}
	return flist
}

// FreqTable counts occurrences of string items. Besides the counts
// it remembers the first-occurrence order of distinct items which
// gives all derived rankings a deterministic tie-break.
type FreqTable struct {
	counts map[string]int
	order  []string
	total  int
}

func NewFreqTable() *FreqTable {
	return &FreqTable{counts: make(map[string]int)}
}

// Incr adds a single occurrence of item.
func (ft *FreqTable) Incr(item string) {
	if _, ok := ft.counts[item]; !ok {
		ft.order = append(ft.order, item)
	}
	ft.counts[item]++
	ft.total++
}

// Get returns the count of item (0 if absent).
func (ft *FreqTable) Get(item string) int {
	return ft.counts[item]
}

// Size returns the number of distinct items.
func (ft *FreqTable) Size() int {
	return len(ft.counts)
}

// Total returns the sum of all counts, i.e. the number of
// occurrences the table was fed.
func (ft *FreqTable) Total() int {
	return ft.total
}

// Items returns all entries in first-occurrence order.
func (ft *FreqTable) Items() FreqItemList {
	ans := make(FreqItemList, len(ft.order))
	for i, v := range ft.order {
		ans[i] = FreqItem{Value: v, Freq: ft.counts[v]}
	}
	return ans
}

// TopN returns at most n entries with count >= minFreq sorted by
// count descending. The sort is stable over first-occurrence order
// so repeated runs on identical input produce identical output.
// n < 0 means no limit.
func (ft *FreqTable) TopN(n, minFreq int) FreqItemList {
	ans := make(FreqItemList, 0, len(ft.order))
	for _, v := range ft.order {
		if ft.counts[v] >= minFreq {
			ans = append(ans, FreqItem{Value: v, Freq: ft.counts[v]})
		}
	}
	sort.SliceStable(
		ans,
		func(i, j int) bool {
			return ans[j].Freq < ans[i].Freq
		},
	)
	return ans.Cut(n)
}

// CountItems builds a frequency table from a sequence in a single pass.
func CountItems(items []string) *FreqTable {
	ft := NewFreqTable()
	for _, item := range items {
		ft.Incr(item)
	}
	return ft
}

// LetterFreqs counts the letters of text, folded to lower case.
// Digits, punctuation and whitespace are ignored.
func LetterFreqs(text string, folder *Folder) *FreqTable {
	ft := NewFreqTable()
	for _, r := range text {
		if unicode.IsLetter(r) {
			ft.Incr(folder.Fold(string(r)))
		}
	}
	return ft
}
