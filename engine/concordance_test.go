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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcordanceBasic(t *testing.T) {
	folder := NewFolder("und")
	tokens := Tokenize("the cat sat on the mat")
	entries, err := Concordance(tokens, "the", 1, folder)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 0, entries[0].MatchIndex)
	assert.Empty(t, entries[0].LeftContext)
	assert.Equal(t, []string{"cat"}, entries[0].RightContext)

	assert.Equal(t, 4, entries[1].MatchIndex)
	assert.Equal(t, []string{"on"}, entries[1].LeftContext)
	assert.Equal(t, []string{"mat"}, entries[1].RightContext)
}

func TestConcordanceCaseInsensitive(t *testing.T) {
	folder := NewFolder("und")
	tokens := []string{"Inja", "igijima", "INJA", "ilele"}
	entries, err := Concordance(tokens, "inja", 1, folder)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// stored tokens keep their original case
	assert.Equal(t, "Inja", entries[0].Match)
	assert.Equal(t, "INJA", entries[1].Match)
}

func TestConcordanceUnicodeFolding(t *testing.T) {
	folder := NewFolder("und")
	tokens := []string{"ÁRBOL", "verde"}
	entries, err := Concordance(tokens, "árbol", 2, folder)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ÁRBOL", entries[0].Match)
}

func TestConcordanceClampedAtBoundaries(t *testing.T) {
	folder := NewFolder("und")
	tokens := []string{"a", "b", "a"}
	entries, err := Concordance(tokens, "a", 10, folder)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].LeftContext)
	assert.Equal(t, []string{"b", "a"}, entries[0].RightContext)
	assert.Equal(t, []string{"a", "b"}, entries[1].LeftContext)
	assert.Empty(t, entries[1].RightContext)
}

func TestConcordanceAdjacentMatches(t *testing.T) {
	folder := NewFolder("und")
	tokens := []string{"x", "x", "x"}
	entries, err := Concordance(tokens, "x", 1, folder)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i, e.MatchIndex)
	}
}

func TestConcordanceEmptyQuery(t *testing.T) {
	folder := NewFolder("und")
	entries, err := Concordance([]string{"a", "b"}, "   ", 2, folder)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcordanceNoMatch(t *testing.T) {
	folder := NewFolder("und")
	entries, err := Concordance([]string{"a", "b"}, "zzz", 2, folder)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcordanceNegativeContextWidth(t *testing.T) {
	folder := NewFolder("und")
	_, err := Concordance([]string{"a"}, "a", -1, folder)
	var paramErr InvalidParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "contextWidth", paramErr.Name)
}

func TestConcordanceZeroContextWidth(t *testing.T) {
	folder := NewFolder("und")
	entries, err := Concordance([]string{"a", "b", "a"}, "a", 0, folder)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].LeftContext)
	assert.Empty(t, entries[0].RightContext)
}
