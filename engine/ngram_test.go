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

func TestNGramsBigrams(t *testing.T) {
	grams, err := NGrams([]string{"a", "b", "c"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "b c"}, grams)
}

func TestNGramsTooFewTokens(t *testing.T) {
	grams, err := NGrams([]string{"a"}, 2)
	require.NoError(t, err)
	assert.Empty(t, grams)
}

func TestNGramsUnigramFastPath(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	grams, err := NGrams(tokens, 1)
	require.NoError(t, err)
	assert.Equal(t, tokens, grams)

	// returned slice is a copy, not an alias
	grams[0] = "mutated"
	assert.Equal(t, "a", tokens[0])
}

func TestNGramsWindowCount(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e"}
	grams, err := NGrams(tokens, 3)
	require.NoError(t, err)
	assert.Len(t, grams, len(tokens)-3+1)
	assert.Equal(t, "a b c", grams[0])
	assert.Equal(t, "c d e", grams[2])
}

func TestNGramsInvalidSize(t *testing.T) {
	_, err := NGrams([]string{"a"}, 0)
	var paramErr InvalidParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "n", paramErr.Name)
}

func TestNGramFrequenciesMatchUnigramCounting(t *testing.T) {
	tokens := Tokenize("a b a b a")
	grams, err := NGrams(tokens, 1)
	require.NoError(t, err)
	assert.Equal(t, CountItems(tokens).Items(), CountItems(grams).Items())
}
