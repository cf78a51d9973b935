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

// Corpus binds a decoded text with its derived token and sentence
// sequences. All derived data is computed once at construction and
// never mutated, so every analysis on an unchanged corpus yields
// identical output.
type Corpus struct {
	name      string
	text      string
	folder    *Folder
	tokens    []string
	sentences []string
}

// NewCorpus tokenizes and sentence-splits text once and wraps the
// result. folder defines the case-folding rules used by all
// analyses of this corpus.
func NewCorpus(name, text string, folder *Folder) *Corpus {
	return &Corpus{
		name:      name,
		text:      text,
		folder:    folder,
		tokens:    Tokenize(text),
		sentences: SplitSentences(text),
	}
}

func (c *Corpus) Name() string {
	return c.name
}

func (c *Corpus) Text() string {
	return c.text
}

// Tokens returns the corpus token sequence. Callers must not
// modify the returned slice.
func (c *Corpus) Tokens() []string {
	return c.tokens
}

func (c *Corpus) Sentences() []string {
	return c.sentences
}

// WordList returns the corpus word frequency distribution, folded
// to lower case, limited to maxItems entries with frequency of at
// least minFreq.
func (c *Corpus) WordList(maxItems, minFreq int) FreqItemList {
	ft := NewFreqTable()
	for _, tok := range c.tokens {
		ft.Incr(c.folder.Fold(tok))
	}
	return ft.TopN(maxItems, minFreq)
}

// ConcordanceSearch runs a keyword-in-context search over the
// corpus tokens.
func (c *Corpus) ConcordanceSearch(query string, contextWidth int) ([]ConcordanceEntry, error) {
	return Concordance(c.tokens, query, contextWidth, c.folder)
}

// NGramFreqs counts n-grams of the given size and returns the
// maxItems most frequent ones with frequency of at least minFreq.
func (c *Corpus) NGramFreqs(n, maxItems, minFreq int) (FreqItemList, error) {
	grams, err := NGrams(c.tokens, n)
	if err != nil {
		return nil, err
	}
	return CountItems(grams).TopN(maxItems, minFreq), nil
}

// KeynessAgainst compares this corpus (as target) with a reference
// corpus using the log-likelihood statistic.
func (c *Corpus) KeynessAgainst(ref *Corpus) []KeynessResult {
	return Keyness(
		SentenceTokens(c.sentences),
		SentenceTokens(ref.sentences),
		c.folder,
	)
}

// LetterFreqs counts the letters of the corpus text.
func (c *Corpus) LetterFreqs(maxItems int) FreqItemList {
	return LetterFreqs(c.text, c.folder).TopN(maxItems, 1)
}

// Stats returns the aggregate corpus metrics.
func (c *Corpus) Stats() CorpusStats {
	return Stats(c.tokens, c.sentences, c.text, c.folder)
}
