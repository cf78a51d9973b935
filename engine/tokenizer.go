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
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches maximal runs of word characters. Anything
// else (punctuation, whitespace) separates tokens and is dropped.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize splits text into word tokens keeping their original
// case and order. Empty or punctuation-only input yields an
// empty sequence.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// Folder lowercases strings using the casing rules of a concrete
// language rather than byte-wise ASCII folding. The zero tag
// (language.Und) still handles the full Unicode range.
type Folder struct {
	tag language.Tag
}

// NewFolder creates a Folder for a BCP 47 language tag (e.g. "zu").
// An unparseable tag degrades to language-independent folding.
func NewFolder(lang string) *Folder {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return &Folder{tag: tag}
}

// Fold returns s lowercased. A fresh caser is created per call
// as cases.Caser instances must not be shared between goroutines.
func (f *Folder) Fold(s string) string {
	return cases.Lower(f.tag).String(s)
}
