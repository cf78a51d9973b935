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

// AnalysisKind is a closed enumeration of the analyses the engine
// provides. Clients select behavior by kind, never by display label.
type AnalysisKind string

const (
	AnalysisWordList    AnalysisKind = "wordList"
	AnalysisConcordance AnalysisKind = "concordance"
	AnalysisKeyness     AnalysisKind = "keyness"
	AnalysisNGrams      AnalysisKind = "ngrams"
	AnalysisLetterFreq  AnalysisKind = "letterFreq"
	AnalysisStats       AnalysisKind = "stats"
)

// AnalysisDescriptor is the static capability record of one
// analysis kind, queried by the presentation layer before offering
// the analysis to users. Labels carry the IsiZulu terminology
// the tool is known under.
type AnalysisDescriptor struct {
	Kind         AnalysisKind `json:"kind"`
	Label        string       `json:"label"`
	NeedsQuery   bool         `json:"needsQuery"`
	NeedsRefCorp bool         `json:"needsRefCorpus"`
	NeedsSize    bool         `json:"needsSize"`
}

// AnalysisRegistry returns the capability descriptors of all
// compiled-in analyses in a fixed order.
func AnalysisRegistry() []AnalysisDescriptor {
	return []AnalysisDescriptor{
		{Kind: AnalysisWordList, Label: "Uhlumagama (Word List)"},
		{Kind: AnalysisConcordance, Label: "Imvumelwanomagama (Concordance)", NeedsQuery: true},
		{Kind: AnalysisKeyness, Label: "Ubungqikithimagama (Keyness)", NeedsRefCorp: true},
		{Kind: AnalysisNGrams, Label: "Onhlamvunye (N-grams)", NeedsSize: true},
		{Kind: AnalysisLetterFreq, Label: "Isibalo sezinhlamvu zamagama (Letter Frequency)"},
		{Kind: AnalysisStats, Label: "Isibalo samagama (Word Count)"},
	}
}

// ValidKind tests whether kind names a compiled-in analysis.
func ValidKind(kind AnalysisKind) bool {
	for _, d := range AnalysisRegistry() {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
