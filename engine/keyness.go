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
	"math"
	"sort"
)

// Chi-square critical values at 1 degree of freedom, the customary
// significance bands for the log-likelihood keyness statistic
// (p < 0.0001, 0.001, 0.01).
const (
	keynessVeryHigh = 15.13
	keynessHigh     = 10.83
	keynessMedium   = 6.63
)

// KeynessResult describes how strongly a single word diverges
// between a target and a reference corpus. LogLikelihood carries
// the direction: positive means over-represented in the target.
type KeynessResult struct {
	Word          string  `json:"word"`
	TargetFreq    int     `json:"targetFreq"`
	RefFreq       int     `json:"refFreq"`
	LogLikelihood float64 `json:"logLikelihood"`
	Significance  string  `json:"significance"`
}

// SignificanceBand maps a log-likelihood magnitude to its
// conventional label.
func SignificanceBand(ll float64) string {
	abs := math.Abs(ll)
	switch {
	case abs > keynessVeryHigh:
		return "Very High"
	case abs > keynessHigh:
		return "High"
	case abs > keynessMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func flattenFolded(sentences [][]string, folder *Folder) *FreqTable {
	ft := NewFreqTable()
	for _, sent := range sentences {
		for _, tok := range sent {
			ft.Incr(folder.Fold(tok))
		}
	}
	return ft
}

// Keyness compares word frequencies of a target corpus against a
// reference corpus using the log-likelihood (G²) statistic. Both
// corpora arrive as sentence-grouped tokens; the grouping records
// their provenance and is flattened before counting. For each word
// in the union vocabulary:
//
//	E_a = N_A*(a+b)/(N_A+N_B), E_b = N_B*(a+b)/(N_A+N_B)
//	G² = 2*(a*ln(a/E_a) + b*ln(b/E_b))
//
// where a zero observed count contributes nothing. The unsigned G²
// is negated for words under-represented in the target so direction
// survives into the result. Results are sorted by the statistic
// descending, ties broken by target frequency and word.
func Keyness(target, reference [][]string, folder *Folder) []KeynessResult {
	ftA := flattenFolded(target, folder)
	ftB := flattenFolded(reference, folder)
	nA := float64(ftA.Total())
	nB := float64(ftB.Total())
	if nA+nB == 0 {
		return []KeynessResult{}
	}

	vocab := make([]string, 0, ftA.Size()+ftB.Size())
	vocab = append(vocab, ftA.order...)
	for _, w := range ftB.order {
		if ftA.Get(w) == 0 {
			vocab = append(vocab, w)
		}
	}

	ans := make([]KeynessResult, 0, len(vocab))
	for _, w := range vocab {
		a := float64(ftA.Get(w))
		b := float64(ftB.Get(w))
		expA := nA * (a + b) / (nA + nB)
		expB := nB * (a + b) / (nA + nB)
		var g2 float64
		if a > 0 {
			g2 += a * math.Log(a/expA)
		}
		if b > 0 {
			g2 += b * math.Log(b/expB)
		}
		g2 *= 2
		if a*nB < b*nA {
			g2 = -g2
		}
		ans = append(ans, KeynessResult{
			Word:          w,
			TargetFreq:    int(a),
			RefFreq:       int(b),
			LogLikelihood: g2,
			Significance:  SignificanceBand(g2),
		})
	}
	sort.SliceStable(
		ans,
		func(i, j int) bool {
			if ans[i].LogLikelihood != ans[j].LogLikelihood {
				return ans[j].LogLikelihood < ans[i].LogLikelihood
			}
			if ans[i].TargetFreq != ans[j].TargetFreq {
				return ans[j].TargetFreq < ans[i].TargetFreq
			}
			return ans[i].Word < ans[j].Word
		},
	)
	return ans
}
