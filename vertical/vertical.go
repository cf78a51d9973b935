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

// Package vertical extracts plain text from corpus vertical files
// (one token per line, positional attributes in tab-separated
// columns, structural tags on their own lines) so they can be fed
// to the analysis engine like any other decoded text.
package vertical

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"
)

type textCollector struct {
	buf       strings.Builder
	numTokens int
}

func (tc *textCollector) ProcToken(token *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	if token.Word == "" {
		return nil
	}
	if tc.buf.Len() > 0 {
		last := tc.buf.String()[tc.buf.Len()-1]
		if last != ' ' && last != '\n' {
			tc.buf.WriteByte(' ')
		}
	}
	tc.buf.WriteString(token.Word)
	tc.numTokens++
	return nil
}

func (tc *textCollector) ProcStruct(strc *vertigo.Structure, line int, err error) error {
	return err
}

func (tc *textCollector) ProcStructClose(strc *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return err
	}
	// sentence and paragraph closes become line breaks so the
	// sentence splitter still sees the original segmentation
	if strc.Name == "s" || strc.Name == "p" || strc.Name == "doc" {
		tc.buf.WriteByte('\n')
	}
	return nil
}

// ExtractText parses the vertical file at path and returns its
// tokens joined into plain text, with sentence/paragraph structures
// rendered as line breaks.
func ExtractText(path string) (string, error) {
	pc := &vertigo.ParserConf{
		InputFilePath:         path,
		Encoding:              "utf-8",
		StructAttrAccumulator: "comb",
	}
	tc := &textCollector{}
	if err := vertigo.ParseVerticalFile(pc, tc); err != nil {
		return "", err
	}
	log.Info().
		Str("path", path).
		Int("tokens", tc.numTokens).
		Msg("extracted text from vertical file")
	return tc.buf.String(), nil
}
