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
	"fmt"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	// CorpusFormatText is a plain UTF-8 text file.
	CorpusFormatText = "text"

	// CorpusFormatVertical is the token-per-line format used by
	// corpus managers (one positional-attribute row per token,
	// structural tags like <s> on their own lines).
	CorpusFormatVertical = "vertical"

	dfltMaxNgramSize    = 5
	dfltMaxContextWidth = 50
	dfltMaxItems        = 10
)

var corpusFormats = []string{CorpusFormatText, CorpusFormatVertical}

// CorpusProps configures a single corpus preloaded at startup.
type CorpusProps struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Format string `json:"format"`
}

func (props *CorpusProps) ValidateAndDefaults(confContext string) error {
	if props.Name == "" {
		return fmt.Errorf("missing `%s.name`", confContext)
	}
	if props.Path == "" {
		return fmt.Errorf("missing `%s.path`", confContext)
	}
	if props.Format == "" {
		props.Format = CorpusFormatText
	}
	if !collections.SliceContains(corpusFormats, props.Format) {
		return fmt.Errorf("invalid `%s.format`: %s", confContext, props.Format)
	}
	return nil
}

type CorporaConf []*CorpusProps

func (cp CorporaConf) GetCorpusProps(corpusID string) *CorpusProps {
	for _, props := range cp {
		if props.Name == corpusID {
			return props
		}
	}
	return nil
}

// LimitsConf bounds user-supplied analysis parameters.
type LimitsConf struct {
	MaxNgramSize    int `json:"maxNgramSize"`
	MaxContextWidth int `json:"maxContextWidth"`
	DefaultMaxItems int `json:"defaultMaxItems"`
}

func (conf *LimitsConf) ValidateAndDefaults() error {
	if conf.MaxNgramSize == 0 {
		conf.MaxNgramSize = dfltMaxNgramSize
	}
	if conf.MaxNgramSize < 1 {
		return fmt.Errorf("invalid `limits.maxNgramSize`: %d", conf.MaxNgramSize)
	}
	if conf.MaxContextWidth == 0 {
		conf.MaxContextWidth = dfltMaxContextWidth
	}
	if conf.MaxContextWidth < 1 {
		return fmt.Errorf("invalid `limits.maxContextWidth`: %d", conf.MaxContextWidth)
	}
	if conf.DefaultMaxItems == 0 {
		conf.DefaultMaxItems = dfltMaxItems
	}
	if conf.DefaultMaxItems < 1 {
		return fmt.Errorf("invalid `limits.defaultMaxItems`: %d", conf.DefaultMaxItems)
	}
	return nil
}
