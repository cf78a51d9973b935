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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulwazi-nlp/uhlumagama/engine"
)

const testConfig = `{
	"listenAddress": "127.0.0.1",
	"listenPort": 8080,
	"language": "zu",
	"logLevel": "info",
	"corpora": [
		{"name": "izindaba", "path": "/data/izindaba.txt"},
		{"name": "inoveli", "path": "/data/inoveli.vert", "format": "vertical"}
	],
	"limits": {"maxNgramSize": 4}
}`

func writeTestConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	conf := LoadConfig(writeTestConfig(t, testConfig))
	assert.Equal(t, "127.0.0.1", conf.ListenAddress)
	assert.Equal(t, 8080, conf.ListenPort)
	assert.Equal(t, "zu", conf.Language)
	require.Len(t, conf.Corpora, 2)
	assert.Equal(t, "izindaba", conf.Corpora[0].Name)
	assert.Equal(t, engine.CorpusFormatVertical, conf.Corpora[1].Format)
}

func TestValidateAndDefaults(t *testing.T) {
	conf := LoadConfig(writeTestConfig(t, testConfig))
	ValidateAndDefaults(conf)
	// text format is the default for corpora not declaring one
	assert.Equal(t, engine.CorpusFormatText, conf.Corpora[0].Format)
	assert.Equal(t, 4, conf.Limits.MaxNgramSize)
	assert.Equal(t, 50, conf.Limits.MaxContextWidth)
	assert.Equal(t, 10, conf.Limits.DefaultMaxItems)
	assert.Equal(t, 30, conf.ServerWriteTimeoutSecs)
}

func TestGetCorpusProps(t *testing.T) {
	conf := LoadConfig(writeTestConfig(t, testConfig))
	require.NotNil(t, conf.Corpora.GetCorpusProps("inoveli"))
	assert.Nil(t, conf.Corpora.GetCorpusProps("missing"))
}
