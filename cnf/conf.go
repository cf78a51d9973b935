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
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
	"github.com/ulwazi-nlp/uhlumagama/engine"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 30
	dfltLanguage               = "zu"
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string             `json:"listenAddress"`
	ListenPort             int                `json:"listenPort"`
	ServerReadTimeoutSecs  int                `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string           `json:"corsAllowedOrigins"`
	Corpora                engine.CorporaConf `json:"corpora"`
	Limits                 engine.LimitsConf  `json:"limits"`
	LogFile                string             `json:"logFile"`
	LogLevel               logging.LogLevel   `json:"logLevel"`

	// Language is a BCP 47 tag driving locale-aware case folding
	// (e.g. "zu" for IsiZulu)
	Language string `json:"language"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
	}
	if conf.Language == "" {
		conf.Language = dfltLanguage
		log.Warn().Msgf("language not specified, using default: %s", conf.Language)
	}
	for _, corpConf := range conf.Corpora {
		if err := corpConf.ValidateAndDefaults("corpora"); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
	}
	if err := conf.Limits.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}
