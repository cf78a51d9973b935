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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/cors"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ulwazi-nlp/uhlumagama/cnf"
	"github.com/ulwazi-nlp/uhlumagama/engine"
	"github.com/ulwazi-nlp/uhlumagama/vertical"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// VersionInfo provides a detailed information about the actual build
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

func loadCorpora(conf *cnf.Conf, folder *engine.Folder) *engine.CorpusStore {
	store := engine.NewCorpusStore()
	for _, props := range conf.Corpora {
		var text string
		var err error
		switch props.Format {
		case engine.CorpusFormatVertical:
			text, err = vertical.ExtractText(props.Path)
		default:
			var rawData []byte
			rawData, err = os.ReadFile(props.Path)
			text = string(rawData)
		}
		if err != nil {
			log.Fatal().Err(err).Str("corpus", props.Name).Msg("failed to load corpus")
		}
		corpus := engine.NewCorpus(props.Name, text, folder)
		store.Add(corpus)
		log.Info().
			Str("corpus", props.Name).
			Int("tokens", len(corpus.Tokens())).
			Int("sentences", len(corpus.Sentences())).
			Msg("corpus loaded")
	}
	return store
}

func runApiServer(
	conf *cnf.Conf,
	syscallChan chan os.Signal,
	exitEvent chan os.Signal,
	store *engine.CorpusStore,
	folder *engine.Folder,
) {
	if !conf.LogLevel.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.GinMiddleware())
	router.Use(uniresp.AlwaysJSONContentType())
	router.Use(cors.CORSMiddleware(conf.CorsAllowedOrigins))
	router.NoMethod(uniresp.NoMethodHandler)
	router.NoRoute(uniresp.NotFoundHandler)

	actions := NewActions(store, &conf.Limits, folder)

	router.GET("/analyses", actions.Analyses)
	router.GET("/corpora", actions.ListCorpora)
	router.PUT("/corpora/:corpusId", actions.UploadCorpus)
	router.DELETE("/corpora/:corpusId", actions.RemoveCorpus)
	router.GET("/corpora/:corpusId/word-list", actions.WordList)
	router.GET("/corpora/:corpusId/concordance", actions.Concordance)
	router.GET("/corpora/:corpusId/ngrams", actions.NGrams)
	router.GET("/corpora/:corpusId/keyness", actions.Keyness)
	router.GET("/corpora/:corpusId/letter-freq", actions.LetterFreq)
	router.GET("/corpora/:corpusId/stats", actions.Stats)

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			log.Error().Err(err).Msg("")
		}
		syscallChan <- syscall.SIGTERM
	}()

	<-exitEvent
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Info().Err(err).Msg("Shutdown request error")
	}
}

func main() {
	version := VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "UHLUMAGAMA - a corpus analysis server\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] start [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("uhlumagama %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))

	if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return

	} else {
		logging.SetupLogging(conf.LogFile, conf.LogLevel)
	}
	log.Info().Msg("Starting Uhlumagama")
	cnf.ValidateAndDefaults(conf)
	syscallChan := make(chan os.Signal, 1)
	signal.Notify(syscallChan, os.Interrupt)
	signal.Notify(syscallChan, syscall.SIGTERM)
	exitEvent := make(chan os.Signal)

	go func() {
		evt := <-syscallChan
		exitEvent <- evt
		close(exitEvent)
	}()

	switch action {
	case "start":
		folder := engine.NewFolder(conf.Language)
		store := loadCorpora(conf, folder)
		runApiServer(conf, syscallChan, exitEvent, store, folder)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
