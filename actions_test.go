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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulwazi-nlp/uhlumagama/engine"
)

func testRouter(t *testing.T) (*gin.Engine, *engine.CorpusStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := engine.NewCorpusStore()
	limits := engine.LimitsConf{}
	require.NoError(t, limits.ValidateAndDefaults())
	actions := NewActions(store, &limits, engine.NewFolder("zu"))

	router := gin.New()
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
	return router, store
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadAndWordList(t *testing.T) {
	router, _ := testRouter(t)
	rec := doRequest(router, http.MethodPut, "/corpora/izindaba", "Inja inja ikati.")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/corpora/izindaba/word-list", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inja"`)
}

func TestUnknownCorpusGives404(t *testing.T) {
	router, _ := testRouter(t)
	rec := doRequest(router, http.MethodGet, "/corpora/missing/stats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConcordanceMissingWordRejected(t *testing.T) {
	router, store := testRouter(t)
	store.Add(engine.NewCorpus("c", "a b c", engine.NewFolder("zu")))
	rec := doRequest(router, http.MethodGet, "/corpora/c/concordance", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestNGramSizeLimitEnforced(t *testing.T) {
	router, store := testRouter(t)
	store.Add(engine.NewCorpus("c", "a b c", engine.NewFolder("zu")))
	rec := doRequest(router, http.MethodGet, "/corpora/c/ngrams?size=99", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestKeynessNeedsExistingReference(t *testing.T) {
	router, store := testRouter(t)
	store.Add(engine.NewCorpus("c", "a b c", engine.NewFolder("zu")))
	rec := doRequest(router, http.MethodGet, "/corpora/c/keyness", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(router, http.MethodGet, "/corpora/c/keyness?ref=missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveCorpus(t *testing.T) {
	router, store := testRouter(t)
	store.Add(engine.NewCorpus("c", "a b c", engine.NewFolder("zu")))
	rec := doRequest(router, http.MethodDelete, "/corpora/c", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, store.Get("c"))

	rec = doRequest(router, http.MethodDelete, "/corpora/c", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalysesRegistry(t *testing.T) {
	router, _ := testRouter(t)
	rec := doRequest(router, http.MethodGet, "/analyses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"keyness"`)
	assert.Contains(t, rec.Body.String(), `"wordList"`)
}
