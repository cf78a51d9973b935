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
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"github.com/ulwazi-nlp/uhlumagama/engine"
)

// Actions groups the HTTP handlers around the in-memory corpus
// store. The engine itself is stateless; all session state lives
// in the store.
type Actions struct {
	store  *engine.CorpusStore
	limits *engine.LimitsConf
	folder *engine.Folder
}

func (a *Actions) getCorpusOrFail(ctx *gin.Context) *engine.Corpus {
	corpusID := ctx.Param("corpusId")
	corpus := a.store.Get(corpusID)
	if corpus == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("corpus %s not found", corpusID),
			http.StatusNotFound,
		)
	}
	return corpus
}

func respondEngineError(ctx *gin.Context, err error) {
	var paramErr engine.InvalidParameterError
	if errors.As(err, &paramErr) {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
}

// Analyses returns the static capability descriptors of all
// compiled-in analyses.
func (a *Actions) Analyses(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, engine.AnalysisRegistry())
}

func (a *Actions) ListCorpora(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"corpora": a.store.Names()})
}

// UploadCorpus stores the request body as a new corpus under the
// corpusId path parameter. The body must be decoded plain text;
// encoding detection is the uploader's business.
func (a *Actions) UploadCorpus(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	if strings.TrimSpace(corpusID) == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("empty corpus name"),
			http.StatusUnprocessableEntity,
		)
		return
	}
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	corpus := engine.NewCorpus(corpusID, string(body), a.folder)
	a.store.Add(corpus)
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"name":  corpusID,
		"stats": corpus.Stats(),
	})
}

func (a *Actions) RemoveCorpus(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	if !a.store.Remove(corpusID) {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("corpus %s not found", corpusID),
			http.StatusNotFound,
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"removed": corpusID})
}

func (a *Actions) WordList(ctx *gin.Context) {
	corpus := a.getCorpusOrFail(ctx)
	if corpus == nil {
		return
	}
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", a.limits.DefaultMaxItems)
	if !ok {
		return
	}
	minFreq, ok := unireq.GetURLIntArgOrFail(ctx, "minFreq", 1)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"corpus": corpus.Name(),
		"freqs":  corpus.WordList(maxItems, minFreq),
	})
}

func (a *Actions) Concordance(ctx *gin.Context) {
	corpus := a.getCorpusOrFail(ctx)
	if corpus == nil {
		return
	}
	word := ctx.Request.URL.Query().Get("w")
	if strings.TrimSpace(word) == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("invalid word value"),
			http.StatusUnprocessableEntity,
		)
		return
	}
	contextWidth, ok := unireq.GetURLIntArgOrFail(ctx, "contextWidth", 5)
	if !ok {
		return
	}
	if contextWidth > a.limits.MaxContextWidth {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("contextWidth exceeds limit %d", a.limits.MaxContextWidth),
			http.StatusUnprocessableEntity,
		)
		return
	}
	entries, err := corpus.ConcordanceSearch(word, contextWidth)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"corpus":  corpus.Name(),
		"query":   word,
		"entries": entries,
	})
}

func (a *Actions) NGrams(ctx *gin.Context) {
	corpus := a.getCorpusOrFail(ctx)
	if corpus == nil {
		return
	}
	size, ok := unireq.GetURLIntArgOrFail(ctx, "size", 2)
	if !ok {
		return
	}
	if size > a.limits.MaxNgramSize {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("size exceeds limit %d", a.limits.MaxNgramSize),
			http.StatusUnprocessableEntity,
		)
		return
	}
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", a.limits.DefaultMaxItems)
	if !ok {
		return
	}
	minFreq, ok := unireq.GetURLIntArgOrFail(ctx, "minFreq", 1)
	if !ok {
		return
	}
	freqs, err := corpus.NGramFreqs(size, maxItems, minFreq)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"corpus": corpus.Name(),
		"size":   size,
		"freqs":  freqs,
	})
}

func (a *Actions) Keyness(ctx *gin.Context) {
	corpus := a.getCorpusOrFail(ctx)
	if corpus == nil {
		return
	}
	refID := ctx.Request.URL.Query().Get("ref")
	if refID == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("missing reference corpus"),
			http.StatusUnprocessableEntity,
		)
		return
	}
	ref := a.store.Get(refID)
	if ref == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("corpus %s not found", refID),
			http.StatusNotFound,
		)
		return
	}
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", -1)
	if !ok {
		return
	}
	results := corpus.KeynessAgainst(ref)
	if maxItems >= 0 && len(results) > maxItems {
		results = results[:maxItems]
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"corpus":    corpus.Name(),
		"refCorpus": ref.Name(),
		"keyness":   results,
	})
}

func (a *Actions) LetterFreq(ctx *gin.Context) {
	corpus := a.getCorpusOrFail(ctx)
	if corpus == nil {
		return
	}
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", -1)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"corpus": corpus.Name(),
		"freqs":  corpus.LetterFreqs(maxItems),
	})
}

func (a *Actions) Stats(ctx *gin.Context) {
	corpus := a.getCorpusOrFail(ctx)
	if corpus == nil {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"corpus": corpus.Name(),
		"stats":  corpus.Stats(),
	})
}

func NewActions(
	store *engine.CorpusStore,
	limits *engine.LimitsConf,
	folder *engine.Folder,
) *Actions {
	return &Actions{
		store:  store,
		limits: limits,
		folder: folder,
	}
}
