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
	"sort"
	"sync"
)

// CorpusStore keeps loaded corpora in memory for the lifetime of
// the process. Nothing is persisted; a restart starts empty (apart
// from corpora preloaded from configuration).
type CorpusStore struct {
	lock    sync.RWMutex
	corpora map[string]*Corpus
}

func NewCorpusStore() *CorpusStore {
	return &CorpusStore{corpora: make(map[string]*Corpus)}
}

// Add inserts or replaces a corpus under its name.
func (cs *CorpusStore) Add(corpus *Corpus) {
	cs.lock.Lock()
	defer cs.lock.Unlock()
	cs.corpora[corpus.Name()] = corpus
}

// Get returns the corpus of the given name or nil.
func (cs *CorpusStore) Get(name string) *Corpus {
	cs.lock.RLock()
	defer cs.lock.RUnlock()
	return cs.corpora[name]
}

// Remove deletes the corpus of the given name, reporting whether
// it was present.
func (cs *CorpusStore) Remove(name string) bool {
	cs.lock.Lock()
	defer cs.lock.Unlock()
	_, ok := cs.corpora[name]
	delete(cs.corpora, name)
	return ok
}

// Names returns the names of all loaded corpora, sorted.
func (cs *CorpusStore) Names() []string {
	cs.lock.RLock()
	defer cs.lock.RUnlock()
	ans := make([]string, 0, len(cs.corpora))
	for name := range cs.corpora {
		ans = append(ans, name)
	}
	sort.Strings(ans)
	return ans
}
