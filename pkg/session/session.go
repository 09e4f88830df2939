// Package session reifies the mutable state that the reference transformer
// keeps in process-global variables (replaceContext, currentClassId,
// classIdSeed, declaredClasses) as a single value threaded by reference
// through every pipeline stage of one Translate call. Concurrent
// invocations each get their own Session; nothing here is a singleton.
package session

import "github.com/kent-wong/my-processing/pkg/atom"

// Session carries everything the pipeline stages (lexer, declaration
// extractor, expression/statement transformers, class body assembler,
// metadata weighter, renderer) share across one source-to-source
// translation.
type Session struct {
	Atoms   *atom.Table
	Strings *atom.StringTable

	classes     []*ClassRecord
	classByID   map[int]*ClassRecord
	classIDSeed int
}

// New returns a fresh Session with empty atom/string/class registries,
// scoped to a single Translate invocation.
func New() *Session {
	return &Session{
		Atoms:     atom.New(),
		Strings:   atom.NewStringTable(),
		classByID: make(map[int]*ClassRecord),
	}
}

// NextClassID hands out the next unique classId, mirroring the reference
// implementation's classIdSeed counter.
func (s *Session) NextClassID() int {
	id := s.classIDSeed
	s.classIDSeed++
	return id
}
