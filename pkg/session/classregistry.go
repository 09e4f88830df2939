package session

// ClassRecord is one entry of the `declaredClasses` registry (spec.md §3,
// §4.7): every class or interface the class/interface body transformer
// discovers, kept around so the metadata/weighter stage can resolve base
// and interface names through nested scopes and compute emission weight.
type ClassRecord struct {
	ID      int
	Name    string
	ScopeID int // enclosing class's ID, or -1 at the top level
	IsTrait bool // true for `interface` declarations

	BaseName       string   // unresolved textual name from `extends`
	InterfaceNames []string // unresolved textual names from `implements`

	Base       *ClassRecord
	Interfaces []*ClassRecord
	Derived    []*ClassRecord // classes/interfaces that name this one as base or interface

	InnerClassIDs []int // classIds of inner classes declared directly inside this one

	Weight int
}

// Register adds a new class record with a freshly minted classId and
// returns it. scopeID is the classId of the enclosing class, or -1 for a
// top-level declaration.
func (s *Session) Register(name string, scopeID int, isTrait bool) *ClassRecord {
	rec := &ClassRecord{
		ID:      s.NextClassID(),
		Name:    name,
		ScopeID: scopeID,
		IsTrait: isTrait,
	}
	s.classes = append(s.classes, rec)
	s.classByID[rec.ID] = rec
	if scopeID >= 0 {
		if parent, ok := s.classByID[scopeID]; ok {
			parent.InnerClassIDs = append(parent.InnerClassIDs, rec.ID)
		}
	}
	return rec
}

// ClassByID looks up a previously registered class by its classId.
func (s *Session) ClassByID(id int) (*ClassRecord, bool) {
	rec, ok := s.classByID[id]
	return rec, ok
}

// Classes returns every registered class/interface in declaration order.
func (s *Session) Classes() []*ClassRecord {
	return s.classes
}

// FindByName resolves a (possibly scoped) class name the way §4.7 requires:
// search the chain of enclosing scopes starting at startScopeID, then the
// global (top-level) scope. Dotted names are split on "." and only the
// first segment is used to locate the root binding — nested-package name
// resolution beyond that is left to the renderer's textual fallback per
// spec.md §7 ("Unknown base class or interface name ... the renderer emits
// the textual name").
func (s *Session) FindByName(name string, startScopeID int) *ClassRecord {
	head := name
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			head = name[:i]
			break
		}
	}

	scopeID := startScopeID
	for scopeID >= 0 {
		scope, ok := s.classByID[scopeID]
		if !ok {
			break
		}
		for _, innerID := range scope.InnerClassIDs {
			if inner := s.classByID[innerID]; inner != nil && inner.Name == head {
				return inner
			}
		}
		scopeID = scope.ScopeID
	}

	for _, rec := range s.classes {
		if rec.ScopeID < 0 && rec.Name == head {
			return rec
		}
	}
	return nil
}
