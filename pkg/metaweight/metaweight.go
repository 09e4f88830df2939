// Package metaweight implements spec.md §4.7, the metadata and topological
// weighter: it resolves every registered class/interface's base and
// interface names through the session's nested scopes, links the reverse
// (derived-by) edges, and runs a dependency-set worklist that assigns each
// class a Weight such that anything depending on a class (its inner
// classes and its subclasses/implementors) always gets a strictly smaller
// weight. The renderer walks siblings in descending-weight order so a
// class is always emitted before anything that depends on it.
package metaweight

import (
	"sort"

	"github.com/kent-wong/my-processing/pkg/session"
)

// Weigh resolves Base/Interfaces/Derived on every class sess has
// registered and assigns each one a Weight. It must run after every
// class/interface (including inline `new T(){...}` subclasses discovered
// while transforming statement bodies) has been registered, and before the
// renderer walks the session.
func Weigh(sess *session.Session) {
	resolveReferences(sess)
	weighByWorklist(sess)
}

// resolveReferences turns each record's textual BaseName/InterfaceNames
// into resolved *ClassRecord pointers (spec.md §4.7: "base/interface
// resolution through scopes") via session.FindByName, and records the
// reverse edge on the target so the worklist below can count dependents.
// An unresolved name (no matching declaration anywhere in scope) simply
// leaves Base/Interfaces unset; spec.md §7 has the renderer fall back to
// the bare textual name for those.
func resolveReferences(sess *session.Session) {
	for _, rec := range sess.Classes() {
		if rec.BaseName != "" {
			if base := sess.FindByName(rec.BaseName, rec.ScopeID); base != nil {
				rec.Base = base
				base.Derived = append(base.Derived, rec)
			}
		}
		for _, name := range rec.InterfaceNames {
			iface := sess.FindByName(name, rec.ScopeID)
			if iface == nil {
				continue
			}
			rec.Interfaces = append(rec.Interfaces, iface)
			iface.Derived = append(iface.Derived, rec)
		}
	}
}

// weighByWorklist is spec.md §4.7's worklist algorithm: a class with no
// inner classes and no derived classes (nothing counts on it) starts at
// weight 0 and enters the queue. Popping a class decrements the pending
// count of its own scope parent, base and interfaces in turn; whichever of
// those hits zero — every one of ITS inner/derived classes has now been
// weighed — is enqueued at poppedWeight+1. A class no chain of
// dependencies ever reaches (an isolated cycle, or an unresolved name)
// keeps its zero value, matching "undefined weights = 0".
func weighByWorklist(sess *session.Session) {
	classes := sess.Classes()
	pending := make(map[int]int, len(classes))
	for _, rec := range classes {
		pending[rec.ID] = len(rec.InnerClassIDs) + len(rec.Derived)
	}

	var queue []int
	for _, rec := range classes {
		if pending[rec.ID] == 0 {
			rec.Weight = 0
			queue = append(queue, rec.ID)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		rec, ok := sess.ClassByID(id)
		if !ok {
			continue
		}

		var targets []int
		if rec.Base != nil {
			targets = append(targets, rec.Base.ID)
		}
		for _, iface := range rec.Interfaces {
			targets = append(targets, iface.ID)
		}
		if rec.ScopeID >= 0 {
			targets = append(targets, rec.ScopeID)
		}

		for _, t := range targets {
			pending[t]--
			if pending[t] != 0 {
				continue
			}
			trec, ok := sess.ClassByID(t)
			if !ok {
				continue
			}
			trec.Weight = rec.Weight + 1
			queue = append(queue, t)
		}
	}
}

// OrderDescending returns ids (classIds registered in sess) sorted by
// descending Weight, breaking ties by each id's original position in ids —
// spec.md §4.6 step 4's "inner classes in descending weight order".
func OrderDescending(sess *session.Session, ids []int) []int {
	out := append([]int(nil), ids...)
	weightOf := func(id int) int {
		if rec, ok := sess.ClassByID(id); ok {
			return rec.Weight
		}
		return 0
	}
	sort.SliceStable(out, func(i, j int) bool {
		return weightOf(out[i]) > weightOf(out[j])
	})
	return out
}
