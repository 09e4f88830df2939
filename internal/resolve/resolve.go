// Package resolve implements spec.md §6's external-interface surface: the
// default global scope the renderer falls back to when an identifier
// doesn't resolve to a local, a field, a method or an inner class, the
// host-supplied aFunctions set, and the $p.lib plugin registry (populated
// by internal/hostplugin when native plugins are configured).
package resolve

// Scope is a nested name set mirroring spec.md §6's defaultScope record: a
// flat set of global names plus one nested PConstants sub-scope holding
// Processing's numeric/mode constants. Both resolve identically from the
// renderer's point of view — a name bound in either gets the `$p.` prefix
// — but the nesting is kept because §6 describes PConstants as its own
// record, not flattened into defaultScope.
type Scope struct {
	Names      map[string]bool
	PConstants *Scope
}

// NewScope returns an empty Scope with an empty PConstants sub-scope.
func NewScope() *Scope {
	return &Scope{Names: map[string]bool{}, PConstants: &Scope{Names: map[string]bool{}}}
}

// Has reports whether name is bound in this scope or its PConstants
// sub-scope.
func (s *Scope) Has(name string) bool {
	if s == nil {
		return false
	}
	if s.Names[name] {
		return true
	}
	return s.PConstants != nil && s.PConstants.Names[name]
}

func (s *Scope) add(names ...string) {
	for _, n := range names {
		s.Names[n] = true
	}
}

func (s *Scope) addConstants(names ...string) {
	for _, n := range names {
		s.PConstants.Names[n] = true
	}
}

// DefaultScope returns the authoritative global runtime member list
// generated into builtins_table.go by cmd/gen-builtins (spec.md §6: "the
// host-runtime globals enumerated in its member list", which "must be
// matched exactly" by the renderer's fallback rule).
func DefaultScope() *Scope {
	s := NewScope()
	s.add(globalRuntimeMembers...)
	s.addConstants(pConstantsMembers...)
	return s
}

// LibPlugin is one entry of the host's $p.lib registry (spec.md §6): a
// named plugin object that may additionally export names into the global
// scope. internal/hostplugin populates Exports from a native plugin's
// ExportNames() call.
type LibPlugin struct {
	Exports []string
}

// AFunctions is spec.md §6's `aFunctions` map: host-provided function
// bodies keyed by the global name they define (Processing's lifecycle
// hooks — `setup`, `draw`, `mousePressed`, and the like — when the host
// supplies its own implementation rather than one found in source). Only
// the key set matters to the resolver; values are opaque host-supplied
// text the renderer never inspects.
type AFunctions map[string]string

// Options is spec.md §6's single options record, threaded by
// pkg/translate into the renderer unchanged.
type Options struct {
	DefaultScope *Scope
	AFunctions   AFunctions
	HostLib      map[string]*LibPlugin
}

// DefaultOptions returns the zero-configuration Options: the generated
// default scope, no host functions, no plugins.
func DefaultOptions() Options {
	return Options{
		DefaultScope: DefaultScope(),
		AFunctions:   AFunctions{},
		HostLib:      map[string]*LibPlugin{},
	}
}

// Has is the renderer's single "is this a global" test (spec.md §4.6's
// last name-resolution rule): true when name resolves against the default
// scope, an installed plugin's exports, or the aFunctions set.
func (o Options) Has(name string) bool {
	if o.DefaultScope.Has(name) {
		return true
	}
	if _, ok := o.AFunctions[name]; ok {
		return true
	}
	for _, lib := range o.HostLib {
		for _, e := range lib.Exports {
			if e == name {
				return true
			}
		}
	}
	return false
}
