package resource

import "sort"

// ShaderPair is the vertex and fragment source stored under one name.
type ShaderPair struct {
	Vertex   string
	Fragment string
	Revision int // bumped on every store
}

// Usable reports whether both halves are present.
func (p ShaderPair) Usable() bool {
	return p.Vertex != "" && p.Fragment != ""
}

// Registry maps shader names to their sources. Entries are created on first
// store and never removed. It is not safe for concurrent use; only the main
// loop writes to it.
type Registry struct {
	pairs map[string]*ShaderPair
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pairs: make(map[string]*ShaderPair)}
}

// Store sets the source for (name, kind), creating the entry if needed.
func (r *Registry) Store(name string, kind Kind, text string) {
	p, ok := r.pairs[name]
	if !ok {
		p = &ShaderPair{}
		r.pairs[name] = p
	}
	switch kind {
	case KindVertex:
		p.Vertex = text
	case KindFragment:
		p.Fragment = text
	}
	p.Revision++
}

// Lookup returns a copy of the pair stored under name.
func (r *Registry) Lookup(name string) (ShaderPair, bool) {
	p, ok := r.pairs[name]
	if !ok {
		return ShaderPair{}, false
	}
	return *p, true
}

// Usable reports whether name has both halves.
func (r *Registry) Usable(name string) bool {
	p, ok := r.pairs[name]
	return ok && p.Usable()
}

// Revision returns the store count for name, 0 if absent.
func (r *Registry) Revision(name string) int {
	if p, ok := r.pairs[name]; ok {
		return p.Revision
	}
	return 0
}

// Names returns the stored names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pairs))
	for n := range r.pairs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.pairs)
}
