package template

import (
	"strings"
)

// Match is a successful template match.
type Match struct {
	Template *Template
	Captures Captures
}

// Registry holds templates in registration order.
type Registry struct {
	templates []*Template
	byName    map[string]*Template
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Template)}
}

// Register appends a template. Panics on duplicate name.
func (r *Registry) Register(t *Template) {
	key := strings.ToLower(t.Name)
	if _, ok := r.byName[key]; ok {
		panic("duplicate template name: " + key)
	}
	r.byName[key] = t
	r.templates = append(r.templates, t)
}

// Get returns the template registered under name, or nil.
func (r *Registry) Get(name string) *Template {
	return r.byName[strings.ToLower(name)]
}

// Templates returns the templates in match order.
func (r *Registry) Templates() []*Template {
	out := make([]*Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}

// Match returns the first template, in registration order, whose sender equals
// sender and whose pattern occurs anywhere in body. When several templates
// would match, the earliest registered one wins.
func (r *Registry) Match(sender, body string) (Match, bool) {
	for _, t := range r.templates {
		if t.Sender != sender {
			continue
		}
		if caps, ok := t.find(body); ok {
			return Match{Template: t, Captures: caps}, true
		}
	}
	return Match{}, false
}

// DefaultRegistry returns a registry with all built-in templates.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Priorbank())
	return r
}
