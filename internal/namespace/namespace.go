// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package namespace

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"

	risorbuiltins "github.com/deepnoodle-ai/risor/v2/pkg/builtins"
	"github.com/deepnoodle-ai/risor/v2/pkg/object"

	"github.com/mia-platform/pype/internal/expr"
	"github.com/mia-platform/pype/internal/logger"
)

const (
	loggerName = "pype:namespace"
)

var _ expr.Env = &Mapping{}

// Namespace is a named, read-only table of functions and constants.
type Namespace struct {
	name    string
	members map[string]any
}

// New creates a Namespace called name exposing a copy of members.
func New(name string, members map[string]any) *Namespace {
	return &Namespace{
		name:    name,
		members: maps.Clone(members),
	}
}

// Name returns the name the namespace is imported with.
func (n *Namespace) Name() string {
	return n.name
}

// Member returns the member called name, if any.
func (n *Namespace) Member(name string) (any, bool) {
	member, ok := n.members[name]
	return member, ok
}

// Members returns the sorted names of the namespace members.
func (n *Namespace) Members() []string {
	return slices.Sorted(maps.Keys(n.members))
}

func (n *Namespace) String() string {
	return "<namespace " + n.name + ">"
}

// Module converts the namespace into the script module its members are reached
// through, as in strings.upper(value).
func (n *Namespace) Module() (*object.Module, error) {
	contents, err := toObjects(n.name+".", n.members)
	if err != nil {
		return nil, err
	}
	return object.NewBuiltinsModule(n.name, contents), nil
}

// toObjects converts members into script objects. Functions are wrapped so that
// they are called through reflection and reported as prefix followed by their name.
func toObjects(prefix string, members map[string]any) (map[string]object.Object, error) {
	registry := object.DefaultRegistry()
	objects := make(map[string]object.Object, len(members))
	for name, member := range members {
		reflected := reflect.ValueOf(member)
		if reflected.Kind() == reflect.Func {
			objects[name] = object.NewGoFunc(reflected, prefix+name, registry)
			continue
		}

		converted, err := registry.FromGo(member)
		if err != nil {
			return nil, fmt.Errorf("converting %s%s: %w", prefix, name, err)
		}
		objects[name] = converted
	}

	return objects, nil
}

// Mapping is the immutable global scope of stage expressions: the imported
// namespaces by name, falling back to the builtin members.
type Mapping struct {
	imports  map[string]*Namespace
	builtins *Namespace
	globals  map[string]any
}

// Lookup returns the imported namespace called name or, when no namespace has that
// name, the builtin member called name.
func (m *Mapping) Lookup(name string) (any, bool) {
	if namespace, ok := m.imports[name]; ok {
		return namespace, true
	}

	return m.builtins.Member(name)
}

// Namespace returns the imported namespace called name.
func (m *Mapping) Namespace(name string) (*Namespace, bool) {
	namespace, ok := m.imports[name]
	return namespace, ok
}

// Globals returns the script values of the mapping: the engine builtins, overridden
// by the builtin members, overridden in turn by the imported namespaces as modules.
func (m *Mapping) Globals() map[string]any {
	return maps.Clone(m.globals)
}

// Names returns the sorted names of the imported namespaces.
func (m *Mapping) Names() []string {
	return slices.Sorted(maps.Keys(m.imports))
}

// Resolve builds the Mapping containing every namespace in names. Duplicated names
// are resolved once. The first unknown name aborts the resolution with a
// *ResolutionError and no Mapping is returned.
func Resolve(ctx context.Context, names []string) (*Mapping, error) {
	log := logger.Named(ctx, loggerName)

	imports := make(map[string]*Namespace, len(names))
	for _, name := range names {
		if _, done := imports[name]; done {
			continue
		}

		constructor, ok := registry[name]
		if !ok {
			log.Debug("namespace not found", "name", name)
			return nil, NewResolutionError(name, Available())
		}

		imports[name] = constructor()
		log.Trace("namespace resolved", "name", name)
	}

	return newMapping(imports, builtins())
}

func newMapping(imports map[string]*Namespace, builtinMembers *Namespace) (*Mapping, error) {
	globals := make(map[string]any)
	for name, builtin := range risorbuiltins.Builtins() {
		globals[name] = builtin
	}

	members, err := toObjects("", builtinMembers.members)
	if err != nil {
		return nil, err
	}
	for name, member := range members {
		globals[name] = member
	}

	for name, namespace := range imports {
		module, err := namespace.Module()
		if err != nil {
			return nil, err
		}
		globals[name] = module
	}

	return &Mapping{
		imports:  imports,
		builtins: builtinMembers,
		globals:  globals,
	}, nil
}

// Available returns the sorted names of every namespace that can be resolved.
func Available() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Get builds the namespace called name without resolving a whole Mapping.
func Get(name string) (*Namespace, bool) {
	constructor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return constructor(), true
}
