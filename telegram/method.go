// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"context"
	"reflect"
	"slices"
	"strings"
)

// Method describes a Bot API method that takes parameters of type P and
// returns a result of type R.
type Method[P, R any] struct {
	Name string
}

// Call calls the method. See [Call] for the errors it may return.
func (m Method[P, R]) Call(ctx context.Context, b *Bot, params P) (R, error) {
	return Call[R](ctx, b, m.Name, params)
}

// Descriptor returns the untyped description of m.
func (m Method[P, R]) Descriptor() Descriptor {
	d, ok := catalog[m.Name]
	if !ok {
		d = Descriptor{Name: m.Name, Params: reflect.TypeFor[P](), Result: reflect.TypeFor[R]()}
	}
	return d
}

// Descriptor describes a method in the catalog without type parameters.
type Descriptor struct {
	Name   string
	Doc    string
	Params reflect.Type
	Result reflect.Type
}

// NoParams is the parameters type of methods that take none.
type NoParams struct{}

var catalog = make(map[string]Descriptor)

func newMethod[P, R any](name, doc string) Method[P, R] {
	if _, dup := catalog[name]; dup {
		panic("telegram: method " + name + " registered twice")
	}
	catalog[name] = Descriptor{
		Name:   name,
		Doc:    doc,
		Params: reflect.TypeFor[P](),
		Result: reflect.TypeFor[R](),
	}
	return Method[P, R]{Name: name}
}

// Methods returns descriptors of all methods known to this package, sorted
// by name.
func Methods() []Descriptor {
	ds := make([]Descriptor, 0, len(catalog))
	for _, d := range catalog {
		ds = append(ds, d)
	}
	slices.SortFunc(ds, func(a, b Descriptor) int { return strings.Compare(a.Name, b.Name) })
	return ds
}

// LookupMethod returns the descriptor of the named method.
func LookupMethod(name string) (Descriptor, bool) {
	d, ok := catalog[name]
	return d, ok
}
