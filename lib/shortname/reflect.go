// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shortname

import "reflect"

// For returns the Name of v's dynamic type. A nil interface has no
// dynamic type and yields the zero Name.
func For(v any) Name {
	return OfType(reflect.TypeOf(v))
}

// Of returns the Name of the type T. Unlike For it needs no value, so
// it works for interface types and types that are awkward to
// instantiate:
//
//	shortname.Of[map[string]*ref.Entity]()  // map[string]*Entity
//	shortname.Of[io.Reader]()               // Reader
func Of[T any]() Name {
	return OfType(reflect.TypeOf((*T)(nil)).Elem())
}

// OfType returns the Name for an explicit reflect.Type. A nil type
// yields the zero Name.
func OfType(t reflect.Type) Name {
	if t == nil {
		return Name{}
	}
	return Name{full: t.String()}
}
