/*
File    : sketch/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the three disjoint lexical environments of the
// language (values, functions, record shapes -- see SPEC_FULL.md §3):
// a bare identifier resolves against Values first, then Functions; a
// `brush` name resolves only against Records. The chain-of-maps shape is
// kept from the teacher's own scope.Scope, generalized to three maps
// instead of one (see DESIGN.md).
package scope

import "github.com/akashmaji946/go-mix/values"

// RecordShape is the field layout declared by a `brush` statement.
type RecordShape struct {
	Name       string
	FieldNames []string
}

// Scope is one lexical environment frame, chained to its parent.
type Scope struct {
	Values    map[string]values.Object
	Functions map[string]values.Object
	Records   map[string]*RecordShape
	Parent    *Scope
}

// NewScope creates a child scope of parent (nil for the global scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Values:    make(map[string]values.Object),
		Functions: make(map[string]values.Object),
		Records:   make(map[string]*RecordShape),
		Parent:    parent,
	}
}

// LookupValue searches the value environment in this scope and its
// ancestors, used for `prepare` bindings and loop variables.
func (s *Scope) LookupValue(name string) (values.Object, bool) {
	if obj, ok := s.Values[name]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.LookupValue(name)
	}
	return nil, false
}

// LookupFunction searches the function environment in this scope and its
// ancestors, used for `sketch` declarations and built-ins.
func (s *Scope) LookupFunction(name string) (values.Object, bool) {
	if obj, ok := s.Functions[name]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.LookupFunction(name)
	}
	return nil, false
}

// LookupRecord searches the record-shape environment in this scope and
// its ancestors, used for `brush` declarations.
func (s *Scope) LookupRecord(name string) (*RecordShape, bool) {
	if shape, ok := s.Records[name]; ok {
		return shape, true
	}
	if s.Parent != nil {
		return s.Parent.LookupRecord(name)
	}
	return nil, false
}

// Resolve implements the bare-identifier lookup order: values first,
// then functions (SPEC_FULL.md §3).
func (s *Scope) Resolve(name string) (values.Object, bool) {
	if obj, ok := s.LookupValue(name); ok {
		return obj, true
	}
	return s.LookupFunction(name)
}

// BindValue creates or shadows a value binding in the current scope only.
func (s *Scope) BindValue(name string, obj values.Object) {
	s.Values[name] = obj
}

// BindFunction registers a function or builtin in the current scope only.
func (s *Scope) BindFunction(name string, obj values.Object) {
	s.Functions[name] = obj
}

// BindRecord registers a record shape in the current scope only.
func (s *Scope) BindRecord(name string, shape *RecordShape) {
	s.Records[name] = shape
}

// AssignValue updates an existing value binding in the scope where it was
// originally bound, walking up the chain; it does not create a new
// binding. Returns false if name is not bound anywhere in the chain.
func (s *Scope) AssignValue(name string, obj values.Object) bool {
	if _, ok := s.Values[name]; ok {
		s.Values[name] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.AssignValue(name, obj)
	}
	return false
}
