// Package fql models the document database's query algebra as a closed
// set of Go types. Each type implements json.Marshaler so the tree
// serializes to the database's wire JSON in exactly one place, instead
// of hand-assembling JSON at every call site.
package fql

import "encoding/json"

// Expr is any node in an FQL expression tree.
type Expr interface {
	json.Marshaler
}

// Obj is a literal JSON object value, used for record data and index
// term/metadata specifications. It marshals as a plain object, not
// wrapped in an "object" field, matching the wire format for the
// {"data": {...}} argument of create/update calls.
type Obj map[string]any

func (o Obj) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(o))
}

// Collection references a collection by name.
type Collection struct {
	Name string
}

func (c Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"collection": c.Name})
}

// Index references an index by name.
type Index struct {
	Name string
}

func (i Index) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"index": i.Name})
}

// Ref constructs a direct document reference within a collection.
type Ref struct {
	Collection Expr
	ID         any
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"ref": r.Collection, "id": r.ID})
}

// Match evaluates an index, optionally bound to term values.
type Match struct {
	Index  Expr
	Values []any
}

func (m Match) MarshalJSON() ([]byte, error) {
	if len(m.Values) == 0 {
		return json.Marshal(map[string]any{"match": m.Index})
	}
	var terms any = m.Values
	if len(m.Values) == 1 {
		terms = m.Values[0]
	}
	return json.Marshal(map[string]any{"match": m.Index, "terms": terms})
}

// Intersection combines the results of several set expressions (Match,
// Ref) into one. A single member is still wrapped, matching the
// source's habit of always producing an intersection even of one.
type Intersection struct {
	Sets []Expr
}

func (i Intersection) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"intersection": i.Sets})
}

// Get retrieves the single document referenced by Ref, or the single
// document matched by a set expression with exactly one member.
type Get struct {
	Ref Expr
}

func (g Get) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"get": g.Ref})
}

// Paginate retrieves a page of results from a set expression.
type Paginate struct {
	Set Expr
}

func (p Paginate) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"paginate": p.Set})
}

// Lambda is an anonymous function, either single- or multi-parameter.
type Lambda struct {
	Params []string
	Expr   Expr
}

func (l Lambda) MarshalJSON() ([]byte, error) {
	var params any = l.Params
	if len(l.Params) == 1 {
		params = l.Params[0]
	}
	return json.Marshal(map[string]any{"lambda": params, "expr": l.Expr})
}

// Var references a bound variable by name.
type Var struct {
	Name string
}

func (v Var) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"var": v.Name})
}

// Map applies a Lambda to every element of a collection expression.
type Map struct {
	Collection Expr
	Lambda     Expr
}

func (m Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"map": m.Lambda, "collection": m.Collection})
}

// Let binds names to values for use in In.
type Let struct {
	Bindings []LetBinding
	In       Expr
}

// LetBinding is a single name/value pair of a Let expression,
// preserving declaration order (unlike a map).
type LetBinding struct {
	Name  string
	Value Expr
}

func (l Let) MarshalJSON() ([]byte, error) {
	bindings := make([]map[string]Expr, 0, len(l.Bindings))
	for _, b := range l.Bindings {
		bindings = append(bindings, map[string]Expr{b.Name: b.Value})
	}
	return json.Marshal(map[string]any{"let": bindings, "in": l.In})
}

// Do evaluates each expression in order, returning the last result.
type Do struct {
	Exprs []Expr
}

func (d Do) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"do": d.Exprs})
}

// CreateCollection creates a new collection.
type CreateCollection struct {
	Name string
	Data Obj
}

func (c CreateCollection) MarshalJSON() ([]byte, error) {
	params := map[string]any{"name": c.Name}
	if c.Data != nil {
		params["data"] = c.Data
	}
	return json.Marshal(map[string]any{"create_collection": params})
}

// CreateIndex creates a new index over a source collection.
type CreateIndex struct {
	Name   string
	Source Expr
	Terms  []Obj
	Unique bool
}

func (c CreateIndex) MarshalJSON() ([]byte, error) {
	params := map[string]any{
		"name":   c.Name,
		"source": c.Source,
	}
	if len(c.Terms) > 0 {
		params["terms"] = c.Terms
	}
	if c.Unique {
		params["unique"] = true
	}
	return json.Marshal(map[string]any{"create_index": params})
}

// Create writes a new document into a collection.
type Create struct {
	Collection Expr
	Params     Obj
}

func (c Create) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"create": c.Collection, "params": c.Params})
}

// Update merges Params into the document referenced by Ref.
type Update struct {
	Ref    Expr
	Params Obj
}

func (u Update) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"update": u.Ref, "params": u.Params})
}

// Delete removes the document or collection referenced by Ref.
type Delete struct {
	Ref Expr
}

func (d Delete) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"delete": d.Ref})
}

// Select extracts the value at Path from the document produced by
// evaluating From.
type Select struct {
	Path []any
	From Expr
}

func (s Select) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"select": s.Path, "from": s.From})
}

// Count returns the number of elements a set expression matches.
type Count struct {
	Set Expr
}

func (c Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"count": c.Set})
}

// Filter keeps only the elements of Collection for which Lambda
// evaluates to true.
type Filter struct {
	Collection Expr
	Lambda     Expr
}

func (f Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"filter": f.Lambda, "collection": f.Collection})
}

// Equals tests whether all given expressions evaluate equal.
type Equals struct {
	Exprs []Expr
}

func (e Equals) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"equals": e.Exprs})
}

// Collections is the set of all collections in the database,
// pageable like any other set expression.
type Collections struct{}

func (Collections) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"collections": nil})
}

// Indexes is the set of all indexes in the database, pageable like any
// other set expression.
type Indexes struct{}

func (Indexes) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"indexes": nil})
}

// Raw wraps an already-built value as an Expr, for literal leaves
// (strings, numbers) that appear directly as arguments to other forms.
type Raw struct {
	Value any
}

func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value)
}
