package sqlfql

import "github.com/freeeve/machparse/ast"

// idColumnName is the synthetic column every document carries. It is
// never stored in field metadata, never written by INSERT, and is
// always projected from the document's own reference.
const idColumnName = "id"

// Column is a typed view over a parsed SELECT/INSERT/UPDATE column
// reference: its bare name, the table qualifier it was written
// against (if any), and the alias it was given via AS.
type Column struct {
	Name      string
	TableName string
	Alias     string
}

// effectiveName is the name a shaped row should use for this column:
// the alias if one was given, otherwise the bare column name.
func (c Column) effectiveName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// Table carries the name and ordered column list parsed for the single
// table a statement may reference.
type Table struct {
	Name    string
	Columns []Column
}

// ColumnAliasMap returns the name each column should be projected
// under, keyed by its source name.
func (t Table) ColumnAliasMap() map[string]string {
	m := make(map[string]string, len(t.Columns))
	for _, c := range t.Columns {
		m[c.Name] = c.effectiveName()
	}
	return m
}

// columnFromColName builds a Column from a parsed *ast.ColName,
// optionally applying an alias from an enclosing AliasedExpr.
func columnFromColName(col *ast.ColName, alias string) Column {
	return Column{
		Name:      col.Name(),
		TableName: col.Table(),
		Alias:     alias,
	}
}

// parseSelectColumns walks a SELECT statement's projection list,
// returning the parsed columns and whether the projection is the bare
// star ("SELECT * FROM t").
func parseSelectColumns(op string, exprs []ast.SelectExpr) ([]Column, bool, error) {
	cols := make([]Column, 0, len(exprs))
	for _, se := range exprs {
		switch e := se.(type) {
		case *ast.StarExpr:
			if len(exprs) != 1 {
				return nil, false, notSupportedf(op, "a star projection must stand alone")
			}
			return nil, true, nil
		case *ast.AliasedExpr:
			colName, ok := e.Expr.(*ast.ColName)
			if !ok {
				return nil, false, notSupportedf(op, "only plain column references are currently supported in the SELECT list")
			}
			cols = append(cols, columnFromColName(colName, e.Alias))
		default:
			return nil, false, notSupportedf(op, "unrecognized SELECT list entry")
		}
	}
	return cols, false, nil
}

// parseSingleTable extracts the one table a FROM/UPDATE/DELETE clause
// may name. Any join, subquery, or other composite table expression is
// rejected: the translator supports single-table statements only.
func parseSingleTable(op string, from ast.TableExpr) (string, error) {
	switch t := from.(type) {
	case *ast.TableName:
		return t.Name(), nil
	case *ast.AliasedTableExpr:
		return parseSingleTable(op, t.Expr)
	default:
		return "", notSupportedf(op, "Only one table per query is currently supported")
	}
}
