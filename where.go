package sqlfql

import (
	"github.com/freeeve/machparse/ast"
	"github.com/freeeve/machparse/token"
	"github.com/kicktipper/sqlfql/fql"
)

// IndexComparison is a single non-id equality predicate: the column
// being tested and the value it must equal.
type IndexComparison struct {
	Field string
	Value any
}

// Comparisons is the parsed form of a WHERE clause: equality on the
// synthetic id column, exclusively, or zero or more equality
// predicates on ordinary fields.
type Comparisons struct {
	ByID    any
	HasID   bool
	ByIndex []IndexComparison
}

// parseWhere walks a WHERE expression tree, rejecting any construct
// outside the supported "column = literal" / "AND" subset.
func parseWhere(op string, where ast.Expr) (Comparisons, error) {
	var c Comparisons
	if where == nil {
		return c, nil
	}
	if err := walkWhere(op, where, &c); err != nil {
		return Comparisons{}, err
	}
	if c.HasID && len(c.ByIndex) > 0 {
		return Comparisons{}, notSupportedf(op, "a WHERE clause on id cannot be combined with other conditions")
	}
	return c, nil
}

func walkWhere(op string, e ast.Expr, c *Comparisons) error {
	switch n := e.(type) {
	case *ast.BetweenExpr:
		return notSupportedf(op, "BETWEEN not yet supported in WHERE clauses")
	case *ast.LikeExpr:
		return notSupportedf(op, "LIKE not yet supported in WHERE clauses")
	case *ast.InExpr:
		return notSupportedf(op, "IN not yet supported in WHERE clauses")
	case *ast.BinaryExpr:
		switch n.Op {
		case token.AND:
			if err := walkWhere(op, n.Left, c); err != nil {
				return err
			}
			return walkWhere(op, n.Right, c)
		case token.OR:
			return notSupportedf(op, "OR not yet supported in WHERE clauses")
		case token.EQ:
			return addEquality(op, n.Left, n.Right, c)
		default:
			return notSupportedf(op, "Only column-value equality conditions are currently supported")
		}
	default:
		return notSupportedf(op, "unrecognized WHERE clause expression")
	}
}

func addEquality(op string, left, right ast.Expr, c *Comparisons) error {
	col, ok := left.(*ast.ColName)
	if !ok {
		return notSupportedf(op, "Only column-value equality conditions are currently supported")
	}
	lit, ok := right.(*ast.Literal)
	if !ok {
		return notSupportedf(op, "Only column-value equality conditions are currently supported")
	}
	value, err := ExtractValue(lit)
	if err != nil {
		return err
	}
	if col.Name() == idColumnName {
		c.ByID = value
		c.HasID = true
		return nil
	}
	c.ByIndex = append(c.ByIndex, IndexComparison{Field: col.Name(), Value: value})
	return nil
}

// matchedRecords translates parsed Comparisons into the FQL expression
// that resolves to the set of documents the WHERE clause selects.
func matchedRecords(table string, c Comparisons) fql.Expr {
	if c.HasID {
		return fql.Ref{Collection: fql.Collection{Name: table}, ID: c.ByID}
	}
	if len(c.ByIndex) == 0 {
		return fql.Intersection{Sets: []fql.Expr{
			fql.Match{Index: fql.Index{Name: allIndexName(table)}},
		}}
	}
	sets := make([]fql.Expr, 0, len(c.ByIndex))
	for _, ic := range c.ByIndex {
		sets = append(sets, fql.Match{
			Index:  fql.Index{Name: byFieldIndexName(table, ic.Field)},
			Values: []any{ic.Value},
		})
	}
	return fql.Intersection{Sets: sets}
}

func allIndexName(table string) string {
	return "all_" + table
}

func byFieldIndexName(table, field string) string {
	return table + "_by_" + field
}
