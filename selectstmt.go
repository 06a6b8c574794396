package sqlfql

import (
	"context"
	"strings"

	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/fql"
)

// selectPlan is the result of translating a SELECT statement: the FQL
// expression to execute, plus enough of the parsed projection to shape
// the response afterward.
type selectPlan struct {
	expr        fql.Expr
	table       string
	aliasMap    map[string]string
	projectAll  bool
	infoSchema  string // non-empty for an INFORMATION_SCHEMA.* query
	tableFilter string // TABLE_NAME = '...' value, for INFORMATION_SCHEMA queries
}

const opSelect = "SELECT"

// translateSelect parses a single-table SELECT statement into a
// selectPlan. INFORMATION_SCHEMA.* pseudo-tables are special-cased
// here rather than given their own translator, per the one place the
// parsed table name is already in hand.
func translateSelect(stmt *ast.SelectStmt) (selectPlan, error) {
	table, err := parseSingleTable(opSelect, stmt.From)
	if err != nil {
		return selectPlan{}, err
	}

	cols, projectAll, err := parseSelectColumns(opSelect, stmt.Columns)
	if err != nil {
		return selectPlan{}, err
	}

	aliasMap := map[string]string{}
	for _, c := range cols {
		aliasMap[c.Name] = c.effectiveName()
	}

	if schema, ok := informationSchemaKind(stmt.From); ok {
		cmp, err := parseWhere(opSelect, stmt.Where)
		if err != nil {
			return selectPlan{}, err
		}
		filter, err := tableNameFilter(schema, cmp)
		if err != nil {
			return selectPlan{}, err
		}
		return selectPlan{infoSchema: schema, tableFilter: filter, aliasMap: aliasMap, projectAll: projectAll}, nil
	}

	cmp, err := parseWhere(opSelect, stmt.Where)
	if err != nil {
		return selectPlan{}, err
	}
	matched := matchedRecords(table, cmp)

	expr := fql.Map{
		Lambda:     fql.Lambda{Params: []string{"d"}, Expr: fql.Get{Ref: fql.Var{Name: "d"}}},
		Collection: fql.Paginate{Set: matched},
	}

	return selectPlan{expr: expr, table: table, aliasMap: aliasMap, projectAll: projectAll}, nil
}

// informationSchemaKind reports the bare pseudo-table name
// (TABLES/COLUMNS/CONSTRAINT_TABLE_USAGE) when from references the
// INFORMATION_SCHEMA schema.
func informationSchemaKind(from ast.TableExpr) (string, bool) {
	tn, ok := from.(*ast.TableName)
	if !ok {
		if aliased, ok := from.(*ast.AliasedTableExpr); ok {
			return informationSchemaKind(aliased.Expr)
		}
		return "", false
	}
	if !strings.EqualFold(tn.Schema(), "INFORMATION_SCHEMA") {
		return "", false
	}
	return strings.ToUpper(tn.Name()), true
}

// tableNameFilter extracts the literal value of a `WHERE TABLE_NAME =
// '...'` predicate, the only WHERE shape INFORMATION_SCHEMA.COLUMNS
// and INFORMATION_SCHEMA.CONSTRAINT_TABLE_USAGE support.
func tableNameFilter(schema string, cmp Comparisons) (string, error) {
	if schema == "TABLES" {
		return "", nil
	}
	if len(cmp.ByIndex) != 1 || !strings.EqualFold(cmp.ByIndex[0].Field, "TABLE_NAME") {
		return "", notSupportedf(opSelect, "INFORMATION_SCHEMA.%s requires a WHERE TABLE_NAME = '...' clause", schema)
	}
	v, ok := cmp.ByIndex[0].Value.(string)
	if !ok {
		return "", notSupportedf(opSelect, "TABLE_NAME must be a string literal")
	}
	return v, nil
}

// shapeSelectRows turns a decoded query response into projected rows,
// normalizing the single-document-vs-list quirk before shaping.
func shapeSelectRows(resource any, aliasMap map[string]string, projectAll bool) []Row {
	rows := make([]Row, 0)
	for _, item := range normalizeToRows(resource) {
		doc, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rows = append(rows, shapeDocument(doc, aliasMap, projectAll))
	}
	return rows
}

// executeInformationSchema runs one of the three supported
// INFORMATION_SCHEMA.* introspection queries via db, decoding and
// shaping its own response since each has a distinct result shape.
func executeInformationSchema(ctx context.Context, db *executor, plan selectPlan) ([]Row, error) {
	switch plan.infoSchema {
	case "TABLES":
		return executeInfoTables(ctx, db)
	case "COLUMNS":
		return executeInfoColumns(ctx, db, plan.tableFilter)
	case "CONSTRAINT_TABLE_USAGE":
		return executeInfoConstraintTableUsage(ctx, db, plan.tableFilter)
	default:
		return nil, notSupportedf(opSelect, "unrecognized INFORMATION_SCHEMA query %q", plan.infoSchema)
	}
}
