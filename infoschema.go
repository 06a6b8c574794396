package sqlfql

import (
	"context"
	"sort"
	"strings"

	"github.com/kicktipper/sqlfql/fql"
)

// executeInfoTables implements `SELECT * FROM INFORMATION_SCHEMA.TABLES`:
// every collection in the database, shaped to {id, name}.
func executeInfoTables(ctx context.Context, db *executor) ([]Row, error) {
	v, err := db.run(ctx, fql.Map{
		Lambda:     fql.Lambda{Params: []string{"d"}, Expr: fql.Get{Ref: fql.Var{Name: "d"}}},
		Collection: fql.Paginate{Set: fql.Collections{}},
	})
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0)
	for _, item := range normalizeToRows(v) {
		doc, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := Row{}
		if ref, ok := doc["ref"].(map[string]any); ok {
			row[idColumnName] = ref["id"]
		}
		row["name"] = doc["name"]
		rows = append(rows, row)
	}
	return rows, nil
}

// executeInfoColumns implements
// `SELECT * FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_NAME = 'X'`:
// one row per field of X's stored metadata, references stripped.
func executeInfoColumns(ctx context.Context, db *executor, table string) ([]Row, error) {
	fields, err := db.fieldsMetadataOf(ctx, table)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		fm, _ := fields[name].(map[string]any)
		rows = append(rows, Row{
			"name":     name,
			"unique":   fm["unique"],
			"not_null": fm["not_null"],
			"default":  fm["default"],
			"type":     fm["type"],
		})
	}
	return rows, nil
}

// executeInfoConstraintTableUsage implements
// `SELECT * FROM INFORMATION_SCHEMA.CONSTRAINT_TABLE_USAGE WHERE
// TABLE_NAME = 'X'`: every index sourced from X, with its column list.
// Indexes with no declared terms (e.g. all_<table>) fall back to the
// source collection's field metadata keys.
func executeInfoConstraintTableUsage(ctx context.Context, db *executor, table string) ([]Row, error) {
	v, err := db.run(ctx, fql.Paginate{Set: fql.Indexes{}})
	if err != nil {
		return nil, err
	}

	var fieldNames []string
	rows := make([]Row, 0)
	for _, item := range normalizeToRows(v) {
		doc, ok := item.(map[string]any)
		if !ok {
			continue
		}
		source, _ := doc["source"].(map[string]any)
		if source == nil || source["collection"] != table {
			continue
		}

		cols := columnNamesFromTerms(doc["terms"])
		if len(cols) == 0 {
			if fieldNames == nil {
				fields, err := db.fieldsMetadataOf(ctx, table)
				if err != nil {
					return nil, err
				}
				fieldNames = make([]string, 0, len(fields))
				for name := range fields {
					fieldNames = append(fieldNames, name)
				}
				sort.Strings(fieldNames)
			}
			cols = fieldNames
		}

		rows = append(rows, Row{
			"name":         doc["name"],
			"column_names": strings.Join(cols, ","),
			"unique":       false,
		})
	}
	return rows, nil
}

// columnNamesFromTerms extracts column names from an index's raw
// terms value, each term shaped {"field": ["data", <column>]}.
func columnNamesFromTerms(terms any) []string {
	list, ok := terms.([]any)
	if !ok {
		return nil
	}
	cols := make([]string, 0, len(list))
	for _, t := range list {
		term, ok := t.(map[string]any)
		if !ok {
			continue
		}
		field, ok := term["field"].([]any)
		if !ok || len(field) < 2 {
			continue
		}
		if col, ok := field[len(field)-1].(string); ok {
			cols = append(cols, col)
		}
	}
	return cols
}
