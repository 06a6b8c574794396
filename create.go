package sqlfql

import (
	"sort"
	"strings"

	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/fql"
)

// ForeignKeyRef names the table and column a FOREIGN KEY column points at.
type ForeignKeyRef struct {
	Table  string
	Column string
}

// FieldMetadata is the per-column constraint and type information
// persisted in a collection's data.metadata.fields map.
type FieldMetadata struct {
	Unique     bool
	NotNull    bool
	Default    any
	Type       string
	References *ForeignKeyRef
}

// FieldsMetadata is the full field metadata map for one table, keyed
// by column name.
type FieldsMetadata map[string]FieldMetadata

// dataTypeMap converts a SQL column type name to one of the document
// database's canonical field types.
var dataTypeMap = map[string]string{
	"VARCHAR":   "String",
	"CHAR":      "String",
	"TEXT":      "String",
	"INT":       "Integer",
	"INTEGER":   "Integer",
	"BIGINT":    "Integer",
	"SMALLINT":  "Integer",
	"FLOAT":     "Float",
	"DOUBLE":    "Float",
	"DECIMAL":   "Float",
	"NUMERIC":   "Float",
	"BOOL":      "Boolean",
	"BOOLEAN":   "Boolean",
	"DATE":      "Date",
	"DATETIME":  "TimeStamp",
	"TIMESTAMP": "TimeStamp",
	"TIME":      "String",
}

func canonicalType(op, sqlType string) (string, error) {
	t, ok := dataTypeMap[strings.ToUpper(sqlType)]
	if !ok {
		return "", notSupportedf(op, "unrecognized column type %q", sqlType)
	}
	return t, nil
}

// buildFieldsMetadata classifies a CREATE TABLE statement's column
// definitions and table constraints into per-field metadata: each
// column definition's type and inline constraints first, then the
// table-level PRIMARY KEY, UNIQUE and FOREIGN KEY constraints in the
// order written. The synthetic id column is never recorded.
func buildFieldsMetadata(op string, stmt *ast.CreateTableStmt) (FieldsMetadata, error) {
	fields := FieldsMetadata{}

	for _, col := range stmt.Columns {
		if col.Name == idColumnName {
			continue
		}
		fm := FieldMetadata{}
		if col.Type != nil {
			ct, err := canonicalType(op, col.Type.Name)
			if err != nil {
				return nil, err
			}
			fm.Type = ct
		}
		for _, cons := range col.Constraints {
			switch cons.Type {
			case ast.ConstraintPrimaryKey:
				fm.Unique = true
				fm.NotNull = true
			case ast.ConstraintUnique:
				fm.Unique = true
			case ast.ConstraintNotNull:
				fm.NotNull = true
			case ast.ConstraintDefault:
				lit, ok := cons.Default.(*ast.Literal)
				if !ok {
					return nil, notSupportedf(op, "unsupported DEFAULT expression for column %q", col.Name)
				}
				v, err := ExtractValue(lit)
				if err != nil {
					return nil, err
				}
				fm.Default = v
			case ast.ConstraintCheck:
				return nil, notSupportedf(op, "the CHECK keyword is not supported")
			case ast.ConstraintForeignKey:
				if cons.References == nil {
					return nil, programmingf(op, "FOREIGN KEY constraint on %q is missing a REFERENCES clause", col.Name)
				}
				fm.References = &ForeignKeyRef{
					Table:  cons.References.Table.Name(),
					Column: firstOr(cons.References.Columns, idColumnName),
				}
			}
		}
		fields[col.Name] = fm
	}

	for _, tc := range stmt.Constraints {
		switch tc.Type {
		case ast.ConstraintPrimaryKey:
			for _, c := range tc.Columns {
				if c == idColumnName {
					continue
				}
				fm := fields[c]
				fm.Unique = true
				fm.NotNull = true
				fields[c] = fm
			}
		case ast.ConstraintUnique:
			for _, c := range tc.Columns {
				if c == idColumnName {
					continue
				}
				fm := fields[c]
				fm.Unique = true
				fields[c] = fm
			}
		case ast.ConstraintForeignKey:
			if tc.References == nil || len(tc.Columns) != 1 {
				return nil, notSupportedf(op, "composite FOREIGN KEY constraints are not currently supported")
			}
			c := tc.Columns[0]
			if c == idColumnName {
				continue
			}
			fm := fields[c]
			fm.References = &ForeignKeyRef{
				Table:  tc.References.Table.Name(),
				Column: firstOr(tc.References.Columns, idColumnName),
			}
			fields[c] = fm
		case ast.ConstraintCheck:
			return nil, notSupportedf(op, "the CHECK keyword is not supported")
		}
	}

	return fields, nil
}

func firstOr(s []string, def string) string {
	if len(s) == 0 {
		return def
	}
	return s[0]
}

func fieldsMetadataToObj(fields FieldsMetadata) fql.Obj {
	out := fql.Obj{}
	for name, fm := range fields {
		entry := fql.Obj{
			"unique":   fm.Unique,
			"not_null": fm.NotNull,
			"default":  fm.Default,
			"type":     fm.Type,
		}
		if fm.References != nil {
			entry["references"] = fql.Obj{fm.References.Table: fm.References.Column}
		}
		out[name] = entry
	}
	return out
}

// translateCreateTable emits the two expressions a CREATE TABLE
// statement produces: a create_collection call carrying the field
// metadata, and a compound do(...) creating the table's companion
// indexes. The two must be dispatched as separate round-trips, since
// the collection must exist before its indexes can be created.
func translateCreateTable(stmt *ast.CreateTableStmt) ([]fql.Expr, error) {
	const op = "CREATE TABLE"
	table := stmt.Table.Name()

	fields, err := buildFieldsMetadata(op, stmt)
	if err != nil {
		return nil, err
	}

	createCollection := fql.CreateCollection{
		Name: table,
		Data: fql.Obj{"metadata": fql.Obj{"fields": fieldsMetadataToObj(fields)}},
	}

	indexExprs := []fql.Expr{
		fql.CreateIndex{Name: allIndexName(table), Source: fql.Collection{Name: table}},
	}
	for _, name := range sortedFieldNames(fields) {
		fm := fields[name]
		if !fm.Unique && fm.References == nil {
			continue
		}
		indexExprs = append(indexExprs, fql.CreateIndex{
			Name:   byFieldIndexName(table, name),
			Source: fql.Collection{Name: table},
			Terms:  []fql.Obj{{"field": []string{"data", name}}},
			Unique: fm.Unique,
		})
	}
	indexExprs = append(indexExprs, fql.Collection{Name: table})

	return []fql.Expr{createCollection, fql.Do{Exprs: indexExprs}}, nil
}

func sortedFieldNames(fields FieldsMetadata) []string {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// translateCreateIndex emits the do(...) expression for a standalone
// CREATE INDEX statement, naming the index from its sorted column list.
func translateCreateIndex(stmt *ast.CreateIndexStmt) (fql.Expr, error) {
	const op = "CREATE INDEX"
	table := stmt.Table.Name()

	cols := make([]string, 0, len(stmt.Columns))
	for _, ic := range stmt.Columns {
		if ic.Column == "" {
			return nil, notSupportedf(op, "expression indexes are not currently supported")
		}
		cols = append(cols, ic.Column)
	}
	sort.Strings(cols)

	terms := make([]fql.Obj, 0, len(cols))
	for _, c := range cols {
		terms = append(terms, fql.Obj{"field": []string{"data", c}})
	}

	return fql.Do{Exprs: []fql.Expr{
		fql.CreateIndex{
			Name:   table + "_by_" + strings.Join(cols, "_and_"),
			Source: fql.Collection{Name: table},
			Terms:  terms,
			Unique: stmt.Unique,
		},
	}}, nil
}
