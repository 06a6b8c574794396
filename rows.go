package sqlfql

// Row is a single shaped result row: a string-keyed map of scalars.
type Row = map[string]any

// normalizeToRows accounts for the document database's habit of
// returning a bare document instead of a one-element list when a
// paginate/map expression happens to match a single document.
func normalizeToRows(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case nil:
		return nil
	default:
		return []any{v}
	}
}

// shapeDocument flattens one {ref, data, ...} document into a single
// row: id comes from ref.id, every other top-level key is carried
// through, and every key inside data is merged in. aliasMap renames
// source columns to their projected alias; when projectAll is false,
// only columns present in aliasMap survive.
func shapeDocument(doc map[string]any, aliasMap map[string]string, projectAll bool) Row {
	row := Row{}

	if ref, ok := doc["ref"].(map[string]any); ok {
		if id, ok := ref["id"]; ok {
			putProjected(row, idColumnName, id, aliasMap, projectAll)
		}
	}

	for k, v := range doc {
		if k == "ref" || k == "data" {
			continue
		}
		putProjected(row, k, v, aliasMap, projectAll)
	}

	if data, ok := doc["data"].(map[string]any); ok {
		for k, v := range data {
			putProjected(row, k, v, aliasMap, projectAll)
		}
	}

	return row
}

func putProjected(row Row, key string, value any, aliasMap map[string]string, projectAll bool) {
	if projectAll {
		row[key] = value
		return
	}
	alias, ok := aliasMap[key]
	if !ok {
		return
	}
	row[alias] = value
}

// shapeLetResultRows unwraps the {"data": [...]} envelope a let/in
// expression's In clause produces (see translateUpdate, translateAlter):
// unlike shapeDocument's {ref, data} documents, each element here is
// already a finished row and is returned as-is.
func shapeLetResultRows(v any) []Row {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	data, ok := m["data"].([]any)
	if !ok {
		return nil
	}
	rows := make([]Row, 0, len(data))
	for _, elem := range data {
		if row, ok := elem.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// shapeRefRow shapes the plain Ref response a DDL statement (CREATE
// TABLE, CREATE INDEX, DROP TABLE) returns: every field
// of the ref's value map is included except metadata; any nested ref
// value becomes "<key>_id": "<id>".
func shapeRefRow(doc map[string]any) Row {
	row := Row{}
	if ref, ok := doc["ref"].(map[string]any); ok {
		if id, ok := ref["id"]; ok {
			row[idColumnName] = id
		}
	}
	for k, v := range doc {
		if k == "ref" || k == "metadata" {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			if nestedID, ok := nested["id"]; ok {
				row[k+"_id"] = nestedID
				continue
			}
		}
		row[k] = v
	}
	return row
}
