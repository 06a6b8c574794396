package sqlfql

import (
	"context"
	"encoding/json"

	"github.com/kicktipper/sqlfql/dbclient"
	"github.com/kicktipper/sqlfql/fql"
)

// executor runs FQL expressions against the document database and
// decodes the raw response into Go values, keeping the JSON
// round-trip in one place.
type executor struct {
	client *dbclient.Client
}

// run executes expr and decodes its resource into an untyped Go value
// (map[string]any, []any, or a scalar).
func (e *executor) run(ctx context.Context, expr fql.Expr) (any, error) {
	result, err := e.client.Query(ctx, expr)
	if err != nil {
		return nil, err
	}
	if len(result.Resource) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(result.Resource, &v); err != nil {
		return nil, internalf("executor.run", err)
	}
	return v, nil
}

// runDoc is run, asserting the resource decodes to a single document
// object.
func (e *executor) runDoc(ctx context.Context, expr fql.Expr) (map[string]any, error) {
	v, err := e.run(ctx, expr)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, internalf("executor.runDoc", errUnexpectedShape)
	}
	return doc, nil
}

// fieldsMetadataOf reads collection name's stored field metadata.
func (e *executor) fieldsMetadataOf(ctx context.Context, name string) (map[string]any, error) {
	doc, err := e.runDoc(ctx, fql.Get{Ref: fql.Collection{Name: name}})
	if err != nil {
		return nil, err
	}
	data, _ := doc["data"].(map[string]any)
	metadata, _ := data["metadata"].(map[string]any)
	fields, _ := metadata["fields"].(map[string]any)
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
