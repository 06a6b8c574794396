package fql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		expr    Expr
		want    string
		wantErr bool
	}{
		{
			name: "collection",
			expr: Collection{Name: "users"},
			want: `{"collection":"users"}`,
		},
		{
			name: "ref",
			expr: Ref{Collection: Collection{Name: "users"}, ID: "42"},
			want: `{"id":"42","ref":{"collection":"users"}}`,
		},
		{
			name: "match-no-terms",
			expr: Match{Index: Index{Name: "all_users"}},
			want: `{"match":{"index":"all_users"}}`,
		},
		{
			name: "match-single-term",
			expr: Match{Index: Index{Name: "users_by_email"}, Values: []any{"a@b"}},
			want: `{"match":{"index":"users_by_email"},"terms":"a@b"}`,
		},
		{
			name: "intersection",
			expr: Intersection{Sets: []Expr{Match{Index: Index{Name: "all_users"}}}},
			want: `{"intersection":[{"match":{"index":"all_users"}}]}`,
		},
		{
			name: "paginate-get-map",
			expr: Map{
				Lambda:     Lambda{Params: []string{"d"}, Expr: Get{Ref: Var{Name: "d"}}},
				Collection: Paginate{Set: Intersection{Sets: []Expr{Match{Index: Index{Name: "all_users"}}}}},
			},
			want: `{"collection":{"paginate":{"intersection":[{"match":{"index":"all_users"}}]}},"map":{"expr":{"get":{"var":"d"}},"lambda":"d"}}`,
		},
		{
			name: "create-collection",
			expr: CreateCollection{Name: "users", Data: Obj{"metadata": Obj{"fields": Obj{}}}},
			want: `{"create_collection":{"data":{"metadata":{"fields":{}}},"name":"users"}}`,
		},
		{
			name: "create-index-unique",
			expr: CreateIndex{
				Name:   "users_by_email",
				Source: Collection{Name: "users"},
				Terms:  []Obj{{"field": []string{"data", "email"}}},
				Unique: true,
			},
			want: `{"create_index":{"name":"users_by_email","source":{"collection":"users"},"terms":[{"field":["data","email"]}],"unique":true}}`,
		},
		{
			name: "let-preserves-order",
			expr: Let{
				Bindings: []LetBinding{
					{Name: "count", Value: Count{Set: Var{Name: "matched"}}},
				},
				In: Obj{"data": []any{Obj{"count": Var{Name: "count"}}}},
			},
			want: `{"in":{"data":[{"count":{"var":"count"}}]},"let":[{"count":{"count":{"var":"matched"}}}]}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := json.Marshal(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
