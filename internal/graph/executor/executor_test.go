package executor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/99designs/gqlgen/client"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

const testSDL = `
enum Color { RED GREEN }

type Item {
	id: ID!
	label: String!
	score: Float
	tags: [String!]!
}

type Query {
	hello(name: String = "world"): String!
	items: [Item!]
	item(id: ID!): Item
	broken: Item
	failing: String
	boom: String
	color(name: String!): Color
}

type Mutation {
	push(label: String!): Item!
}
`

type item struct {
	ID    string
	Label *string
	Score float64
	Tags  []string
}

func strptr(s string) *string { return &s }

func loadTestSchema(t *testing.T) *ast.Schema {
	t.Helper()
	schema, err := LoadSchema(&ast.Source{Name: "test.graphql", Input: testSDL})
	require.Nil(t, err)
	return schema
}

func itemField(fn func(*item) interface{}) Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*item)), nil
	}
}

func testBindings(pushed *[]string) Bindings {
	items := []item{
		{ID: "1", Label: strptr("one"), Score: 1.5, Tags: []string{"a"}},
		{ID: "2", Label: strptr("two"), Tags: []string{}},
	}

	return Bindings{}.
		Bind("Query", "hello", func(_ context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			return "hello " + args["name"].(string), nil
		}).
		Bind("Query", "items", func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
			return items, nil
		}).
		Bind("Query", "item", func(_ context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			for i := range items {
				if items[i].ID == args["id"] {
					return &items[i], nil
				}
			}
			return (*item)(nil), nil
		}).
		Bind("Query", "broken", func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
			return &item{ID: "3", Tags: []string{}}, nil
		}).
		Bind("Query", "failing", func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
			return nil, errors.New("resolver failed")
		}).
		Bind("Query", "boom", func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
			panic("boom")
		}).
		Bind("Query", "color", func(_ context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			return args["name"], nil
		}).
		Bind("Mutation", "push", func(_ context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			label := args["label"].(string)
			*pushed = append(*pushed, label)
			return &item{ID: label, Label: &label, Tags: []string{}}, nil
		}).
		Bind("Item", "id", itemField(func(i *item) interface{} { return i.ID })).
		Bind("Item", "label", itemField(func(i *item) interface{} { return i.Label })).
		Bind("Item", "score", itemField(func(i *item) interface{} { return i.Score })).
		Bind("Item", "tags", itemField(func(i *item) interface{} { return i.Tags }))
}

func newTestClient(t *testing.T) (*client.Client, *[]string) {
	t.Helper()

	pushed := new([]string)
	exec, err := New(loadTestSchema(t), testBindings(pushed))
	require.Nil(t, err)

	return client.New(handler.NewDefaultServer(exec)), pushed
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		sdl      string
		bindings func(Bindings) Bindings
		errSubs  []string
	}{
		"valid": {
			sdl:      testSDL,
			bindings: func(b Bindings) Bindings { return b },
		},
		"missing binding": {
			sdl: testSDL,
			bindings: func(b Bindings) Bindings {
				delete(b, Coordinate{Type: "Item", Field: "tags"})
				delete(b, Coordinate{Type: "Mutation", Field: "push"})
				return b
			},
			errSubs: []string{"Item.tags: no resolver bound", "Mutation.push: no resolver bound"},
		},
		"unknown type": {
			sdl: testSDL,
			bindings: func(b Bindings) Bindings {
				return b.Bind("Widget", "id", itemField(func(i *item) interface{} { return i.ID }))
			},
			errSubs: []string{"Widget.id: unknown object type"},
		},
		"unknown field": {
			sdl: testSDL,
			bindings: func(b Bindings) Bindings {
				return b.Bind("Item", "weight", itemField(func(i *item) interface{} { return i.ID }))
			},
			errSubs: []string{"Item.weight: unknown field"},
		},
		"binding on input type": {
			sdl: testSDL + `input Filter { label: String }`,
			bindings: func(b Bindings) Bindings {
				return b.Bind("Filter", "label", itemField(func(i *item) interface{} { return i.Label }))
			},
			errSubs: []string{"Filter.label: unknown object type"},
		},
		"binding on introspection type": {
			sdl: testSDL,
			bindings: func(b Bindings) Bindings {
				return b.Bind("__Type", "name", itemField(func(i *item) interface{} { return i.ID }))
			},
			errSubs: []string{"__Type.name: unknown object type"},
		},
		"nil resolver": {
			sdl: testSDL,
			bindings: func(b Bindings) Bindings {
				return b.Bind("Item", "id", nil)
			},
			errSubs: []string{"Item.id: nil resolver"},
		},
		"union type": {
			sdl:      testSDL + `union Thing = Item`,
			bindings: func(b Bindings) Bindings { return b },
			errSubs:  []string{"Thing: union types are not supported"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			schema, err := LoadSchema(&ast.Source{Name: "test.graphql", Input: test.sdl})
			require.Nil(t, err)

			exec, err := New(schema, test.bindings(testBindings(new([]string))))
			if len(test.errSubs) == 0 {
				require.Nil(t, err)
				assert.Equal(t, schema, exec.Schema())
				return
			}
			require.NotNil(t, err)
			for _, sub := range test.errSubs {
				assert.Contains(t, err.Error(), sub)
			}
		})
	}
}

func TestLoadSchemaInvalid(t *testing.T) {
	_, err := LoadSchema(&ast.Source{Name: "bad.graphql", Input: `type Query { a: Missing }`})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "load schema")
}

func TestQuery(t *testing.T) {
	c, _ := newTestClient(t)

	var resp struct {
		Hello    string
		Named    string
		Typename string `json:"__typename"`
		Items    []struct {
			ID    string
			Label string
			Score *float64
			Tags  []string
		}
		Item struct {
			Label string
		}
		Missing *struct {
			ID string
		}
	}
	c.MustPost(
		`query($name: String!) {
			hello
			named: hello(name: $name)
			__typename
			items { id label score tags }
			item(id: "2") { label }
			missing: item(id: "9") { id }
		}`,
		&resp,
		client.Var("name", "gopher"),
	)

	assert.Equal(t, "hello world", resp.Hello)
	assert.Equal(t, "hello gopher", resp.Named)
	assert.Equal(t, "Query", resp.Typename)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "1", resp.Items[0].ID)
	assert.Equal(t, "one", resp.Items[0].Label)
	require.NotNil(t, resp.Items[0].Score)
	assert.Equal(t, 1.5, *resp.Items[0].Score)
	assert.Equal(t, []string{"a"}, resp.Items[0].Tags)
	assert.Empty(t, resp.Items[1].Tags)
	assert.Equal(t, "two", resp.Item.Label)
	assert.Nil(t, resp.Missing)
}

func TestEmptyListCompletesAsList(t *testing.T) {
	c, _ := newTestClient(t)

	resp, err := c.RawPost(`{ item(id: "2") { tags } }`)
	require.NoError(t, err)
	require.Nil(t, resp.Errors)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	got, ok := data["item"].(map[string]interface{})
	require.True(t, ok)

	tags, ok := got["tags"].([]interface{})
	require.True(t, ok, "tags must be a list, got %T", got["tags"])
	require.Empty(t, tags)
}

func TestFragmentsAndDirectives(t *testing.T) {
	c, _ := newTestClient(t)

	var resp struct {
		Item struct {
			ID    string
			Label string
		}
	}
	c.MustPost(
		`query($withLabel: Boolean!) {
			item(id: "1") { ...ids label @include(if: $withLabel) }
		}
		fragment ids on Item { id }`,
		&resp,
		client.Var("withLabel", true),
	)
	assert.Equal(t, "1", resp.Item.ID)
	assert.Equal(t, "one", resp.Item.Label)
}

func TestErrors(t *testing.T) {
	tests := map[string]struct {
		query   string
		data    string
		errSubs []string
	}{
		"resolver error": {
			query:   `{ failing hello }`,
			data:    `{"failing":null,"hello":"hello world"}`,
			errSubs: []string{"resolver failed", `"path":["failing"]`},
		},
		"panic recovered": {
			query:   `{ boom hello }`,
			data:    `{"boom":null,"hello":"hello world"}`,
			errSubs: []string{"internal system error", `"path":["boom"]`},
		},
		"null propagates to nullable parent": {
			query:   `{ broken { id label } hello }`,
			data:    `{"broken":null,"hello":"hello world"}`,
			errSubs: []string{"must not be null", `"path":["broken","label"]`},
		},
		"invalid enum value": {
			query:   `{ color(name: "BLUE") }`,
			data:    `{"color":null}`,
			errSubs: []string{"BLUE is not a valid Color"},
		},
		"valid enum value": {
			query: `{ color(name: "GREEN") }`,
			data:  `{"color":"GREEN"}`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t)

			resp, err := c.RawPost(test.query)
			require.Nil(t, err)

			data, err := json.Marshal(resp.Data)
			require.Nil(t, err)
			assert.JSONEq(t, test.data, string(data))

			if len(test.errSubs) == 0 {
				assert.Empty(t, resp.Errors)
				return
			}
			for _, sub := range test.errSubs {
				assert.Contains(t, string(resp.Errors), sub)
			}
		})
	}
}

func TestValidationRejectedBeforeResolvers(t *testing.T) {
	c, pushed := newTestClient(t)

	_, err := c.RawPost(`mutation { push(label: 1) { id } }`)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Empty(t, *pushed)
}

func TestMutationsExecuteSerially(t *testing.T) {
	c, pushed := newTestClient(t)

	var resp struct {
		First  struct{ ID string }
		Second struct{ ID string }
		Third  struct{ ID string }
	}
	c.MustPost(
		`mutation {
			first: push(label: "a") { id }
			second: push(label: "b") { id }
			third: push(label: "c") { id }
		}`,
		&resp,
	)

	assert.Equal(t, "a", resp.First.ID)
	assert.Equal(t, "b", resp.Second.ID)
	assert.Equal(t, "c", resp.Third.ID)
	assert.Equal(t, []string{"a", "b", "c"}, *pushed)
}

func TestIntrospection(t *testing.T) {
	c, _ := newTestClient(t)

	type typeRef struct {
		Kind   string
		Name   *string
		OfType *typeRef
	}
	var resp struct {
		Schema struct {
			QueryType    struct{ Name string }
			MutationType *struct{ Name string }
		} `json:"__schema"`
		Type struct {
			Name   string
			Kind   string
			Fields []struct {
				Name string
				Type typeRef
			}
		} `json:"__type"`
		Color struct {
			EnumValues []struct{ Name string }
		}
		Missing *struct{ Name string }
	}
	c.MustPost(
		`{
			__schema { queryType { name } mutationType { name } }
			__type(name: "Item") {
				name
				kind
				fields { name type { kind name ofType { kind name } } }
			}
			color: __type(name: "Color") { enumValues { name } }
			missing: __type(name: "Nope") { name }
		}`,
		&resp,
	)

	assert.Equal(t, "Query", resp.Schema.QueryType.Name)
	require.NotNil(t, resp.Schema.MutationType)
	assert.Equal(t, "Mutation", resp.Schema.MutationType.Name)

	assert.Equal(t, "Item", resp.Type.Name)
	assert.Equal(t, "OBJECT", resp.Type.Kind)
	require.Len(t, resp.Type.Fields, 4)
	assert.Equal(t, "id", resp.Type.Fields[0].Name)
	assert.Equal(t, "NON_NULL", resp.Type.Fields[0].Type.Kind)
	assert.Nil(t, resp.Type.Fields[0].Type.Name)
	require.NotNil(t, resp.Type.Fields[0].Type.OfType)
	require.NotNil(t, resp.Type.Fields[0].Type.OfType.Name)
	assert.Equal(t, "ID", *resp.Type.Fields[0].Type.OfType.Name)
	assert.Equal(t, "SCALAR", resp.Type.Fields[0].Type.OfType.Kind)
	assert.Equal(t, "score", resp.Type.Fields[2].Name)
	assert.Equal(t, "SCALAR", resp.Type.Fields[2].Type.Kind)

	require.Len(t, resp.Color.EnumValues, 2)
	assert.Equal(t, "RED", resp.Color.EnumValues[0].Name)
	assert.Equal(t, "GREEN", resp.Color.EnumValues[1].Name)

	assert.Nil(t, resp.Missing)
}
