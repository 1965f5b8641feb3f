// Package executor provides a graphql.ExecutableSchema that dispatches each
// field of a request to a resolver registered for that field's schema
// coordinate. Bindings are checked against the schema when the Executor is
// created, so a schema and resolver set that disagree fail at startup rather
// than at request time.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Resolver resolves a single field. obj is the value of the field's parent
// object; it is nil for fields of the root operation types. args holds the
// field's arguments after variable substitution; an argument that was not
// supplied is absent from args.
type Resolver func(ctx context.Context, obj interface{}, args map[string]interface{}) (interface{}, error)

// Coordinate identifies a field by the name of the object type declaring it
// and the field's name.
type Coordinate struct {
	Type  string
	Field string
}

func (c Coordinate) String() string {
	return c.Type + "." + c.Field
}

// Bindings maps schema coordinates to the Resolvers serving them.
type Bindings map[Coordinate]Resolver

// Bind registers r as the Resolver of typ.field.
func (b Bindings) Bind(typ, field string, r Resolver) Bindings {
	b[Coordinate{Type: typ, Field: field}] = r
	return b
}

// LoadSchema parses and validates the passed SDL sources.
func LoadSchema(sources ...*ast.Source) (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return schema, nil
}

// New creates an Executor serving schema with bindings. An error is returned
// if a field of an object type declared by schema has no binding, if a
// binding does not correspond to a declared field, or if schema declares
// interface or union types.
func New(schema *ast.Schema, bindings Bindings) (*Executor, error) {
	if err := validate(schema, bindings); err != nil {
		return nil, err
	}

	all := make(Bindings, len(bindings)+len(introspectionBindings))
	for coord, resolver := range introspectionBindings {
		all[coord] = resolver
	}
	for coord, resolver := range bindings {
		all[coord] = resolver
	}

	return &Executor{
		schema:   schema,
		bindings: all,
	}, nil
}

var _ graphql.ExecutableSchema = (*Executor)(nil)

// Executor executes GraphQL queries and mutations against bound Resolvers.
type Executor struct {
	schema   *ast.Schema
	bindings Bindings
}

// Schema implements graphql.ExecutableSchema.
func (e *Executor) Schema() *ast.Schema {
	return e.schema
}

// Complexity implements graphql.ExecutableSchema. No field declares a custom
// complexity.
func (e *Executor) Complexity(_, _ string, _ int, _ map[string]interface{}) (int, bool) {
	return 0, false
}

// Exec implements graphql.ExecutableSchema.
func (e *Executor) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := executionContext{OperationContext: opCtx, executor: e}

	var root *ast.Definition
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = e.schema.Query
	case ast.Mutation:
		root = e.schema.Mutation
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
	if root == nil {
		return graphql.OneShot(
			graphql.ErrorResponse(ctx, "schema does not support %s operations", opCtx.Operation.Operation),
		)
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data := ec.executeSelectionSet(ctx, opCtx.Operation.SelectionSet, root, nil)
		var buf bytes.Buffer
		data.MarshalGQL(&buf)

		return &graphql.Response{Data: buf.Bytes()}
	}
}

// --- helpers ---

func validate(schema *ast.Schema, bindings Bindings) error {
	var problems []string

	for name, def := range schema.Types {
		if def.BuiltIn || isIntrospection(name) {
			continue
		}
		switch def.Kind {
		case ast.Interface, ast.Union:
			problems = append(problems, fmt.Sprintf("%s: %s types are not supported", name, strings.ToLower(string(def.Kind))))
		case ast.Object:
			for _, field := range def.Fields {
				if isIntrospection(field.Name) {
					continue
				}
				coord := Coordinate{Type: name, Field: field.Name}
				if _, ok := bindings[coord]; !ok {
					problems = append(problems, fmt.Sprintf("%s: no resolver bound", coord))
				}
			}
		}
	}

	for coord, resolver := range bindings {
		if resolver == nil {
			problems = append(problems, fmt.Sprintf("%s: nil resolver", coord))
		}
		def, ok := schema.Types[coord.Type]
		if !ok || def.Kind != ast.Object || def.BuiltIn || isIntrospection(coord.Type) {
			problems = append(problems, fmt.Sprintf("%s: unknown object type", coord))
			continue
		}
		if def.Fields.ForName(coord.Field) == nil || isIntrospection(coord.Field) {
			problems = append(problems, fmt.Sprintf("%s: unknown field", coord))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("invalid schema bindings: %s", strings.Join(problems, "; "))
}

func isIntrospection(name string) bool {
	return strings.HasPrefix(name, "__")
}
