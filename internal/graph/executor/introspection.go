package executor

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
)

// introspect resolves the __schema and __type meta-fields of the query type.
func (ec *executionContext) introspect(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	fc := &graphql.FieldContext{
		Object: ec.executor.schema.Query.Name,
		Field:  field,
	}
	ctx = graphql.WithFieldContext(ctx, fc)

	if ec.DisableIntrospection {
		graphql.AddErrorf(ctx, "introspection disabled")
		return graphql.Null
	}

	args := field.ArgumentMap(ec.Variables)
	fc.Args = args

	var res interface{}
	switch field.Name {
	case "__schema":
		res = introspection.WrapSchema(ec.executor.schema)
	case "__type":
		name, _ := args["name"].(string)
		def, ok := ec.executor.schema.Types[name]
		if !ok {
			return graphql.Null
		}
		res = introspection.WrapTypeFromDef(ec.executor.schema, def)
	}
	fc.Result = res

	return ec.complete(ctx, field.Definition.Type, field.Selections, res)
}

var introspectionBindings = Bindings{
	{Type: "__Schema", Field: "types"}:            schemaField(func(s *introspection.Schema) interface{} { return s.Types() }),
	{Type: "__Schema", Field: "queryType"}:        schemaField(func(s *introspection.Schema) interface{} { return s.QueryType() }),
	{Type: "__Schema", Field: "mutationType"}:     schemaField(func(s *introspection.Schema) interface{} { return s.MutationType() }),
	{Type: "__Schema", Field: "subscriptionType"}: schemaField(func(s *introspection.Schema) interface{} { return s.SubscriptionType() }),
	{Type: "__Schema", Field: "directives"}:       schemaField(func(s *introspection.Schema) interface{} { return s.Directives() }),

	{Type: "__Type", Field: "kind"}:          typeField(func(t *introspection.Type, _ bool) interface{} { return t.Kind() }),
	{Type: "__Type", Field: "name"}:          typeField(func(t *introspection.Type, _ bool) interface{} { return t.Name() }),
	{Type: "__Type", Field: "description"}:   typeField(func(t *introspection.Type, _ bool) interface{} { return t.Description() }),
	{Type: "__Type", Field: "fields"}:        typeField(func(t *introspection.Type, deprecated bool) interface{} { return t.Fields(deprecated) }),
	{Type: "__Type", Field: "interfaces"}:    typeField(func(t *introspection.Type, _ bool) interface{} { return t.Interfaces() }),
	{Type: "__Type", Field: "possibleTypes"}: typeField(func(t *introspection.Type, _ bool) interface{} { return t.PossibleTypes() }),
	{Type: "__Type", Field: "enumValues"}:    typeField(func(t *introspection.Type, deprecated bool) interface{} { return t.EnumValues(deprecated) }),
	{Type: "__Type", Field: "inputFields"}:   typeField(func(t *introspection.Type, _ bool) interface{} { return t.InputFields() }),
	{Type: "__Type", Field: "ofType"}:        typeField(func(t *introspection.Type, _ bool) interface{} { return t.OfType() }),

	{Type: "__Field", Field: "name"}:              fieldField(func(f *introspection.Field) interface{} { return f.Name }),
	{Type: "__Field", Field: "description"}:       fieldField(func(f *introspection.Field) interface{} { return f.Description }),
	{Type: "__Field", Field: "args"}:              fieldField(func(f *introspection.Field) interface{} { return f.Args }),
	{Type: "__Field", Field: "type"}:              fieldField(func(f *introspection.Field) interface{} { return f.Type }),
	{Type: "__Field", Field: "isDeprecated"}:      fieldField(func(f *introspection.Field) interface{} { return f.IsDeprecated() }),
	{Type: "__Field", Field: "deprecationReason"}: fieldField(func(f *introspection.Field) interface{} { return f.DeprecationReason() }),

	{Type: "__InputValue", Field: "name"}:         inputValueField(func(v *introspection.InputValue) interface{} { return v.Name }),
	{Type: "__InputValue", Field: "description"}:  inputValueField(func(v *introspection.InputValue) interface{} { return v.Description }),
	{Type: "__InputValue", Field: "type"}:         inputValueField(func(v *introspection.InputValue) interface{} { return v.Type }),
	{Type: "__InputValue", Field: "defaultValue"}: inputValueField(func(v *introspection.InputValue) interface{} { return v.DefaultValue }),

	{Type: "__EnumValue", Field: "name"}:              enumValueField(func(v *introspection.EnumValue) interface{} { return v.Name }),
	{Type: "__EnumValue", Field: "description"}:       enumValueField(func(v *introspection.EnumValue) interface{} { return v.Description }),
	{Type: "__EnumValue", Field: "isDeprecated"}:      enumValueField(func(v *introspection.EnumValue) interface{} { return v.IsDeprecated() }),
	{Type: "__EnumValue", Field: "deprecationReason"}: enumValueField(func(v *introspection.EnumValue) interface{} { return v.DeprecationReason() }),

	{Type: "__Directive", Field: "name"}:        directiveField(func(d *introspection.Directive) interface{} { return d.Name }),
	{Type: "__Directive", Field: "description"}: directiveField(func(d *introspection.Directive) interface{} { return d.Description }),
	{Type: "__Directive", Field: "locations"}:   directiveField(func(d *introspection.Directive) interface{} { return d.Locations }),
	{Type: "__Directive", Field: "args"}:        directiveField(func(d *introspection.Directive) interface{} { return d.Args }),
}

func schemaField(fn func(*introspection.Schema) interface{}) Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*introspection.Schema)), nil
	}
}

func typeField(fn func(*introspection.Type, bool) interface{}) Resolver {
	return func(_ context.Context, obj interface{}, args map[string]interface{}) (interface{}, error) {
		includeDeprecated, _ := args["includeDeprecated"].(bool)
		return fn(obj.(*introspection.Type), includeDeprecated), nil
	}
}

func fieldField(fn func(*introspection.Field) interface{}) Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*introspection.Field)), nil
	}
}

func inputValueField(fn func(*introspection.InputValue) interface{}) Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*introspection.InputValue)), nil
	}
}

func enumValueField(fn func(*introspection.EnumValue) interface{}) Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*introspection.EnumValue)), nil
	}
}

func directiveField(fn func(*introspection.Directive) interface{}) Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*introspection.Directive)), nil
	}
}
