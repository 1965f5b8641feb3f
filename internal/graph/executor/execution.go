package executor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
)

type executionContext struct {
	*graphql.OperationContext
	executor *Executor
}

// executeSelectionSet resolves the fields of sel on obj, an instance of the
// object type def. If a non-null field resolves to null, the whole object is
// null.
func (ec *executionContext) executeSelectionSet(
	ctx context.Context,
	sel ast.SelectionSet,
	def *ast.Definition,
	obj interface{},
) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{def.Name})

	out := graphql.NewFieldSet(fields)
	var invalids uint32
	for i, field := range fields {
		switch {
		case field.Name == "__typename":
			out.Values[i] = graphql.MarshalString(def.Name)
			continue
		case def == ec.executor.schema.Query && (field.Name == "__schema" || field.Name == "__type"):
			out.Values[i] = ec.introspect(ctx, field)
		default:
			out.Values[i] = ec.resolveField(ctx, def, field, obj)
		}
		if out.Values[i] == graphql.Null && field.Definition != nil && field.Definition.Type.NonNull {
			invalids++
		}
	}
	out.Dispatch()
	if invalids > 0 {
		return graphql.Null
	}
	return out
}

func (ec *executionContext) resolveField(
	ctx context.Context,
	def *ast.Definition,
	field graphql.CollectedField,
	obj interface{},
) (ret graphql.Marshaler) {
	fc := &graphql.FieldContext{
		Object:   def.Name,
		Field:    field,
		IsMethod: true,
	}
	ctx = graphql.WithFieldContext(ctx, fc)

	coord := Coordinate{Type: def.Name, Field: field.Name}
	resolver, ok := ec.executor.bindings[coord]
	if !ok || field.Definition == nil {
		graphql.AddErrorf(ctx, "no resolver bound for %s", coord)
		return graphql.Null
	}

	defer func() {
		if r := recover(); r != nil {
			graphql.AddError(ctx, ec.recoverPanic(ctx, r))
			ret = graphql.Null
		}
	}()

	args := field.ArgumentMap(ec.Variables)
	fc.Args = args

	next := func(rctx context.Context) (interface{}, error) {
		ctx = rctx
		return resolver(rctx, obj, args)
	}

	var (
		res interface{}
		err error
	)
	if ec.ResolverMiddleware != nil {
		res, err = ec.ResolverMiddleware(ctx, next)
	} else {
		res, err = next(ctx)
	}
	if err != nil {
		graphql.AddError(ctx, err)
		return graphql.Null
	}
	fc.Result = res

	return ec.complete(ctx, field.Definition.Type, field.Selections, res)
}

// complete marshals v according to typ, resolving sub-selections for object
// types.
func (ec *executionContext) complete(
	ctx context.Context,
	typ *ast.Type,
	sel ast.SelectionSet,
	v interface{},
) graphql.Marshaler {
	if isNil(v) {
		if typ.NonNull {
			graphql.AddErrorf(ctx, "must not be null")
		}
		return graphql.Null
	}

	if typ.Elem != nil {
		return ec.completeList(ctx, typ, sel, v)
	}

	def, ok := ec.executor.schema.Types[typ.NamedType]
	if !ok {
		graphql.AddErrorf(ctx, "unknown type %s", typ.NamedType)
		return graphql.Null
	}

	switch def.Kind {
	case ast.Object:
		return ec.executeSelectionSet(ctx, sel, def, v)
	case ast.Scalar:
		return ec.completeScalar(ctx, def.Name, indirect(v))
	case ast.Enum:
		return ec.completeEnum(ctx, def, indirect(v))
	default:
		graphql.AddErrorf(ctx, "%s types are not supported", def.Kind)
		return graphql.Null
	}
}

func (ec *executionContext) completeList(
	ctx context.Context,
	typ *ast.Type,
	sel ast.SelectionSet,
	v interface{},
) graphql.Marshaler {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		graphql.AddErrorf(ctx, "expected a list, got %T", v)
		return graphql.Null
	}

	ret := make(graphql.Array, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i)
		if item.Kind() == reflect.Struct && item.CanAddr() {
			item = item.Addr()
		}

		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: item.Interface(),
		}
		ictx := graphql.WithFieldContext(ctx, fc)

		ret[i] = ec.complete(ictx, typ.Elem, sel, item.Interface())
		if ret[i] == graphql.Null && typ.Elem.NonNull {
			return graphql.Null
		}
	}
	return ret
}

func (ec *executionContext) completeScalar(ctx context.Context, name string, v interface{}) graphql.Marshaler {
	if m, ok := v.(graphql.Marshaler); ok {
		return m
	}

	switch name {
	case "ID", "String":
		s, ok := v.(string)
		if !ok {
			if str, isStringer := v.(fmt.Stringer); isStringer {
				s, ok = str.String(), true
			}
		}
		if !ok {
			break
		}
		if name == "ID" {
			return graphql.MarshalID(s)
		}
		return graphql.MarshalString(s)
	case "Int":
		switch n := v.(type) {
		case int:
			return graphql.MarshalInt(n)
		case int32:
			return graphql.MarshalInt(int(n))
		case int64:
			return graphql.MarshalInt(int(n))
		}
	case "Float":
		switch n := v.(type) {
		case float64:
			return graphql.MarshalFloat(n)
		case float32:
			return graphql.MarshalFloat(float64(n))
		case int:
			return graphql.MarshalFloat(float64(n))
		}
	case "Boolean":
		if b, ok := v.(bool); ok {
			return graphql.MarshalBoolean(b)
		}
	}

	graphql.AddErrorf(ctx, "cannot marshal %T as %s", v, name)
	return graphql.Null
}

func (ec *executionContext) completeEnum(ctx context.Context, def *ast.Definition, v interface{}) graphql.Marshaler {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case fmt.Stringer:
		s = val.String()
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.String {
			graphql.AddErrorf(ctx, "cannot marshal %T as %s", v, def.Name)
			return graphql.Null
		}
		s = rv.String()
	}

	if def.EnumValues.ForName(s) == nil {
		graphql.AddErrorf(ctx, "%s is not a valid %s", s, def.Name)
		return graphql.Null
	}
	return graphql.MarshalString(s)
}

func (ec *executionContext) recoverPanic(ctx context.Context, r interface{}) error {
	if ec.RecoverFunc == nil {
		return graphql.DefaultRecover(ctx, r)
	}
	return ec.RecoverFunc(ctx, r)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// indirect dereferences pointers to leaf values, such as *string.
func indirect(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		if _, ok := rv.Interface().(graphql.Marshaler); ok {
			break
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
