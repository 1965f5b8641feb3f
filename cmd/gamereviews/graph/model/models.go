package model

import (
	"fmt"

	"github.com/99designs/gqlgen/graphql"
)

// GameInput describes a Game to be added. Nil fields were not supplied.
type GameInput struct {
	Title    *string
	Platform []*string
}

// EditGameInput describes changes to an existing Game. Nil fields were not
// supplied, or were supplied as null; either way they are left unchanged.
type EditGameInput struct {
	Title    *string
	Platform []*string
}

// UnmarshalGameInput decodes a GameInput argument value.
func UnmarshalGameInput(v interface{}) (*GameInput, error) {
	if v == nil {
		return nil, nil
	}
	asMap, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%T is not a GameInput", v)
	}

	it := new(GameInput)
	var err error
	for k, v := range asMap {
		switch k {
		case "title":
			it.Title, err = UnmarshalOptionalString(v)
		case "platform":
			it.Platform, err = UnmarshalOptionalStrings(v)
		default:
			err = fmt.Errorf("unknown field %q", k)
		}
		if err != nil {
			return nil, fmt.Errorf("GameInput.%s: %w", k, err)
		}
	}
	return it, nil
}

// UnmarshalEditGameInput decodes an EditGameInput argument value.
func UnmarshalEditGameInput(v interface{}) (*EditGameInput, error) {
	in, err := UnmarshalGameInput(v)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, nil
	}
	return &EditGameInput{Title: in.Title, Platform: in.Platform}, nil
}

// UnmarshalOptionalID decodes a nullable ID.
func UnmarshalOptionalID(v interface{}) (*string, error) {
	if v == nil {
		return nil, nil
	}
	id, err := graphql.UnmarshalID(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// UnmarshalOptionalInt decodes a nullable Int.
func UnmarshalOptionalInt(v interface{}) (*int, error) {
	if v == nil {
		return nil, nil
	}
	i, err := graphql.UnmarshalInt(v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// UnmarshalOptionalString decodes a nullable String.
func UnmarshalOptionalString(v interface{}) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := graphql.UnmarshalString(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UnmarshalOptionalStrings decodes a nullable list of nullable Strings. A
// single value is coerced to a list of one. A supplied empty list decodes to
// an empty, non-nil slice.
func UnmarshalOptionalStrings(v interface{}) ([]*string, error) {
	if v == nil {
		return nil, nil
	}

	var vSlice []interface{}
	if tmp, ok := v.([]interface{}); ok {
		vSlice = tmp
	} else {
		vSlice = []interface{}{v}
	}

	res := make([]*string, len(vSlice))
	for i := range vSlice {
		s, err := UnmarshalOptionalString(vSlice[i])
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		res[i] = s
	}
	return res, nil
}
