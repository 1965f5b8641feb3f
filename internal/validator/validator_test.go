package validator

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	tests := map[string]struct {
		value interface{}
		tag   string
		err   bool
	}{
		"numeric id":         {value: "1", tag: "id", err: false},
		"uuid id":            {value: "4f3c5c0e-4a7b-4f0e-9a53-0b8e8f2b6c11", tag: "id", err: false},
		"empty id":           {value: "", tag: "id", err: true},
		"id with space":      {value: "game 1", tag: "id", err: true},
		"id with newline":    {value: "1\n", tag: "id", err: true},
		"id too long":        {value: strings.Repeat("a", 65), tag: "id", err: true},
		"id at max length":   {value: strings.Repeat("a", 64), tag: "id", err: false},
		"id non-ascii":       {value: "jeu-é", tag: "id", err: true},
		"id non-string type": {value: 7, tag: "id", err: true},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			valid := New()
			err := valid.Var(test.value, test.tag)
			if test.err {
				errors := make(validator.ValidationErrors, 0)
				assert.ErrorAs(t, err, &errors)

				for _, err := range errors {
					assert.Equal(t, err.Tag(), test.tag)
				}
				return
			}
			assert.Nil(t, err)
		})
	}
}
