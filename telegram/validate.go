// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validate checks fields that the Bot API always returns, marked with
// validate:"required" on result types. Field paths are reported with JSON
// names.
var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// validateResult validates r if it is a struct, a pointer to one, or a
// slice of them. It returns the path of the first offending field.
func validateResult(r any) (field string, err error) {
	v := reflect.ValueOf(r)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return validateStruct(v, "")
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			elem := v.Index(i)
			for elem.Kind() == reflect.Pointer && !elem.IsNil() {
				elem = elem.Elem()
			}
			if elem.Kind() != reflect.Struct {
				continue
			}
			if field, err := validateStruct(elem, fmt.Sprintf("[%d]", i)); err != nil {
				return field, err
			}
		}
	}
	return "", nil
}

func validateStruct(v reflect.Value, prefix string) (string, error) {
	err := validate().Struct(v.Interface())
	if err == nil {
		return "", nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return prefix, err
	}

	fe := verrs[0]
	// Namespace starts with the Go type name, e.g. "Message.chat.id".
	_, path, _ := strings.Cut(fe.Namespace(), ".")
	if prefix != "" {
		path = prefix + "." + path
	}
	if fe.Tag() == "required" {
		return path, errors.New("required field is missing")
	}
	return path, fmt.Errorf("failed %q check", fe.Tag())
}
