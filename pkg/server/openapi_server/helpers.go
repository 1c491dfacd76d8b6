// SPDX-License-Identifier: MIT

package openapi_server

import (
	"reflect"
)

// IsZeroValue checks if the val is the zero-ed value.
func IsZeroValue(val interface{}) bool {
	return val == nil || reflect.DeepEqual(val, reflect.Zero(reflect.TypeOf(val)).Interface())
}

// assertRequired returns a RequiredError for the first zero-valued element in field order
func assertRequired(fields []string, elements map[string]interface{}) error {
	for _, name := range fields {
		if isZero := IsZeroValue(elements[name]); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
