package handler

import (
	"reflect"
	"strings"
)

// jsonFieldName reports struct fields by their json name so messages match the request body.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}
