package mongokit

import (
	"reflect"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Query builds a filter document from fields, omitting entries whose value is
// nil or empty (empty string, slice, map, or array, or a nil pointer).
// Falsy-but-meaningful values like 0 and false are retained.
//
//	mongokit.Query(bson.M{"name": "", "age": 0, "tags": nil})  // bson.M{"age": 0}
func Query(fields bson.M) bson.M {
	q := bson.M{}
	for key, value := range fields {
		if isEmptyValue(value) {
			continue
		}
		q[key] = value
	}
	return q
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
