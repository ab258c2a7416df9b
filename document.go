package mongokit

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToDocument marshals a model into a BSON document ready for storage: the
// top-level "id" field is renamed to "_id", or omitted entirely when unset
// (BSON null or a zero ObjectID) so the server generates an identifier.
// Nested documents are left untouched.
func ToDocument(model any) (bson.D, error) {
	data, err := bson.Marshal(model)
	if err != nil {
		return nil, err
	}

	elems, err := bson.Raw(data).Elements()
	if err != nil {
		return nil, err
	}

	doc := make(bson.D, 0, len(elems))
	for _, e := range elems {
		key := e.Key()
		if key == "id" {
			if idUnset(e.Value()) {
				continue
			}
			key = "_id"
		}
		doc = append(doc, bson.E{Key: key, Value: e.Value()})
	}
	return doc, nil
}

// FromDocument decodes a raw storage document into a model value, renaming
// the top-level "_id" field back to "id" first. A decode failure (schema
// mismatch between the document and T) propagates to the caller.
func FromDocument[T any](raw bson.Raw) (T, error) {
	var model T

	elems, err := raw.Elements()
	if err != nil {
		return model, err
	}

	doc := make(bson.D, 0, len(elems))
	for _, e := range elems {
		key := e.Key()
		if key == "_id" {
			key = "id"
		}
		doc = append(doc, bson.E{Key: key, Value: e.Value()})
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return model, err
	}
	if err := bson.Unmarshal(data, &model); err != nil {
		return model, err
	}
	return model, nil
}

func idUnset(v bson.RawValue) bool {
	switch v.Type {
	case bson.TypeNull:
		return true
	case bson.TypeObjectID:
		id, ok := v.ObjectIDOK()
		return ok && id.IsZero()
	default:
		return false
	}
}
