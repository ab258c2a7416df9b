package mongokit

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Model is implemented by struct types mapped to one document collection.
// The struct's identifier field must marshal to the BSON key "id" (the
// driver's default for a field named ID); the translation layer maps it to
// the storage "_id" field in both directions.
type Model interface {
	CollectionName() string
}

// Indexed is optionally implemented by models that declare indexes. Each
// element is one compact index spec: a leading '!' marks the index unique,
// keys are comma-separated, and a leading '-' on a key means descending.
// For example "!email" or "!tenant_id,-created_at".
type Indexed interface {
	Indexes() []string
}

// Validated is optionally implemented by models that declare a server-side
// schema validator, typically a $jsonSchema document. The validator is
// applied when the collection handle is constructed; enforcement is entirely
// the server's.
type Validated interface {
	Validator() bson.M
}

// ParseObjectID validates and converts a hex string into an ObjectID.
// The returned error matches ErrInvalidObjectID.
func ParseObjectID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, errors.Join(ErrInvalidObjectID, err)
	}
	return id, nil
}
