package mongokit

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToJSON renders a value as relaxed MongoDB Extended JSON using the driver's
// encoder, so BSON-specific types (ObjectID, DateTime, Decimal128) serialize
// losslessly.
func ToJSON(v any) ([]byte, error) {
	return bson.MarshalExtJSON(v, false, false)
}
