package mongokit

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ParseIndexModel parses a single compact index spec into a driver index
// model. A leading '!' marks the index unique; keys are comma-separated; a
// leading '-' on a key means descending. Examples:
//
//	"email"           index on email ascending
//	"!email"          unique index on email
//	"!a,-b"           unique compound index on a ascending, b descending
func ParseIndexModel(spec string) (mongo.IndexModel, error) {
	spec = strings.TrimSpace(spec)

	var unique bool
	if strings.HasPrefix(spec, "!") {
		unique = true
		spec = spec[1:]
	}

	var keys bson.D
	for _, key := range strings.Split(spec, ",") {
		key = strings.TrimSpace(key)
		order := 1
		if strings.HasPrefix(key, "-") {
			order = -1
			key = key[1:]
		}
		if key == "" {
			return mongo.IndexModel{}, fmt.Errorf("%w: %q", ErrInvalidIndexSpec, spec)
		}
		keys = append(keys, bson.E{Key: key, Value: order})
	}

	model := mongo.IndexModel{Keys: keys}
	if unique {
		model.Options = options.Index().SetUnique(true)
	}
	return model, nil
}

// ParseIndexes parses the compact flat form: a comma-separated list of
// single-key specs, each with the optional '!' and '-' markers, e.g.
// "name,-created_at,!email". Empty input yields an empty list. Compound
// indexes are declared one spec per element via Indexed.Indexes and
// ParseIndexModel instead.
func ParseIndexes(s string) ([]mongo.IndexModel, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var models []mongo.IndexModel
	for _, spec := range strings.Split(s, ",") {
		model, err := ParseIndexModel(spec)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, nil
}
