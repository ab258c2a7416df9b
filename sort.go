package mongokit

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseSort parses a compact sort spec into an ordered driver sort document.
// Keys are comma-separated; a leading '-' means descending, e.g. "a,-b" sorts
// by a ascending, then b descending. Empty input means no sort and yields
// nil.
func ParseSort(s string) bson.D {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var sort bson.D
	for _, key := range strings.Split(s, ",") {
		key = strings.TrimSpace(key)
		order := 1
		if strings.HasPrefix(key, "-") {
			order = -1
			key = key[1:]
		}
		if key == "" {
			continue
		}
		sort = append(sort, bson.E{Key: key, Value: order})
	}
	return sort
}
