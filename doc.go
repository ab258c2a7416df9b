// Package mongokit is a thin, typed document-mapping layer on top of the
// official MongoDB Go driver.
//
// It translates typed model values to and from BSON documents, forwards CRUD
// operations to the driver, and adds small syntactic conveniences: compact
// index-spec and sort-spec string parsing, and nil/empty filtering for query
// documents. Connection pooling, retries, wire protocol, and consistency
// semantics are all owned by the driver; this package adds no locking,
// caching, or transaction discipline of its own.
//
// # Usage
//
//	import (
//		"context"
//		"github.com/dmitrymomot/mongokit"
//		"go.mongodb.org/mongo-driver/v2/bson"
//	)
//
//	type User struct {
//		ID    bson.ObjectID
//		Email string
//		Age   int
//	}
//
//	func (User) CollectionName() string { return "users" }
//	func (User) Indexes() []string      { return []string{"!email", "age"} }
//
//	func main() {
//		cfg, err := mongokit.LoadConfig()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		conn, err := mongokit.Connect(context.Background(), cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer conn.Close(context.Background())
//
//		users, err := mongokit.NewCollection[bson.ObjectID, User](context.Background(), conn.Database)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		res, _ := users.InsertOne(context.Background(), User{Email: "a@b.c", Age: 30})
//		u, _ := users.Get(context.Background(), res.InsertedID.(bson.ObjectID))
//		_ = u
//	}
//
// # Models
//
// A model is any struct type implementing CollectionName. Its identifier
// field marshals to the BSON key "id" (the driver's default lowercasing of an
// ID field); mongokit renames it to "_id" on the way to the server and back
// again on the way out, so models never carry "_id" tags. An unset identifier
// (BSON null or a zero ObjectID) is omitted from inserts so the server
// assigns one.
//
// Models may additionally implement Indexed to declare indexes in the compact
// string grammar, and Validated to declare a $jsonSchema validator. Both are
// applied once, when the collection handle is constructed.
//
// # Error Handling
//
// Single-document lookups that find nothing return a *NotFoundError carrying
// the requested identifier; it matches ErrNotFound via errors.Is. Every other
// failure (constraint violations, schema rejections, network errors) is the
// driver's error, propagated unmodified.
//
// # See Also
//
// Documentation for the official driver: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2.
package mongokit
