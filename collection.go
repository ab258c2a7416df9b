package mongokit

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection binds a model type T with identifier type ID to one storage
// collection. Every method is a direct forward to the equivalent driver
// primitive, translating between T and raw documents where applicable.
// Construct one handle per model type and hold it for the application's
// lifetime; it is as safe for concurrent use as the driver's handles are.
type Collection[ID comparable, T Model] struct {
	coll *mongo.Collection
}

// NewCollection binds T to its collection on db. It fails if T declares an
// empty collection name. Declared indexes are created (create-if-absent on
// the server side) and a declared schema validator is applied: collMod when
// the collection already exists, otherwise the collection is created with
// the validator attached.
//
// T must be a struct type; its zero value is used to read the declarations.
func NewCollection[ID comparable, T Model](ctx context.Context, db *mongo.Database) (*Collection[ID, T], error) {
	var model T

	name := model.CollectionName()
	if name == "" {
		return nil, ErrEmptyCollectionName
	}
	coll := db.Collection(name)

	if indexed, ok := any(model).(Indexed); ok {
		if specs := indexed.Indexes(); len(specs) > 0 {
			indexModels := make([]mongo.IndexModel, 0, len(specs))
			for _, spec := range specs {
				im, err := ParseIndexModel(spec)
				if err != nil {
					return nil, err
				}
				indexModels = append(indexModels, im)
			}
			if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
				return nil, err
			}
		}
	}

	if validated, ok := any(model).(Validated); ok {
		if validator := validated.Validator(); validator != nil {
			if err := applyValidator(ctx, db, name, validator); err != nil {
				return nil, err
			}
		}
	}

	return &Collection[ID, T]{coll: coll}, nil
}

func applyValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		cmd := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		res, err := db.RunCommand(ctx, cmd).Raw()
		if err != nil {
			return err
		}
		if _, err := res.LookupErr("ok"); err != nil {
			return ErrSchemaValidatorNotApplied
		}
		return nil
	}

	return db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
}

// Unwrap returns the underlying driver collection for operations this layer
// does not cover.
func (c *Collection[ID, T]) Unwrap() *mongo.Collection {
	return c.coll
}

// InsertOne inserts a single document and returns the driver's result,
// including the inserted identifier.
func (c *Collection[ID, T]) InsertOne(ctx context.Context, doc T) (*mongo.InsertOneResult, error) {
	d, err := ToDocument(doc)
	if err != nil {
		return nil, err
	}
	return c.coll.InsertOne(ctx, d)
}

// InsertMany inserts documents in order when ordered is true; when false the
// server may continue past individual failures.
func (c *Collection[ID, T]) InsertMany(ctx context.Context, docs []T, ordered bool) (*mongo.InsertManyResult, error) {
	ds := make([]any, 0, len(docs))
	for _, doc := range docs {
		d, err := ToDocument(doc)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return c.coll.InsertMany(ctx, ds, options.InsertMany().SetOrdered(ordered))
}

// GetOrNone fetches a document by identifier, returning nil without error
// when no document matches.
func (c *Collection[ID, T]) GetOrNone(ctx context.Context, id ID) (*T, error) {
	return c.decodeOptional(c.coll.FindOne(ctx, bson.M{"_id": id}))
}

// Get fetches a document by identifier, returning a *NotFoundError carrying
// the identifier when no document matches.
func (c *Collection[ID, T]) Get(ctx context.Context, id ID) (T, error) {
	res, err := c.GetOrNone(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	if res == nil {
		var zero T
		return zero, &NotFoundError{ID: id}
	}
	return *res, nil
}

// Find returns all documents matching filter, honoring WithSort and
// WithLimit options.
func (c *Collection[ID, T]) Find(ctx context.Context, filter any, opts ...FindOption) ([]T, error) {
	var fo findOptions
	for _, opt := range opts {
		opt(&fo)
	}

	findOpts := options.Find()
	if sort := ParseSort(fo.sort); sort != nil {
		findOpts = findOpts.SetSort(sort)
	}
	if fo.limit > 0 {
		findOpts = findOpts.SetLimit(fo.limit)
	}

	cur, err := c.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []T
	for cur.Next(ctx) {
		model, err := FromDocument[T](cur.Current)
		if err != nil {
			return nil, err
		}
		results = append(results, model)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindOne returns the first document matching filter, honoring WithSort, or
// nil without error when nothing matches.
func (c *Collection[ID, T]) FindOne(ctx context.Context, filter any, opts ...FindOption) (*T, error) {
	var fo findOptions
	for _, opt := range opts {
		opt(&fo)
	}

	findOpts := options.FindOne()
	if sort := ParseSort(fo.sort); sort != nil {
		findOpts = findOpts.SetSort(sort)
	}
	return c.decodeOptional(c.coll.FindOne(ctx, filter, findOpts))
}

// UpdateAndGet atomically applies update to the document with the given
// identifier and returns the post-update document. No match returns a
// *NotFoundError. The operation is a single findOneAndUpdate round-trip;
// it is never decomposed into separate find and update calls.
func (c *Collection[ID, T]) UpdateAndGet(ctx context.Context, id ID, update any) (T, error) {
	var zero T

	res := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	raw, err := res.Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, &NotFoundError{ID: id}
		}
		return zero, err
	}
	return FromDocument[T](raw)
}

// SetAndGet is UpdateAndGet with fields wrapped in a $set operation.
func (c *Collection[ID, T]) SetAndGet(ctx context.Context, id ID, fields any) (T, error) {
	return c.UpdateAndGet(ctx, id, bson.M{"$set": fields})
}

// UpdateByID applies update to the document with the given identifier.
func (c *Collection[ID, T]) UpdateByID(ctx context.Context, id ID, update any, upsert bool) (*mongo.UpdateResult, error) {
	return c.coll.UpdateByID(ctx, id, update, options.UpdateOne().SetUpsert(upsert))
}

// SetByID is UpdateByID with fields wrapped in a $set operation.
func (c *Collection[ID, T]) SetByID(ctx context.Context, id ID, fields any, upsert bool) (*mongo.UpdateResult, error) {
	return c.UpdateByID(ctx, id, bson.M{"$set": fields}, upsert)
}

// SetAndPush combines a $set of fields with a $push of array elements on the
// document with the given identifier.
func (c *Collection[ID, T]) SetAndPush(ctx context.Context, id ID, fields, push any) (*mongo.UpdateResult, error) {
	return c.coll.UpdateByID(ctx, id, bson.M{"$set": fields, "$push": push})
}

// UpdateOne applies update to the first document matching filter.
func (c *Collection[ID, T]) UpdateOne(ctx context.Context, filter, update any, upsert bool) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(upsert))
}

// UpdateMany applies update to every document matching filter.
func (c *Collection[ID, T]) UpdateMany(ctx context.Context, filter, update any, upsert bool) (*mongo.UpdateResult, error) {
	return c.coll.UpdateMany(ctx, filter, update, options.UpdateMany().SetUpsert(upsert))
}

// SetMany is UpdateMany with fields wrapped in a $set operation and no
// upsert.
func (c *Collection[ID, T]) SetMany(ctx context.Context, filter, fields any) (*mongo.UpdateResult, error) {
	return c.coll.UpdateMany(ctx, filter, bson.M{"$set": fields})
}

// DeleteByID deletes the document with the given identifier.
func (c *Collection[ID, T]) DeleteByID(ctx context.Context, id ID) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteOne deletes the first document matching filter.
func (c *Collection[ID, T]) DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, filter)
}

// DeleteMany deletes every document matching filter.
func (c *Collection[ID, T]) DeleteMany(ctx context.Context, filter any) (*mongo.DeleteResult, error) {
	return c.coll.DeleteMany(ctx, filter)
}

// Count returns the number of documents matching filter.
func (c *Collection[ID, T]) Count(ctx context.Context, filter any) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}

// Exists reports whether at least one document matches filter.
func (c *Collection[ID, T]) Exists(ctx context.Context, filter any) (bool, error) {
	n, err := c.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Drop drops the entire collection.
func (c *Collection[ID, T]) Drop(ctx context.Context) error {
	return c.coll.Drop(ctx)
}

func (c *Collection[ID, T]) decodeOptional(res *mongo.SingleResult) (*T, error) {
	raw, err := res.Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	model, err := FromDocument[T](raw)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
