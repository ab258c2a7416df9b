package mongokit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongokit"
)

type account struct {
	ID      bson.ObjectID
	Name    string
	Balance int
}

type numberedAccount struct {
	ID   int
	Name string
}

type refAccount struct {
	ID   *string
	Name string
}

type accountHolder struct {
	ID      int
	Name    string
	Account account
}

func docKeys(d bson.D) []string {
	keys := make([]string, 0, len(d))
	for _, e := range d {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestToDocument(t *testing.T) {
	t.Run("renames id to _id", func(t *testing.T) {
		id := bson.NewObjectID()
		doc, err := mongokit.ToDocument(account{ID: id, Name: "n1", Balance: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"_id", "name", "balance"}, docKeys(doc))
	})

	t.Run("omits zero object id so the server generates one", func(t *testing.T) {
		doc, err := mongokit.ToDocument(account{Name: "n1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "balance"}, docKeys(doc))
	})

	t.Run("omits nil pointer id", func(t *testing.T) {
		doc, err := mongokit.ToDocument(refAccount{Name: "n1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, docKeys(doc))

		id := "custom"
		doc, err = mongokit.ToDocument(refAccount{ID: &id, Name: "n1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"_id", "name"}, docKeys(doc))
	})

	t.Run("integer zero id is kept", func(t *testing.T) {
		doc, err := mongokit.ToDocument(numberedAccount{ID: 0, Name: "n1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"_id", "name"}, docKeys(doc))
	})

	t.Run("nested documents keep their own id field", func(t *testing.T) {
		holder := accountHolder{
			ID:      1,
			Name:    "h1",
			Account: account{ID: bson.NewObjectID(), Name: "n1"},
		}
		doc, err := mongokit.ToDocument(holder)
		require.NoError(t, err)

		data, err := bson.Marshal(doc)
		require.NoError(t, err)
		raw := bson.Raw(data)

		assert.Equal(t, bson.TypeObjectID, raw.Lookup("account", "id").Type)
		assert.Equal(t, bson.Type(0), raw.Lookup("account", "_id").Type)
	})
}

func TestFromDocument(t *testing.T) {
	t.Run("renames _id back to id", func(t *testing.T) {
		id := bson.NewObjectID()
		data, err := bson.Marshal(bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "n1"},
			{Key: "balance", Value: 42},
		})
		require.NoError(t, err)

		model, err := mongokit.FromDocument[account](bson.Raw(data))
		require.NoError(t, err)
		assert.Equal(t, account{ID: id, Name: "n1", Balance: 42}, model)
	})

	t.Run("decode mismatch propagates", func(t *testing.T) {
		data, err := bson.Marshal(bson.D{
			{Key: "_id", Value: 1},
			{Key: "name", Value: bson.D{{Key: "not", Value: "a string"}}},
		})
		require.NoError(t, err)

		_, err = mongokit.FromDocument[numberedAccount](bson.Raw(data))
		require.Error(t, err)
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	type event struct {
		ID   bson.ObjectID
		Name string
		At   time.Time
	}

	original := event{
		ID:   bson.NewObjectID(),
		Name: "signup",
		At:   time.Now().UTC().Truncate(time.Millisecond),
	}

	doc, err := mongokit.ToDocument(original)
	require.NoError(t, err)

	data, err := bson.Marshal(doc)
	require.NoError(t, err)

	decoded, err := mongokit.FromDocument[event](bson.Raw(data))
	require.NoError(t, err)
	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Name, decoded.Name)
	assert.True(t, original.At.Equal(decoded.At))
}
