package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

// document wraps a domain value with its Mongo _id. Domain types keep their ID out of bson.
type document[T any] struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Body T                  `bson:",inline"`
}

// collection is a typed view over a Mongo collection holding T documents.
type collection[T any] struct {
	col   *mongo.Collection
	setID func(*T, string)
}

func newCollection[T any](db *mongo.Database, name string, setID func(*T, string)) collection[T] {
	return collection[T]{col: db.Collection(name), setID: setID}
}

func (c collection[T]) unwrap(d document[T]) T {
	v := d.Body
	c.setID(&v, d.ID.Hex())
	return v
}

func (c collection[T]) find(ctx context.Context, filter any, sort bson.D) ([]T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cur, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.col.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	for cur.Next(ctx) {
		var d document[T]
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.col.Name(), err)
		}
		out = append(out, c.unwrap(d))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", c.col.Name(), err)
	}
	return out, nil
}

func (c collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var d document[T]
	if err := c.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find one %s: %w", c.col.Name(), err)
	}
	v := c.unwrap(d)
	return &v, nil
}

// insert stores v and writes the generated ID back into it.
func (c collection[T]) insert(ctx context.Context, v *T) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := c.col.InsertOne(ctx, document[T]{Body: *v})
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.col.Name(), err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.setID(v, oid.Hex())
	}
	return nil
}

// updateOne applies update to the first document matching filter and returns the result.
func (c collection[T]) updateOne(ctx context.Context, filter, update any, upsert bool) (*T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(upsert)

	var d document[T]
	if err := c.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", c.col.Name(), err)
	}
	v := c.unwrap(d)
	return &v, nil
}

func (c collection[T]) deleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// objectID parses a hex id, reporting malformed input as a validation error.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError("invalid id")
	}
	return oid, nil
}
