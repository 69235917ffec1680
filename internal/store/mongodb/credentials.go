package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dropDatabas3/passcode/internal/store/core"
)

// credentialDoc es el documento BSON de la colección credentials. owner_id
// guarda el hex del _id del dueño como string plano; alcanza para filtrar y
// evita castear ObjectIDs en la capa de servicio.
type credentialDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	Site      string             `bson:"site"`
	Link      string             `bson:"link"`
	Username  string             `bson:"username"`
	Secret    string             `bson:"secret"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *credentialDoc) toCore() core.CredentialRecord {
	return core.CredentialRecord{
		ID:        d.ID.Hex(),
		OwnerID:   d.OwnerID,
		Site:      d.Site,
		Link:      d.Link,
		Username:  d.Username,
		Secret:    d.Secret,
		CreatedAt: d.CreatedAt,
	}
}

type credentialRepository struct {
	coll *mongo.Collection
}

func (r *credentialRepository) Insert(ctx context.Context, rec *core.CredentialRecord) (string, error) {
	doc := credentialDoc{
		OwnerID:   rec.OwnerID,
		Site:      rec.Site,
		Link:      rec.Link,
		Username:  rec.Username,
		Secret:    rec.Secret,
		CreatedAt: rec.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("mongodb: unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *credentialRepository) ListByOwner(ctx context.Context, ownerID string) ([]core.CredentialRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]core.CredentialRecord, 0)
	for cur.Next(ctx) {
		var doc credentialDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toCore())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *credentialRepository) FindByID(ctx context.Context, id string) (*core.CredentialRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.ErrInvalidID
	}

	var doc credentialDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	rec := doc.toCore()
	return &rec, nil
}

func (r *credentialRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, core.ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
