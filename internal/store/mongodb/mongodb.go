// Package mongodb implementa core.Repository sobre MongoDB usando el driver
// oficial. La unicidad de username/email/phone se garantiza con unique
// indexes: dos registros concurrentes con el mismo username resuelven en un
// insert exitoso y un duplicate key, nunca dos cuentas.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dropDatabas3/passcode/internal/store/core"
)

const (
	usersCollection       = "users"
	credentialsCollection = "credentials"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database

	usersRepo userRepository
	credsRepo credentialRepository
}

// Connect abre el cliente, verifica conectividad y asegura los índices.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(database),
	}
	s.usersRepo = userRepository{coll: s.db.Collection(usersCollection)}
	s.credsRepo = credentialRepository{coll: s.db.Collection(credentialsCollection)}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return s, nil
}

func (s *Store) Users() core.UserRepository             { return &s.usersRepo }
func (s *Store) Credentials() core.CredentialRepository { return &s.credsRepo }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureIndexes crea los unique indexes que sostienen el invariante de
// unicidad. email y phone son parciales: solo aplican cuando el campo existe
// (son opcionales en el registro).
func (s *Store) ensureIndexes(ctx context.Context) error {
	users := s.db.Collection(usersCollection)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "email", Value: bson.D{{Key: "$type", Value: "string"}}}}),
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "phone", Value: bson.D{{Key: "$type", Value: "string"}}}}),
		},
	})
	if err != nil {
		return err
	}

	creds := s.db.Collection(credentialsCollection)
	_, err = creds.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
