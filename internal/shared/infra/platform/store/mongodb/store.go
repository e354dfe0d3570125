package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
)

// Store implementa RecordStore sobre una base de datos MongoDB.
// Cada colección lógica es una colección de Mongo con el mismo nombre.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ sharedDomain.RecordStore = (*Store)(nil)

// Connect abre el cliente contra la URL indicada.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongoDB: %w", err)
	}
	return client, nil
}

// NewStore comprueba la conexión y devuelve el store sobre dbName.
func NewStore(ctx context.Context, client *mongo.Client, dbName string) (*Store, error) {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("could not ping mongoDB: %w", err)
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc sharedDomain.Document) error {
	// Mongo añade _id; el documento del llamador no se toca.
	if _, err := s.db.Collection(collection).InsertOne(ctx, bson.M(sharedDomain.CloneDocument(doc))); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, limit int) ([]sharedDomain.Document, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	docs := make([]sharedDomain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, sharedDomain.Document(m))
	}
	return docs, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, patch sharedDomain.Document) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M(patch)},
	)
	if err != nil {
		return 0, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return res.MatchedCount, nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// Ping comprueba que el servidor sigue disponible.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
