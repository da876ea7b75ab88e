package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authgate/pkg/auth"
	mongodb "github.com/dmitrymomot/authgate/pkg/mongo"
)

// UsersCollection is the collection used by the Mongo store.
const UsersCollection = "users"

type mongoUser struct {
	ID        bson.ObjectID `bson:"_id"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password,omitempty"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (u mongoUser) identity() auth.Identity {
	return auth.Identity{ID: u.ID.Hex(), Email: u.Email, CreatedAt: u.CreatedAt.UTC()}
}

// Mongo is an auth.Store backed by a MongoDB collection.
type Mongo struct {
	users *mongo.Collection
	ping  func(context.Context) error
}

// NewMongo returns a store on db and makes sure the unique email index exists.
func NewMongo(ctx context.Context, db *mongo.Database) (*Mongo, error) {
	users := db.Collection(UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return nil, fmt.Errorf("create email index: %w", err)
	}
	return &Mongo{users: users, ping: mongodb.Healthcheck(db.Client())}, nil
}

func (m *Mongo) Create(ctx context.Context, user auth.NewUser) (*auth.Identity, error) {
	doc := mongoUser{
		ID:        bson.NewObjectID(),
		Email:     user.Email,
		Password:  string(user.PasswordHash),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := m.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	identity := doc.identity()
	return &identity, nil
}

func (m *Mongo) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	var doc mongoUser
	if err := m.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return auth.NewAccount(doc.identity(), []byte(doc.Password)), nil
}

func (m *Mongo) FindByID(ctx context.Context, id string) (*auth.Identity, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrUserNotFound
	}

	var doc mongoUser
	err = m.users.FindOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		options.FindOne().SetProjection(bson.D{{Key: "password", Value: 0}}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	identity := doc.identity()
	return &identity, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.ping(ctx)
}
