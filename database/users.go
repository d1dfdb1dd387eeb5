package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionUsers = "users"

// Users is the repository for per-user economy documents. Accounts are
// created lazily: GetOrCreate is the only read path commands use, so account
// creation stays a storage concern.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection(collectionUsers)}
}

// GetOrCreate fetches the user document, inserting a zeroed one if the user
// has never been seen. The cached username is refreshed opportunistically.
func (r *Users) GetOrCreate(ctx context.Context, id, username string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		u := NewUser(id, username)
		if _, err := r.col.InsertOne(ctx, u); err != nil {
			return nil, fmt.Errorf("create user %s: %w", id, err)
		}
		return u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}

	u.Username = username
	return &u, nil
}

// Save writes the full user document back. Last write wins: there is no
// version token, so two commands racing on the same account can clobber each
// other. Known hazard, accepted for this workload.
func (r *Users) Save(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("save user %s: %w", u.ID, err)
	}
	return nil
}

// FindExpiredCooldowns returns every user holding at least one cooldown that
// ended at or before now. Used by the sweeper to know who to notify.
func (r *Users) FindExpiredCooldowns(ctx context.Context, now time.Time) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"cooldowns.endTime": bson.M{"$lte": now}})
	if err != nil {
		return nil, fmt.Errorf("find expired cooldowns: %w", err)
	}

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode expired cooldowns: %w", err)
	}
	return users, nil
}

// PullExpiredCooldowns removes every expired cooldown entry in one bulk
// update across all users.
func (r *Users) PullExpiredCooldowns(ctx context.Context, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"cooldowns.endTime": bson.M{"$lte": now}},
		bson.M{"$pull": bson.M{"cooldowns": bson.M{"endTime": bson.M{"$lte": now}}}},
	)
	if err != nil {
		return fmt.Errorf("pull expired cooldowns: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the sweeper query relies on.
func (r *Users) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "cooldowns.endTime", Value: 1}},
	})
	return err
}
