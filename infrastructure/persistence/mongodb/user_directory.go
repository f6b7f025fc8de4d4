package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
	pkgerrors "memoirbox-backend/pkg/errors"
)

// UserDirectory implements ports.UserDirectory as a read-only projection of
// the users collection maintained by the external auth service.
type UserDirectory struct {
	col *mongo.Collection
}

// NewUserDirectory creates a new user directory
func NewUserDirectory(db *mongo.Database) ports.UserDirectory {
	return &UserDirectory{col: db.Collection(usersCollection)}
}

// FindByID retrieves a single user record, nil when unknown
func (d *UserDirectory) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := d.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.NewDatabaseError("get user", err)
	}
	return &user, nil
}

// FindByIDs retrieves the known subset of the given users, keyed by ID
func (d *UserDirectory) FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error) {
	users := make(map[string]entities.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := d.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list users", err)
	}

	var records []entities.User
	if err := cursor.All(ctx, &records); err != nil {
		return nil, pkgerrors.NewDatabaseError("decode users", err)
	}

	for _, u := range records {
		users[u.ID] = u
	}
	return users, nil
}
