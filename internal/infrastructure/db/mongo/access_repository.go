package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thejurists/site-api/internal/core/domain"
)

// bootstrapID is the fixed key of the single access control document. The
// unique _id index makes the first insert the only one that succeeds.
const bootstrapID = "bootstrap"

type AccessControlRepository struct {
	state     *mongo.Collection
	overrides *mongo.Collection
}

func NewAccessControlRepository(db *mongo.Database) *AccessControlRepository {
	return &AccessControlRepository{
		state:     db.Collection(collectionAccess),
		overrides: db.Collection(collectionRoleOverrides),
	}
}

type mongoAccessState struct {
	ID            string `bson:"_id"`
	Admin         string `bson:"admin"`
	InitializedAt int64  `bson:"initialized_at"`
}

type mongoRoleOverride struct {
	Identity string `bson:"_id"`
	Role     string `bson:"role"`
}

func (r *AccessControlRepository) Initialize(ctx context.Context, admin domain.CallerIdentity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.state.InsertOne(ctx, mongoAccessState{
		ID:            bootstrapID,
		Admin:         string(admin),
		InitializedAt: time.Now().Unix(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyInitialized
		}
		return fmt.Errorf("insert access state: %w", err)
	}
	return nil
}

func (r *AccessControlRepository) Admin(ctx context.Context) (domain.CallerIdentity, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s mongoAccessState
	if err := r.state.FindOne(ctx, bson.M{"_id": bootstrapID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Anonymous, false, nil
		}
		return domain.Anonymous, false, fmt.Errorf("find access state: %w", err)
	}
	return domain.CallerIdentity(s.Admin), true, nil
}

func (r *AccessControlRepository) RoleOverride(ctx context.Context, id domain.CallerIdentity) (domain.Role, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o mongoRoleOverride
	if err := r.overrides.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find role override: %w", err)
	}
	return domain.Role(o.Role), true, nil
}

func (r *AccessControlRepository) SetRoleOverride(ctx context.Context, id domain.CallerIdentity, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.overrides.ReplaceOne(ctx,
		bson.M{"_id": string(id)},
		mongoRoleOverride{Identity: string(id), Role: string(role)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert role override: %w", err)
	}
	return nil
}

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

type mongoProfile struct {
	Identity string  `bson:"_id"`
	Name     string  `bson:"name"`
	Email    *string `bson:"email,omitempty"`
}

func (r *ProfileRepository) Get(ctx context.Context, id domain.CallerIdentity) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p mongoProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &domain.UserProfile{Name: p.Name, Email: p.Email}, nil
}

func (r *ProfileRepository) Save(ctx context.Context, id domain.CallerIdentity, p domain.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": string(id)},
		mongoProfile{Identity: string(id), Name: p.Name, Email: p.Email},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
