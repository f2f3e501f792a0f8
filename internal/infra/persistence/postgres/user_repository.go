// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading the home location binding.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", "id = ?", id)
}

// FindByUsername retrieves a single user by login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by username", "username = ?", username)
}

// FindFirstByName retrieves the oldest user carrying the display name.
func (repo *userRepository) FindFirstByName(ctx context.Context, name string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by name", "name = ?", name)
}

func (repo *userRepository) findOne(ctx context.Context, msg, cond string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("UserLocation").
		Where(cond, args...).
		Order("created_at ASC").
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("UserLocation").Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfileImage stores the public URL of the user's profile picture.
func (repo *userRepository) UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return repo.updateColumns(ctx, id, map[string]any{"profile_image": imageURL}, "failed to update profile image")
}

// UpdatePushToken registers the device token used for push delivery.
func (repo *userRepository) UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateColumns(ctx, id, map[string]any{"expo_push_token": token}, "failed to update push token")
}

// UpdateLastLogin records a successful login.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{"last_login": at}, "failed to update last login")
}

// ClearPushToken removes the token from every user holding it.
func (repo *userRepository) ClearPushToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("expo_push_token = ?", token).
		Updates(map[string]any{"expo_push_token": ""}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear push token")
	}

	return nil
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	// If no rows were affected, it means the user was not found.
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		Bio:           data.Bio,
		InviteCode:    data.InviteCode,
		ProfileImage:  data.ProfileImage,
		DateOfBirth:   data.DateOfBirth,
		PasswordHash:  data.PasswordHash,
		LastLogin:     data.LastLogin,
		ExpoPushToken: data.ExpoPushToken,
		IsStaff:       data.IsStaff,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Username != nil {
		user.Username = *data.Username
	}
	if data.UserLocation != nil {
		locationID := data.UserLocation.LocationID
		user.LocationID = &locationID
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
// Empty usernames are stored as NULL so the unique index only applies to real login names.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:            data.ID,
		Name:          data.Name,
		Bio:           data.Bio,
		InviteCode:    data.InviteCode,
		ProfileImage:  data.ProfileImage,
		DateOfBirth:   data.DateOfBirth,
		PasswordHash:  data.PasswordHash,
		LastLogin:     data.LastLogin,
		ExpoPushToken: data.ExpoPushToken,
		IsStaff:       data.IsStaff,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Username != "" {
		username := data.Username
		userM.Username = &username
	}

	return userM
}
