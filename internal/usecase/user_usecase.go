package usecase

import (
	"context"
	"io"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Name        string
	Bio         string
	DateOfBirth *time.Time
	LocationID  *uuid.UUID
	Username    string
	Password    string
}

// UserSummary is the public view of a user.
type UserSummary struct {
	ID           uuid.UUID
	Name         string
	Bio          string
	ProfileImage string
	Location     *entity.Location
}

// ProfileImageUpload is an uploaded profile picture.
type ProfileImageUpload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUserSummary(ctx context.Context, userID uuid.UUID) (*UserSummary, error)
	GetUserInfo(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error
	// GetRecommendedEvents lists events at or near the user's location that the user has not joined.
	GetRecommendedEvents(ctx context.Context, userID uuid.UUID) ([]*entity.Event, error)
	UploadProfileImage(ctx context.Context, userID uuid.UUID, upload *ProfileImageUpload) (*entity.User, error)
	GetInviteQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
