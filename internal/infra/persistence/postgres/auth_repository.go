package postgres

import (
	"context"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{
		db: db,
	}
}

// FindAuthentication retrieves a link by its provider and provider-specific ID.
// Two rows are requested so that a broken uniqueness guarantee surfaces as ErrDuplicateAuthentication.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.AuthenticationLink, error) {
	var links []*model.AuthenticationLinkModel

	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", string(provider), providerUserID).
		Limit(2).
		Find(&links).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find authentication link")
	}

	switch len(links) {
	case 0:
		return nil, repository.ErrAuthNotFound
	case 1:
		return toAuthenticationLinkDomain(links[0]), nil
	default:
		return nil, repository.ErrDuplicateAuthentication
	}
}

// CreateAuthentication persists a new provider link.
func (repo *authRepository) CreateAuthentication(ctx context.Context, link *entity.AuthenticationLink) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	linkM := fromAuthenticationLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrAuthAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required authentication information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	// Update the entity with generated values
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// UpdateTokens stores refreshed provider tokens and expiries.
func (repo *authRepository) UpdateTokens(ctx context.Context, link *entity.AuthenticationLink) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationLinkModel{}).
		Where("id = ?", link.ID).
		Updates(map[string]any{
			"access_token":             link.AccessToken,
			"refresh_token":            link.RefreshToken,
			"access_token_expires_at":  link.AccessTokenExpiresAt,
			"refresh_token_expires_at": link.RefreshTokenExpiresAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update authentication tokens")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// FindUserAuthentication retrieves the user binding of a link.
func (repo *authRepository) FindUserAuthentication(ctx context.Context, authenticationID uuid.UUID) (*entity.UserAuthentication, error) {
	var bindingM model.UserAuthenticationModel

	err := repo.db.WithContext(ctx).
		Where("authentication_id = ?", authenticationID).
		Order("created_at ASC").
		First(&bindingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserAuthenticationNotFound
		}

		return nil, errors.Wrap(err, "failed to find user authentication")
	}

	return &entity.UserAuthentication{
		ID:               bindingM.ID,
		UserID:           bindingM.UserID,
		AuthenticationID: bindingM.AuthenticationID,
		CreatedAt:        bindingM.CreatedAt,
	}, nil
}

// CreateUserAuthentication binds a user to a link.
func (repo *authRepository) CreateUserAuthentication(ctx context.Context, binding *entity.UserAuthentication) error {
	if binding.ID == uuid.Nil {
		binding.ID = uuid.New()
	}
	bindingM := &model.UserAuthenticationModel{
		ID:               binding.ID,
		UserID:           binding.UserID,
		AuthenticationID: binding.AuthenticationID,
	}

	if err := repo.db.WithContext(ctx).Create(bindingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAuthAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user or authentication reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user authentication")
	}

	binding.CreatedAt = bindingM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toAuthenticationLinkDomain converts a GORM AuthenticationLinkModel to a domain AuthenticationLink entity.
func toAuthenticationLinkDomain(data *model.AuthenticationLinkModel) *entity.AuthenticationLink {
	if data == nil {
		return nil
	}

	return &entity.AuthenticationLink{
		ID:                    data.ID,
		Provider:              entity.ProviderType(data.Provider),
		ProviderUserID:        data.ProviderUserID,
		AccessToken:           data.AccessToken,
		RefreshToken:          data.RefreshToken,
		AccessTokenExpiresAt:  data.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromAuthenticationLinkDomain converts a domain AuthenticationLink entity to a GORM AuthenticationLinkModel.
func fromAuthenticationLinkDomain(data *entity.AuthenticationLink) *model.AuthenticationLinkModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationLinkModel{
		ID:                    data.ID,
		Provider:              string(data.Provider),
		ProviderUserID:        data.ProviderUserID,
		AccessToken:           data.AccessToken,
		RefreshToken:          data.RefreshToken,
		AccessTokenExpiresAt:  data.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
	}
}
