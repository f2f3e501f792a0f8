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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Status == "" {
		event.Status = entity.EventStatusPlanned
	}
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Omit("EventLocation").Create(eventM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("capacity must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	// Update the entity with generated values
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves an event by its ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	err := repo.db.WithContext(ctx).
		Preload("EventLocation").
		Where("id = ?", id).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// LockByID reads the event row on the primary with FOR UPDATE or FOR SHARE.
func (repo *eventRepository) LockByID(ctx context.Context, id uuid.UUID, mode repository.LockMode) (*entity.Event, error) {
	var eventM model.EventModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: string(mode)}).
		Where("id = ?", id).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to lock event")
	}

	return toEventDomain(&eventM), nil
}

// IncrementViewCount adds one to view_count in a single UPDATE so concurrent readers never lose increments.
func (repo *eventRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment view count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event. Related rows are removed by ON DELETE CASCADE.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// AddOrganizer binds an organizing user to the event. Adding the same organizer twice is a no-op.
func (repo *eventRepository) AddOrganizer(ctx context.Context, organizer *entity.EventOrganizer) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.EventOrganizerModel{EventID: organizer.EventID, UserID: organizer.UserID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid event or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add organizer")
	}

	return nil
}

// IsOrganizer reports whether the user organizes the event.
func (repo *eventRepository) IsOrganizer(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.EventOrganizerModel{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check organizer")
	}

	return count > 0, nil
}

// FindRecommended lists events at the given locations that the user has not joined, featured first.
func (repo *eventRepository) FindRecommended(ctx context.Context, locationIDs []uuid.UUID, userID uuid.UUID, limit int) ([]*entity.Event, error) {
	if len(locationIDs) == 0 {
		return []*entity.Event{}, nil
	}

	var eventModels []*model.EventModel

	query := repo.db.WithContext(ctx).
		Preload("EventLocation").
		Joins("JOIN event_locations ON event_locations.event_id = events.id").
		Where("event_locations.location_id IN ?", locationIDs).
		Where("NOT EXISTS (SELECT 1 FROM user_events WHERE user_events.event_id = events.id AND user_events.user_id = ?)", userID).
		Order("events.is_featured DESC, events.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recommended events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	event := &entity.Event{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Capacity:    data.Capacity,
		Duration:    time.Duration(data.DurationSeconds) * time.Second,
		Address:     data.Address,
		Status:      entity.EventStatus(data.Status),
		ViewCount:   data.ViewCount,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.EventLocation != nil {
		locationID := data.EventLocation.LocationID
		event.LocationID = &locationID
	}

	return event
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Capacity:        data.Capacity,
		DurationSeconds: int64(data.Duration / time.Second),
		Address:         data.Address,
		Status:          string(data.Status),
		ViewCount:       data.ViewCount,
		IsFeatured:      data.IsFeatured,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
