package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. UUIDs are assigned by the application before insert.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name          string     `gorm:"type:varchar(100);not null"`
	Bio           string     `gorm:"type:text;not null;default:''"`
	InviteCode    string     `gorm:"type:varchar(32);unique;not null"`
	ProfileImage  string     `gorm:"type:text;not null;default:''"`
	DateOfBirth   *time.Time `gorm:"type:date"`
	Username      *string    `gorm:"type:varchar(150);unique"`
	PasswordHash  string     `gorm:"type:varchar(255);not null;default:''"`
	LastLogin     *time.Time
	ExpoPushToken string `gorm:"type:varchar(255);not null;default:''"`
	IsStaff       bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	UserLocation *UserLocationModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Province    string    `gorm:"type:varchar(100);not null"`
	City        string    `gorm:"type:varchar(100);not null"`
	Town        string    `gorm:"type:varchar(100);not null;default:''"`
	Description string    `gorm:"type:text;not null;default:''"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// UserLocationModel mirrors the 'user_locations' table. A user has at most one home location.
type UserLocationModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
