package entity

import (
	"time"

	"github.com/google/uuid"
)

type Workout struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    Category  `gorm:"type:varchar(8);not null;index"`
	StartDate   time.Time `gorm:"type:date;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Workout) TableName() string {
	return "workouts"
}
