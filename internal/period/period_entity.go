package period

import "time"

type Period struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"size:100;not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_periods_end_date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
