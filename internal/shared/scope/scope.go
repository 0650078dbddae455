package scope

import (
	"time"

	"gorm.io/gorm"
)

func Employee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

func Period(periodID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("period_id = ?", periodID)
	}
}

// EndingInYear matches rows whose end_date falls inside the calendar year of asOf.
func EndingInYear(asOf time.Time) func(db *gorm.DB) *gorm.DB {
	start := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("end_date >= ? AND end_date < ?", start, end)
	}
}

// CaseInsensitiveName matches name without regard to case on every supported driver.
func CaseInsensitiveName(name string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(name) = LOWER(?)", name)
	}
}
