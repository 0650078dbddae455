package user

import "time"

type User struct {
	ID          string     `gorm:"column:id;primaryKey;type:varchar(36)"`
	FirstName   string     `gorm:"column:first_name;size:100;not null"`
	LastName    string     `gorm:"column:last_name;size:100;not null"`
	Email       string     `gorm:"column:email;size:255;not null;uniqueIndex"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date"`
	Password    string     `gorm:"column:password;size:255;not null"`
	Role        string     `gorm:"column:role;size:32;not null;index"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
