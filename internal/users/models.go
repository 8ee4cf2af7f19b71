package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Preferences holds the user's category selections for the front page
type Preferences struct {
	SelectedCategories    []string `json:"selected_categories" gorm:"serializer:json"`
	SelectedSubCategories []string `json:"selected_sub_categories" gorm:"serializer:json"`
	OneTimeMonitChecked   bool     `json:"one_time_monit_checked" gorm:"default:false"`
}

type User struct {
	ID          uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Email       string      `json:"email" gorm:"uniqueIndex;not null"`
	Name        string      `json:"name" gorm:"uniqueIndex;not null"`
	Password    string      `json:"-" gorm:"not null"` // bcrypt hash, hidden in json
	Role        Role        `json:"role" gorm:"type:varchar(10);not null;default:'user'"`
	Active      bool        `json:"active" gorm:"default:true"`
	Preferences Preferences `json:"preferences" gorm:"embedded;embeddedPrefix:pref_"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleAdmin):
		return true
	default:
		return false
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
