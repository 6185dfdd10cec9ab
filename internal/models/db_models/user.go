package db_models

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleOfficeAgent  Role = "OFFICE_AGENT"
	RoleHospitalUser Role = "HOSPITAL_USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOfficeAgent, RoleHospitalUser:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	Role         Role `gorm:"type:user_role"`

	Hospital *Hospital `gorm:"foreignKey:UserID"`
}

// Hospital is the profile row paired with a HOSPITAL_USER account.
type Hospital struct {
	BaseModel
	Name      string
	Address   string
	Phone     string
	LicenseNo string    `gorm:"uniqueIndex"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
}
