package request_models

import "healthcard/internal/models/db_models"

// NewAccount describes a user provisioned outside the HTTP surface.
type NewAccount struct {
	Email    string
	Name     string
	Password string
	Role     db_models.Role
	Hospital *NewHospital
}

type NewHospital struct {
	Name      string
	Address   string
	Phone     string
	LicenseNo string
}

type NewPlan struct {
	Name         string
	Description  string
	Price        float64
	DurationDays int
}
