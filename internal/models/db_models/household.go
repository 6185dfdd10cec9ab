package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Relation string

const (
	RelationHead     Relation = "HEAD"
	RelationSpouse   Relation = "SPOUSE"
	RelationFather   Relation = "FATHER"
	RelationMother   Relation = "MOTHER"
	RelationSon      Relation = "SON"
	RelationDaughter Relation = "DAUGHTER"
	RelationOther    Relation = "OTHER"
)

type Household struct {
	BaseModel
	HeadName    string
	Address     string
	Phone       string    `gorm:"index"`
	CreatedByID uuid.UUID `gorm:"type:uuid"`

	Members []Member `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE"`
	Card    *Card    `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE"`
}

type Member struct {
	BaseModel
	HouseholdID uuid.UUID `gorm:"type:uuid;index"`
	FirstName   string
	LastName    string
	DOB         time.Time `gorm:"column:dob;type:date"`
	Relation    Relation  `gorm:"type:member_relation"`
	NationalID  string    `gorm:"column:national_id;index"`
}
