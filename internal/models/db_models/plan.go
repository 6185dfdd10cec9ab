package db_models

type Plan struct {
	BaseModel
	Name         string `gorm:"uniqueIndex"`
	Description  *string
	Price        float64 `gorm:"type:numeric(12,2)"`
	DurationDays int
}
