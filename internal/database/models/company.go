package models

// CompanySettings holds per-tenant scheduling preferences. Embedded into
// the companies table as prefixed columns.
type CompanySettings struct {
	Timezone          string `json:"timezone" gorm:"size:50;not null;default:'UTC'"`
	WorkingHoursStart string `json:"working_hours_start" gorm:"size:5;not null;default:'09:00'"`
	WorkingHoursEnd   string `json:"working_hours_end" gorm:"size:5;not null;default:'17:00'"`
}

// Company represents a tenant. Every other entity is partitioned by
// company_id and never crosses tenant boundaries.
type Company struct {
	BaseModel
	Name     string          `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Email    string          `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Settings CompanySettings `json:"settings" gorm:"embedded;embeddedPrefix:settings_"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
