package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name          string  `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug          string  `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	CNPJ          *string `json:"cnpj,omitempty" gorm:"uniqueIndex;size:14"`
	Sector        string  `json:"sector" gorm:"size:100"`
	EmployeeCount int     `json:"employee_count" gorm:"default:0"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
