package model

// Form is a dynamically defined form schema. A form exclusively owns its
// fields; deleting a form deletes its fields and their options.
type Form struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null;index"`
	Description string `json:"description" gorm:"type:text"`

	Fields []FormField `json:"fields,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the table name used by the existing schema.
func (Form) TableName() string { return "forms" }

// FormField is a single field of a form. (FormID, FieldName) is checked unique
// before insert; the database does not enforce it.
type FormField struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	FormID     uint   `json:"form_id" gorm:"not null;index"`
	Label      string `json:"label" gorm:"size:255;not null"`
	FieldName  string `json:"field_name" gorm:"column:field_name;size:255;not null"`
	Type       string `json:"type" gorm:"size:255;not null"`
	Required   bool   `json:"required" gorm:"not null;default:false"`
	NepaliText bool   `json:"nepali_text" gorm:"column:nepali_text;not null;default:false"`

	Options []FieldOption `json:"options,omitempty" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the table name used by the existing schema.
func (FormField) TableName() string { return "form_fields" }

// FieldOption is a selectable option owned by a single field.
type FieldOption struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	FieldID uint   `json:"field_id" gorm:"not null;index"`
	Value   string `json:"value" gorm:"column:opt_value;size:255;not null"`
	Label   string `json:"label" gorm:"column:opt_label;size:255;not null"`
}

// TableName keeps the table name used by the existing schema.
func (FieldOption) TableName() string { return "field_options" }
