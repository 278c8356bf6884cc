package model

// Treatment is a procedure offered by the clinic. Referenced by
// consultations and health plans, both of which block deletion.
type Treatment struct {
	ID                   int64   `db:"id" json:"id"`
	Name                 string  `db:"name" json:"name"`
	Description          string  `db:"description" json:"description"`
	DefaultCost          float64 `db:"default_cost" json:"defaultCost"`
	MedicalRequirements  *string `db:"medical_requirements" json:"medicalRequirements,omitempty"`
	PostTreatmentCare    *string `db:"post_treatment_care" json:"postTreatmentCare,omitempty"`
	TypicalMedication    *string `db:"typical_medication" json:"typicalMedication,omitempty"`
	EstimatedTimeMinutes int     `db:"estimated_time_minutes" json:"estimatedTimeMinutes"`
	IconName             *string `db:"icon_name" json:"iconName,omitempty"`
	ColorCode            *string `db:"color_code" json:"colorCode,omitempty"`
	IsActive             bool    `db:"is_active" json:"isActive"`
	CreatedDate          Date    `db:"created_date" json:"createdDate"`
	OwnerID              int64   `db:"owner_id" json:"-"`
}

type TreatmentRequest struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name" validate:"required,max=100"`
	Description          string  `json:"description" validate:"required,max=1000"`
	DefaultCost          float64 `json:"defaultCost" validate:"gte=0"`
	MedicalRequirements  *string `json:"medicalRequirements" validate:"omitempty,max=1000"`
	PostTreatmentCare    *string `json:"postTreatmentCare" validate:"omitempty,max=1000"`
	TypicalMedication    *string `json:"typicalMedication" validate:"omitempty,max=1000"`
	EstimatedTimeMinutes int     `json:"estimatedTimeMinutes" validate:"gt=0"`
	IconName             *string `json:"iconName" validate:"omitempty,max=50"`
	ColorCode            *string `json:"colorCode" validate:"omitempty,max=20"`
	IsActive             bool    `json:"isActive"`
}

type TreatmentFilter struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"activeOnly"`
	DateFrom   *Date  `form:"dateFrom"`
	DateTo     *Date  `form:"dateTo"`
}
