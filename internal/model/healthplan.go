package model

// HealthPlan is a coverage plan built around a treatment. TreatmentName is
// a display-only enrichment field.
type HealthPlan struct {
	ID                  int64   `db:"id" json:"id"`
	Name                string  `db:"name" json:"name"`
	TreatmentID         int64   `db:"treatment_id" json:"treatmentId"`
	Description         string  `db:"description" json:"description"`
	Cost                float64 `db:"cost" json:"cost"`
	DurationMonths      int     `db:"duration_months" json:"durationMonths"`
	VisitsIncluded      int     `db:"visits_included" json:"visitsIncluded"`
	IncludesEmergencies bool    `db:"includes_emergencies" json:"includesEmergencies"`
	DiscountPercentage  float64 `db:"discount_percentage" json:"discountPercentage"`
	CoverageDetails     string  `db:"coverage_details" json:"coverageDetails"`
	StartDate           Date    `db:"start_date" json:"startDate"`
	EndDate             Date    `db:"end_date" json:"endDate"`
	IsActive            bool    `db:"is_active" json:"isActive"`
	OwnerID             int64   `db:"owner_id" json:"-"`

	TreatmentName string `db:"treatment_name" json:"treatmentName,omitempty"`
}

type HealthPlanRequest struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name" validate:"required,max=100"`
	TreatmentID         int64   `json:"treatmentId" validate:"required,gt=0"`
	Description         string  `json:"description" validate:"max=1000"`
	Cost                float64 `json:"cost" validate:"gte=0"`
	DurationMonths      int     `json:"durationMonths" validate:"min=1,max=120"`
	VisitsIncluded      int     `json:"visitsIncluded" validate:"min=0,max=100"`
	IncludesEmergencies bool    `json:"includesEmergencies"`
	DiscountPercentage  float64 `json:"discountPercentage" validate:"gte=0,lte=100"`
	CoverageDetails     string  `json:"coverageDetails" validate:"max=2000"`
	StartDate           Date    `json:"startDate" validate:"required"`
	EndDate             Date    `json:"endDate" validate:"required"`
	IsActive            bool    `json:"isActive"`
}

type HealthPlanFilter struct {
	Search      string `form:"search"`
	ActiveOnly  bool   `form:"activeOnly"`
	TreatmentID int64  `form:"treatmentId"`
	DateFrom    *Date  `form:"dateFrom"`
	DateTo      *Date  `form:"dateTo"`
}
