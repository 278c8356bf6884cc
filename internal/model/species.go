package model

// Species is an animal species registered by a clinic user. Deleting a
// species still referenced by a consultation is blocked.
type Species struct {
	ID               int64  `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	Description      string `db:"description" json:"description"`
	IsActive         bool   `db:"is_active" json:"isActive"`
	CommonIssues     string `db:"common_issues" json:"commonIssues"`
	CareInstructions string `db:"care_instructions" json:"careInstructions"`
	CreatedDate      Date   `db:"created_date" json:"createdDate"`
	OwnerID          int64  `db:"owner_id" json:"-"`
}

type SpeciesRequest struct {
	ID               int64  `json:"id"`
	Name             string `json:"name" validate:"required,max=100"`
	Description      string `json:"description" validate:"required,max=500"`
	IsActive         bool   `json:"isActive"`
	CommonIssues     string `json:"commonIssues" validate:"max=2000"`
	CareInstructions string `json:"careInstructions" validate:"max=2000"`
}

type SpeciesFilter struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"activeOnly"`
	DateFrom   *Date  `form:"dateFrom"`
	DateTo     *Date  `form:"dateTo"`
}
