package model

// Consultation records a visit. SpeciesName and TreatmentName are
// display-only enrichment fields filled from the related rows; they are
// never written back to storage.
type Consultation struct {
	ID               int64   `db:"id" json:"id"`
	SpeciesID        int64   `db:"species_id" json:"speciesId"`
	TreatmentID      int64   `db:"treatment_id" json:"treatmentId"`
	PetName          string  `db:"pet_name" json:"petName"`
	OwnerName        string  `db:"owner_name" json:"ownerName"`
	ContactInfo      string  `db:"contact_info" json:"contactInfo"`
	Cost             float64 `db:"cost" json:"cost"`
	Description      string  `db:"description" json:"description"`
	TreatmentNotes   string  `db:"treatment_notes" json:"treatmentNotes"`
	Prescription     string  `db:"prescription" json:"prescription"`
	ConsultationDate Date    `db:"consultation_date" json:"consultationDate"`
	FollowUpDate     *Date   `db:"follow_up_date" json:"followUpDate,omitempty"`
	OwnerID          int64   `db:"owner_id" json:"-"`

	SpeciesName   string `db:"species_name" json:"speciesName,omitempty"`
	TreatmentName string `db:"treatment_name" json:"treatmentName,omitempty"`
}

type ConsultationRequest struct {
	ID               int64   `json:"id"`
	SpeciesID        int64   `json:"speciesId" validate:"required,gt=0"`
	TreatmentID      int64   `json:"treatmentId" validate:"required,gt=0"`
	PetName          string  `json:"petName" validate:"required,max=100"`
	OwnerName        string  `json:"ownerName" validate:"required,max=100"`
	ContactInfo      string  `json:"contactInfo" validate:"required,max=200"`
	Cost             float64 `json:"cost" validate:"gte=0"`
	Description      string  `json:"description" validate:"required,max=2000"`
	TreatmentNotes   string  `json:"treatmentNotes" validate:"max=2000"`
	Prescription     string  `json:"prescription" validate:"max=2000"`
	ConsultationDate Date    `json:"consultationDate" validate:"required"`
	FollowUpDate     *Date   `json:"followUpDate"`
}

type ConsultationFilter struct {
	Search      string `form:"search"`
	SpeciesID   int64  `form:"speciesId"`
	TreatmentID int64  `form:"treatmentId"`
	DateFrom    *Date  `form:"dateFrom"`
	DateTo      *Date  `form:"dateTo"`
}
