package model

// DashboardStats holds the per-owner totals of each collection.
type DashboardStats struct {
	TotalSpecies       int64 `db:"total_species" json:"totalSpecies"`
	TotalTreatments    int64 `db:"total_treatments" json:"totalTreatments"`
	TotalConsultations int64 `db:"total_consultations" json:"totalConsultations"`
	TotalHealthPlans   int64 `db:"total_health_plans" json:"totalHealthPlans"`
}
