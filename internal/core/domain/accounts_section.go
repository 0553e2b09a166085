package domain

// AccountsSection is a named category of financial activity within an
// accounting period (e.g. fixed assets). Amount is an integer in the
// smallest currency unit; no floating-point currency arithmetic anywhere.
type AccountsSection struct {
	SectionID string `json:"sectionID" db:"section_id"`
	PeriodID  string `json:"periodID" db:"period_id"` // FK -> accounting_periods.period_id (restrict)
	Name      string `json:"name" db:"name"`
	Category  string `json:"category" db:"category"`
	Amount    int64  `json:"amount" db:"amount"` // Minor currency units
	Completed bool   `json:"completed" db:"completed"`
	AuditFields
}
