package domain

// SectionBreakdown is a line-item grouping within an accounts section.
type SectionBreakdown struct {
	BreakdownID string  `json:"breakdownID" db:"breakdown_id"`
	SectionID   string  `json:"sectionID" db:"section_id"` // FK -> accounts_sections.section_id (restrict)
	Name        string  `json:"name" db:"name"`
	Amount      int64   `json:"amount" db:"amount"` // Minor currency units
	Description *string `json:"description,omitempty" db:"description"`
	AuditFields
}
