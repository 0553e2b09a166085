package domain

// AccountingPeriod is a bounded reporting interval belonging to a client.
// Once completed, the period and its child section tree are frozen against
// further edits.
type AccountingPeriod struct {
	PeriodID     string `json:"periodID" db:"period_id"`
	ClientID     string `json:"clientID" db:"client_id"` // FK -> clients.client_id (restrict)
	PeriodLabel  string `json:"periodLabel" db:"period_label"`
	PeriodEnding string `json:"periodEnding" db:"period_ending"`
	Completed    bool   `json:"completed" db:"completed"`
	AuditFields
}
