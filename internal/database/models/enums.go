package models

// LeaveKind distinguishes annual leave from public holiday credit
type LeaveKind string

const (
	LeaveKindAnnual        LeaveKind = "annual"
	LeaveKindPublicHoliday LeaveKind = "public_holiday"
)

// IsValid checks if the LeaveKind is valid
func (k LeaveKind) IsValid() bool {
	switch k {
	case LeaveKindAnnual, LeaveKindPublicHoliday:
		return true
	}
	return false
}
