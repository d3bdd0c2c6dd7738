package pmdeadlines

import "time"

// Urgency classifies how soon the claim notice has to be in the mail.
type Urgency string

const (
	UrgencySafe    Urgency = "safe"
	UrgencySoon    Urgency = "soon"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyOverdue Urgency = "overdue"
)

// Analysis is the property-manager view of one move-out's deadlines.
type Analysis struct {
	MoveOutDate           time.Time `json:"moveOutDate"`
	ReturnDeadline        time.Time `json:"returnDeadline"`
	ClaimDeadline         time.Time `json:"claimDeadline"`
	RecommendedMailByDate time.Time `json:"recommendedMailByDate"`
	DaysUntilReturn       int       `json:"daysUntilReturn"`
	DaysUntilClaim        int       `json:"daysUntilClaim"`
	DaysUntilMailBy       int       `json:"daysUntilMailBy"`
	Urgency               Urgency   `json:"urgency"`
	UrgencyLabel          string    `json:"urgencyLabel"`
	UrgencyDescription    string    `json:"urgencyDescription"`
}
