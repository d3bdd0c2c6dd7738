package diagnosis

import (
	"time"

	"depositready-backend/internal/jurisdictions"
)

// NoticeReceived is the tenant's answer to "did you receive a deduction notice?".
type NoticeReceived string

const (
	NoticeReceivedYes     NoticeReceived = "yes"
	NoticeReceivedNo      NoticeReceived = "no"
	NoticeReceivedNotSure NoticeReceived = "not_sure"
)

// NoticeStatus classifies the landlord's notice compliance. Each diagnosis
// produces exactly one terminal status.
type NoticeStatus string

const (
	NoticeMissed  NoticeStatus = "notice_missed"
	NoticePending NoticeStatus = "notice_pending"
	NoticeLate    NoticeStatus = "notice_late"
	NoticeTimely  NoticeStatus = "notice_timely"
	NoticeUnclear NoticeStatus = "notice_unclear"
)

// CaseStrength grades how favorable the tenant's position is.
type CaseStrength string

const (
	StrengthWeak     CaseStrength = "weak"
	StrengthModerate CaseStrength = "moderate"
	StrengthStrong   CaseStrength = "strong"
)

// RecoveryBasis names the legal theory behind the recovery estimate.
type RecoveryBasis string

const (
	BasisForfeiture   RecoveryBasis = "forfeiture"
	BasisWithheldOnly RecoveryBasis = "withheld_only"
)

// EventType colors a timeline event for display.
type EventType string

const (
	EventNeutral   EventType = "neutral"
	EventViolation EventType = "violation"
	EventCompliant EventType = "compliant"
)

// Input carries the facts a tenant supplies for a diagnosis.
type Input struct {
	StateCode      string
	MoveOutDate    time.Time
	ReceivedNotice NoticeReceived
	NoticeSentDate *time.Time
	TotalDeposit   float64
	AmountWithheld *float64
}

// TimelineEvent is one dated entry in the chronological case timeline.
type TimelineEvent struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Type  EventType `json:"type"`
}

// Result is the full outcome of a tenant diagnosis. DaysLate and
// DaysRemaining are mutually exclusive; at most one is non-nil.
type Result struct {
	NoticeStatus     NoticeStatus        `json:"noticeStatus"`
	CaseStrength     CaseStrength        `json:"caseStrength"`
	DaysLate         *int                `json:"daysLate"`
	DaysRemaining    *int                `json:"daysRemaining"`
	RecoveryEstimate float64             `json:"recoveryEstimate"`
	MaxRecovery      *float64            `json:"maxRecovery"`
	RecoveryBasis    RecoveryBasis       `json:"recoveryBasis"`
	DeadlineDate     time.Time           `json:"deadlineDate"`
	StateRules       jurisdictions.Rules `json:"stateRules"`
	Timeline         []TimelineEvent     `json:"timeline"`
	ROIMultiple      float64             `json:"roiMultiple"`
}

// Record is a stored diagnosis: the input facts plus the computed result.
type Record struct {
	ID             string         `json:"id"`
	StateCode      string         `json:"stateCode"`
	MoveOutDate    time.Time      `json:"moveOutDate"`
	ReceivedNotice NoticeReceived `json:"receivedNotice"`
	NoticeSentDate *time.Time     `json:"noticeSentDate,omitempty"`
	TotalDeposit   float64        `json:"totalDeposit"`
	AmountWithheld *float64       `json:"amountWithheld,omitempty"`
	Result         Result         `json:"result"`
	CreatedAt      time.Time      `json:"createdAt"`
}
