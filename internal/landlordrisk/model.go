package landlordrisk

import (
	"time"

	"depositready-backend/internal/jurisdictions"
)

// RiskLevel is the traffic-light assessment of a landlord's exposure.
type RiskLevel string

const (
	RiskGreen  RiskLevel = "green"
	RiskYellow RiskLevel = "yellow"
	RiskRed    RiskLevel = "red"
)

// Input carries the facts a landlord supplies after receiving a demand letter.
type Input struct {
	StateCode        string
	DemandLetterDate time.Time
	DepositReturned  bool
	ItemizedListSent bool
	DepositAmount    *float64
}

// Assessment is the landlord-side mirror of a tenant diagnosis.
//
// DaysRemaining is clamped to zero for display; IsOverdue carries the fact
// that the true signed count went negative.
type Assessment struct {
	ResponseDeadline    time.Time           `json:"responseDeadline"`
	DaysRemaining       int                 `json:"daysRemaining"`
	IsOverdue           bool                `json:"isOverdue"`
	RiskLevel           RiskLevel           `json:"riskLevel"`
	RiskLabel           string              `json:"riskLabel"`
	ExposureAmount      float64             `json:"exposureAmount"`
	ExposureMultiplier  float64             `json:"exposureMultiplier"`
	ExposureDescription string              `json:"exposureDescription"`
	Violations          []string            `json:"violations"`
	Recommendations     []string            `json:"recommendations"`
	StateRules          jurisdictions.Rules `json:"stateRules"`
}
