// Package landlordrisk assesses a landlord's legal exposure after a tenant's
// demand letter: response deadline, traffic-light risk level, monetary
// exposure, and what to do about it.
package landlordrisk

import (
	"fmt"
	"time"

	"depositready-backend/internal/dates"
	"depositready-backend/internal/jurisdictions"
)

// defaultDepositUSD stands in when the landlord doesn't supply an amount.
const defaultDepositUSD = 2000

// yellowWindowDays is the days-remaining threshold below which an otherwise
// clean case turns yellow.
const yellowWindowDays = 7

var riskLabels = map[RiskLevel]string{
	RiskGreen:  "On track",
	RiskYellow: "Needs attention",
	RiskRed:    "High risk",
}

var recommendations = map[RiskLevel][]string{
	RiskGreen: {
		"Return the deposit or send the itemized deduction notice before the deadline.",
		"Keep proof of mailing and dated photos of the unit's condition.",
		"Respond to the tenant in writing to create a paper trail.",
	},
	RiskYellow: {
		"Act this week: the response window is closing.",
		"Send any itemized deduction notice by certified mail today.",
		"Gather receipts and documentation for every claimed deduction.",
	},
	RiskRed: {
		"Consult an attorney before responding; statutory penalties may already apply.",
		"Return the undisputed portion of the deposit immediately.",
		"Do not ignore the demand letter; missed deadlines compound exposure.",
	},
}

const yellowComplianceGapLine = "Address the compliance gaps above before the deadline passes."

// Calculate assesses the input against today's date.
func Calculate(in Input) (Assessment, error) {
	return CalculateAt(in, time.Now())
}

// CalculateAt assesses the input as of the given moment. Pure function; no
// side effects beyond the registry lookup.
func CalculateAt(in Input, now time.Time) (Assessment, error) {
	rules, err := jurisdictions.GetByCode(in.StateCode)
	if err != nil {
		return Assessment{}, err
	}

	depositAmount := float64(defaultDepositUSD)
	if in.DepositAmount != nil {
		depositAmount = *in.DepositAmount
	}

	demandDate := dates.StartOfDay(in.DemandLetterDate)
	today := dates.StartOfDay(now)
	deadline := dates.AddDays(demandDate, rules.ClaimDeadlineDays)

	// signedDaysRemaining drives the risk logic; the reported field is
	// clamped to zero for display.
	signedDaysRemaining := dates.DaysBetween(today, deadline)
	isOverdue := signedDaysRemaining < 0

	violations := detectViolations(in, rules)
	level := riskLevel(signedDaysRemaining, len(violations))

	multiplier := 1.0
	description := "Deposit refund only"
	if len(violations) > 0 {
		multiplier = rules.DamagesMultiplier
		description = rules.DamagesDescription
	}

	recs := append([]string(nil), recommendations[level]...)
	if level == RiskYellow && len(violations) > 0 {
		recs = append(recs, yellowComplianceGapLine)
	}

	clamped := signedDaysRemaining
	if clamped < 0 {
		clamped = 0
	}

	return Assessment{
		ResponseDeadline:    deadline,
		DaysRemaining:       clamped,
		IsOverdue:           isOverdue,
		RiskLevel:           level,
		RiskLabel:           riskLabels[level],
		ExposureAmount:      depositAmount * multiplier,
		ExposureMultiplier:  multiplier,
		ExposureDescription: description,
		Violations:          violations,
		Recommendations:     recs,
		StateRules:          rules,
	}, nil
}

// detectViolations returns the ordered, non-exclusive list of statutory
// violations apparent from the input.
func detectViolations(in Input, rules jurisdictions.Rules) []string {
	var violations []string
	if !in.DepositReturned {
		violations = append(violations, fmt.Sprintf(
			"Deposit not returned within the %d-day statutory deadline", rules.ReturnDeadlineDays))
	}
	if rules.ItemizedDeductionsRequired && !in.ItemizedListSent {
		violations = append(violations, fmt.Sprintf(
			"No itemized deduction statement sent as required by %s", rules.StatuteTitle))
	}
	return violations
}

// riskLevel evaluates top to bottom; first match wins.
func riskLevel(signedDaysRemaining, violationCount int) RiskLevel {
	switch {
	case signedDaysRemaining <= 0 || violationCount >= 2:
		return RiskRed
	case signedDaysRemaining <= yellowWindowDays || violationCount == 1:
		return RiskYellow
	default:
		return RiskGreen
	}
}
