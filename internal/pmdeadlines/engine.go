// Package pmdeadlines computes the deadline calendar a property manager works
// against after a move-out: return deadline, claim deadline, and a mail-by
// date padded for postal transit.
package pmdeadlines

import (
	"fmt"
	"time"

	"depositready-backend/internal/dates"
	"depositready-backend/internal/jurisdictions"
)

// mailBufferBusinessDays pads the claim deadline for certified-mail transit.
const mailBufferBusinessDays = 5

// soonWindowDays is the days-to-claim-deadline threshold for "soon".
const soonWindowDays = 10

const displayDateLayout = "January 2, 2006"

// Calculate analyzes a move-out against today's date.
func Calculate(moveOut time.Time, rules jurisdictions.Rules) Analysis {
	return CalculateAt(moveOut, rules, time.Now())
}

// CalculateAt analyzes a move-out as of the given moment.
func CalculateAt(moveOut time.Time, rules jurisdictions.Rules, now time.Time) Analysis {
	moveOutDay := dates.StartOfDay(moveOut)
	today := dates.StartOfDay(now)

	returnDeadline := dates.AddDays(moveOutDay, rules.ReturnDeadlineDays)
	claimDeadline := dates.AddDays(moveOutDay, rules.ClaimDeadlineDays)
	mailBy := dates.SubtractBusinessDays(claimDeadline, mailBufferBusinessDays)

	a := Analysis{
		MoveOutDate:           moveOutDay,
		ReturnDeadline:        returnDeadline,
		ClaimDeadline:         claimDeadline,
		RecommendedMailByDate: mailBy,
		DaysUntilReturn:       dates.DaysBetween(today, returnDeadline),
		DaysUntilClaim:        dates.DaysBetween(today, claimDeadline),
		DaysUntilMailBy:       dates.DaysBetween(today, mailBy),
	}
	a.Urgency, a.UrgencyLabel, a.UrgencyDescription = classify(a)
	return a
}

// classify evaluates top to bottom; first match wins.
func classify(a Analysis) (Urgency, string, string) {
	switch {
	case a.DaysUntilClaim < 0:
		return UrgencyOverdue, "Deadline passed",
			fmt.Sprintf("The claim deadline was %s, %d day(s) ago. A deduction notice sent now is late; the deposit may be forfeit.",
				a.ClaimDeadline.Format(displayDateLayout), -a.DaysUntilClaim)
	case a.DaysUntilMailBy < 0:
		return UrgencyUrgent, "Mail immediately",
			fmt.Sprintf("The recommended mail-by date of %s has passed but the claim deadline of %s has not. Send the notice today.",
				a.RecommendedMailByDate.Format(displayDateLayout), a.ClaimDeadline.Format(displayDateLayout))
	case a.DaysUntilClaim <= soonWindowDays:
		return UrgencySoon, "Prepare now",
			fmt.Sprintf("%d day(s) until the claim deadline on %s. Mail the notice by %s.",
				a.DaysUntilClaim, a.ClaimDeadline.Format(displayDateLayout), a.RecommendedMailByDate.Format(displayDateLayout))
	default:
		return UrgencySafe, "On schedule",
			fmt.Sprintf("%d day(s) until the claim deadline on %s. Plan to mail the notice by %s.",
				a.DaysUntilClaim, a.ClaimDeadline.Format(displayDateLayout), a.RecommendedMailByDate.Format(displayDateLayout))
	}
}
