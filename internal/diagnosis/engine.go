// Package diagnosis implements the tenant-side deadline diagnosis engine:
// given move-out and notice facts it classifies the landlord's compliance,
// grades case strength, and estimates the recoverable amount.
package diagnosis

import (
	"math"
	"sort"
	"time"

	"depositready-backend/internal/dates"
	"depositready-backend/internal/jurisdictions"
)

// referencePriceUSD is the product price the ROI multiple is framed against.
const referencePriceUSD = 79

// lateGraceDays separates a moderately late notice from a strongly late one.
const lateGraceDays = 7

// Diagnose evaluates the input against today's date.
func Diagnose(in Input) (Result, error) {
	return DiagnoseAt(in, time.Now())
}

// DiagnoseAt evaluates the input as of the given moment. It is a pure
// function of its arguments and the jurisdiction registry; it performs no
// I/O and never logs.
func DiagnoseAt(in Input, now time.Time) (Result, error) {
	rules, err := jurisdictions.GetByCode(in.StateCode)
	if err != nil {
		return Result{}, err
	}

	moveOut := dates.StartOfDay(in.MoveOutDate)
	today := dates.StartOfDay(now)
	deadline := dates.AddDays(moveOut, rules.ClaimDeadlineDays)
	deadlinePassed := today.After(deadline)

	var noticeDate *time.Time
	if in.NoticeSentDate != nil {
		d := dates.StartOfDay(*in.NoticeSentDate)
		noticeDate = &d
	}

	res := Result{
		DeadlineDate: deadline,
		StateRules:   rules,
	}

	switch {
	case in.ReceivedNotice == NoticeReceivedNo && deadlinePassed:
		res.NoticeStatus = NoticeMissed
		res.CaseStrength = StrengthStrong
		res.DaysLate = intPtr(dates.DaysBetween(deadline, today))

	case in.ReceivedNotice == NoticeReceivedNo:
		res.NoticeStatus = NoticePending
		res.CaseStrength = StrengthModerate
		res.DaysRemaining = intPtr(dates.DaysBetween(today, deadline))

	case in.ReceivedNotice == NoticeReceivedYes && noticeDate != nil && noticeDate.After(deadline):
		res.NoticeStatus = NoticeLate
		late := dates.DaysBetween(deadline, *noticeDate)
		res.DaysLate = &late
		if late > lateGraceDays {
			res.CaseStrength = StrengthStrong
		} else {
			res.CaseStrength = StrengthModerate
		}

	case in.ReceivedNotice == NoticeReceivedYes && noticeDate != nil:
		res.NoticeStatus = NoticeTimely
		res.CaseStrength = StrengthWeak

	default:
		// "Not sure", or "yes" with no date: treated identically.
		res.NoticeStatus = NoticeUnclear
		res.CaseStrength = StrengthModerate
		if !deadlinePassed {
			res.DaysRemaining = intPtr(dates.DaysBetween(today, deadline))
		}
	}

	applyRecovery(&res, in, rules)
	res.Timeline = buildTimeline(moveOut, deadline, noticeDate, today)
	res.ROIMultiple = roundToTenth(res.RecoveryEstimate / referencePriceUSD)

	return res, nil
}

// applyRecovery sets the estimate, basis, and statutory maximum. A timely
// notice limits the claim to the withheld amount; every other status voids
// the landlord's right to withhold, so the full deposit is in play.
func applyRecovery(res *Result, in Input, rules jurisdictions.Rules) {
	if res.NoticeStatus == NoticeTimely {
		res.RecoveryBasis = BasisWithheldOnly
		if in.AmountWithheld != nil {
			res.RecoveryEstimate = *in.AmountWithheld
		} else {
			res.RecoveryEstimate = in.TotalDeposit
		}
		return
	}

	res.RecoveryBasis = BasisForfeiture
	res.RecoveryEstimate = in.TotalDeposit
	if rules.DamagesMultiplier > 1 {
		max := in.TotalDeposit * rules.DamagesMultiplier
		res.MaxRecovery = &max
	}
}

func buildTimeline(moveOut, deadline time.Time, noticeDate *time.Time, today time.Time) []TimelineEvent {
	deadlineType := EventNeutral
	if today.After(deadline) {
		deadlineType = EventViolation
	}

	events := []TimelineEvent{
		{Date: moveOut, Label: "Move-out", Type: EventNeutral},
		{Date: deadline, Label: "Deadline", Type: deadlineType},
	}
	if noticeDate != nil {
		noticeType := EventCompliant
		if noticeDate.After(deadline) {
			noticeType = EventViolation
		}
		events = append(events, TimelineEvent{Date: *noticeDate, Label: "Notice sent", Type: noticeType})
	}
	events = append(events, TimelineEvent{Date: today, Label: "Today", Type: EventNeutral})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func intPtr(v int) *int {
	return &v
}
