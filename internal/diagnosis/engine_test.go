package diagnosis

import (
	"errors"
	"testing"
	"time"

	"depositready-backend/internal/jurisdictions"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64    { return &v }
func datePtr(t time.Time) *time.Time { return &t }

// FL: 30-day claim deadline, multiplier 1.
func flInput() Input {
	return Input{
		StateCode:      "FL",
		MoveOutDate:    date(2024, time.January, 1),
		ReceivedNotice: NoticeReceivedNo,
		TotalDeposit:   1500,
	}
}

func TestDiagnoseUnknownState(t *testing.T) {
	in := flInput()
	in.StateCode = "XX"
	if _, err := DiagnoseAt(in, date(2024, time.February, 1)); !errors.Is(err, jurisdictions.ErrUnknownJurisdiction) {
		t.Fatalf("expected ErrUnknownJurisdiction, got %v", err)
	}
}

func TestDiagnoseNoticeMissed(t *testing.T) {
	// Move-out 2024-01-01, 30-day deadline, evaluated 45 days later.
	res, err := DiagnoseAt(flInput(), date(2024, time.February, 15))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if res.NoticeStatus != NoticeMissed {
		t.Fatalf("status = %s, want notice_missed", res.NoticeStatus)
	}
	if res.CaseStrength != StrengthStrong {
		t.Fatalf("strength = %s, want strong", res.CaseStrength)
	}
	if res.DaysLate == nil || *res.DaysLate != 15 {
		t.Fatalf("daysLate = %v, want 15", res.DaysLate)
	}
	if res.DaysRemaining != nil {
		t.Fatalf("daysRemaining must be nil when daysLate is set")
	}
	if !res.DeadlineDate.Equal(date(2024, time.January, 31)) {
		t.Fatalf("deadline = %v", res.DeadlineDate)
	}
}

func TestDiagnoseNoticePending(t *testing.T) {
	res, err := DiagnoseAt(flInput(), date(2024, time.January, 21))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if res.NoticeStatus != NoticePending {
		t.Fatalf("status = %s, want notice_pending", res.NoticeStatus)
	}
	if res.CaseStrength != StrengthModerate {
		t.Fatalf("strength = %s, want moderate", res.CaseStrength)
	}
	if res.DaysRemaining == nil || *res.DaysRemaining != 10 {
		t.Fatalf("daysRemaining = %v, want 10", res.DaysRemaining)
	}
	if res.DaysLate != nil {
		t.Fatal("daysLate must be nil for pending")
	}
}

func TestDiagnoseNoticeTimely(t *testing.T) {
	in := flInput()
	in.ReceivedNotice = NoticeReceivedYes
	in.NoticeSentDate = datePtr(date(2024, time.January, 20))
	in.AmountWithheld = floatPtr(400)

	res, err := DiagnoseAt(in, date(2024, time.February, 15))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if res.NoticeStatus != NoticeTimely {
		t.Fatalf("status = %s, want notice_timely", res.NoticeStatus)
	}
	if res.CaseStrength != StrengthWeak {
		t.Fatalf("strength = %s, want weak", res.CaseStrength)
	}
	if res.RecoveryBasis != BasisWithheldOnly {
		t.Fatalf("basis = %s, want withheld_only", res.RecoveryBasis)
	}
	if res.RecoveryEstimate != 400 {
		t.Fatalf("estimate = %v, want withheld amount 400", res.RecoveryEstimate)
	}
	if res.MaxRecovery != nil {
		t.Fatal("maxRecovery must be nil for withheld_only")
	}
}

func TestDiagnoseNoticeTimelyWithoutWithheldDefaultsToDeposit(t *testing.T) {
	in := flInput()
	in.ReceivedNotice = NoticeReceivedYes
	in.NoticeSentDate = datePtr(date(2024, time.January, 20))

	res, err := DiagnoseAt(in, date(2024, time.February, 15))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if res.RecoveryEstimate != in.TotalDeposit {
		t.Fatalf("estimate = %v, want totalDeposit %v", res.RecoveryEstimate, in.TotalDeposit)
	}
}

func TestDiagnoseNoticeTimelyOnDeadlineDay(t *testing.T) {
	in := flInput()
	in.ReceivedNotice = NoticeReceivedYes
	in.NoticeSentDate = datePtr(date(2024, time.January, 31))

	res, err := DiagnoseAt(in, date(2024, time.February, 15))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if res.NoticeStatus != NoticeTimely {
		t.Fatalf("notice on the deadline day is timely, got %s", res.NoticeStatus)
	}
}

func TestDiagnoseNoticeLate(t *testing.T) {
	cases := []struct {
		name     string
		notice   time.Time
		daysLate int
		strength CaseStrength
	}{
		{"late within grace", date(2024, time.February, 5), 5, StrengthModerate},
		{"late exactly seven days", date(2024, time.February, 7), 7, StrengthModerate},
		{"late beyond grace", date(2024, time.February, 8), 8, StrengthStrong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := flInput()
			in.ReceivedNotice = NoticeReceivedYes
			in.NoticeSentDate = datePtr(tc.notice)

			res, err := DiagnoseAt(in, date(2024, time.March, 1))
			if err != nil {
				t.Fatalf("diagnose: %v", err)
			}
			if res.NoticeStatus != NoticeLate {
				t.Fatalf("status = %s, want notice_late", res.NoticeStatus)
			}
			if res.DaysLate == nil || *res.DaysLate != tc.daysLate {
				t.Fatalf("daysLate = %v, want %d", res.DaysLate, tc.daysLate)
			}
			if res.CaseStrength != tc.strength {
				t.Fatalf("strength = %s, want %s", res.CaseStrength, tc.strength)
			}
		})
	}
}

func TestDiagnoseNoticeUnclear(t *testing.T) {
	t.Run("not sure before deadline", func(t *testing.T) {
		in := flInput()
		in.ReceivedNotice = NoticeReceivedNotSure

		res, err := DiagnoseAt(in, date(2024, time.January, 25))
		if err != nil {
			t.Fatalf("diagnose: %v", err)
		}
		if res.NoticeStatus != NoticeUnclear {
			t.Fatalf("status = %s, want notice_unclear", res.NoticeStatus)
		}
		if res.CaseStrength != StrengthModerate {
			t.Fatalf("strength = %s, want moderate", res.CaseStrength)
		}
		if res.DaysRemaining == nil || *res.DaysRemaining != 6 {
			t.Fatalf("daysRemaining = %v, want 6", res.DaysRemaining)
		}
	})

	t.Run("not sure after deadline has no day counts", func(t *testing.T) {
		in := flInput()
		in.ReceivedNotice = NoticeReceivedNotSure

		res, err := DiagnoseAt(in, date(2024, time.March, 1))
		if err != nil {
			t.Fatalf("diagnose: %v", err)
		}
		if res.NoticeStatus != NoticeUnclear {
			t.Fatalf("status = %s, want notice_unclear", res.NoticeStatus)
		}
		if res.DaysRemaining != nil || res.DaysLate != nil {
			t.Fatalf("expected no day counts, got remaining=%v late=%v", res.DaysRemaining, res.DaysLate)
		}
	})

	t.Run("yes without a date falls back to unclear", func(t *testing.T) {
		in := flInput()
		in.ReceivedNotice = NoticeReceivedYes
		in.NoticeSentDate = nil

		res, err := DiagnoseAt(in, date(2024, time.January, 25))
		if err != nil {
			t.Fatalf("diagnose: %v", err)
		}
		if res.NoticeStatus != NoticeUnclear {
			t.Fatalf("status = %s, want notice_unclear", res.NoticeStatus)
		}
	})
}

func TestDiagnoseForfeitureRecoveryIgnoresWithheld(t *testing.T) {
	in := Input{
		StateCode:      "TX", // multiplier 3
		MoveOutDate:    date(2024, time.January, 1),
		ReceivedNotice: NoticeReceivedNo,
		TotalDeposit:   2000,
		AmountWithheld: floatPtr(500),
	}

	res, err := DiagnoseAt(in, date(2024, time.March, 15))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if res.RecoveryBasis != BasisForfeiture {
		t.Fatalf("basis = %s, want forfeiture", res.RecoveryBasis)
	}
	if res.RecoveryEstimate != 2000 {
		t.Fatalf("forfeiture estimate = %v, must equal the full deposit", res.RecoveryEstimate)
	}
	if res.MaxRecovery == nil || *res.MaxRecovery != 6000 {
		t.Fatalf("maxRecovery = %v, want 6000", res.MaxRecovery)
	}
}

func TestDiagnoseNoMaxRecoveryWithoutMultiplier(t *testing.T) {
	// FL multiplier is 1; no statutory maximum applies.
	res, err := DiagnoseAt(flInput(), date(2024, time.March, 15))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if res.MaxRecovery != nil {
		t.Fatalf("maxRecovery = %v, want nil for multiplier 1", *res.MaxRecovery)
	}
}

func TestDiagnoseROIMultiple(t *testing.T) {
	in := flInput()
	in.TotalDeposit = 1500

	res, err := DiagnoseAt(in, date(2024, time.March, 15))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	// 1500 / 79 = 18.987..., rounded to one decimal.
	if res.ROIMultiple != 19.0 {
		t.Fatalf("roiMultiple = %v, want 19.0", res.ROIMultiple)
	}
}

func TestDiagnoseTimelineOrderAndMarkers(t *testing.T) {
	in := flInput()
	in.ReceivedNotice = NoticeReceivedYes
	in.NoticeSentDate = datePtr(date(2024, time.February, 10))

	res, err := DiagnoseAt(in, date(2024, time.February, 20))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if len(res.Timeline) != 4 {
		t.Fatalf("timeline has %d events, want 4", len(res.Timeline))
	}
	for i := 1; i < len(res.Timeline); i++ {
		if res.Timeline[i].Date.Before(res.Timeline[i-1].Date) {
			t.Fatalf("timeline out of order at %d: %v before %v", i, res.Timeline[i].Date, res.Timeline[i-1].Date)
		}
	}

	byLabel := map[string]TimelineEvent{}
	for _, ev := range res.Timeline {
		byLabel[ev.Label] = ev
	}
	if byLabel["Deadline"].Type != EventViolation {
		t.Fatalf("deadline event type = %s, want violation once passed", byLabel["Deadline"].Type)
	}
	if byLabel["Notice sent"].Type != EventViolation {
		t.Fatalf("late notice event type = %s, want violation", byLabel["Notice sent"].Type)
	}
	if byLabel["Move-out"].Type != EventNeutral || byLabel["Today"].Type != EventNeutral {
		t.Fatal("move-out and today must be neutral")
	}
}

func TestDiagnoseTimelineCompliantNotice(t *testing.T) {
	in := flInput()
	in.ReceivedNotice = NoticeReceivedYes
	in.NoticeSentDate = datePtr(date(2024, time.January, 20))

	res, err := DiagnoseAt(in, date(2024, time.January, 25))
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	for _, ev := range res.Timeline {
		if ev.Label == "Notice sent" && ev.Type != EventCompliant {
			t.Fatalf("timely notice event type = %s, want compliant", ev.Type)
		}
		if ev.Label == "Deadline" && ev.Type != EventNeutral {
			t.Fatalf("future deadline event type = %s, want neutral", ev.Type)
		}
	}
}

func TestDiagnoseDayCountsMutuallyExclusive(t *testing.T) {
	notices := []NoticeReceived{NoticeReceivedYes, NoticeReceivedNo, NoticeReceivedNotSure}
	noticeDates := []*time.Time{nil, datePtr(date(2024, time.January, 20)), datePtr(date(2024, time.February, 20))}
	evaluations := []time.Time{date(2024, time.January, 15), date(2024, time.January, 31), date(2024, time.March, 1)}

	for _, notice := range notices {
		for _, nd := range noticeDates {
			for _, today := range evaluations {
				in := flInput()
				in.ReceivedNotice = notice
				in.NoticeSentDate = nd

				res, err := DiagnoseAt(in, today)
				if err != nil {
					t.Fatalf("diagnose: %v", err)
				}
				if res.DaysLate != nil && res.DaysRemaining != nil {
					t.Fatalf("daysLate and daysRemaining both set for notice=%s date=%v today=%v", notice, nd, today)
				}
			}
		}
	}
}
