package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func pgTestRecord(t *testing.T) Record {
	t.Helper()
	withheld := 350.0
	notice := date(2024, time.February, 10)
	return Record{
		ID:             "11111111-2222-3333-4444-555555555555",
		StateCode:      "FL",
		MoveOutDate:    date(2024, time.January, 1),
		ReceivedNotice: NoticeReceivedYes,
		NoticeSentDate: &notice,
		TotalDeposit:   1500.50,
		AmountWithheld: &withheld,
		Result: Result{
			NoticeStatus:     NoticeLate,
			CaseStrength:     StrengthStrong,
			RecoveryBasis:    BasisForfeiture,
			RecoveryEstimate: 1500.50,
			DeadlineDate:     date(2024, time.January, 31),
		},
		CreatedAt: date(2024, time.February, 20),
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	record := pgTestRecord(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO diagnoses")).
		WithArgs(
			record.ID,
			record.StateCode,
			record.MoveOutDate,
			string(record.ReceivedNotice),
			sqlmock.AnyArg(),
			int64(150050),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	record := pgTestRecord(t)
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "state_code", "move_out_date", "received_notice", "notice_sent_date",
		"total_deposit_cents", "amount_withheld_cents", "result", "created_at",
	}).AddRow(
		record.ID, record.StateCode, record.MoveOutDate, string(record.ReceivedNotice),
		*record.NoticeSentDate, int64(150050), int64(35000), resultJSON, record.CreatedAt,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM diagnoses WHERE id = $1")).
		WithArgs(record.ID).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalDeposit != 1500.50 {
		t.Fatalf("totalDeposit = %v, want 1500.50", got.TotalDeposit)
	}
	if got.AmountWithheld == nil || *got.AmountWithheld != 350 {
		t.Fatalf("amountWithheld = %v, want 350", got.AmountWithheld)
	}
	if got.Result.NoticeStatus != NoticeLate {
		t.Fatalf("result status = %s, want notice_late", got.Result.NoticeStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM diagnoses WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	record := pgTestRecord(t)
	resultJSON, _ := json.Marshal(record.Result)
	rows := sqlmock.NewRows([]string{
		"id", "state_code", "move_out_date", "received_notice", "notice_sent_date",
		"total_deposit_cents", "amount_withheld_cents", "result", "created_at",
	}).AddRow(
		record.ID, record.StateCode, record.MoveOutDate, string(record.ReceivedNotice),
		nil, int64(150050), nil, resultJSON, record.CreatedAt,
	)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $1")).
		WithArgs(5).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].NoticeSentDate != nil || got[0].AmountWithheld != nil {
		t.Fatal("null columns should map to nil pointers")
	}
}
