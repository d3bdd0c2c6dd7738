package diagnosis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
)

// PGRepo implements Repo using Postgres. Currency amounts are stored as
// integer cents; the computed result is stored as jsonb.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a diagnosis record.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return err
	}

	var noticeSent sql.NullTime
	if record.NoticeSentDate != nil {
		noticeSent = sql.NullTime{Time: *record.NoticeSentDate, Valid: true}
	}
	var withheld sql.NullInt64
	if record.AmountWithheld != nil {
		withheld = sql.NullInt64{Int64: toCents(*record.AmountWithheld), Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, `
INSERT INTO diagnoses (id, state_code, move_out_date, received_notice, notice_sent_date, total_deposit_cents, amount_withheld_cents, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID,
		record.StateCode,
		record.MoveOutDate,
		string(record.ReceivedNotice),
		noticeSent,
		toCents(record.TotalDeposit),
		withheld,
		resultJSON,
		record.CreatedAt,
	)
	return err
}

// GetByID returns a record by its ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT id, state_code, move_out_date, received_notice, notice_sent_date, total_deposit_cents, amount_withheld_cents, result, created_at
FROM diagnoses WHERE id = $1`, id)
	return scanRecord(row)
}

// ListRecent returns up to limit records, newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, state_code, move_out_date, received_notice, notice_sent_date, total_deposit_cents, amount_withheld_cents, result, created_at
FROM diagnoses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		record        Record
		receivedRaw   string
		noticeSent    sql.NullTime
		depositCents  int64
		withheldCents sql.NullInt64
		resultJSON    []byte
	)
	err := row.Scan(
		&record.ID,
		&record.StateCode,
		&record.MoveOutDate,
		&receivedRaw,
		&noticeSent,
		&depositCents,
		&withheldCents,
		&resultJSON,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}

	record.ReceivedNotice = NoticeReceived(receivedRaw)
	if noticeSent.Valid {
		t := noticeSent.Time
		record.NoticeSentDate = &t
	}
	record.TotalDeposit = fromCents(depositCents)
	if withheldCents.Valid {
		amount := fromCents(withheldCents.Int64)
		record.AmountWithheld = &amount
	}
	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return Record{}, err
	}
	return record, nil
}

func toCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
