package diagnosis

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service runs diagnoses and persists the outcome for later retrieval
// (document generation reads the stored record).
type Service struct {
	Repo Repo
}

// Create runs a diagnosis and stores the record.
func (s *Service) Create(ctx context.Context, in Input) (Record, error) {
	return s.createAt(ctx, in, time.Now())
}

func (s *Service) createAt(ctx context.Context, in Input, now time.Time) (Record, error) {
	result, err := DiagnoseAt(in, now)
	if err != nil {
		return Record{}, err
	}

	record := Record{
		ID:             uuid.NewString(),
		StateCode:      in.StateCode,
		MoveOutDate:    in.MoveOutDate,
		ReceivedNotice: in.ReceivedNotice,
		NoticeSentDate: in.NoticeSentDate,
		TotalDeposit:   in.TotalDeposit,
		AmountWithheld: in.AmountWithheld,
		Result:         result,
		CreatedAt:      now.UTC(),
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Get returns a stored diagnosis by ID.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Repo.GetByID(ctx, id)
}
