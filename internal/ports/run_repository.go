package ports

import (
	"context"

	"github.com/bnema/honeybible-cli/internal/domain"
)

type RunRepository interface {
	GetByID(ctx context.Context, id domain.RunID) (domain.RunRecord, error)
	List(ctx context.Context) ([]domain.RunRecord, error)
	Save(ctx context.Context, run domain.RunRecord) error
	Delete(ctx context.Context, id domain.RunID) (domain.RunRecord, error)
}
