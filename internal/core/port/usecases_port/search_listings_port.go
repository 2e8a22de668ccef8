package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"
)

type SearchListingsUseCasePort interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria, sortKey domain.SortKey) (*domain.SearchResult, error)
}
