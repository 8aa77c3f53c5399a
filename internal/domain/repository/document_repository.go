package repository

import (
	"context"

	"github.com/oddbill/billing-api/internal/domain/entity"
	"github.com/oddbill/billing-api/pkg/pagination"
)

// DocumentFilterParams contains filtering parameters for document queries.
type DocumentFilterParams struct {
	Pagination *pagination.PaginationParams
	// Year restricts results to numbers issued that year ("YYYYMM-...").
	Year string
	// IncludeDeleted also returns soft-deleted documents.
	IncludeDeleted bool
}

// DocumentRepository is the storage collaborator for billing documents. It
// moves acyclic DocumentData records across the storage boundary; live
// documents with their item back-references never reach it.
type DocumentRepository interface {
	// Save stores a new document and returns its storage ID. The passed
	// data is not mutated, so a failed save leaves the caller's document
	// untouched.
	Save(ctx context.Context, kind entity.Kind, data *entity.DocumentData) (string, error)
	// Update overwrites the stored record identified by data.ID.
	Update(ctx context.Context, kind entity.Kind, data *entity.DocumentData) error
	// GetByID returns nil when no record matches.
	GetByID(ctx context.Context, id string) (*entity.DocumentData, error)
	// GetByNumber looks a document up by its user-visible number. Deleted
	// documents are excluded: their numbers have been rewritten, and the
	// number namespace belongs to active documents only.
	GetByNumber(ctx context.Context, kind entity.Kind, number string) (*entity.DocumentData, error)
	// List returns matching documents ordered by number plus the total count.
	List(ctx context.Context, kind entity.Kind, params *DocumentFilterParams) ([]*entity.DocumentData, int64, error)
	// NextSequenceNumber returns the next free running number under a month
	// prefix such as "202001-".
	NextSequenceNumber(ctx context.Context, kind entity.Kind, prefix string) (int, error)
}
