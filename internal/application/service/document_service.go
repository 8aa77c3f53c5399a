package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oddbill/billing-api/internal/domain/entity"
	"github.com/oddbill/billing-api/internal/domain/repository"
	"github.com/oddbill/billing-api/pkg/apperror"
	"github.com/oddbill/billing-api/pkg/pagination"
)

// DocumentService handles the lifecycle of one billing document type:
// creation, lookup, edit, duplication and soft delete. Everything it hands
// to the repository is an acyclic DocumentData projection; the live model
// with its item back-references stays on this side of the boundary.
type DocumentService struct {
	kind entity.Kind
	repo repository.DocumentRepository
	now  func() time.Time
}

// NewDocumentService creates a service for the given document kind
func NewDocumentService(kind entity.Kind, repo repository.DocumentRepository) *DocumentService {
	return &DocumentService{
		kind: kind,
		repo: repo,
		now:  time.Now,
	}
}

// Kind returns the document kind this service manages.
func (s *DocumentService) Kind() entity.Kind { return s.kind }

// Create stores a new document. The number must be unique among non-deleted
// documents of this kind; when absent, the next free number for the current
// month is assigned. An unsupported currency code is rejected before
// anything is written.
func (s *DocumentService) Create(ctx context.Context, data *entity.DocumentData) (*entity.DocumentData, error) {
	doc, err := entity.NewDocument(s.kind, data)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	if err := s.validateCurrency(doc); err != nil {
		return nil, err
	}
	doc.Base().SetClock(s.now)

	if doc.Number() == "" {
		number, err := s.nextNumber(ctx, doc)
		if err != nil {
			return nil, err
		}
		doc.SetNumber(number)
	} else {
		existing, err := s.repo.GetByNumber(ctx, s.kind, doc.Number())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError(fmt.Sprintf("%s %s already exists", s.kind, doc.Number()))
		}
	}

	if doc.Date() == "" {
		doc.SetDateToday()
	}

	out := doc.CreateDTO()
	id, err := s.repo.Save(ctx, s.kind, out)
	if err != nil {
		return nil, err
	}
	out.ID = id
	return out, nil
}

// Get looks a document up by its user-visible number.
func (s *DocumentService) Get(ctx context.Context, number string) (*entity.DocumentData, error) {
	data, err := s.repo.GetByNumber(ctx, s.kind, number)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperror.NewNotFoundError(string(s.kind))
	}
	return data, nil
}

// ListByYear returns the non-deleted documents whose numbers were issued in
// the given year, ordered by number.
func (s *DocumentService) ListByYear(ctx context.Context, year string, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.DocumentData], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	docs, total, err := s.repo.List(ctx, s.kind, &repository.DocumentFilterParams{
		Pagination: params,
		Year:       year,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(docs, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Update overwrites the stored document identified by number. The number
// itself may change, in which case the new one must be free.
func (s *DocumentService) Update(ctx context.Context, number string, data *entity.DocumentData) (*entity.DocumentData, error) {
	existing, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	doc, err := entity.NewDocument(s.kind, data)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	if err := s.validateCurrency(doc); err != nil {
		return nil, err
	}
	if doc.Number() == "" {
		doc.SetNumber(number)
	}
	if doc.Number() != number {
		taken, err := s.repo.GetByNumber(ctx, s.kind, doc.Number())
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, apperror.NewConflictError(fmt.Sprintf("%s %s already exists", s.kind, doc.Number()))
		}
	}
	doc.Base().ID = existing.ID

	out := doc.CreateDTO()
	if err := s.repo.Update(ctx, s.kind, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete soft-deletes the document: the record stays, flagged deleted, with
// its number rewritten so the original number is free for reuse.
func (s *DocumentService) Delete(ctx context.Context, number string) (*entity.DocumentData, error) {
	data, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	doc, err := entity.NewDocument(s.kind, data)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	doc.Base().SetClock(s.now)
	doc.Base().MarkAsDeleted()

	out := doc.CreateDTO()
	if err := s.repo.Update(ctx, s.kind, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Duplicate copies an existing document into a new one numbered for the
// current month and dated today.
func (s *DocumentService) Duplicate(ctx context.Context, number string) (*entity.DocumentData, error) {
	data, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	doc, err := entity.NewDocument(s.kind, data)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	doc.Base().SetClock(s.now)
	doc.Base().ID = ""

	next, err := s.nextNumber(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.SetNumber(next)
	doc.SetDateToday()

	out := doc.CreateDTO()
	id, err := s.repo.Save(ctx, s.kind, out)
	if err != nil {
		return nil, err
	}
	out.ID = id
	return out, nil
}

func (s *DocumentService) nextNumber(ctx context.Context, doc entity.Document) (string, error) {
	prefix := doc.Base().NewDocumentNumber(s.now())
	seq, err := s.repo.NextSequenceNumber(ctx, s.kind, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

func (s *DocumentService) validateCurrency(doc entity.Document) error {
	code := doc.Base().Currency()
	if !entity.CurrencySupported(code) {
		return apperror.NewBadRequestError(fmt.Sprintf("unsupported currency %q", code))
	}
	return nil
}
