package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oddbill/billing-api/internal/domain/entity"
	domainRepo "github.com/oddbill/billing-api/internal/domain/repository"
)

// DocumentRecord is the stored form of a billing document: the searchable
// columns plus the full DTO as a JSON payload. Only acyclic DocumentData is
// ever marshalled into the payload.
type DocumentRecord struct {
	ID           string `gorm:"primaryKey;size:36"`
	DocumentType string `gorm:"size:16;not null;index:idx_documents_type_number"`
	Number       string `gorm:"size:191;not null;index:idx_documents_type_number"`
	DocumentDate string `gorm:"size:10"`
	Deleted      bool   `gorm:"not null;index"`
	Payload      datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for DocumentRecord
func (DocumentRecord) TableName() string {
	return "billing_documents"
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Save(ctx context.Context, kind entity.Kind, data *entity.DocumentData) (string, error) {
	stored := *data
	stored.ID = uuid.NewString()

	record, err := newRecord(kind, &stored)
	if err != nil {
		return "", err
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return "", err
	}
	return stored.ID, nil
}

func (r *documentRepository) Update(ctx context.Context, kind entity.Kind, data *entity.DocumentData) error {
	if data.ID == "" {
		return errors.New("document has no storage id")
	}
	record, err := newRecord(kind, data)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&DocumentRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"number":        record.Number,
			"document_date": record.DocumentDate,
			"deleted":       record.Deleted,
			"payload":       record.Payload,
		}).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*entity.DocumentData, error) {
	var record DocumentRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.data()
}

func (r *documentRepository) GetByNumber(ctx context.Context, kind entity.Kind, number string) (*entity.DocumentData, error) {
	var record DocumentRecord
	err := r.db.WithContext(ctx).
		First(&record, "document_type = ? AND number = ? AND deleted = ?", string(kind), number, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.data()
}

func (r *documentRepository) List(ctx context.Context, kind entity.Kind, params *domainRepo.DocumentFilterParams) ([]*entity.DocumentData, int64, error) {
	var records []DocumentRecord
	var total int64

	query := r.db.WithContext(ctx).
		Model(&DocumentRecord{}).
		Where("document_type = ?", string(kind))

	if !params.IncludeDeleted {
		query = query.Where("deleted = ?", false)
	}
	if params.Year != "" {
		query = query.Where("number LIKE ?", params.Year+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("number")
	if params.Pagination != nil {
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	docs := make([]*entity.DocumentData, 0, len(records))
	for i := range records {
		data, err := records[i].data()
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, data)
	}
	return docs, total, nil
}

// NextSequenceNumber scans every number issued under the prefix, deleted
// ones included: a cancelled document keeps its slot so sequences never
// collide with a number that existed before.
func (r *documentRepository) NextSequenceNumber(ctx context.Context, kind entity.Kind, prefix string) (int, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&DocumentRecord{}).
		Where("document_type = ? AND number LIKE ?", string(kind), prefix+"%").
		Pluck("number", &numbers).Error
	if err != nil {
		return 0, err
	}

	max := 0
	for _, number := range numbers {
		rest := strings.TrimPrefix(number, prefix)
		seq, err := strconv.Atoi(strings.SplitN(rest, "-", 2)[0])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1, nil
}

func newRecord(kind entity.Kind, data *entity.DocumentData) (*DocumentRecord, error) {
	doc, err := entity.NewDocument(kind, data)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document %s: %w", doc.Number(), err)
	}
	return &DocumentRecord{
		ID:           data.ID,
		DocumentType: string(kind),
		Number:       doc.Number(),
		DocumentDate: doc.Date(),
		Deleted:      data.Deleted,
		Payload:      payload,
	}, nil
}

func (rec *DocumentRecord) data() (*entity.DocumentData, error) {
	var data entity.DocumentData
	if err := json.Unmarshal(rec.Payload, &data); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", rec.ID, err)
	}
	return &data, nil
}
