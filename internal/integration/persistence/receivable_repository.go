package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/persistence/model"
)

// receivableRepository implements the adapter.ReceivableRepository interface.
type receivableRepository struct {
	db *gorm.DB
}

// NewReceivableRepository creates a new receivable repository instance.
func NewReceivableRepository(db *gorm.DB) adapter.ReceivableRepository {
	return &receivableRepository{
		db: db,
	}
}

// Create creates a new receivable in the database.
func (r *receivableRepository) Create(ctx context.Context, receivable *entity.Receivable) error {
	receivableModel := model.ReceivableFromEntity(receivable)
	result := r.db.WithContext(ctx).Create(receivableModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a receivable by its ID. Returns nil when no row matches.
func (r *receivableRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receivable, error) {
	var receivableModel model.ReceivableModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&receivableModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return receivableModel.ToEntity(), nil
}

// FindByAccount retrieves all receivables for an account ordered by due
// date ascending, so the most urgent debts come first.
func (r *receivableRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Receivable, error) {
	var receivableModels []model.ReceivableModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("due_date ASC, created_at DESC").
		Find(&receivableModels)
	if result.Error != nil {
		return nil, result.Error
	}

	receivables := make([]*entity.Receivable, len(receivableModels))
	for i, rm := range receivableModels {
		receivables[i] = rm.ToEntity()
	}
	return receivables, nil
}

// Update updates an existing receivable.
func (r *receivableRepository) Update(ctx context.Context, receivable *entity.Receivable) error {
	receivableModel := model.ReceivableFromEntity(receivable)
	result := r.db.WithContext(ctx).
		Model(&model.ReceivableModel{}).
		Where("id = ?", receivable.ID).
		Updates(receivableModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a receivable.
func (r *receivableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ReceivableModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
