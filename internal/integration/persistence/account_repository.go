package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by its ID. Returns nil when no row matches.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByEmail retrieves an account by its email, case-insensitively.
// Returns nil when no row matches.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// List retrieves one page of accounts ordered by creation time.
func (r *accountRepository) List(ctx context.Context, pagination adapter.AccountPagination) (*entity.AccountListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.AccountModel{})

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var accountModels []model.AccountModel
	result := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}

	return &entity.AccountListResult{
		Accounts:   accounts,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing account.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdatePinDigest persists a new PIN digest. An empty digest removes the PIN.
func (r *accountRepository) UpdatePinDigest(ctx context.Context, id uuid.UUID, digest string) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("pin_digest", digest)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an account and its owned rows.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.TransactionModel{}, "account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.BudgetModel{}, "account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.GoalModel{}, "account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ReceivableModel{}, "account_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.AccountModel{}, "id = ?", id).Error
	})
}
