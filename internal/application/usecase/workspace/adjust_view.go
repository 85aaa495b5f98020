package workspace

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/application/state"
	appsync "github.com/duitku/backend/internal/application/sync"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// AdjustViewUseCase changes how the transaction list is windowed and
// filtered. Cursor and date-range changes refetch from the backend; the
// type/text filter is purely client-side and only re-renders.
type AdjustViewUseCase struct {
	workspaces *appsync.Manager
}

// NewAdjustViewUseCase creates a new AdjustViewUseCase instance.
func NewAdjustViewUseCase(workspaces *appsync.Manager) *AdjustViewUseCase {
	return &AdjustViewUseCase{workspaces: workspaces}
}

func (uc *AdjustViewUseCase) engine(accountID uuid.UUID) (*appsync.Orchestrator, error) {
	engine, ok := uc.workspaces.Get(accountID)
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"no open workspace for account",
			domainerror.ErrInvalidToken,
		)
	}
	return engine, nil
}

// reload refetches after a cursor or range change. A superseded reload
// means fresher data is already on its way, which is not a failure.
func reload(ctx context.Context, engine *appsync.Orchestrator) error {
	if err := engine.ReloadAll(ctx); err != nil && !errors.Is(err, domainerror.ErrReloadSuperseded) {
		return err
	}
	return nil
}

// GoToPage moves the transaction cursor to the given 1-indexed page.
// Requests outside the valid range leave the cursor where it is.
func (uc *AdjustViewUseCase) GoToPage(ctx context.Context, accountID uuid.UUID, page int) (moved bool, err error) {
	engine, err := uc.engine(accountID)
	if err != nil {
		return false, err
	}
	if !engine.Store().GoToPage(page) {
		return false, nil
	}
	return true, reload(ctx, engine)
}

// SetPerPage changes the page size and resets the cursor to page one.
func (uc *AdjustViewUseCase) SetPerPage(ctx context.Context, accountID uuid.UUID, perPage int) error {
	engine, err := uc.engine(accountID)
	if err != nil {
		return err
	}
	engine.Store().SetPerPage(perPage)
	return reload(ctx, engine)
}

// SetDateRange changes the server-side date bounds and resets the cursor.
func (uc *AdjustViewUseCase) SetDateRange(ctx context.Context, accountID uuid.UUID, start, end *time.Time) error {
	engine, err := uc.engine(accountID)
	if err != nil {
		return err
	}
	engine.Store().SetDateRange(state.DateRange{Start: start, End: end})
	return reload(ctx, engine)
}

// SetFilter changes the client-side type/text filter. The loaded page is
// not refetched; the view is recomputed from data already in memory.
func (uc *AdjustViewUseCase) SetFilter(ctx context.Context, accountID uuid.UUID, typeFilter paging.TypeFilter, query string) error {
	engine, err := uc.engine(accountID)
	if err != nil {
		return err
	}
	if !typeFilter.Valid() {
		return domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			"type filter must be all, income or expense",
			domainerror.ErrMissingField,
		)
	}
	engine.Store().SetFilter(state.Filter{Type: typeFilter, Query: query})
	return nil
}
