package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

var copyColumns = []string{"id", "book_id", "inventory_number", "condition", "location", "available"}

func (r *repository) CreateCopy(ctx context.Context, req model.CreateCopyRequest) (model.BookCopy, error) {
	condition := req.Condition
	if condition == "" {
		condition = model.ConditionGood
	}
	b := qb.Insert(copiesTableName).
		Columns("book_id", "inventory_number", "condition", "location", "available").
		Values(req.BookID, req.InventoryNumber, condition, req.Location, true).
		Suffix("returning " + strings.Join(copyColumns, ", "))
	var c model.BookCopy
	if err := r.get(ctx, &c, b, errs.ErrBookNotFound); err != nil {
		return model.BookCopy{}, err
	}
	return c, nil
}

func (r *repository) GetCopy(ctx context.Context, id int64) (model.BookCopy, error) {
	return r.getCopy(ctx, id, false)
}

func (r *repository) LockCopy(ctx context.Context, id int64) (model.BookCopy, error) {
	return r.getCopy(ctx, id, true)
}

func (r *repository) getCopy(ctx context.Context, id int64, lock bool) (model.BookCopy, error) {
	b := qb.Select(copyColumns...).From(copiesTableName).Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("for update")
	}
	var c model.BookCopy
	if err := r.get(ctx, &c, b, errs.ErrCopyNotFound); err != nil {
		return model.BookCopy{}, err
	}
	return c, nil
}

func (r *repository) ListCopies(ctx context.Context, bookID int64, availableOnly bool) ([]model.BookCopy, error) {
	b := qb.Select(copyColumns...).
		From(copiesTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("inventory_number")
	if availableOnly {
		b = b.Where(sq.Eq{"available": true})
	}
	copies := make([]model.BookCopy, 0)
	if err := r.selectAll(ctx, &copies, b); err != nil {
		return nil, err
	}
	return copies, nil
}

func (r *repository) UpdateCopy(ctx context.Context, id int64, req model.UpdateCopyRequest) (model.BookCopy, error) {
	set := sq.Eq{}
	if req.Condition != nil {
		set["condition"] = *req.Condition
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if len(set) == 0 {
		return r.GetCopy(ctx, id)
	}
	b := qb.Update(copiesTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(copyColumns, ", "))
	var c model.BookCopy
	if err := r.get(ctx, &c, b, errs.ErrCopyNotFound); err != nil {
		return model.BookCopy{}, err
	}
	return c, nil
}

func (r *repository) SetCopyAvailable(ctx context.Context, id int64, available bool) error {
	b := qb.Update(copiesTableName).
		Set("available", available).
		Where(sq.Eq{"id": id})
	return r.exec(ctx, b, errs.ErrCopyNotFound)
}

func (r *repository) DeleteCopy(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(copiesTableName).Where(sq.Eq{"id": id}), errs.ErrCopyNotFound)
}

func (r *repository) SearchCopies(ctx context.Context, f model.CopyFilter) ([]model.BookCopy, error) {
	b := qb.Select(copyColumns...).
		From(copiesTableName).
		OrderBy("inventory_number")
	if f.BookID != 0 {
		b = b.Where(sq.Eq{"book_id": f.BookID})
	}
	if f.InventoryNumber != "" {
		b = b.Where(sq.ILike{"inventory_number": "%" + f.InventoryNumber + "%"})
	}
	if f.Condition != "" {
		b = b.Where(sq.Eq{"condition": f.Condition})
	}
	if f.Location != "" {
		b = b.Where(sq.ILike{"location": "%" + f.Location + "%"})
	}
	if f.AvailableOnly {
		b = b.Where(sq.Eq{"available": true})
	}
	copies := make([]model.BookCopy, 0)
	if err := r.selectAll(ctx, &copies, b); err != nil {
		return nil, err
	}
	return copies, nil
}

func (r *repository) CopyStats(ctx context.Context, bookID int64) (model.CopyStats, error) {
	totals := qb.Select(
		"count(*) as total",
		"count(*) filter (where available) as available",
		"count(*) filter (where not available) as unavailable",
	).From(copiesTableName)
	byCondition := qb.Select("condition", "count(*) as count").
		From(copiesTableName).
		GroupBy("condition")
	if bookID != 0 {
		totals = totals.Where(sq.Eq{"book_id": bookID})
		byCondition = byCondition.Where(sq.Eq{"book_id": bookID})
	}

	var stats model.CopyStats
	if err := r.get(ctx, &stats, totals, errs.ErrCopyNotFound); err != nil {
		return model.CopyStats{}, err
	}
	var rows []struct {
		Condition model.Condition `db:"condition"`
		Count     int             `db:"count"`
	}
	if err := r.selectAll(ctx, &rows, byCondition); err != nil {
		return model.CopyStats{}, err
	}
	stats.ByCondition = model.NewConditionCounts()
	for _, row := range rows {
		stats.ByCondition[row.Condition] = row.Count
	}
	return stats, nil
}
