package content

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gocms/internal/common"
	"gocms/internal/dbmysql"
)

// Repository performs single-attempt operations against the shared content
// table. Lookups are always collection-scoped: an id stored under another
// collection is indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, item *dbmysql.ContentItem) error
	GetByID(ctx context.Context, collection Collection, id string) (*dbmysql.ContentItem, error)
	List(ctx context.Context, collection Collection, categories []string, offset, limit int) ([]dbmysql.ContentItem, int64, error)
	Recent(ctx context.Context, collection Collection, categories []string, limit int) ([]dbmysql.ContentItem, error)
	Update(ctx context.Context, item *dbmysql.ContentItem) error
	Delete(ctx context.Context, collection Collection, id string) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, item *dbmysql.ContentItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return common.NewStorageError("create", err)
	}
	return nil
}

func (r *contentRepository) GetByID(ctx context.Context, collection Collection, id string) (*dbmysql.ContentItem, error) {
	var item dbmysql.ContentItem
	err := r.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection.String(), id).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(collection.String(), id)
		}
		return nil, common.NewStorageError("get", err)
	}
	return &item, nil
}

func (r *contentRepository) List(ctx context.Context, collection Collection, categories []string, offset, limit int) ([]dbmysql.ContentItem, int64, error) {
	query := r.scoped(ctx, collection, categories)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, common.NewStorageError("count", err)
	}

	var items []dbmysql.ContentItem
	err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, common.NewStorageError("list", err)
	}
	return items, total, nil
}

func (r *contentRepository) Recent(ctx context.Context, collection Collection, categories []string, limit int) ([]dbmysql.ContentItem, error) {
	var items []dbmysql.ContentItem
	err := r.scoped(ctx, collection, categories).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, common.NewStorageError("recent", err)
	}
	return items, nil
}

func (r *contentRepository) Update(ctx context.Context, item *dbmysql.ContentItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return common.NewStorageError("update", err)
	}
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, collection Collection, id string) error {
	res := r.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection.String(), id).
		Delete(&dbmysql.ContentItem{})
	if res.Error != nil {
		return common.NewStorageError("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.NewNotFoundError(collection.String(), id)
	}
	return nil
}

func (r *contentRepository) scoped(ctx context.Context, collection Collection, categories []string) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&dbmysql.ContentItem{}).
		Where("collection = ?", collection.String())
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	return query
}
