package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

// FindById 主键查询
func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 条件查询单条
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAllByWhere 条件查询多条
func (r *Repo[T]) FindAllByWhere(ctx context.Context, where string, args ...any) ([]T, error) {
	var items []T
	err := r.Db.WithContext(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

// IsExist 判断记录是否存在
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

// CountByWhere 条件计数
func (r *Repo[T]) CountByWhere(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Count(&count).Error
	return count, err
}

// UpdateByWhere 条件更新
func (r *Repo[T]) UpdateByWhere(ctx context.Context, data map[string]any, where string, args ...any) error {
	var model T
	return r.Db.WithContext(ctx).Model(&model).Where(where, args...).Updates(data).Error
}

// DeleteByWhere 条件删除
func (r *Repo[T]) DeleteByWhere(ctx context.Context, where string, args ...any) error {
	var model T
	return r.Db.WithContext(ctx).Where(where, args...).Delete(&model).Error
}
