package repository

import (
	"context"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, projectID uuid.UUID, title string, position int) (*model.Column, error) {
	column := &model.Column{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     title,
		Position:  position,
	}
	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		return nil, classify("create column", err)
	}
	return column, nil
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		return nil, classify("get column", err)
	}
	return &column, nil
}

func (r *ColumnRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("position").Find(&columns).Error
	if err != nil {
		return nil, classify("list columns", err)
	}
	return columns, nil
}

// Rename changes the title only; the position is left untouched.
func (r *ColumnRepository) Rename(ctx context.Context, id uuid.UUID, title string) (*model.Column, error) {
	result := r.db.WithContext(ctx).Model(&model.Column{}).Where("id = ?", id).Update("title", title)
	if result.Error != nil {
		return nil, classify("rename column", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, classify("rename column", gorm.ErrRecordNotFound)
	}
	return r.GetByID(ctx, id)
}

// UpdatePosition moves a column to newPosition and shifts the siblings in
// between so positions stay dense.
func (r *ColumnRepository) UpdatePosition(ctx context.Context, id uuid.UUID, newPosition int) (*model.Column, error) {
	var column model.Column
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&column, "id = ?", id).Error; err != nil {
			return err
		}

		oldPosition := column.Position
		if oldPosition == newPosition {
			return nil
		}

		if oldPosition < newPosition {
			// Moving right: pull the columns in between one step left
			if err := tx.Model(&model.Column{}).
				Where("project_id = ? AND position > ? AND position <= ?", column.ProjectID, oldPosition, newPosition).
				Update("position", gorm.Expr("position - 1")).Error; err != nil {
				return err
			}
		} else {
			// Moving left: push the columns in between one step right
			if err := tx.Model(&model.Column{}).
				Where("project_id = ? AND position >= ? AND position < ?", column.ProjectID, newPosition, oldPosition).
				Update("position", gorm.Expr("position + 1")).Error; err != nil {
				return err
			}
		}

		column.Position = newPosition
		return tx.Save(&column).Error
	})
	if err != nil {
		return nil, classify("update column position", err)
	}
	return &column, nil
}

// Delete removes the column (tasks and assignments cascade in the schema)
// and closes the gap left in the sibling positions.
func (r *ColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var column model.Column
		if err := tx.First(&column, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Column{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&model.Column{}).
			Where("project_id = ? AND position > ?", column.ProjectID, column.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
	return classify("delete column", err)
}
