package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to a column at the given position
func (r *TaskRepository) Create(ctx context.Context, columnID uuid.UUID, title string, description *string, position int) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.New(),
		ColumnID:    columnID,
		Title:       title,
		Description: description,
		Position:    position,
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, classify("create task", err)
	}
	return task, nil
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, classify("get task", err)
	}
	return &task, nil
}

// ListByColumn retrieves all tasks in a column ordered by position
func (r *TaskRepository) ListByColumn(ctx context.Context, columnID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Where("column_id = ?", columnID).Order("position").Find(&tasks).Error
	if err != nil {
		return nil, classify("list tasks", err)
	}
	return tasks, nil
}

// Update changes the title and description of a task
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, title string, description *string) (*model.Task, error) {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description})
	if result.Error != nil {
		return nil, classify("update task", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, classify("update task", gorm.ErrRecordNotFound)
	}
	return r.GetByID(ctx, id)
}

// UpdatePosition moves a task to columnID at newPosition, shifting the
// siblings in both columns so positions stay dense.
func (r *TaskRepository) UpdatePosition(ctx context.Context, id, columnID uuid.UUID, newPosition int) (*model.Task, error) {
	if newPosition < 0 {
		newPosition = 0
	}

	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			return err
		}

		oldColumnID := task.ColumnID
		oldPosition := task.Position

		if oldColumnID != columnID {
			// Close the gap in the old column
			if err := tx.Model(&model.Task{}).
				Where("column_id = ? AND position > ?", oldColumnID, oldPosition).
				Update("position", gorm.Expr("position - 1")).Error; err != nil {
				return err
			}

			// Make space in the new column
			if err := tx.Model(&model.Task{}).
				Where("column_id = ? AND position >= ?", columnID, newPosition).
				Update("position", gorm.Expr("position + 1")).Error; err != nil {
				return err
			}

			task.ColumnID = columnID
			task.Position = newPosition
		} else if oldPosition != newPosition {
			if oldPosition < newPosition {
				// Moving down: decrement positions of tasks between old and new
				if err := tx.Model(&model.Task{}).
					Where("column_id = ? AND position > ? AND position <= ?", columnID, oldPosition, newPosition).
					Update("position", gorm.Expr("position - 1")).Error; err != nil {
					return err
				}
			} else {
				// Moving up: increment positions of tasks between new and old
				if err := tx.Model(&model.Task{}).
					Where("column_id = ? AND position >= ? AND position < ?", columnID, newPosition, oldPosition).
					Update("position", gorm.Expr("position + 1")).Error; err != nil {
					return err
				}
			}

			task.Position = newPosition
		} else {
			return nil
		}

		return tx.Save(&task).Error
	})
	if err != nil {
		return nil, classify("update task position", err)
	}
	return &task, nil
}

// Delete removes a task and closes the gap in its column
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Task{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&model.Task{}).
			Where("column_id = ? AND position > ?", task.ColumnID, task.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
	return classify("delete task", err)
}
