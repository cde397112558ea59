package repository

import (
	"context"

	"taskboard/internal/logger"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db      *gorm.DB
	members *MemberRepository
	log     *logger.Logger
}

func NewAssignmentRepository(db *gorm.DB, members *MemberRepository, log *logger.Logger) *AssignmentRepository {
	return &AssignmentRepository{db: db, members: members, log: log}
}

// AssignUserToTask inserts the assignment and then makes the user a member
// of the task's project. The membership step is best effort: its failure is
// logged and does not fail the assignment.
func (r *AssignmentRepository) AssignUserToTask(ctx context.Context, taskID, userID uuid.UUID) (*model.TaskAssignment, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Select("id", "column_id").First(&task, "id = ?", taskID).Error; err != nil {
		return nil, classify("assign user: get task", err)
	}

	var column model.Column
	if err := r.db.WithContext(ctx).Select("id", "project_id").First(&column, "id = ?", task.ColumnID).Error; err != nil {
		return nil, classify("assign user: get column", err)
	}

	assignment := &model.TaskAssignment{
		ID:     uuid.New(),
		TaskID: taskID,
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return nil, classify("assign user", err)
	}

	if _, err := r.members.Add(ctx, column.ProjectID, userID, model.RoleMember); err != nil {
		r.log.Warnw("could not add assignee as project member",
			"project_id", column.ProjectID, "user_id", userID, "error", err)
	}

	return assignment, nil
}

func (r *AssignmentRepository) RemoveUserFromTask(ctx context.Context, taskID, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&model.TaskAssignment{}).Error
	return classify("remove assignment", err)
}

func (r *AssignmentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.TaskAssignment, error) {
	var assignments []model.TaskAssignment
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Find(&assignments).Error; err != nil {
		return nil, classify("list assignments", err)
	}
	return assignments, nil
}
