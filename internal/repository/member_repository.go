package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Add makes the user a member of the project. If a membership already
// exists it is returned unchanged.
func (r *MemberRepository) Add(ctx context.Context, projectID, userID uuid.UUID, role string) (*model.ProjectMember, error) {
	var member model.ProjectMember
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).First(&member).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		member = model.ProjectMember{
			ID:        uuid.New(),
			ProjectID: projectID,
			UserID:    userID,
			Role:      role,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, classify("add project member", err)
	}
	return &member, nil
}

// UpdateRole changes the role of an existing membership.
func (r *MemberRepository) UpdateRole(ctx context.Context, projectID, userID uuid.UUID, role string) (*model.ProjectMember, error) {
	result := r.db.WithContext(ctx).Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role)
	if result.Error != nil {
		return nil, classify("update project member", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, classify("update project member", gorm.ErrRecordNotFound)
	}

	var member model.ProjectMember
	if err := r.db.WithContext(ctx).Where("project_id = ? AND user_id = ?", projectID, userID).First(&member).Error; err != nil {
		return nil, classify("get project member", err)
	}
	return &member, nil
}

func (r *MemberRepository) Remove(ctx context.Context, projectID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{})
	if result.Error != nil {
		return classify("remove project member", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("remove project member", gorm.ErrRecordNotFound)
	}
	return nil
}

// ListByProject returns the memberships of a project, oldest first.
func (r *MemberRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Find(&members).Error; err != nil {
		return nil, classify("list project members", err)
	}
	return members, nil
}
