package repository

import (
	"context"
	"errors"
	"sort"

	"taskboard/internal/logger"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepository(db *gorm.DB, log *logger.Logger) *ProjectRepository {
	return &ProjectRepository{db: db, log: log}
}

func (r *ProjectRepository) Create(ctx context.Context, name string, ownerID uuid.UUID) (*model.Project, error) {
	project := &model.Project{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, classify("create project", err)
	}
	project.Role = model.RoleOwner
	return project, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, classify("get project", err)
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, name string) (*model.Project, error) {
	result := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return nil, classify("update project", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, classify("update project", gorm.ErrRecordNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a project. Columns, tasks, memberships and assignments
// cascade in the schema.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if result.Error != nil {
		return classify("delete project", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("delete project", gorm.ErrRecordNotFound)
	}
	return nil
}

// ListForUser returns the projects the user owns followed by the ones they
// are a member of, each tagged with the user's role, newest first.
//
// Membership lookups are best effort: if the join table cannot be read the
// owned projects are still returned. A self-referencing policy on the
// projects table yields an empty list instead of an error.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var owned []model.Project
	if err := r.db.WithContext(ctx).Where("owner_id = ?", userID).Find(&owned).Error; err != nil {
		cerr := classify("list owned projects", err)
		if errors.Is(cerr, ErrPolicyRecursion) {
			r.log.Errorw("projects policy refers to itself, returning no projects", "user_id", userID, "error", cerr)
			return []model.Project{}, nil
		}
		return nil, cerr
	}
	for i := range owned {
		owned[i].Role = model.RoleOwner
	}

	shared := r.listShared(ctx, userID)

	projects := append(owned, shared...)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (r *ProjectRepository) listShared(ctx context.Context, userID uuid.UUID) []model.Project {
	var projectIDs []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.ProjectMember{}).
		Where("user_id = ?", userID).
		Pluck("project_id", &projectIDs).Error
	if err != nil {
		r.log.Warnw("membership lookup failed, showing owned projects only",
			"user_id", userID, "error", classify("list memberships", err))
		return nil
	}
	if len(projectIDs) == 0 {
		return nil
	}

	var shared []model.Project
	err = r.db.WithContext(ctx).
		Where("id IN ? AND owner_id <> ?", projectIDs, userID).
		Find(&shared).Error
	if err != nil {
		r.log.Warnw("failed to load shared projects", "user_id", userID, "error", classify("list shared projects", err))
		return nil
	}
	for i := range shared {
		shared[i].Role = model.RoleMember
	}
	return shared
}
