package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/constants"
	model "charity-connect.com/charity-connect/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// ErrStateConflict reports that a conditional transition matched no row:
// either the task is gone or it is not in the expected state. Callers that
// checked existence first can read it as a pure guard failure.
var ErrStateConflict = errors.New("task is not in the expected state")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *model.Task) error {
	task.ID = uuid.NewString()
	task.State = constants.StatePending
	task.AssignedBenefactorID = nil
	task.Version = 1
	task.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListVisible returns the tasks the caller may see: tasks of their charity,
// tasks assigned to their benefactor profile, and every pending task. The
// three rules are independent predicates joined by OR; empty role IDs drop
// their predicate. Extra scopes (caller-supplied filters) narrow the result.
func (r *TaskRepository) ListVisible(
	ctx context.Context,
	charityID string,
	benefactorID string,
	scopes ...func(*gorm.DB) *gorm.DB,
) ([]model.Task, error) {
	visible := r.pendingToEveryone()
	if charityID != "" {
		visible = visible.Or(r.ownedByCharity(charityID))
	}
	if benefactorID != "" {
		visible = visible.Or(r.assignedToBenefactor(benefactorID))
	}

	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where(visible).
		Scopes(scopes...).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) pendingToEveryone() *gorm.DB {
	return r.db.Where("state = ?", constants.StatePending)
}

func (r *TaskRepository) ownedByCharity(charityID string) *gorm.DB {
	return r.db.Where("charity_id = ?", charityID)
}

func (r *TaskRepository) assignedToBenefactor(benefactorID string) *gorm.DB {
	return r.db.Where("assigned_benefactor_id = ?", benefactorID)
}

// BindRequest moves a pending task to waiting and binds the requesting
// benefactor. The state guard and the mutation are one conditional UPDATE,
// so of two concurrent requests on the same task exactly one wins.
func (r *TaskRepository) BindRequest(ctx context.Context, id, benefactorID string) error {
	return r.transition(ctx, id, constants.StatePending, map[string]interface{}{
		"state":                  constants.StateWaiting,
		"assigned_benefactor_id": benefactorID,
	})
}

// Accept moves a waiting task to assigned.
func (r *TaskRepository) Accept(ctx context.Context, id string) error {
	return r.transition(ctx, id, constants.StateWaiting, map[string]interface{}{
		"state": constants.StateAssigned,
	})
}

// Release rejects a waiting request: back to pending with the benefactor
// cleared so another request can bind.
func (r *TaskRepository) Release(ctx context.Context, id string) error {
	return r.transition(ctx, id, constants.StateWaiting, map[string]interface{}{
		"state":                  constants.StatePending,
		"assigned_benefactor_id": nil,
	})
}

// Complete moves an assigned task to done. Done is terminal.
func (r *TaskRepository) Complete(ctx context.Context, id string) error {
	return r.transition(ctx, id, constants.StateAssigned, map[string]interface{}{
		"state": constants.StateDone,
	})
}

func (r *TaskRepository) transition(
	ctx context.Context,
	id string,
	from constants.TaskState,
	updates map[string]interface{},
) error {
	updates["version"] = gorm.Expr("version + 1")

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND state = ?", id, from).
		Updates(updates)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateConflict
	}
	return nil
}
