package services

import (
	"context"
	"errors"
	"net/url"

	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/auth"
	"charity-connect.com/charity-connect/internal/constants"
	errs "charity-connect.com/charity-connect/internal/errors"
	"charity-connect.com/charity-connect/internal/filter"
	model "charity-connect.com/charity-connect/internal/models"
	repository "charity-connect.com/charity-connect/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask creates a pending task owned by the caller's charity.
func (s *TaskService) CreateTask(ctx context.Context, caller auth.Principal, task *model.Task) (*model.Task, error) {
	if !caller.IsCharityOwner() {
		return nil, errs.ErrCharityRequired
	}

	task.CharityID = caller.CharityID
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns the tasks visible to the caller, narrowed by any
// recognized filter parameters.
func (s *TaskService) ListTasks(ctx context.Context, caller auth.Principal, params url.Values) ([]model.Task, error) {
	return s.repo.ListVisible(ctx, caller.CharityID, caller.BenefactorID, filter.Scope(params))
}

// GetTask returns a single task if the caller may see it, and reports
// not-found otherwise so invisible tasks are indistinguishable from
// missing ones.
func (s *TaskService) GetTask(ctx context.Context, caller auth.Principal, id string) (*model.Task, error) {
	if id == "" {
		return nil, errs.ErrTaskIDRequired
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTaskNotFound
		}
		return nil, err
	}

	if !visibleTo(task, caller) {
		return nil, errs.ErrTaskNotFound
	}

	return task, nil
}

func visibleTo(task *model.Task, caller auth.Principal) bool {
	if task.State == constants.StatePending {
		return true
	}
	if caller.IsCharityOwner() && task.CharityID == caller.CharityID {
		return true
	}
	if caller.IsBenefactor() && task.AssignedBenefactorID != nil &&
		*task.AssignedBenefactorID == caller.BenefactorID {
		return true
	}
	return false
}
