package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/auth"
	"charity-connect.com/charity-connect/internal/constants"
	errs "charity-connect.com/charity-connect/internal/errors"
	model "charity-connect.com/charity-connect/internal/models"
	repository "charity-connect.com/charity-connect/internal/repositories"
)

// WorkflowService owns the task state machine: pending -> waiting on a
// benefactor's request, waiting -> assigned or back to pending on the
// charity's response, assigned -> done when the charity marks it finished.
// Nothing else mutates task state.
type WorkflowService struct {
	repo *repository.TaskRepository
}

func NewWorkflowService(repo *repository.TaskRepository) *WorkflowService {
	return &WorkflowService{repo: repo}
}

// RequestAssignment binds the caller's benefactor profile to a pending task
// and moves it to waiting.
func (s *WorkflowService) RequestAssignment(ctx context.Context, taskID string, caller auth.Principal) error {
	if !caller.IsBenefactor() {
		return errs.ErrBenefactorRequired
	}

	if _, err := s.resolve(ctx, taskID); err != nil {
		return err
	}

	if err := s.repo.BindRequest(ctx, taskID, caller.BenefactorID); err != nil {
		if errors.Is(err, repository.ErrStateConflict) {
			return errs.ErrTaskNotPending
		}
		return err
	}

	return nil
}

// RespondToAssignment is the owning charity's answer to a waiting request.
// Accept moves the task to assigned; reject returns it to pending and
// releases the benefactor so someone else can request it.
func (s *WorkflowService) RespondToAssignment(
	ctx context.Context,
	taskID string,
	caller auth.Principal,
	decision constants.Decision,
) error {
	if decision != constants.DecisionAccept && decision != constants.DecisionReject {
		return errs.ErrInvalidResponse
	}

	task, err := s.resolve(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.requireOwner(task, caller); err != nil {
		return err
	}

	if decision == constants.DecisionAccept {
		err = s.repo.Accept(ctx, taskID)
	} else {
		err = s.repo.Release(ctx, taskID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrStateConflict) {
			return errs.ErrTaskNotWaiting
		}
		return err
	}

	return nil
}

// CompleteTask marks an assigned task done. Done is terminal.
func (s *WorkflowService) CompleteTask(ctx context.Context, taskID string, caller auth.Principal) error {
	task, err := s.resolve(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.requireOwner(task, caller); err != nil {
		return err
	}

	if err := s.repo.Complete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrStateConflict) {
			return errs.ErrTaskNotAssigned
		}
		return err
	}

	return nil
}

func (s *WorkflowService) resolve(ctx context.Context, taskID string) (*model.Task, error) {
	if taskID == "" {
		return nil, errs.ErrTaskIDRequired
	}

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// requireOwner checks ownership of this specific task, not merely that the
// caller holds some charity profile. Authorization runs before any state
// guard.
func (s *WorkflowService) requireOwner(task *model.Task, caller auth.Principal) error {
	if !caller.IsCharityOwner() {
		return errs.ErrCharityRequired
	}
	if task.CharityID != caller.CharityID {
		return errs.ErrNotTaskOwner
	}
	return nil
}
