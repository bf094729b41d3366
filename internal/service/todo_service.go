package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

// MaxContentLength is the longest to-do content accepted, in characters.
const MaxContentLength = 300

// ToDoService exposes to-do operations on behalf of an authenticated owner.
// A to-do that belongs to someone else is reported as ErrToDoNotFound.
type ToDoService interface {
	Create(ctx context.Context, ownerID uuid.UUID, content string) (*model.ToDo, error)
	ListCurrent(ctx context.Context, ownerID uuid.UUID) (*model.ToDoList, error)
	MarkComplete(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error)
	MarkIncomplete(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error)
	UpdateContent(ctx context.Context, ownerID, id uuid.UUID, content string) (*model.ToDo, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type toDoService struct {
	repo repository.ToDoRepository
	now  func() time.Time
}

// NewToDoService creates a new to-do service.
func NewToDoService(repo repository.ToDoRepository) ToDoService {
	return &toDoService{repo: repo, now: time.Now}
}

// ValidateContent checks to-do content the same way for create and edit.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperrors.NewValidationError("content", "Content field cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return apperrors.NewValidationError("content", "Content field must be between 1 and 300 characters")
	}
	return nil
}

func (s *toDoService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*model.ToDo, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	todo := &model.ToDo{
		UserID:  ownerID,
		Content: content,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

func (s *toDoService) ListCurrent(ctx context.Context, ownerID uuid.UUID) (*model.ToDoList, error) {
	complete, err := s.repo.ListForOwner(ctx, ownerID, true)
	if err != nil {
		return nil, fmt.Errorf("list complete todos: %w", err)
	}
	incomplete, err := s.repo.ListForOwner(ctx, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("list incomplete todos: %w", err)
	}

	if complete == nil {
		complete = []model.ToDo{}
	}
	if incomplete == nil {
		incomplete = []model.ToDo{}
	}
	return &model.ToDoList{Complete: complete, Incomplete: incomplete}, nil
}

func (s *toDoService) MarkComplete(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error) {
	completedAt := s.now()
	return s.transition(ctx, ownerID, id, true, &completedAt, apperrors.ErrToDoAlreadyComplete)
}

func (s *toDoService) MarkIncomplete(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error) {
	return s.transition(ctx, ownerID, id, false, nil, apperrors.ErrToDoAlreadyIncomplete)
}

// transition applies a guarded completion change in one conditional update.
// When nothing matched, a scoped read tells "not found" from "already there".
func (s *toDoService) transition(ctx context.Context, ownerID, id uuid.UUID, complete bool, completedAt *time.Time, alreadyErr error) (*model.ToDo, error) {
	changed, err := s.repo.SetComplete(ctx, ownerID, id, complete, completedAt)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	todo, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, alreadyErr
	}
	return todo, nil
}

func (s *toDoService) UpdateContent(ctx context.Context, ownerID, id uuid.UUID, content string) (*model.ToDo, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	// A zero row count can also mean the content was unchanged, so the
	// re-read decides whether the to-do exists.
	if _, err := s.repo.UpdateContent(ctx, ownerID, id, content); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return s.find(ctx, ownerID, id)
}

func (s *toDoService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if !deleted {
		return apperrors.ErrToDoNotFound
	}
	return nil
}

func (s *toDoService) find(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error) {
	todo, err := s.repo.FindForOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrToDoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return todo, nil
}
