package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound          = errors.New("tag not found")
	ErrTagNameRequired      = errors.New("tag name is required")
	ErrTagNameTaken         = errors.New("tag name already exists")
	ErrTaskTypeNameRequired = errors.New("task type name is required")
	ErrTaskTypeNameTaken    = errors.New("task type name already exists")
)

// TaxonomyService handles the task classification entities: tags and task
// types.
type TaxonomyService struct {
	tagRepo      repository.TagRepository
	taskTypeRepo repository.TaskTypeRepository
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(tagRepo repository.TagRepository, taskTypeRepo repository.TaskTypeRepository) *TaxonomyService {
	return &TaxonomyService{
		tagRepo:      tagRepo,
		taskTypeRepo: taskTypeRepo,
	}
}

// CreateTag validates the name and creates the tag.
func (s *TaxonomyService) CreateTag(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > constants.MaxNameLength {
		return nil, ErrTagNameRequired
	}

	if _, err := s.tagRepo.FindByName(name); err == nil {
		return nil, ErrTagNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check tag name: %w", err)
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return tag, nil
}

// ListTags returns one page of tags filtered by name substring.
func (s *TaxonomyService) ListTags(query string, page int) ([]models.Tag, int64, error) {
	tags, total, err := s.tagRepo.List(repository.NameFilter{
		Query:    query,
		Page:     page,
		PageSize: constants.ListPageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tags: %w", err)
	}

	return tags, total, nil
}

// GetTag returns a tag by ID.
func (s *TaxonomyService) GetTag(id uint64) (*models.Tag, error) {
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	return tag, nil
}

// DeleteTag removes a tag and detaches it from its tasks.
func (s *TaxonomyService) DeleteTag(id uint64) error {
	if _, err := s.tagRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return fmt.Errorf("failed to find tag: %w", err)
	}

	if err := s.tagRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return nil
}

// CreateTaskType validates the name and creates the task type.
func (s *TaxonomyService) CreateTaskType(name string) (*models.TaskType, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > constants.MaxNameLength {
		return nil, ErrTaskTypeNameRequired
	}

	if _, err := s.taskTypeRepo.FindByName(name); err == nil {
		return nil, ErrTaskTypeNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check task type name: %w", err)
	}

	taskType := &models.TaskType{Name: name}
	if err := s.taskTypeRepo.Create(taskType); err != nil {
		return nil, fmt.Errorf("failed to create task type: %w", err)
	}

	return taskType, nil
}

// ListTaskTypes returns one page of task types filtered by name substring.
func (s *TaxonomyService) ListTaskTypes(query string, page int) ([]models.TaskType, int64, error) {
	taskTypes, total, err := s.taskTypeRepo.List(repository.NameFilter{
		Query:    query,
		Page:     page,
		PageSize: constants.ListPageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list task types: %w", err)
	}

	return taskTypes, total, nil
}

// GetTaskType returns a task type by ID.
func (s *TaxonomyService) GetTaskType(id uint64) (*models.TaskType, error) {
	taskType, err := s.taskTypeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskTypeNotFound
		}
		return nil, fmt.Errorf("failed to find task type: %w", err)
	}
	return taskType, nil
}

// DeleteTaskType removes a task type, nulling the reference on its tasks.
func (s *TaxonomyService) DeleteTaskType(id uint64) error {
	if _, err := s.taskTypeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskTypeNotFound
		}
		return fmt.Errorf("failed to find task type: %w", err)
	}

	if err := s.taskTypeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task type: %w", err)
	}

	return nil
}
