package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wmsConsultant/backend/internal/model"
	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) Create(q *model.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("40001:question text is required")
	}

	var project model.Project
	if err := s.db.First(&project, q.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("40403:project not found")
		}
		return err
	}

	if q.Priority == "" {
		q.Priority = model.PriorityMedium
	}
	if !model.ValidPriority(q.Priority) {
		return fmt.Errorf("40001:invalid priority: %s", q.Priority)
	}
	return s.db.Create(q).Error
}

// CreateBatch persists generated drafts under one project.
func (s *QuestionService) CreateBatch(projectID uint, drafts []model.Question) ([]model.Question, error) {
	var project model.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40403:project not found")
		}
		return nil, err
	}

	out := make([]model.Question, 0, len(drafts))
	for _, draft := range drafts {
		draft.ID = 0
		draft.ProjectID = projectID
		if err := s.db.Create(&draft).Error; err != nil {
			return nil, err
		}
		out = append(out, draft)
	}
	return out, nil
}

func (s *QuestionService) GetByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := s.db.First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40404:question not found")
		}
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) ListByProject(projectID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := s.db.Where("project_id = ?", projectID).Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Answer records an answer. Resubmission overwrites idempotently; the
// answered_at timestamp is set only on the first false-to-true transition.
func (s *QuestionService) Answer(id uint, answer, notes string) (*model.Question, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("40001:answer must not be empty")
	}

	q, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"answer":      answer,
		"is_answered": true,
	}
	if notes != "" {
		updates["notes"] = notes
	}
	if !q.IsAnswered {
		updates["answered_at"] = time.Now()
	}
	if err := s.db.Model(&model.Question{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&model.Question{}, id).Error
}
