package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wmsConsultant/backend/internal/model"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// Create inserts a project under an existing client. The client must
// resolve; projects are never silently orphaned.
func (s *ProjectService) Create(project *model.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return fmt.Errorf("40001:project name is required")
	}

	var client model.Client
	if err := s.db.First(&client, project.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("40402:client not found")
		}
		return err
	}

	if project.Status == "" {
		project.Status = model.ProjectStatusPlanning
	}
	if !model.ValidProjectStatus(project.Status) {
		return fmt.Errorf("40001:invalid project status: %s", project.Status)
	}
	return s.db.Create(project).Error
}

func (s *ProjectService) GetByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.Preload("Client").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40403:project not found")
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) ListAll() ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.Preload("Client").Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) ListByClient(clientID uint) ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.Where("client_id = ?", clientID).Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update merges provided fields. client_id is immutable and never appears
// in the update map.
func (s *ProjectService) Update(id uint, updates map[string]interface{}) (*model.Project, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if name, ok := updates["name"]; ok {
		if strings.TrimSpace(fmt.Sprint(name)) == "" {
			return nil, fmt.Errorf("40001:project name is required")
		}
	}
	if status, ok := updates["status"]; ok {
		if !model.ValidProjectStatus(fmt.Sprint(status)) {
			return nil, fmt.Errorf("40001:invalid project status: %v", status)
		}
	}
	if len(updates) > 0 {
		if err := s.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete refuses to remove a project that still has questions.
func (s *ProjectService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	var questionCount int64
	s.db.Model(&model.Question{}).Where("project_id = ?", id).Count(&questionCount)
	if questionCount > 0 {
		return fmt.Errorf("40901:project has %d question(s); delete them first", questionCount)
	}

	return s.db.Delete(&model.Project{}, id).Error
}
