package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wmsConsultant/backend/internal/model"
	"gorm.io/gorm"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) Create(client *model.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return fmt.Errorf("40001:client name is required")
	}
	return s.db.Create(client).Error
}

func (s *ClientService) GetByID(id uint) (*model.Client, error) {
	var client model.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40402:client not found")
		}
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) List() ([]model.Client, error) {
	var clients []model.Client
	if err := s.db.Order("id asc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Update merges only the provided fields. ID is never part of updates;
// callers build the map from a pointer-field request.
func (s *ClientService) Update(id uint, updates map[string]interface{}) (*model.Client, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if name, ok := updates["name"]; ok {
		if strings.TrimSpace(fmt.Sprint(name)) == "" {
			return nil, fmt.Errorf("40001:client name is required")
		}
	}
	if len(updates) > 0 {
		if err := s.db.Model(&model.Client{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete refuses to remove a client that still owns projects or research
// records. No cascading.
func (s *ClientService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	var projectCount int64
	s.db.Model(&model.Project{}).Where("client_id = ?", id).Count(&projectCount)
	if projectCount > 0 {
		return fmt.Errorf("40901:client has %d project(s); delete them first", projectCount)
	}

	var researchCount int64
	s.db.Model(&model.ResearchRecord{}).Where("client_id = ?", id).Count(&researchCount)
	if researchCount > 0 {
		return fmt.Errorf("40901:client has %d research record(s); research history is preserved", researchCount)
	}

	return s.db.Delete(&model.Client{}, id).Error
}
