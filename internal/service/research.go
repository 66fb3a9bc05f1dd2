package service

import (
	"errors"
	"fmt"

	"github.com/wmsConsultant/backend/internal/model"
	"gorm.io/gorm"
)

type ResearchService struct {
	db *gorm.DB
}

func NewResearchService(db *gorm.DB) *ResearchService {
	return &ResearchService{db: db}
}

func (s *ResearchService) ListByClient(clientID uint) ([]model.ResearchRecord, error) {
	var records []model.ResearchRecord
	if err := s.db.Where("client_id = ?", clientID).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CreateBatch appends research drafts for a client. Records are
// append-only; there is no update path.
func (s *ResearchService) CreateBatch(clientID uint, drafts []model.ResearchRecord) ([]model.ResearchRecord, error) {
	var client model.Client
	if err := s.db.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40402:client not found")
		}
		return nil, err
	}

	out := make([]model.ResearchRecord, 0, len(drafts))
	for _, draft := range drafts {
		draft.ID = 0
		draft.ClientID = clientID
		if len(draft.Sources) == 0 {
			draft.Sources = model.StringList{model.SourcesUnavailable}
		}
		if err := s.db.Create(&draft).Error; err != nil {
			return nil, err
		}
		out = append(out, draft)
	}
	return out, nil
}
