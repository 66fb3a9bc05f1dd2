package service

import (
	"math"
	"time"

	"github.com/wmsConsultant/backend/internal/model"
	"gorm.io/gorm"
)

type Summary struct {
	TotalClients         int64           `json:"total_clients"`
	TotalProjects        int64           `json:"total_projects"`
	TotalQuestions       int64           `json:"total_questions"`
	AnsweredQuestions    int64           `json:"answered_questions"`
	CompletionRate       int             `json:"completion_rate"`
	IndustryDistribution []IndustryCount `json:"industry_distribution"`
	RecentProjects       []RecentProject `json:"recent_projects"`
}

type IndustryCount struct {
	Industry string `json:"industry"`
	Count    int64  `json:"count"`
}

type RecentProject struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	ClientID   uint      `json:"client_id"`
	ClientName string    `json:"client_name"`
	CreatedAt  time.Time `json:"created_at"`
}

const recentProjectLimit = 5

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summarize computes read-only stats over the whole store. An empty store
// yields zeros and empty slices, never nil.
func (s *DashboardService) Summarize() (*Summary, error) {
	summary := &Summary{
		IndustryDistribution: make([]IndustryCount, 0),
		RecentProjects:       make([]RecentProject, 0),
	}

	if err := s.db.Model(&model.Client{}).Count(&summary.TotalClients).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Project{}).Count(&summary.TotalProjects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Question{}).Count(&summary.TotalQuestions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Question{}).Where("is_answered = ?", true).Count(&summary.AnsweredQuestions).Error; err != nil {
		return nil, err
	}
	if summary.TotalQuestions > 0 {
		summary.CompletionRate = int(math.Round(float64(summary.AnsweredQuestions) / float64(summary.TotalQuestions) * 100))
	}

	if err := s.db.Model(&model.Client{}).
		Select("industry, count(*) as count").
		Where("industry <> ''").
		Group("industry").
		Order("count desc, industry asc").
		Scan(&summary.IndustryDistribution).Error; err != nil {
		return nil, err
	}

	var recent []model.Project
	if err := s.db.Preload("Client").
		Order("created_at desc, id desc").
		Limit(recentProjectLimit).
		Find(&recent).Error; err != nil {
		return nil, err
	}
	for _, p := range recent {
		rp := RecentProject{
			ID:        p.ID,
			Name:      p.Name,
			Status:    p.Status,
			ClientID:  p.ClientID,
			CreatedAt: p.CreatedAt,
		}
		if p.Client != nil {
			rp.ClientName = p.Client.Name
		}
		summary.RecentProjects = append(summary.RecentProjects, rp)
	}

	return summary, nil
}
