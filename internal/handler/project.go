package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// GET /api/projects
func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.projectService.ListAll()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /api/clients/:id/projects
func (h *ProjectHandler) ListByClient(c *gin.Context) {
	projects, err := h.projectService.ListByClient(parseID(c.Param("id")))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.GetByID(parseID(c.Param("id")))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// POST /api/clients/:id/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name               string     `json:"name" binding:"required,max=128"`
		Description        string     `json:"description" binding:"max=5000"`
		Status             string     `json:"status"`
		StartDate          *time.Time `json:"start_date"`
		ExpectedCompletion *time.Time `json:"expected_completion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	project := &model.Project{
		ClientID:           parseID(c.Param("id")),
		Name:               req.Name,
		Description:        req.Description,
		Status:             req.Status,
		StartDate:          req.StartDate,
		ExpectedCompletion: req.ExpectedCompletion,
	}
	if err := h.projectService.Create(project); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req struct {
		Name               *string    `json:"name"`
		Description        *string    `json:"description"`
		Status             *string    `json:"status"`
		StartDate          *time.Time `json:"start_date"`
		ExpectedCompletion *time.Time `json:"expected_completion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.ExpectedCompletion != nil {
		updates["expected_completion"] = *req.ExpectedCompletion
	}

	project, err := h.projectService.Update(parseID(c.Param("id")), updates)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(parseID(c.Param("id"))); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
