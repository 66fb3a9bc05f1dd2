package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/internal/service"
)

type QuestionHandler struct {
	questionService *service.QuestionService
	projectService  *service.ProjectService
	generator       *service.QuestionGenerator
}

func NewQuestionHandler(questionService *service.QuestionService, projectService *service.ProjectService, generator *service.QuestionGenerator) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		projectService:  projectService,
		generator:       generator,
	}
}

// GET /api/projects/:id/questions
func (h *QuestionHandler) ListByProject(c *gin.Context) {
	questions, err := h.questionService.ListByProject(parseID(c.Param("id")))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, questions)
}

// POST /api/projects/:id/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req struct {
		Category    string `json:"category"`
		Subcategory string `json:"subcategory"`
		Text        string `json:"text" binding:"required"`
		Priority    string `json:"priority"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	category := req.Category
	if category == "" {
		category = "custom"
	}
	subcategory := req.Subcategory
	if subcategory == "" {
		subcategory = "User Defined"
	}

	question := &model.Question{
		ProjectID:   parseID(c.Param("id")),
		Category:    category,
		Subcategory: subcategory,
		Text:        req.Text,
		Priority:    req.Priority,
		Notes:       req.Notes,
	}
	if err := h.questionService.Create(question); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// POST /api/projects/:id/questions/generate
func (h *QuestionHandler) Generate(c *gin.Context) {
	projectID := parseID(c.Param("id"))
	if _, err := h.projectService.GetByID(projectID); err != nil {
		HandleServiceError(c, err)
		return
	}

	var req struct {
		Category   string `json:"category" binding:"required"`
		Count      int    `json:"count"`
		Priority   string `json:"priority"`
		Complexity string `json:"complexity"`
		Persist    *bool  `json:"persist"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	drafts, err := h.generator.Generate(c.Request.Context(), service.GenerateRequest{
		Category:   req.Category,
		Count:      req.Count,
		Priority:   req.Priority,
		Complexity: req.Complexity,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	// Drafts are persisted unless the caller opts out.
	if req.Persist == nil || *req.Persist {
		saved, err := h.questionService.CreateBatch(projectID, drafts)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, saved)
		return
	}

	for i := range drafts {
		drafts[i].ProjectID = projectID
	}
	c.JSON(http.StatusOK, drafts)
}

// PUT /api/questions/:id/answer
func (h *QuestionHandler) Answer(c *gin.Context) {
	var req struct {
		Answer string `json:"answer" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	question, err := h.questionService.Answer(parseID(c.Param("id")), req.Answer, req.Notes)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DELETE /api/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	if err := h.questionService.Delete(parseID(c.Param("id"))); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}
