package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/internal/service"
)

type ResearchHandler struct {
	researchService *service.ResearchService
	clientService   *service.ClientService
	researcher      *service.Researcher
}

func NewResearchHandler(researchService *service.ResearchService, clientService *service.ClientService, researcher *service.Researcher) *ResearchHandler {
	return &ResearchHandler{
		researchService: researchService,
		clientService:   clientService,
		researcher:      researcher,
	}
}

// GET /api/clients/:id/research
func (h *ResearchHandler) ListByClient(c *gin.Context) {
	records, err := h.researchService.ListByClient(parseID(c.Param("id")))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

// POST /api/clients/:id/research
//
// With no research_type (or "comprehensive") every type is conducted and
// four records are appended; a single valid type conducts just that one.
func (h *ResearchHandler) Conduct(c *gin.Context) {
	clientID := parseID(c.Param("id"))
	client, err := h.clientService.GetByID(clientID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	var req struct {
		ResearchType string `json:"research_type"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequest(c, 40001, "invalid request: "+err.Error())
			return
		}
	}

	if req.ResearchType != "" && !model.ValidResearchType(req.ResearchType) {
		BadRequest(c, 40001, "unknown research type: "+req.ResearchType)
		return
	}

	var drafts []model.ResearchRecord
	if req.ResearchType == "" || req.ResearchType == model.ResearchComprehensive {
		drafts = h.researcher.ConductAll(c.Request.Context(), client)
	} else {
		drafts = []model.ResearchRecord{h.researcher.Conduct(c.Request.Context(), client, req.ResearchType)}
	}

	saved, err := h.researchService.CreateBatch(clientID, drafts)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}
