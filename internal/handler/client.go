package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/internal/service"
)

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clientService.GetByID(parseID(c.Param("id")))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required,max=128"`
		Industry     string `json:"industry" binding:"max=64"`
		CompanySize  string `json:"company_size" binding:"max=32"`
		Location     string `json:"location" binding:"max=128"`
		ContactEmail string `json:"contact_email" binding:"omitempty,email"`
		ContactPhone string `json:"contact_phone" binding:"max=32"`
		Description  string `json:"description" binding:"max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	client := &model.Client{
		Name:         req.Name,
		Industry:     req.Industry,
		CompanySize:  req.CompanySize,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Description:  req.Description,
	}
	if err := h.clientService.Create(client); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req struct {
		Name         *string `json:"name"`
		Industry     *string `json:"industry"`
		CompanySize  *string `json:"company_size"`
		Location     *string `json:"location"`
		ContactEmail *string `json:"contact_email"`
		ContactPhone *string `json:"contact_phone"`
		Description  *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}
	if req.CompanySize != nil {
		updates["company_size"] = *req.CompanySize
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	client, err := h.clientService.Update(parseID(c.Param("id")), updates)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clientService.Delete(parseID(c.Param("id"))); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
