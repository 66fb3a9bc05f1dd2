package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/catalog"
	"github.com/wmsConsultant/backend/internal/model"
	"gorm.io/gorm"
)

type ProcessHandler struct {
	db *gorm.DB
}

func NewProcessHandler(db *gorm.DB) *ProcessHandler {
	return &ProcessHandler{db: db}
}

// GET /api/wms-processes
func (h *ProcessHandler) List(c *gin.Context) {
	var processes []model.WMSProcess
	if err := h.db.Order("id asc").Find(&processes).Error; err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, processes)
}

// GET /api/wms-processes/categories
func (h *ProcessHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories())
}
