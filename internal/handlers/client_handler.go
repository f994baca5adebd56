package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

type UpsertClientRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	Sex         string `json:"sex" binding:"required,oneof=male female"`
}

// ======================================================
// UPSERT
// ======================================================
func (h *ClientHandler) Upsert(c *gin.Context) {
	salonID := middleware.SalonID(c)

	var req UpsertClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos na requisição.")
		return
	}

	db := h.db.WithContext(c.Request.Context())

	client := models.Client{SalonID: salonID}
	status := http.StatusCreated
	if req.ID != "" {
		if err := db.Where("id = ? AND salon_id = ?", req.ID, salonID).First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.NotFound(c, httperr.CodeClientNotFound, "Cliente não encontrado.")
				return
			}
			httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
			return
		}
		status = http.StatusOK
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))
	client.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	client.Sex = req.Sex

	if err := db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_save_client", "Erro ao salvar cliente.")
		return
	}

	c.JSON(status, client)
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", middleware.SalonID(c))

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone_number LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// DELETE (cascata nos agendamentos)
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	salonID := middleware.SalonID(c)
	id := c.Param("id")

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND salon_id = ?", id, salonID).Delete(&models.Client{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("client_id = ? AND salon_id = ?", id, salonID).
			Delete(&models.Appointment{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeClientNotFound, "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   middleware.UserID(c),
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}
