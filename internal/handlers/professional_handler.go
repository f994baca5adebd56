package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/imaging"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/storage"
)

const maxAvatarBytes = 5 << 20

type ProfessionalHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	avatars storage.ObjectStore
}

// NewProfessionalHandler accepts a nil avatar store; uploads then answer 503.
func NewProfessionalHandler(db *gorm.DB, audit *audit.Dispatcher, avatars storage.ObjectStore) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, audit: audit, avatars: avatars}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertProfessionalRequest struct {
	ID                      string `json:"id"`
	Name                    string `json:"name" binding:"required"`
	Specialty               string `json:"specialty" binding:"required"`
	AvailableFromWeekDay    *int   `json:"available_from_week_day" binding:"required"`
	AvailableToWeekDay      *int   `json:"available_to_week_day" binding:"required"`
	AvailableFromTime       string `json:"available_from_time" binding:"required"`
	AvailableToTime         string `json:"available_to_time" binding:"required"`
	AppointmentPriceInCents int    `json:"appointment_price_in_cents" binding:"required"`
}

// schedule checks the weekly availability and returns the normalized
// HH:MM:SS bounds.
func (r *UpsertProfessionalRequest) schedule() (from, to string, ok bool) {
	if _, err := domain.WeekRange(*r.AvailableFromWeekDay, *r.AvailableToWeekDay); err != nil {
		return "", "", false
	}
	window, err := domain.ParseWindow(r.AvailableFromTime, r.AvailableToTime)
	if err != nil || !window.Valid() {
		return "", "", false
	}
	return window.From.String(), window.To.String(), true
}

// ======================================================
// UPSERT
// ======================================================

func (h *ProfessionalHandler) Upsert(c *gin.Context) {
	salonID := middleware.SalonID(c)

	var req UpsertProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos na requisição.")
		return
	}

	from, to, ok := req.schedule()
	if !ok {
		httperr.BadRequest(c, httperr.CodeValidation, "Disponibilidade inválida.")
		return
	}
	if req.AppointmentPriceInCents < 1 {
		httperr.BadRequest(c, httperr.CodeValidation, "Preço deve ser positivo.")
		return
	}

	db := h.db.WithContext(c.Request.Context())

	p := models.Professional{SalonID: salonID}
	status := http.StatusCreated
	if req.ID != "" {
		if err := db.Where("id = ? AND salon_id = ?", req.ID, salonID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.NotFound(c, httperr.CodeProfessionalNotFound, "Profissional não encontrado.")
				return
			}
			httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
			return
		}
		status = http.StatusOK
	}

	p.Name = strings.TrimSpace(req.Name)
	p.Specialty = strings.TrimSpace(req.Specialty)
	p.AvailableFromWeekDay = *req.AvailableFromWeekDay
	p.AvailableToWeekDay = *req.AvailableToWeekDay
	p.AvailableFromTime = from
	p.AvailableToTime = to
	p.AppointmentPriceInCents = req.AppointmentPriceInCents

	if err := db.Save(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_save_professional", "Erro ao salvar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   middleware.UserID(c),
		Action:   "professional_upserted",
		Entity:   "professional",
		EntityID: p.ID,
	})

	c.JSON(status, p)
}

// ======================================================
// LIST
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	var professionals []models.Professional
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", middleware.SalonID(c)).
		Order("name ASC").
		Find(&professionals).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, professionals)
}

// ======================================================
// DELETE (cascata nos agendamentos)
// ======================================================

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	salonID := middleware.SalonID(c)
	id := c.Param("id")

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND salon_id = ?", id, salonID).Delete(&models.Professional{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("professional_id = ? AND salon_id = ?", id, salonID).
			Delete(&models.Appointment{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeProfessionalNotFound, "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao remover profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   middleware.UserID(c),
		Action:   "professional_deleted",
		Entity:   "professional",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// AVATAR
// ======================================================

func (h *ProfessionalHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		httperr.FromBusiness(c, httperr.ErrBusiness(httperr.CodeStorageUnavailable), "")
		return
	}

	salonID := middleware.SalonID(c)
	db := h.db.WithContext(c.Request.Context())

	var p models.Professional
	if err := db.Where("id = ? AND salon_id = ?", c.Param("id"), salonID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeProfessionalNotFound, "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
		return
	}

	header, err := c.FormFile("file")
	if err != nil || header.Size > maxAvatarBytes {
		httperr.BadRequest(c, "invalid_file", "Envie uma imagem de até 5MB no campo file.")
		return
	}
	file, err := header.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}
	defer file.Close()

	body, err := imaging.AvatarWebP(file, imaging.AvatarMaxSide)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado.")
		return
	}

	key := "salons/" + salonID + "/professionals/" + p.ID + "/" + uuid.NewString() + ".webp"
	url, err := h.avatars.Put(c.Request.Context(), key, "image/webp", body)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Erro ao enviar a imagem.")
		return
	}

	if err := db.Model(&p).Update("avatar_image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_professional", "Erro ao salvar profissional.")
		return
	}
	p.AvatarImageURL = url

	c.JSON(http.StatusOK, p)
}
