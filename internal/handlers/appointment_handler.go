package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *usecase.GetAvailability
	create       *usecase.CreateAppointment
	list         *usecase.ListAppointments
	updateStatus *usecase.UpdateAppointmentStatus
	remove       *usecase.DeleteAppointment
	checkout     *usecase.CreateCheckout
}

func NewAppointmentHandler(
	availability *usecase.GetAvailability,
	create *usecase.CreateAppointment,
	list *usecase.ListAppointments,
	updateStatus *usecase.UpdateAppointmentStatus,
	remove *usecase.DeleteAppointment,
	checkout *usecase.CreateCheckout,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		list:         list,
		updateStatus: updateStatus,
		remove:       remove,
		checkout:     checkout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID                string `json:"client_id" binding:"required"`
	ProfessionalID          string `json:"professional_id" binding:"required"`
	Date                    string `json:"date" binding:"required"`
	Time                    string `json:"time" binding:"required"`
	AppointmentPriceInCents int    `json:"appointment_price_in_cents"`
	Status                  string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        middleware.SalonID(c),
		ProfessionalID: c.Param("id"),
		Date:           c.Query("date"),
	})
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_get_availability")
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos na requisição.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		SalonID:        middleware.SalonID(c),
		UserID:         middleware.UserID(c),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		PriceInCents:   req.AppointmentPriceInCents,
		Status:         req.Status,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_create_appointment")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), middleware.SalonID(c), c.Query("date"))
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos na requisição.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		middleware.SalonID(c),
		middleware.UserID(c),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	err := h.remove.Execute(
		c.Request.Context(),
		middleware.SalonID(c),
		middleware.UserID(c),
		c.Param("id"),
	)
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_delete_appointment")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *AppointmentHandler) Checkout(c *gin.Context) {
	out, err := h.checkout.Execute(c.Request.Context(), middleware.SalonID(c), c.Param("id"))
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_create_checkout")
		return
	}

	c.JSON(http.StatusCreated, out)
}
