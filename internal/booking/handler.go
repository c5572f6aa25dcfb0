package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	Service  *Service
	Exporter Exporter
}

func NewHandler(s *Service, e Exporter) *Handler {
	return &Handler{Service: s, Exporter: e}
}

// draftView is the wire shape of a draft plus the wizard controls the client
// needs to render the current step.
func draftView(d *Draft) gin.H {
	return gin.H{
		"draft":          d,
		"step":           d.Step.String(),
		"visible_fields": d.VisibleFields(),
		"missing_fields": d.MissingFields(),
		"can_advance":    d.CanAdvance(),
		"can_go_back":    d.CanGoBack(),
	}
}

// ===========================
// 🆕 Create Draft - POST /bookings/drafts
func (h *Handler) CreateDraft(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	d, err := h.Service.CreateDraft(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		if errors.Is(err, ErrInvalidServiceType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create draft: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, draftView(d))
}

// ===========================
// 🔍 Get Draft - GET /bookings/drafts/:id
func (h *Handler) GetDraft(c *gin.Context) {
	d, err := h.Service.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load draft"})
		return
	}

	c.JSON(http.StatusOK, draftView(d))
}

// ===========================
// ✏️ Update Draft - PATCH /bookings/drafts/:id
func (h *Handler) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	d, err := h.Service.UpdateDraft(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
		case errors.Is(err, ErrInvalidServiceType),
			errors.Is(err, ErrInvalidPartySize):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrItemLocked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update draft: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, draftView(d))
}

// ===========================
// ➡️ Next Step - POST /bookings/drafts/:id/next
func (h *Handler) NextStep(c *gin.Context) {
	d, err := h.Service.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
		case errors.Is(err, ErrStepIncomplete), errors.Is(err, ErrAtFinalStep):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance draft"})
		}
		return
	}

	c.JSON(http.StatusOK, draftView(d))
}

// ===========================
// ⬅️ Previous Step - POST /bookings/drafts/:id/back
func (h *Handler) PreviousStep(c *gin.Context) {
	d, err := h.Service.Regress(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
		case errors.Is(err, ErrAtFirstStep):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move draft back"})
		}
		return
	}

	c.JSON(http.StatusOK, draftView(d))
}

// ===========================
// 💰 Summary - GET /bookings/drafts/:id/summary
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ===========================
// ✅ Submit - POST /bookings/drafts/:id/submit
func (h *Handler) SubmitDraft(c *gin.Context) {
	b, err := h.Service.Submit(c.Request.Context(), c.Param("id"), c.ClientIP())
	if err != nil {
		var incomplete *IncompleteDraftError
		switch {
		case errors.Is(err, ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
		case errors.As(err, &incomplete):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":         "rejected",
				"error":          "booking rejected: draft is incomplete",
				"missing_fields": incomplete.Missing,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": "rejected",
				"error":  "failed to submit booking: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":    "confirmed",
		"reference": b.Reference,
		"total":     b.Total,
		"booking":   b,
	})
}

// ===========================
// 🗑️ Discard Draft - DELETE /bookings/drafts/:id
func (h *Handler) DiscardDraft(c *gin.Context) {
	if err := h.Service.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to discard draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}

// ===========================
// 📄 List Bookings - GET /bookings
func (h *Handler) ListBookings(c *gin.Context) {
	var filter BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	bookings, total, err := h.Service.SearchBookings(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": total})
}

// ===========================
// 🔍 Get Booking - GET /bookings/:reference
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// ===========================
// 📊 Export Bookings - GET /bookings/export
func (h *Handler) ExportBookings(c *gin.Context) {
	var filter BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	bookings, _, err := h.Service.SearchBookings(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}

	data, filename, contentType, err := h.Exporter.ExportBookings(c.Query("format"), bookings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Service.Audit.LogAction(c.Request.Context(), "back-office", "BOOKINGS_EXPORTED", map[string]interface{}{
		"count":  len(bookings),
		"format": c.Query("format"),
	}, c.ClientIP(), "success")

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// ===========================
// 🧾 Voucher - GET /bookings/:reference/voucher
func (h *Handler) GetVoucher(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking"})
		return
	}

	data, filename, contentType, err := h.Exporter.Voucher(b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render voucher"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
