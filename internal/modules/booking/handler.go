package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"roombooking/internal/pkg/response"
	"roombooking/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the read-only booking endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:id", h.GetByID)
	rg.GET("/bookings/history", h.UserHistory)
	rg.GET("/bookings/overlap", h.CheckOverlap)
	rg.GET("/rooms/:id/bookings", h.GetForRoom)
}

// RegisterProtectedRoutes wires the mutating booking endpoints.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/swap", h.Swap)
	rg.DELETE("/bookings/:id", h.Purge)
	rg.POST("/bookings/history/print", h.PrintUserHistory)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) GetForRoom(c *gin.Context) {
	roomID, ok := parseID(c)
	if !ok {
		return
	}

	bookings, err := h.service.GetForRoom(c.Request.Context(), roomID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": toBookingResponses(bookings)})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *Handler) Swap(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SwapBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	b, err := h.service.Swap(c.Request.Context(), id, req.NewRoomID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) Purge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Purge(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking purged"})
}

func (h *Handler) UserHistory(c *gin.Context) {
	booker := c.Query("booker")

	var f repository.HistoryFilter
	var ok bool
	if f.FromDate, ok = parseTimeQuery(c, "from"); !ok {
		return
	}
	if f.ToDate, ok = parseTimeQuery(c, "to"); !ok {
		return
	}
	if f.MinPrice, ok = parsePriceQuery(c, "min_price"); !ok {
		return
	}
	if f.MaxPrice, ok = parsePriceQuery(c, "max_price"); !ok {
		return
	}

	bookings, err := h.service.GetUserHistory(c.Request.Context(), booker, f)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": toBookingResponses(bookings)})
}

func (h *Handler) PrintUserHistory(c *gin.Context) {
	booker := c.Query("booker")

	if err := h.service.PrintUserHistory(c.Request.Context(), booker); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "History printed"})
}

func (h *Handler) CheckOverlap(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid room_id")
		return
	}
	start, err := parseTimeParam(c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid start")
		return
	}
	end, err := parseTimeParam(c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid end")
		return
	}

	overlap, err := h.service.CheckOverlap(c.Request.Context(), roomID, start, end)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"overlap": overlap})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

// parseTimeParam accepts RFC3339 or a plain date.
func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := parseTimeParam(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid "+name)
		return nil, false
	}
	return &t, true
}

func parsePriceQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid "+name)
		return nil, false
	}
	return &v, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, ErrOverlap):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
