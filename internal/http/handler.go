package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mahi-cyberaware/vehicleinfo/internal/http/middleware"
	"github.com/mahi-cyberaware/vehicleinfo/internal/report"
	"github.com/mahi-cyberaware/vehicleinfo/internal/service"
)

type Handler struct {
	lookupService *service.LookupService
	reportWriter  *report.Writer
	log           zerolog.Logger
}

func NewHandler(lookupService *service.LookupService, reportWriter *report.Writer, log zerolog.Logger) *Handler {
	return &Handler{
		lookupService: lookupService,
		reportWriter:  reportWriter,
		log:           log,
	}
}

func (h *Handler) Register(r *gin.Engine, tokenMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")
	api.Use(tokenMiddleware)
	{
		api.GET("/vehicles/:plate", h.getVehicle)
		api.POST("/lookup", h.lookup)
	}
}

func (h *Handler) getVehicle(c *gin.Context) {
	h.respond(c, c.Param("plate"), c.Query("save") == "true")
}

func (h *Handler) lookup(c *gin.Context) {
	var req struct {
		VehicleNumber string `json:"vehicle_number" binding:"required"`
		Save          bool   `json:"save"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	h.respond(c, req.VehicleNumber, req.Save)
}

func (h *Handler) respond(c *gin.Context, plateNo string, save bool) {
	result, err := h.lookupService.Lookup(c.Request.Context(), plateNo)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlate) {
			c.JSON(http.StatusBadRequest, errorResponse("invalid registration number"))
			return
		}
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("lookup failed")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		return
	}

	rendered := report.Render(result.Record, result.Source)

	resp := gin.H{
		"plate":  result.Plate,
		"source": result.Source,
		"record": result.Record,
		"report": rendered,
	}
	if result.FallbackReason != "" {
		resp["fallback_reason"] = result.FallbackReason
	}

	if save {
		content := report.Compose(result.Plate, result.Source, rendered, time.Now())
		path, err := h.reportWriter.Save(result.Plate, content)
		if err != nil {
			// Saving is best-effort; the lookup result still goes out.
			h.log.Error().Err(err).Str("plate", result.Plate).Msg("failed to save report")
			resp["save_error"] = err.Error()
		} else {
			resp["report_file"] = path
		}
	}

	c.JSON(http.StatusOK, resp)
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
