package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jattkaim/gomiio"
	"github.com/jattkaim/gomiio/internal/logger"
)

// handler exposes one device over HTTP.
type handler struct {
	client *gomiio.MiioClient
	family gomiio.Family
	log    *logger.Logger
}

type configurationRequest struct {
	Model       string `json:"model" binding:"required"`
	Power       string `json:"power" binding:"required"`
	Mode        string `json:"mode" binding:"required"`
	Temperature *int   `json:"temperature" binding:"required"`
	FanSpeed    string `json:"fan_speed" binding:"required"`
	SwingMode   string `json:"swing_mode" binding:"required"`
	Led         string `json:"led" binding:"required"`
}

type commandRequest struct {
	Command string `json:"command" binding:"required"`
}

type irCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func newRouter(client *gomiio.MiioClient, family gomiio.Family, log *logger.Logger) *gin.Engine {
	h := &handler{client: client, family: family, log: log}

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.GET("/status", h.status)
		api.POST("/power/:state", h.power)
	}

	if family == gomiio.FamilyACPartner {
		api.POST("/configuration", h.sendConfiguration)
		api.POST("/command", h.sendCommand)

		ir := api.Group("/ir")
		{
			ir.POST("/code", h.sendIRCode)
			ir.POST("/learn/:slot", h.learn)
			ir.GET("/learn", h.learnResult)
			ir.DELETE("/learn/:slot", h.learnStop)
		}
	}
	return router
}

// respondError maps precondition failures to 400 and everything else,
// which came from the device side, to 502.
func (h *handler) respondError(c *gin.Context, logKey string, err error) {
	var invalid *gomiio.InvalidValueError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.log != nil {
		h.log.Errorw(logKey, "err", err, "family", h.family)
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func (h *handler) status(c *gin.Context) {
	status, err := h.client.StatusOf(c.Request.Context(), h.family)
	if err != nil {
		h.respondError(c, "status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"family": h.family,
		"status": status.Fields(),
	})
}

func (h *handler) power(c *gin.Context) {
	device, err := h.client.Device(h.family)
	if err != nil {
		h.respondError(c, "power", err)
		return
	}

	var result any
	switch state := c.Param("state"); state {
	case "on":
		result, err = device.On(c.Request.Context())
	case "off":
		result, err = device.Off(c.Request.Context())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "power state must be on or off"})
		return
	}
	if err != nil {
		h.respondError(c, "power", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *handler) sendConfiguration(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	cfg, err := parseConfiguration(req.Power, req.Mode, strconv.Itoa(*req.Temperature),
		req.FanSpeed, req.SwingMode, req.Led)
	if err != nil {
		h.respondError(c, "configuration", err)
		return
	}

	encoded, err := h.client.SendConfiguration(c.Request.Context(), req.Model, cfg)
	if err != nil {
		h.respondError(c, "configuration", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"command": encoded})
}

func (h *handler) sendCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	result, err := h.client.ACPartner().SendCommand(c.Request.Context(), req.Command)
	if err != nil {
		h.respondError(c, "command", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *handler) sendIRCode(c *gin.Context) {
	var req irCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	result, err := h.client.ACPartner().SendIRCode(c.Request.Context(), req.Code)
	if err != nil {
		h.respondError(c, "ir code", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *handler) learn(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}
	result, err := h.client.ACPartner().Learn(c.Request.Context(), slot)
	if err != nil {
		h.respondError(c, "learn", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot, "result": result})
}

func (h *handler) learnResult(c *gin.Context) {
	result, err := h.client.ACPartner().LearnResult(c.Request.Context())
	if err != nil {
		h.respondError(c, "learn result", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *handler) learnStop(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}
	result, err := h.client.ACPartner().LearnStop(c.Request.Context(), slot)
	if err != nil {
		h.respondError(c, "learn stop", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot, "result": result})
}

func slotParam(c *gin.Context) (int, bool) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be an integer"})
		return 0, false
	}
	return slot, true
}
