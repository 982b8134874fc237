package handlers

import (
	"errors"
	"net/http"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errMissingArea     = "query parameter 'area' is required"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// RecommendRequest is the body of POST /api/v1/recommendations.
type RecommendRequest struct {
	Inputs models.UserInputs `json:"inputs"`
	// Sort order. Allowed: best, price_asc, price_desc, power_asc, power_desc
	Sort string `json:"sort,omitempty" example:"best"`
	// Disable the capacity and budget filters
	ShowAll bool `json:"show_all,omitempty"`
}

// RecommendResponse is an engine result plus the two empty-state flags the
// client needs to tell "no catalog" from "nothing fits".
type RecommendResponse struct {
	engine.Result
	CatalogEmpty bool `json:"catalog_empty"`
	NoMatches    bool `json:"no_matches"`
}

func newRecommendResponse(res engine.Result) RecommendResponse {
	return RecommendResponse{Result: res, CatalogEmpty: res.CatalogEmpty(), NoMatches: res.NoMatches()}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  statusOK,
		"devices": len(h.services.Catalog.Devices()),
	})
}

// @Summary      List catalog devices
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Router       /api/v1/catalog/devices [get]
func (h *Handler) listDevices(c *gin.Context) {
	devices := h.services.Catalog.Devices()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(devices),
		"devices": devices,
	})
}

// @Summary      Estimate required heating capacity
// @Tags         advisor
// @Produce      json
// @Param        area        query  string  true   "Heated area in m²"  example(120)
// @Param        insulation  query  string  false  "Insulation class label"
// @Success      200  {object}  map[string]int  "required_kw"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/estimate [get]
func (h *Handler) estimate(c *gin.Context) {
	area := c.Query("area")
	if area == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingArea})
		return
	}
	required := h.services.Advisor.Estimate(area, c.Query("insulation"))
	c.JSON(http.StatusOK, gin.H{"required_kw": required})
}

// @Summary      Recommend heating devices
// @Description  Filters, scores and sorts the catalog for the described building. Unknown sort modes are rejected.
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        payload  body      RecommendRequest  true  "Building description"
// @Success      200      {object}  RecommendResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/v1/recommendations [post]
func (h *Handler) recommend(c *gin.Context) {
	var body RecommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	mode, err := engine.ParseSortMode(body.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Inputs.DHW = models.ParseDHWMode(string(body.Inputs.DHW))

	res := h.services.Advisor.Recommend(engine.Request{
		Inputs:  body.Inputs,
		Sort:    mode,
		ShowAll: body.ShowAll,
	})
	if h.log != nil {
		h.log.Debugw("recommendation_served",
			"required_kw", res.RequiredKW, "matches", len(res.Devices), "sort", res.Sort, "show_all", res.ShowAll)
	}
	c.JSON(http.StatusOK, newRecommendResponse(res))
}

func isBadRequest(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
