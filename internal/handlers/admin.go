package handlers

import (
	"net/http"

	"heating_advisor/internal/service"

	"github.com/gin-gonic/gin"
)

// maxCatalogBytes caps the size of an uploaded catalog.
const maxCatalogBytes = 8 << 20

const (
	errReadCatalog   = "failed to read catalog body"
	errStoreCatalog  = "failed to store catalog"
	errReloadCatalog = "failed to reload catalog"
)

// @Summary      Replace the device catalog
// @Description  Accepts either a JSON array of devices or an object with "premium" and "budget" arrays.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      []models.Device  true  "Device catalog"
// @Success      200      {object}  map[string]int   "imported"
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/v1/admin/catalog [put]
// @Security     BearerAuth
func (h *Handler) importCatalog(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCatalogBytes)
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errReadCatalog})
		return
	}

	n, err := h.services.Catalog.Import(c.Request.Context(), raw)
	switch {
	case err == nil:
	case isBadRequest(err, service.ErrInvalidCatalog, service.ErrEmptyCatalog, service.ErrDuplicateDeviceID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case n > 0:
		// Catalog is live; only the audit entry was lost.
		if h.log != nil {
			h.log.Errorw("catalog_import_event_failed", "err", err, "devices", n)
		}
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreCatalog, "catalog_import_failed", err)
		return
	}

	if h.log != nil {
		adminID, _ := c.Get(ctxAdminID)
		h.log.Infow("catalog_imported", "devices", n, "admin_id", adminID)
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}

// @Summary      Reload the catalog from storage
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "changed, count"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/admin/catalog/reload [post]
// @Security     BearerAuth
func (h *Handler) reloadCatalog(c *gin.Context) {
	changed, err := h.services.Catalog.Reload(c.Request.Context())
	if err != nil && !changed {
		h.logAndJSONError(c, http.StatusInternalServerError, errReloadCatalog, "catalog_reload_failed", err)
		return
	}
	if err != nil && h.log != nil {
		h.log.Errorw("catalog_reload_event_failed", "err", err)
	}
	c.JSON(http.StatusOK, gin.H{
		"changed": changed,
		"count":   len(h.services.Catalog.Devices()),
	})
}
