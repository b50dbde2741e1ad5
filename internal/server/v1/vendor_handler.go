package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-registry-api/internal/vendors"
)

type VendorHandler struct{}

func NewVendorHandler() *VendorHandler {
	return &VendorHandler{}
}

type vendorInfo struct {
	ID           string         `json:"id"`
	Label        string         `json:"label"`
	DefaultSetup map[string]any `json:"default_setup"`
}

// List returns the available provider integrations.
//
// GET /v1/vendors
func (h *VendorHandler) List(c *gin.Context) {
	ids := vendors.IDs()
	data := make([]vendorInfo, 0, len(ids))
	for _, id := range ids {
		v, err := vendors.Get(id)
		if err != nil {
			continue
		}
		data = append(data, vendorInfo{
			ID:           v.ID(),
			Label:        v.Label(),
			DefaultSetup: v.DefaultSetup(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}
