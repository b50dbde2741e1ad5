package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/pkg/api"
)

type RegistryHandler struct {
	registry *registry.Registry
}

func NewRegistryHandler(reg *registry.Registry) *RegistryHandler {
	return &RegistryHandler{registry: reg}
}

// Version returns the registry's mutation counter. Clients poll it and
// re-fetch collections whenever the number moves.
//
// GET /v1/registry/version
func (h *RegistryHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, api.VersionResponse{Version: h.registry.Version()})
}
