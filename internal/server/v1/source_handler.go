package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-registry-api/internal/discovery"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/server/validator"
	"github.com/nulzo/model-registry-api/internal/vendors"
	"github.com/nulzo/model-registry-api/pkg/api"
)

type SourceHandler struct {
	registry  *registry.Registry
	discovery *discovery.Service
}

func NewSourceHandler(reg *registry.Registry, disc *discovery.Service) *SourceHandler {
	return &SourceHandler{registry: reg, discovery: disc}
}

// List returns all configured sources.
//
// GET /v1/sources
func (h *SourceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   h.registry.Sources(),
	})
}

// Create adds a source for a vendor. The id is minted from the vendor
// id; when taken, a numeric suffix is appended until a free id is
// found. The vendor's default setup is merged under the caller's.
//
// POST /v1/sources
func (h *SourceHandler) Create(c *gin.Context) {
	var req api.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.ValidationProblem(validator.ParseValidationError(err)))
		return
	}

	vendor, err := vendors.Get(req.VendorID)
	if err != nil {
		c.Error(api.BadRequest("unknown vendor: " + req.VendorID))
		return
	}

	setup := vendor.DefaultSetup()
	for k, v := range req.Setup {
		setup[k] = v
	}
	setup = vendor.NormalizeSetup(setup)

	// mint and insert in one registry critical section; two concurrent
	// creates for the same vendor must not pick the same id
	id, collisions := h.registry.AddSourceWithMintedID(registry.ModelSource{
		Label:    req.Label,
		VendorID: req.VendorID,
		Setup:    setup,
	})

	c.JSON(http.StatusCreated, api.SourceCreated{ID: id, Collisions: collisions})
}

// Delete removes a source together with every model that referenced
// it. Deleting an id that is not present is not an error; dangling
// models for that id are still swept.
//
// DELETE /v1/sources/:id
func (h *SourceHandler) Delete(c *gin.Context) {
	h.registry.RemoveSource(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// UpdateSetup shallow-merges fields into the source's setup payload.
// Top-level keys are replaced wholesale; nothing is merged recursively.
//
// PATCH /v1/sources/:id/setup
func (h *SourceHandler) UpdateSetup(c *gin.Context) {
	var req api.UpdateSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.ValidationProblem(validator.ParseValidationError(err)))
		return
	}

	h.registry.UpdateSourceSetup(c.Param("id"), req.Setup)
	c.Status(http.StatusNoContent)
}

// Discover fetches the source's live model listing and inserts it into
// the registry.
//
// POST /v1/sources/:id/discover
func (h *SourceHandler) Discover(c *gin.Context) {
	count, err := h.discovery.DiscoverSource(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, discovery.ErrSourceNotFound):
			c.Error(api.NotFound("no source with id " + c.Param("id")))
		case errors.Is(err, vendors.ErrUnknownVendor):
			c.Error(api.BadRequest("source references an unknown vendor"))
		default:
			c.Error(api.UpstreamFailure("failed to list models from the source endpoint", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"discovered": count})
}
