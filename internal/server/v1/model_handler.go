package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/server/validator"
	"github.com/nulzo/model-registry-api/pkg/api"
)

type ModelHandler struct {
	registry *registry.Registry
}

func NewModelHandler(reg *registry.Registry) *ModelHandler {
	return &ModelHandler{registry: reg}
}

// List returns every model joined with the label and vendor of its
// source. Models whose source was removed still appear, with the
// fallback source label.
//
// GET /v1/models
func (h *ModelHandler) List(c *gin.Context) {
	joined := h.registry.JoinedModels()

	if sourceID := c.Query("source_id"); sourceID != "" {
		filtered := joined[:0]
		for _, m := range joined {
			if m.Model.SourceID == sourceID {
				filtered = append(filtered, m)
			}
		}
		joined = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   joined,
	})
}

// Add inserts the given models. A model whose uid is already present
// replaces the existing entry.
//
// POST /v1/models
func (h *ModelHandler) Add(c *gin.Context) {
	var req api.AddModelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(api.ValidationProblem(validator.ParseValidationError(err)))
		return
	}

	models := make([]registry.Model, 0, len(req.Models))
	for _, p := range req.Models {
		models = append(models, registry.Model{
			UID:               p.UID,
			SourceID:          p.SourceID,
			SourceModelID:     p.SourceModelID,
			Label:             p.Label,
			Description:       p.Description,
			ContextWindowSize: p.ContextWindowSize,
			CanStream:         p.CanStream,
			CanChat:           p.CanChat,
		})
	}
	h.registry.AddModels(models...)

	c.JSON(http.StatusOK, gin.H{"added": len(models)})
}

// Remove deletes a model by uid. Removing a uid that is not present is
// not an error.
//
// DELETE /v1/models/*uid
func (h *ModelHandler) Remove(c *gin.Context) {
	// the wildcard param keeps its leading slash
	uid := strings.TrimPrefix(c.Param("uid"), "/")
	if uid == "" {
		c.Error(api.BadRequest("model uid is required"))
		return
	}

	h.registry.RemoveModel(uid)
	c.Status(http.StatusNoContent)
}
