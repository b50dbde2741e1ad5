package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-registry-api/internal/persona"
	"github.com/nulzo/model-registry-api/pkg/api"
)

type PersonaHandler struct{}

func NewPersonaHandler() *PersonaHandler {
	return &PersonaHandler{}
}

// List returns the full persona catalog.
//
// GET /v1/personas
func (h *PersonaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"object":  "list",
		"data":    persona.All(),
		"default": persona.DefaultID,
	})
}

// Get returns one persona by id.
//
// GET /v1/personas/:id
func (h *PersonaHandler) Get(c *gin.Context) {
	rec, ok := persona.Get(persona.ID(c.Param("id")))
	if !ok {
		c.Error(api.NotFound("no persona with id " + c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, rec)
}
