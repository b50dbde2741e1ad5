// Package ollama integrates local Ollama servers via GET /api/tags.
package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/nulzo/model-registry-api/internal/httpclient"
	"github.com/nulzo/model-registry-api/internal/modeldata"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/vendors"
)

const defaultBaseURL = "http://localhost:11434"

func init() {
	vendors.Register(&vendor{client: httpclient.Default})
}

type vendor struct {
	client httpclient.Doer
}

func (v *vendor) ID() string    { return "ollama" }
func (v *vendor) Label() string { return "Ollama" }

func (v *vendor) DefaultSetup() map[string]any {
	return map[string]any{"base_url": defaultBaseURL}
}

func (v *vendor) NormalizeSetup(setup map[string]any) map[string]any {
	out := v.DefaultSetup()
	for k, val := range setup {
		out[k] = val
	}
	if s, _ := out["base_url"].(string); s != "" {
		out["base_url"] = strings.TrimSuffix(s, "/")
	} else {
		out["base_url"] = defaultBaseURL
	}
	return out
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (v *vendor) ListModels(ctx context.Context, sourceID string, setup map[string]any) ([]registry.Model, error) {
	setup = v.NormalizeSetup(setup)
	baseURL := vendors.SetupString(setup, "base_url")

	var listing tagsResponse
	if err := httpclient.GetJSON(ctx, v.client, baseURL+"/api/tags", nil, &listing); err != nil {
		return nil, fmt.Errorf("ollama tag listing failed: %w", err)
	}

	models := make([]registry.Model, 0, len(listing.Models))
	for _, entry := range listing.Models {
		if entry.Name == "" {
			continue
		}
		m := registry.Model{
			UID:           fmt.Sprintf("%s/%s", sourceID, entry.Name),
			SourceID:      sourceID,
			SourceModelID: entry.Name,
			Label:         entry.Name,
			CanStream:     true,
			CanChat:       true,
		}
		if info, ok := modeldata.Lookup(entry.Name); ok {
			m.Label = info.Label
			m.Description = info.Description
			m.ContextWindowSize = info.ContextWindowSize
		}
		models = append(models, m)
	}
	return models, nil
}
