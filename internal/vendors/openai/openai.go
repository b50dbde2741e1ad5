// Package openai integrates OpenAI-compatible endpoints. Any service
// exposing GET /v1/models with the standard listing shape works through
// this vendor, which is why base_url is part of the setup payload.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/nulzo/model-registry-api/internal/httpclient"
	"github.com/nulzo/model-registry-api/internal/modeldata"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/vendors"
)

const defaultBaseURL = "https://api.openai.com/v1"

func init() {
	vendors.Register(&vendor{client: httpclient.Default})
}

type vendor struct {
	client httpclient.Doer
}

func (v *vendor) ID() string    { return "openai" }
func (v *vendor) Label() string { return "OpenAI" }

func (v *vendor) DefaultSetup() map[string]any {
	return map[string]any{
		"base_url": defaultBaseURL,
		"api_key":  "",
	}
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

type listResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (v *vendor) ListModels(ctx context.Context, sourceID string, setup map[string]any) ([]registry.Model, error) {
	setup = v.NormalizeSetup(setup)
	baseURL := vendors.SetupString(setup, "base_url")

	headers := map[string]string{}
	if key := vendors.SetupString(setup, "api_key"); key != "" {
		headers["Authorization"] = "Bearer " + key
	}

	var listing listResponse
	if err := httpclient.GetJSON(ctx, v.client, baseURL+"/models", headers, &listing); err != nil {
		return nil, fmt.Errorf("openai model listing failed: %w", err)
	}

	models := make([]registry.Model, 0, len(listing.Data))
	for _, entry := range listing.Data {
		if entry.ID == "" {
			continue
		}
		m := registry.Model{
			UID:           fmt.Sprintf("%s/%s", sourceID, entry.ID),
			SourceID:      sourceID,
			SourceModelID: entry.ID,
			Label:         entry.ID,
			CanStream:     true,
			CanChat:       true,
		}
		// the listing endpoint reports ids only
		if info, ok := modeldata.Lookup(entry.ID); ok {
			m.Label = info.Label
			m.Description = info.Description
			m.ContextWindowSize = info.ContextWindowSize
		}
		models = append(models, m)
	}
	return models, nil
}
