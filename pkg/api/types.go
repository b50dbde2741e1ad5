package api

// CreateSourceRequest adds a provider endpoint. The source id is minted
// server-side from the vendor id, so callers never pick one.
type CreateSourceRequest struct {
	Label    string         `json:"label" binding:"required"`
	VendorID string         `json:"vendor_id" binding:"required"`
	Setup    map[string]any `json:"setup"`
}

// UpdateSetupRequest shallow-merges fields into a source's setup.
type UpdateSetupRequest struct {
	Setup map[string]any `json:"setup" binding:"required"`
}

// ModelPayload mirrors registry.Model on the wire.
type ModelPayload struct {
	UID           string `json:"uid" binding:"required"`
	SourceID      string `json:"source_id" binding:"required"`
	SourceModelID string `json:"source_model_id" binding:"required"`
	Label         string `json:"label" binding:"required"`
	Description   string `json:"description,omitempty"`

	ContextWindowSize int  `json:"context_window_size"`
	CanStream         bool `json:"can_stream"`
	CanChat           bool `json:"can_chat"`
}

// AddModelsRequest bulk-inserts models; duplicates by uid replace.
type AddModelsRequest struct {
	Models []ModelPayload `json:"models" binding:"required,min=1,dive"`
}

// SourceCreated reports the minted id and how many candidates collided
// before a free one was found.
type SourceCreated struct {
	ID         string `json:"id"`
	Collisions int    `json:"collisions"`
}

// VersionResponse is the polling contract for change detection: clients
// re-fetch when the number moves.
type VersionResponse struct {
	Version uint64 `json:"version"`
}
