package registry

// ModelSource is a configured provider endpoint capable of listing and
// serving models. Setup is a vendor-specific payload; the registry never
// interprets it, it only stores and shallow-merges it.
type ModelSource struct {
	ID       string         `json:"id" yaml:"id" db:"id"`
	Label    string         `json:"label" yaml:"label" db:"label"`
	VendorID string         `json:"vendor_id" yaml:"vendor_id" db:"vendor_id"`
	Setup    map[string]any `json:"setup" yaml:"setup"`
}

// Model is a callable capability advertised by a source.
type Model struct {
	UID           string `json:"uid" yaml:"uid" db:"uid"`
	SourceID      string `json:"source_id" yaml:"source_id" db:"source_id"`
	SourceModelID string `json:"source_model_id" yaml:"source_model_id" db:"source_model_id"`
	Label         string `json:"label" yaml:"label" db:"label"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty" db:"description"`

	ContextWindowSize int  `json:"context_window_size" yaml:"context_window_size" db:"context_window_size"`
	CanStream         bool `json:"can_stream" yaml:"can_stream" db:"can_stream"`
	CanChat           bool `json:"can_chat" yaml:"can_chat" db:"can_chat"`
}

// UnknownSourceLabel is reported for models whose source is missing.
// Dangling references are tolerated and resolved at read time, never
// rejected at write time.
const UnknownSourceLabel = "Unknown"

// JoinedModel is the read-time join of a model with its resolved source.
// SourceLabel is UnknownSourceLabel and VendorID empty when no source
// with a matching ID exists.
type JoinedModel struct {
	Model       Model  `json:"model"`
	SourceLabel string `json:"source_label"`
	VendorID    string `json:"vendor_id,omitempty"`
}

// State is the full persistable snapshot of a registry.
type State struct {
	Sources []ModelSource `json:"sources" yaml:"sources"`
	Models  []Model       `json:"models" yaml:"models"`
}

func copySetup(setup map[string]any) map[string]any {
	if setup == nil {
		return nil
	}
	out := make(map[string]any, len(setup))
	for k, v := range setup {
		out[k] = v
	}
	return out
}

func copySource(src ModelSource) ModelSource {
	src.Setup = copySetup(src.Setup)
	return src
}

func copySources(sources []ModelSource) []ModelSource {
	out := make([]ModelSource, len(sources))
	for i, s := range sources {
		out[i] = copySource(s)
	}
	return out
}

func copyModels(models []Model) []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}
