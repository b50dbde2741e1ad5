// Package modeldata carries static metadata for well-known model ids.
// Listing endpoints rarely advertise context windows, so discovery
// consults this table to enrich what the wire gave it.
package modeldata

import "strings"

// Info is the compiled-in metadata for one model id.
type Info struct {
	Label             string
	Description       string
	ContextWindowSize int
	CanStream         bool
	CanChat           bool
}

var knownModels = map[string]Info{
	// OpenAI
	"gpt-4o": {
		Label:             "GPT-4o",
		Description:       "OpenAI's fastest and most capable multimodal model.",
		ContextWindowSize: 128000,
		CanStream:         true,
		CanChat:           true,
	},
	"gpt-4o-mini": {
		Label:             "GPT-4o mini",
		Description:       "Small, cost-effective member of the GPT-4o family.",
		ContextWindowSize: 128000,
		CanStream:         true,
		CanChat:           true,
	},
	"gpt-4-turbo": {
		Label:             "GPT-4 Turbo",
		Description:       "GPT-4 with improved instruction following and JSON mode.",
		ContextWindowSize: 128000,
		CanStream:         true,
		CanChat:           true,
	},
	"gpt-3.5-turbo": {
		Label:             "GPT-3.5 Turbo",
		Description:       "The most cost-effective model in the GPT-3.5 family.",
		ContextWindowSize: 16385,
		CanStream:         true,
		CanChat:           true,
	},

	// Ollama library
	"llama3": {
		Label:             "Llama 3",
		Description:       "Meta's Llama 3 family served locally.",
		ContextWindowSize: 8192,
		CanStream:         true,
		CanChat:           true,
	},
	"llama3.1": {
		Label:             "Llama 3.1",
		ContextWindowSize: 131072,
		CanStream:         true,
		CanChat:           true,
	},
	"mistral": {
		Label:             "Mistral 7B",
		ContextWindowSize: 32768,
		CanStream:         true,
		CanChat:           true,
	},
	"phi3": {
		Label:             "Phi-3",
		ContextWindowSize: 131072,
		CanStream:         true,
		CanChat:           true,
	},
}

// Lookup returns the static metadata for a source model id. Tags like
// "llama3:8b" fall back to their base id.
func Lookup(sourceModelID string) (Info, bool) {
	if info, ok := knownModels[sourceModelID]; ok {
		return info, true
	}
	if i := strings.IndexByte(sourceModelID, ':'); i > 0 {
		info, ok := knownModels[sourceModelID[:i]]
		return info, ok
	}
	return Info{}, false
}
