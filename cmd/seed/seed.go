package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nulzo/model-registry-api/internal/cli"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/store/sqlite"
)

func main() {
	dsn := flag.String("dsn", "file:data/registry.db?_journal_mode=WAL&_busy_timeout=5000", "SQLite DSN to seed")
	flag.Parse()

	st, err := sqlite.NewSQLiteStore(*dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	placeholderKey := "sk-local-" + uuid.New().String()

	state := registry.State{
		Sources: []registry.ModelSource{
			{
				ID:       "openai",
				Label:    "OpenAI",
				VendorID: "openai",
				Setup: map[string]any{
					"base_url": "https://api.openai.com/v1",
					"api_key":  placeholderKey,
				},
			},
			{
				ID:       "ollama",
				Label:    "Local Ollama",
				VendorID: "ollama",
				Setup: map[string]any{
					"base_url": "http://localhost:11434",
				},
			},
		},
		Models: []registry.Model{
			{
				UID:               "openai/gpt-4o",
				SourceID:          "openai",
				SourceModelID:     "gpt-4o",
				Label:             "GPT-4o",
				Description:       "Flagship multimodal model",
				ContextWindowSize: 128000,
				CanStream:         true,
				CanChat:           true,
			},
			{
				UID:               "ollama/llama3",
				SourceID:          "ollama",
				SourceModelID:     "llama3",
				Label:             "Llama 3",
				ContextWindowSize: 8192,
				CanStream:         true,
				CanChat:           true,
			},
		},
	}

	if err := st.Save(context.Background(), state); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s Seeded %s\n", cli.CheckMark(), *dsn)
	fmt.Printf("%s Replace the placeholder OpenAI key before discovery:\n", cli.Arrow())
	cli.PrettyPrint(state.Sources)
}
