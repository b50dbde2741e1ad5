package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nulzo/model-registry-api/internal/registry"
)

// SQLiteStore implements store.Store over two tables. Save replaces the
// whole snapshot inside one transaction, so a crash mid-save leaves the
// previous state intact.
type SQLiteStore struct {
	db *sqlx.DB
}

type sourceRow struct {
	ID        string `db:"id"`
	Label     string `db:"label"`
	VendorID  string `db:"vendor_id"`
	SetupJSON string `db:"setup_json"`
	Position  int    `db:"position"`
}

type modelRow struct {
	UID               string `db:"uid"`
	SourceID          string `db:"source_id"`
	SourceModelID     string `db:"source_model_id"`
	Label             string `db:"label"`
	Description       string `db:"description"`
	ContextWindowSize int    `db:"context_window_size"`
	CanStream         bool   `db:"can_stream"`
	CanChat           bool   `db:"can_chat"`
	Position          int    `db:"position"`
}

func (s *SQLiteStore) Load(ctx context.Context) (*registry.State, error) {
	var marker int
	err := s.db.GetContext(ctx, &marker, `SELECT COUNT(*) FROM snapshots`)
	if err != nil {
		return nil, err
	}
	if marker == 0 {
		return nil, nil
	}

	var sources []sourceRow
	if err := s.db.SelectContext(ctx, &sources, `SELECT * FROM sources ORDER BY position`); err != nil {
		return nil, err
	}

	var models []modelRow
	if err := s.db.SelectContext(ctx, &models, `SELECT * FROM models ORDER BY position`); err != nil {
		return nil, err
	}

	state := &registry.State{}
	for _, row := range sources {
		src := registry.ModelSource{
			ID:       row.ID,
			Label:    row.Label,
			VendorID: row.VendorID,
		}
		if row.SetupJSON != "" {
			if err := json.Unmarshal([]byte(row.SetupJSON), &src.Setup); err != nil {
				return nil, fmt.Errorf("corrupt setup for source %s: %w", row.ID, err)
			}
		}
		state.Sources = append(state.Sources, src)
	}
	for _, row := range models {
		state.Models = append(state.Models, registry.Model{
			UID:               row.UID,
			SourceID:          row.SourceID,
			SourceModelID:     row.SourceModelID,
			Label:             row.Label,
			Description:       row.Description,
			ContextWindowSize: row.ContextWindowSize,
			CanStream:         row.CanStream,
			CanChat:           row.CanChat,
		})
	}
	return state, nil
}

func (s *SQLiteStore) Save(ctx context.Context, state registry.State) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := s.saveTx(ctx, tx, state); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) saveTx(ctx context.Context, tx *sqlx.Tx, state registry.State) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM models`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sources`); err != nil {
		return err
	}

	const insertSource = `
	INSERT INTO sources (id, label, vendor_id, setup_json, position)
	VALUES (:id, :label, :vendor_id, :setup_json, :position)`

	for i, src := range state.Sources {
		setupJSON := ""
		if src.Setup != nil {
			data, err := json.Marshal(src.Setup)
			if err != nil {
				return fmt.Errorf("failed to encode setup for %s: %w", src.ID, err)
			}
			setupJSON = string(data)
		}
		row := sourceRow{
			ID:        src.ID,
			Label:     src.Label,
			VendorID:  src.VendorID,
			SetupJSON: setupJSON,
			Position:  i,
		}
		if _, err := tx.NamedExecContext(ctx, insertSource, row); err != nil {
			return err
		}
	}

	const insertModel = `
	INSERT INTO models (
		uid, source_id, source_model_id, label, description,
		context_window_size, can_stream, can_chat, position
	) VALUES (
		:uid, :source_id, :source_model_id, :label, :description,
		:context_window_size, :can_stream, :can_chat, :position
	)`

	for i, m := range state.Models {
		row := modelRow{
			UID:               m.UID,
			SourceID:          m.SourceID,
			SourceModelID:     m.SourceModelID,
			Label:             m.Label,
			Description:       m.Description,
			ContextWindowSize: m.ContextWindowSize,
			CanStream:         m.CanStream,
			CanChat:           m.CanChat,
			Position:          i,
		}
		if _, err := tx.NamedExecContext(ctx, insertModel, row); err != nil {
			return err
		}
	}

	// single-row marker distinguishing "saved empty state" from "never saved"
	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, saved_at) VALUES (1, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET saved_at = CURRENT_TIMESTAMP`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
