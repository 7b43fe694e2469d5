package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/threeonelabs/storebuilder/internal/domain"
)

// ErrNotFound is returned when no agent exists under a session key.
var ErrNotFound = errors.New("agent not found")

// SavedAgent is a persisted session: the assembled profile plus the full
// transcript, as last written by the host.
type SavedAgent struct {
	SessionKey string
	Profile    domain.AgentProfile
	Transcript []domain.Turn
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AgentStore persists agent sessions keyed by session key.
type AgentStore interface {
	// Load returns the saved agent for key, or ErrNotFound.
	Load(key string) (*SavedAgent, error)
	// Save upserts the profile and rewrites the transcript for key.
	Save(key string, profile domain.AgentProfile, transcript []domain.Turn) error
	// Delete removes the agent and its transcript. Deleting a missing key
	// is not an error.
	Delete(key string) error
	// List returns all saved agents, newest first, without transcripts.
	List() ([]*SavedAgent, error)
}

// SQLiteAgentStore is the production AgentStore backed by a DB.
type SQLiteAgentStore struct {
	db *DB
}

// NewAgentStore wraps an open database.
func NewAgentStore(db *DB) *SQLiteAgentStore {
	return &SQLiteAgentStore{db: db}
}

func (s *SQLiteAgentStore) Load(key string) (*SavedAgent, error) {
	row := s.db.sql.QueryRow(`
		SELECT brand_name, hero_header, hero_subheader, products, product_pills,
		       background_image, sales_tone, agent_type, created_at, updated_at
		FROM agents WHERE session_key = ?
	`, key)

	var (
		agent                domain.AgentProfile
		productsJSON         string
		pillsJSON            string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&agent.BrandName, &agent.HeroHeader, &agent.HeroSubheader,
		&productsJSON, &pillsJSON,
		&agent.BackgroundImage, &agent.SalesTone, &agent.AgentType,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading agent %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(productsJSON), &agent.Products); err != nil {
		return nil, fmt.Errorf("decoding products for %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(pillsJSON), &agent.ProductPills); err != nil {
		return nil, fmt.Errorf("decoding pills for %q: %w", key, err)
	}

	transcript, err := s.loadTranscript(key)
	if err != nil {
		return nil, err
	}

	saved := &SavedAgent{
		SessionKey: key,
		Profile:    agent,
		Transcript: transcript,
	}
	saved.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	saved.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return saved, nil
}

func (s *SQLiteAgentStore) loadTranscript(key string) ([]domain.Turn, error) {
	rows, err := s.db.sql.Query(`
		SELECT id, role, content, timestamp
		FROM turns WHERE session_key = ? ORDER BY seq
	`, key)
	if err != nil {
		return nil, fmt.Errorf("loading transcript for %q: %w", key, err)
	}
	defer rows.Close()

	var transcript []domain.Turn
	for rows.Next() {
		var turn domain.Turn
		var ts string
		if err := rows.Scan(&turn.ID, &turn.Role, &turn.Content, &ts); err != nil {
			return nil, fmt.Errorf("scanning turn for %q: %w", key, err)
		}
		turn.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		transcript = append(transcript, turn)
	}
	return transcript, rows.Err()
}

func (s *SQLiteAgentStore) Save(key string, profile domain.AgentProfile, transcript []domain.Turn) error {
	products := profile.Products
	if products == nil {
		products = []domain.Product{}
	}
	pills := profile.ProductPills
	if pills == nil {
		pills = []domain.Pill{}
	}
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encoding products: %w", err)
	}
	pillsJSON, err := json.Marshal(pills)
	if err != nil {
		return fmt.Errorf("encoding pills: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO agents (session_key, brand_name, hero_header, hero_subheader,
		                    products, product_pills, background_image, sales_tone,
		                    agent_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_key) DO UPDATE SET
			brand_name = excluded.brand_name,
			hero_header = excluded.hero_header,
			hero_subheader = excluded.hero_subheader,
			products = excluded.products,
			product_pills = excluded.product_pills,
			background_image = excluded.background_image,
			sales_tone = excluded.sales_tone,
			agent_type = excluded.agent_type,
			updated_at = excluded.updated_at
	`, key, profile.BrandName, profile.HeroHeader, profile.HeroSubheader,
		string(productsJSON), string(pillsJSON), profile.BackgroundImage,
		string(profile.SalesTone), string(profile.AgentType), now, now)
	if err != nil {
		return fmt.Errorf("upserting agent %q: %w", key, err)
	}

	if _, err := tx.Exec("DELETE FROM turns WHERE session_key = ?", key); err != nil {
		return fmt.Errorf("clearing transcript for %q: %w", key, err)
	}
	for i, turn := range transcript {
		_, err := tx.Exec(`
			INSERT INTO turns (id, session_key, seq, role, content, timestamp)
			VALUES (?, ?, ?, ?, ?, ?)
		`, turn.ID, key, i, string(turn.Role), turn.Content,
			turn.Timestamp.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("writing turn %d for %q: %w", i, key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteAgentStore) Delete(key string) error {
	if _, err := s.db.sql.Exec("DELETE FROM agents WHERE session_key = ?", key); err != nil {
		return fmt.Errorf("deleting agent %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteAgentStore) List() ([]*SavedAgent, error) {
	rows, err := s.db.sql.Query(`
		SELECT session_key, brand_name, hero_header, hero_subheader, products,
		       product_pills, background_image, sales_tone, agent_type,
		       created_at, updated_at
		FROM agents ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	defer rows.Close()

	var agents []*SavedAgent
	for rows.Next() {
		var (
			saved                SavedAgent
			productsJSON         string
			pillsJSON            string
			createdAt, updatedAt string
		)
		err := rows.Scan(
			&saved.SessionKey,
			&saved.Profile.BrandName, &saved.Profile.HeroHeader, &saved.Profile.HeroSubheader,
			&productsJSON, &pillsJSON,
			&saved.Profile.BackgroundImage, &saved.Profile.SalesTone, &saved.Profile.AgentType,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning agent: %w", err)
		}
		if err := json.Unmarshal([]byte(productsJSON), &saved.Profile.Products); err != nil {
			return nil, fmt.Errorf("decoding products for %q: %w", saved.SessionKey, err)
		}
		if err := json.Unmarshal([]byte(pillsJSON), &saved.Profile.ProductPills); err != nil {
			return nil, fmt.Errorf("decoding pills for %q: %w", saved.SessionKey, err)
		}
		saved.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		saved.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		agents = append(agents, &saved)
	}
	return agents, rows.Err()
}
