package explain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/mushaf/internal/db"
)

// Explanation is a stored, provider-generated explanation of one ayah.
type Explanation struct {
	ID           string
	Surah        int
	Ayah         int
	Model        string
	VerseText    string
	Content      string
	InputTokens  int
	OutputTokens int
	CreatedAt    time.Time
}

// Store persists explanations keyed by (surah, ayah, model).
type Store struct {
	db *db.DB
}

// NewStore creates a new explanation store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the stored explanation, or nil if there is none.
func (s *Store) Get(ctx context.Context, surah, ayah int, model string) (*Explanation, error) {
	var e Explanation
	err := s.db.QueryRowContext(ctx,
		`SELECT id, surah, ayah, model, verse_text, content, input_tokens, output_tokens, created_at
		 FROM explanations WHERE surah = ? AND ayah = ? AND model = ?`, surah, ayah, model,
	).Scan(&e.ID, &e.Surah, &e.Ayah, &e.Model, &e.VerseText, &e.Content, &e.InputTokens, &e.OutputTokens, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting explanation %d:%d: %w", surah, ayah, err)
	}
	return &e, nil
}

// Save inserts e, replacing any earlier explanation for the same verse and model.
func (s *Store) Save(ctx context.Context, e Explanation) (*Explanation, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO explanations (id, surah, ayah, model, verse_text, content, input_tokens, output_tokens, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(surah, ayah, model) DO UPDATE SET
		   id = excluded.id,
		   verse_text = excluded.verse_text,
		   content = excluded.content,
		   input_tokens = excluded.input_tokens,
		   output_tokens = excluded.output_tokens,
		   created_at = excluded.created_at`,
		e.ID, e.Surah, e.Ayah, e.Model, e.VerseText, e.Content, e.InputTokens, e.OutputTokens, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving explanation %d:%d: %w", e.Surah, e.Ayah, err)
	}
	return &e, nil
}

// ListBySurah returns the stored explanations of a surah in ayah order.
func (s *Store) ListBySurah(ctx context.Context, surah int, model string) ([]Explanation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, surah, ayah, model, verse_text, content, input_tokens, output_tokens, created_at
		 FROM explanations WHERE surah = ? AND model = ? ORDER BY ayah`, surah, model)
	if err != nil {
		return nil, fmt.Errorf("listing explanations for surah %d: %w", surah, err)
	}
	defer rows.Close()

	var out []Explanation
	for rows.Next() {
		var e Explanation
		if err := rows.Scan(&e.ID, &e.Surah, &e.Ayah, &e.Model, &e.VerseText, &e.Content, &e.InputTokens, &e.OutputTokens, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning explanation: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored explanations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM explanations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting explanations: %w", err)
	}
	return n, nil
}
