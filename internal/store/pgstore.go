package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/binaryn3xus/AIForge/internal/model"
)

// searchQuery ranks chunks by cosine distance against the bound query vector,
// ascending distance = descending similarity. Exactly one vector parameter
// plus the top-K limit.
const searchQuery = `
	SELECT chunk_id, text
	FROM chunks
	ORDER BY embedding <=> $1::vector
	LIMIT $2
`

const insertQuery = `
	INSERT INTO chunks (doc_name, chunk_id, text, embedding)
	VALUES ($1, $2, $3, $4::vector)
`

type PgStore struct {
	db *sql.DB
}

func NewPgStore(conn string, dim int) (*PgStore, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db, dim); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return &PgStore{db: db}, nil
}

func (s *PgStore) Close() error {
	return s.db.Close()
}

func (s *PgStore) Add(ctx context.Context, doc string, c model.Chunk, v []float32) error {
	_, err := s.db.ExecContext(ctx, insertQuery, doc, c.ID, c.Text, vectorLiteral(v))
	return err
}

// Search returns the k chunks nearest to q, in ranking order. The result
// cursor is fully drained and closed before returning.
func (s *PgStore) Search(ctx context.Context, q []float32, k int) ([]model.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, searchQuery, vectorLiteral(q), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []model.Chunk
	for rows.Next() {
		var c model.Chunk
		if err := rows.Scan(&c.ID, &c.Text); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// vectorLiteral renders a float slice as a pgvector input literal.
func vectorLiteral(v []float32) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range v {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf("%.6f", float64(f)))
	}
	sb.WriteString("]")
	return sb.String()
}
