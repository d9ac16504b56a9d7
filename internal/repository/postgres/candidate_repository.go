package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

const candidateColumns = `id, name, age, email, phone, skills, experience, applied_position, status, created_at, updated_at`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates ORDER BY created_at DESC, id DESC`, candidateColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		if err := scanCandidate(rows, &c); err != nil {
			return nil, apperror.Internal(err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1`, candidateColumns)

	var c domain.Candidate
	err := scanCandidate(r.db.QueryRow(ctx, query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return &c, nil
}

func (r *candidateRepository) Create(ctx context.Context, in *domain.CreateCandidateInput) (*domain.Candidate, error) {
	query := fmt.Sprintf(`
		INSERT INTO candidates (name, age, email, phone, skills, experience, applied_position, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, 'Applied'))
		RETURNING %s`, candidateColumns)

	var c domain.Candidate
	err := scanCandidate(r.db.QueryRow(ctx, query,
		in.Name, in.Age, in.Email, in.Phone,
		in.Skills, in.Experience, in.AppliedPosition, in.Status,
	), &c)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &c, nil
}

func (r *candidateRepository) Update(ctx context.Context, id int64, in *domain.UpdateCandidateInput) (*domain.Candidate, error) {
	// Existence check first so a missing id reads as 404, not as a no-op.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	query, args := buildUpdateQuery(id, in)

	var c domain.Candidate
	err := scanCandidate(r.db.QueryRow(ctx, query, args...), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Deleted between the check and the rewrite.
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, mapWriteError(err)
	}
	return &c, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := fmt.Sprintf(`DELETE FROM candidates WHERE id = $1 RETURNING %s`, candidateColumns)

	var c domain.Candidate
	err := scanCandidate(r.db.QueryRow(ctx, query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return &c, nil
}

// buildUpdateQuery assembles the rewrite from exactly the supplied fields.
// The loop runs over a closed column list so request shape can never inject
// assignments, and updated_at is always stamped.
func buildUpdateQuery(id int64, in *domain.UpdateCandidateInput) (string, []any) {
	fields := []struct {
		column string
		value  any
		set    bool
	}{
		{"name", ptrValue(in.Name), in.Name != nil},
		{"age", ptrValue(in.Age), in.Age != nil},
		{"email", ptrValue(in.Email), in.Email != nil},
		{"phone", in.Phone, in.Phone != nil},
		{"skills", in.Skills, in.Skills != nil},
		{"experience", in.Experience, in.Experience != nil},
		{"applied_position", in.AppliedPosition, in.AppliedPosition != nil},
		{"status", ptrValue(in.Status), in.Status != nil},
	}

	assignments := []string{}
	args := []any{}
	for _, f := range fields {
		if !f.set {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", f.column, len(args)+1))
		args = append(args, f.value)
	}
	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), len(args), candidateColumns)
	return query, args
}

// ptrValue dereferences for columns that are NOT NULL; nullable columns
// pass the pointer through so nil becomes SQL NULL.
func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func scanCandidate(row pgx.Row, c *domain.Candidate) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Age, &c.Email, &c.Phone,
		&c.Skills, &c.Experience, &c.AppliedPosition, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

// mapWriteError translates constraint failures into caller-fixable errors;
// everything else stays internal.
func mapWriteError(err error) *apperror.AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.Conflict("Email already exists", err)
		case pgCheckViolation:
			return apperror.BadRequest("Candidate data violates a database constraint")
		}
	}
	return apperror.Internal(err)
}
