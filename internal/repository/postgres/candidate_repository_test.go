package postgres

import (
	"testing"

	"go-candidate-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestBuildUpdateQuery(t *testing.T) {
	t.Run("Only supplied fields are assigned", func(t *testing.T) {
		in := &domain.UpdateCandidateInput{
			Status: strPtr("Hired"),
		}

		query, args := buildUpdateQuery(5, in)

		assert.Equal(t,
			`UPDATE candidates SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 RETURNING `+candidateColumns,
			query)
		assert.Equal(t, []any{"Hired", int64(5)}, args)
	})

	t.Run("Placeholders stay dense across a field subset", func(t *testing.T) {
		in := &domain.UpdateCandidateInput{
			Name:   strPtr("Jane Roe"),
			Email:  strPtr("jane@example.com"),
			Status: strPtr("Interviewing"),
		}

		query, args := buildUpdateQuery(12, in)

		assert.Equal(t,
			`UPDATE candidates SET name = $1, email = $2, status = $3, updated_at = CURRENT_TIMESTAMP WHERE id = $4 RETURNING `+candidateColumns,
			query)
		assert.Equal(t, []any{"Jane Roe", "jane@example.com", "Interviewing", int64(12)}, args)
	})

	t.Run("Every field supplied", func(t *testing.T) {
		in := &domain.UpdateCandidateInput{
			Name:            strPtr("Jane Roe"),
			Age:             intPtr(30),
			Email:           strPtr("jane@example.com"),
			Phone:           strPtr("+1 (555) 123-4567"),
			Skills:          strPtr("Go, SQL"),
			Experience:      strPtr("5 years"),
			AppliedPosition: strPtr("Backend Engineer"),
			Status:          strPtr("On Hold"),
		}

		query, args := buildUpdateQuery(3, in)

		assert.Equal(t,
			`UPDATE candidates SET name = $1, age = $2, email = $3, phone = $4, skills = $5, experience = $6, applied_position = $7, status = $8, updated_at = CURRENT_TIMESTAMP WHERE id = $9 RETURNING `+candidateColumns,
			query)
		assert.Len(t, args, 9)
		assert.Equal(t, int64(3), args[8])
	})

	t.Run("Empty input still stamps updated_at", func(t *testing.T) {
		query, args := buildUpdateQuery(7, &domain.UpdateCandidateInput{})

		assert.Equal(t,
			`UPDATE candidates SET updated_at = CURRENT_TIMESTAMP WHERE id = $1 RETURNING `+candidateColumns,
			query)
		assert.Equal(t, []any{int64(7)}, args)
	})

	t.Run("Nullable columns carry the pointer so nil maps to NULL", func(t *testing.T) {
		// A supplied-but-empty phone clears the column; an absent one must
		// never appear in the assignment list at all.
		in := &domain.UpdateCandidateInput{
			Phone: strPtr(""),
		}

		query, args := buildUpdateQuery(4, in)

		assert.Contains(t, query, "phone = $1")
		assert.NotContains(t, query, "skills")
		assert.Equal(t, "", *(args[0].(*string)))
	})
}
