package domain

import (
	"context"
	"strings"
	"time"
)

// Candidate pipeline statuses, in canonical display casing. The database
// CHECK constraint enforces the same values.
const (
	StatusApplied      = "Applied"
	StatusInterviewing = "Interviewing"
	StatusHired        = "Hired"
	StatusRejected     = "Rejected"
	StatusOnHold       = "On Hold"
)

type Candidate struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Skills          *string   `json:"skills"`
	Experience      *string   `json:"experience"`
	AppliedPosition *string   `json:"applied_position"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCandidateInput carries the fields accepted on create. Optional
// fields are pointers so absent and empty can be told apart.
type CreateCandidateInput struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Age             int     `json:"age" validate:"required,min=1,max=150"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone" validate:"omitempty,valid_phone"`
	Skills          *string `json:"skills"`
	Experience      *string `json:"experience"`
	AppliedPosition *string `json:"applied_position"`
	Status          *string `json:"status" validate:"omitempty,candidate_status"`
}

// UpdateCandidateInput carries a partial update: nil means "do not touch".
// Supplied values obey the same per-field rules as create.
type UpdateCandidateInput struct {
	Name            *string `json:"name" validate:"omitnil,min=2,max=100"`
	Age             *int    `json:"age" validate:"omitnil,min=1,max=150"`
	Email           *string `json:"email" validate:"omitnil,email"`
	Phone           *string `json:"phone" validate:"omitempty,valid_phone"`
	Skills          *string `json:"skills"`
	Experience      *string `json:"experience"`
	AppliedPosition *string `json:"applied_position"`
	Status          *string `json:"status" validate:"omitempty,candidate_status"`
}

// Normalize trims surrounding whitespace and canonicalizes the email to
// lower case before validation and storage.
func (in *CreateCandidateInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	trimPtr(in.Phone)
	trimPtr(in.Skills)
	trimPtr(in.Experience)
	trimPtr(in.AppliedPosition)
	trimPtr(in.Status)
	// Empty optional text stores as NULL rather than the empty string.
	emptyToNil(&in.Phone)
	emptyToNil(&in.Skills)
	emptyToNil(&in.Experience)
	emptyToNil(&in.AppliedPosition)
	// Empty status means "use the default"
	emptyToNil(&in.Status)
}

// Normalize mirrors create normalization for the fields that are present.
func (in *UpdateCandidateInput) Normalize() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		*in.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	trimPtr(in.Phone)
	trimPtr(in.Skills)
	trimPtr(in.Experience)
	trimPtr(in.AppliedPosition)
	trimPtr(in.Status)
	// An empty status cannot satisfy the enum; treat it as untouched.
	emptyToNil(&in.Status)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func emptyToNil(s **string) {
	if *s != nil && **s == "" {
		*s = nil
	}
}

type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, in *CreateCandidateInput) (*Candidate, error)
	Update(ctx context.Context, id int64, in *UpdateCandidateInput) (*Candidate, error)
	Delete(ctx context.Context, id int64) (*Candidate, error)
}

type CandidateUsecase interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, in *CreateCandidateInput) (*Candidate, error)
	Update(ctx context.Context, id int64, in *UpdateCandidateInput) (*Candidate, error)
	Delete(ctx context.Context, id int64) (*Candidate, error)
}
