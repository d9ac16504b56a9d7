package usecase

import (
	"context"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) List(ctx context.Context) ([]domain.Candidate, error) {
	return u.repo.List(ctx)
}

func (u *candidateUsecase) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *candidateUsecase) Create(ctx context.Context, in *domain.CreateCandidateInput) (*domain.Candidate, error) {
	in.Normalize()

	// Collect-all: every failed field is reported in one pass.
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	return u.repo.Create(ctx, in)
}

func (u *candidateUsecase) Update(ctx context.Context, id int64, in *domain.UpdateCandidateInput) (*domain.Candidate, error) {
	in.Normalize()

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	return u.repo.Update(ctx, id, in)
}

func (u *candidateUsecase) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	return u.repo.Delete(ctx, id)
}
