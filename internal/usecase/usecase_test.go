package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/internal/usecase"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repository
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, in *domain.CreateCandidateInput) (*domain.Candidate, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id int64, in *domain.UpdateCandidateInput) (*domain.Candidate, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCreateInput() *domain.CreateCandidateInput {
	return &domain.CreateCandidateInput{
		Name:  "Jane Roe",
		Age:   29,
		Email: "jane.roe@example.com",
	}
}

func violationFields(err error) []string {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return nil
	}
	fields := make([]string, 0, len(appErr.Details))
	for _, d := range appErr.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestCreateNormalization(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New())
	ctx := context.Background()

	t.Run("Should lowercase and trim email before hitting the repository", func(t *testing.T) {
		in := &domain.CreateCandidateInput{
			Name:   "  Jane Roe  ",
			Age:    29,
			Email:  " Jane.Roe@Example.Com ",
			Status: strPtr("Interviewing"),
		}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.CreateCandidateInput")).Return(&domain.Candidate{ID: 1}, nil).Once().Run(func(args mock.Arguments) {
			got := args.Get(1).(*domain.CreateCandidateInput)
			assert.Equal(t, "Jane Roe", got.Name)
			assert.Equal(t, "jane.roe@example.com", got.Email)
			assert.Equal(t, "Interviewing", *got.Status)
		})

		_, err := uc.Create(ctx, in)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should pass nil status through so the store default applies", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.CreateCandidateInput")).Return(&domain.Candidate{ID: 2, Status: domain.StatusApplied}, nil).Once().Run(func(args mock.Arguments) {
			got := args.Get(1).(*domain.CreateCandidateInput)
			assert.Nil(t, got.Status)
		})

		_, err := uc.Create(ctx, validCreateInput())
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should store empty optional text as nil", func(t *testing.T) {
		in := validCreateInput()
		in.Phone = strPtr("   ")
		in.Skills = strPtr("")

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.CreateCandidateInput")).Return(&domain.Candidate{ID: 3}, nil).Once().Run(func(args mock.Arguments) {
			got := args.Get(1).(*domain.CreateCandidateInput)
			assert.Nil(t, got.Phone)
			assert.Nil(t, got.Skills)
		})

		_, err := uc.Create(ctx, in)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New())
	ctx := context.Background()

	t.Run("Should collect every violation in one pass", func(t *testing.T) {
		_, err := uc.Create(ctx, &domain.CreateCandidateInput{})
		assert.Error(t, err)
		assert.ElementsMatch(t, []string{"name", "age", "email"}, violationFields(err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject a malformed phone", func(t *testing.T) {
		in := validCreateInput()
		in.Phone = strPtr("not-a-phone")
		_, err := uc.Create(ctx, in)
		assert.Error(t, err)
		assert.Equal(t, []string{"phone"}, violationFields(err))
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		in := validCreateInput()
		in.Status = strPtr("Ghosted")
		_, err := uc.Create(ctx, in)
		assert.Error(t, err)
		assert.Equal(t, []string{"status"}, violationFields(err))
	})

	t.Run("Age boundaries", func(t *testing.T) {
		for _, age := range []int{1, 150} {
			in := validCreateInput()
			in.Age = age
			mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.CreateCandidateInput")).Return(&domain.Candidate{}, nil).Once()
			_, err := uc.Create(ctx, in)
			assert.NoError(t, err, "age %d should pass", age)
		}
		for _, age := range []int{0, 151} {
			in := validCreateInput()
			in.Age = age
			_, err := uc.Create(ctx, in)
			assert.Error(t, err, "age %d should fail", age)
			assert.Equal(t, []string{"age"}, violationFields(err))
		}
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New())
	ctx := context.Background()

	t.Run("Absent fields stay absent on the way to the repository", func(t *testing.T) {
		in := &domain.UpdateCandidateInput{Status: strPtr("Hired")}

		mockRepo.On("Update", ctx, int64(5), mock.AnythingOfType("*domain.UpdateCandidateInput")).Return(&domain.Candidate{ID: 5, Status: domain.StatusHired}, nil).Once().Run(func(args mock.Arguments) {
			got := args.Get(2).(*domain.UpdateCandidateInput)
			assert.Nil(t, got.Name)
			assert.Nil(t, got.Age)
			assert.Nil(t, got.Email)
			assert.Nil(t, got.Skills)
			assert.Equal(t, "Hired", *got.Status)
		})

		result, err := uc.Update(ctx, 5, in)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusHired, result.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("A supplied name must still satisfy the create constraint", func(t *testing.T) {
		_, err := uc.Update(ctx, 5, &domain.UpdateCandidateInput{Name: strPtr("x")})
		assert.Error(t, err)
		assert.Equal(t, []string{"name"}, violationFields(err))
	})

	t.Run("A supplied email must still be valid", func(t *testing.T) {
		_, err := uc.Update(ctx, 5, &domain.UpdateCandidateInput{Email: strPtr("nope")})
		assert.Error(t, err)
		assert.Equal(t, []string{"email"}, violationFields(err))
	})

	t.Run("Supplied email is normalized", func(t *testing.T) {
		mockRepo.On("Update", ctx, int64(7), mock.AnythingOfType("*domain.UpdateCandidateInput")).Return(&domain.Candidate{ID: 7}, nil).Once().Run(func(args mock.Arguments) {
			got := args.Get(2).(*domain.UpdateCandidateInput)
			assert.Equal(t, "new@example.com", *got.Email)
		})

		_, err := uc.Update(ctx, 7, &domain.UpdateCandidateInput{Email: strPtr(" NEW@Example.com ")})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Supplied age boundaries", func(t *testing.T) {
		_, err := uc.Update(ctx, 5, &domain.UpdateCandidateInput{Age: intPtr(151)})
		assert.Error(t, err)
		assert.Equal(t, []string{"age"}, violationFields(err))

		_, err = uc.Update(ctx, 5, &domain.UpdateCandidateInput{Age: intPtr(0)})
		assert.Error(t, err)
		assert.Equal(t, []string{"age"}, violationFields(err))
	})

	t.Run("Empty status reads as untouched", func(t *testing.T) {
		mockRepo.On("Update", ctx, int64(9), mock.AnythingOfType("*domain.UpdateCandidateInput")).Return(&domain.Candidate{ID: 9}, nil).Once().Run(func(args mock.Arguments) {
			got := args.Get(2).(*domain.UpdateCandidateInput)
			assert.Nil(t, got.Status)
		})

		_, err := uc.Update(ctx, 9, &domain.UpdateCandidateInput{Status: strPtr("  ")})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestRepositoryErrorsPassThrough(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New())
	ctx := context.Background()

	t.Run("Duplicate email surfaces unchanged", func(t *testing.T) {
		dup := apperror.Conflict("Email already exists", errors.New("duplicate key"))
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.CreateCandidateInput")).Return(nil, dup).Once()

		_, err := uc.Create(ctx, validCreateInput())
		assert.ErrorIs(t, err, dup)
	})

	t.Run("Not found surfaces unchanged", func(t *testing.T) {
		nf := apperror.NotFound("Candidate not found")
		mockRepo.On("Delete", ctx, int64(999)).Return(nil, nf).Once()

		_, err := uc.Delete(ctx, 999)
		assert.ErrorIs(t, err, nf)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("Reports healthy without a pinger", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(nil)
		status := uc.Check(context.Background())
		assert.True(t, status.Healthy)
		assert.False(t, status.Timestamp.IsZero())
	})

	t.Run("Reports unhealthy when the pool cannot be reached", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(failingPinger{})
		status := uc.Check(context.Background())
		assert.False(t, status.Healthy)
	})
}

type failingPinger struct{}

func (failingPinger) Ping(ctx context.Context) error { return errors.New("connection refused") }
