package usecase

import (
	"context"
	"time"
)

// Pinger is the slice of the connection pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type healthUsecase struct {
	db Pinger
}

func NewHealthUsecase(db Pinger) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Healthy:   true,
		Timestamp: time.Now().UTC(),
	}
	if u.db != nil {
		status.Healthy = u.db.Ping(ctx) == nil
	}
	return status
}
