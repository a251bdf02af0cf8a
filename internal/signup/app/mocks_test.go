package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"signupcheck/internal/signup/domain/entities"
)

type mockAvailabilityChecker struct {
	mock.Mock
}

func (m *mockAvailabilityChecker) Check(ctx context.Context, username string) entities.AvailabilityOutcome {
	args := m.Called(ctx, username)
	return args.Get(0).(entities.AvailabilityOutcome)
}

type mockBreachChecker struct {
	mock.Mock
}

func (m *mockBreachChecker) IsBreached(ctx context.Context, password string) bool {
	args := m.Called(ctx, password)
	return args.Bool(0)
}
