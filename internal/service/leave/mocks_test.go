package leave_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/worklane/leave-backend-go/internal/domain/employee"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
)

// newID returns a UUIDv7 string, matching the ids the database
// generates with uuidv7().
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// fakeTxManager runs the callback directly; the transactional wiring is
// exercised against a real pool, not here.
type fakeTxManager struct{}

func (fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockLeaveTypeRepository is a mock type for the LeaveTypeRepository interface
type MockLeaveTypeRepository struct {
	mock.Mock
}

func (m *MockLeaveTypeRepository) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) GetByName(ctx context.Context, name string) (leave.LeaveType, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(leave.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) List(ctx context.Context) ([]leave.LeaveType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leave.LeaveType), args.Error(1)
}

// MockLeaveRequestRepository is a mock type for the LeaveRequestRepository interface
type MockLeaveRequestRepository struct {
	mock.Mock
}

func (m *MockLeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) Update(ctx context.Context, request leave.UpdateLeaveRequestRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	args := m.Called(ctx, employeeID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeaveRequestRepository) SumHours(ctx context.Context, filter leave.HoursSumFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockLeaveRequestRepository) List(ctx context.Context, scope leave.ListScope, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]leave.LeaveRequest), args.Get(1).(int64), args.Error(2)
}

// MockProfileRepository is a mock type for the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeProfile, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(employee.EmployeeProfile), args.Error(1)
}

// sumHoursWithStatuses matches a SumHours filter by the number of
// statuses it aggregates over, enough to tell the approved, pending and
// usage queries apart.
func sumHoursWithStatuses(n int) interface{} {
	return mock.MatchedBy(func(filter leave.HoursSumFilter) bool {
		return len(filter.Statuses) == n
	})
}
