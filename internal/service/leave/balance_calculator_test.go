package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/worklane/leave-backend-go/internal/domain/employee"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
	leaveService "github.com/worklane/leave-backend-go/internal/service/leave"
)

type BalanceCalculatorTestSuite struct {
	suite.Suite
	mockRequestRepo *MockLeaveRequestRepository
	mockProfileRepo *MockProfileRepository
	calculator      *leaveService.BalanceCalculator
}

func (suite *BalanceCalculatorTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockLeaveRequestRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.calculator = leaveService.NewBalanceCalculator(suite.mockRequestRepo, suite.mockProfileRepo)
}

func (suite *BalanceCalculatorTestSuite) profileHiredAt(hireDate time.Time) employee.EmployeeProfile {
	return employee.EmployeeProfile{
		EmployeeID:   uuid.NewString(),
		FullName:     "Test Employee",
		DepartmentID: uuid.NewString(),
		Gender:       employee.Female,
		HireDate:     &hireDate,
	}
}

func annualType() leave.LeaveType {
	return leave.LeaveType{ID: uuid.NewString(), Name: leave.TypeNameAnnual}
}

func menstrualType(capHours *int) leave.LeaveType {
	return leave.LeaveType{ID: uuid.NewString(), Name: leave.TypeNameMenstrual, TotalHours: capHours}
}

func (suite *BalanceCalculatorTestSuite) TestAnnual_EntitlementByTenure() {
	tests := []struct {
		name      string
		hireDate  time.Time
		asOf      time.Time
		wantHours int
	}{
		{"under six months", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 0},
		{"six months", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 3 * 8},
		{"one year", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 7 * 8},
		{"two years", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 10 * 8},
		{"three years", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 14 * 8},
		{"five years", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 15 * 8},
		{"ten years", time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 15 * 8},
		{"twelve years", time.Date(2014, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 17 * 8},
		{"twenty five years caps at thirty days", time.Date(2001, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), 30 * 8},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			employeeID := uuid.NewString()

			suite.mockProfileRepo.On("GetByEmployeeID", ctx, employeeID).
				Return(suite.profileHiredAt(tt.hireDate), nil).Once()
			suite.mockRequestRepo.On("SumHours", ctx, mock.AnythingOfType("leave.HoursSumFilter")).
				Return(0, nil).Once()

			balance, err := suite.calculator.Remaining(ctx, annualType(), employeeID, tt.asOf, nil)

			suite.NoError(err)
			suite.False(balance.Unlimited)
			suite.Equal(tt.wantHours, balance.Hours)
		})
	}
}

func (suite *BalanceCalculatorTestSuite) TestAnnual_SubtractsUsageThisYear() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	hireDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	suite.mockProfileRepo.On("GetByEmployeeID", ctx, employeeID).
		Return(suite.profileHiredAt(hireDate), nil).Once()

	yearStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRequestRepo.On("SumHours", ctx, mock.MatchedBy(func(filter leave.HoursSumFilter) bool {
		return filter.EmployeeID == employeeID &&
			filter.LeaveTypeName != nil && *filter.LeaveTypeName == leave.TypeNameAnnual &&
			filter.StartFrom != nil && filter.StartFrom.Equal(yearStart) &&
			filter.StartUntil != nil && filter.StartUntil.Equal(yearStart.AddDate(1, 0, 0))
	})).Return(16, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, annualType(), employeeID, asOf, nil)

	suite.NoError(err)
	suite.Equal(56-16, balance.Hours)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *BalanceCalculatorTestSuite) TestAnnual_MissingProfileMeansZeroBalance() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockProfileRepo.On("GetByEmployeeID", ctx, employeeID).
		Return(employee.EmployeeProfile{}, employee.ErrProfileNotFound).Once()
	suite.mockRequestRepo.On("SumHours", ctx, mock.AnythingOfType("leave.HoursSumFilter")).
		Return(0, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, annualType(), employeeID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), nil)

	suite.NoError(err)
	suite.Equal(0, balance.Hours)
}

func (suite *BalanceCalculatorTestSuite) TestAnnual_UsageNeverGoesNegative() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	hireDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	suite.mockProfileRepo.On("GetByEmployeeID", ctx, employeeID).
		Return(suite.profileHiredAt(hireDate), nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, mock.AnythingOfType("leave.HoursSumFilter")).
		Return(100, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, annualType(), employeeID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), nil)

	suite.NoError(err)
	suite.Equal(0, balance.Hours)
}

func (suite *BalanceCalculatorTestSuite) TestMenstrual_FreshMonthWithCarry() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	// Approved this month, pending this month, last month's usage.
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(2)).Return(0, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(1)).Return(0, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(3)).Return(8, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, menstrualType(nil), employeeID, asOf, nil)

	suite.NoError(err)
	// The carry contribution is capped at the monthly cap, so a fully
	// used previous month still yields one month's allowance.
	suite.Equal(8, balance.Hours)
}

func (suite *BalanceCalculatorTestSuite) TestMenstrual_SubtractsApprovedAndPending() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(2)).Return(4, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(1)).Return(2, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(3)).Return(0, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, menstrualType(nil), employeeID, asOf, nil)

	suite.NoError(err)
	suite.Equal(2, balance.Hours)
}

func (suite *BalanceCalculatorTestSuite) TestMenstrual_ConfiguredCap() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	capHours := 16

	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(2)).Return(8, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(1)).Return(0, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(3)).Return(0, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, menstrualType(&capHours), employeeID, asOf, nil)

	suite.NoError(err)
	suite.Equal(8, balance.Hours)
}

func (suite *BalanceCalculatorTestSuite) TestMenstrual_Overused() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(2)).Return(8, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(1)).Return(4, nil).Once()
	suite.mockRequestRepo.On("SumHours", ctx, sumHoursWithStatuses(3)).Return(0, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, menstrualType(nil), employeeID, asOf, nil)

	suite.NoError(err)
	suite.Equal(0, balance.Hours)
}

func (suite *BalanceCalculatorTestSuite) TestGeneric_CappedType() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	total := 40
	leaveType := leave.LeaveType{ID: uuid.NewString(), Name: "Sick Leave", TotalHours: &total}

	suite.mockRequestRepo.On("SumHours", ctx, mock.MatchedBy(func(filter leave.HoursSumFilter) bool {
		return filter.LeaveTypeID != nil && *filter.LeaveTypeID == leaveType.ID
	})).Return(8, nil).Once()

	balance, err := suite.calculator.Remaining(ctx, leaveType, employeeID, time.Now(), nil)

	suite.NoError(err)
	suite.False(balance.Unlimited)
	suite.Equal(32, balance.Hours)
}

func (suite *BalanceCalculatorTestSuite) TestGeneric_UnlimitedType() {
	ctx := context.Background()
	leaveType := leave.LeaveType{ID: uuid.NewString(), Name: "Unpaid Leave"}

	balance, err := suite.calculator.Remaining(ctx, leaveType, uuid.NewString(), time.Now(), nil)

	suite.NoError(err)
	suite.True(balance.Unlimited)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "SumHours", mock.Anything, mock.Anything)
}

func TestBalanceCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceCalculatorTestSuite))
}
