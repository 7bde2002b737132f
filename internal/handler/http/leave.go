package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
	"github.com/worklane/leave-backend-go/internal/handler/http/response"
	"github.com/worklane/leave-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListSelf(w http.ResponseWriter, r *http.Request)
	ListDepartment(w http.ResponseWriter, r *http.Request)
	ListCompany(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.NewLeaveRequestResponse(created))
}

// Edit implements LeaveHandler.
func (l *LeaveHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Edit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := l.leaveService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", leave.NewLeaveRequestResponse(updated))
}

// Delete implements LeaveHandler. The acting employee id comes from the
// surrounding system (auth is out of scope here) as a query parameter.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	employeeID := r.URL.Query().Get("employee_id")

	if requestID == "" || employeeID == "" {
		response.BadRequest(w, "Request ID and employee_id are required", nil)
		return
	}

	if err := l.leaveService.Delete(r.Context(), requestID, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// GetBalance implements LeaveHandler. The leave type may be referenced
// by id or by name.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	leaveTypeRef := r.URL.Query().Get("leave_type_id")
	if leaveTypeRef == "" {
		leaveTypeRef = r.URL.Query().Get("leave_type_name")
	}
	employeeID := r.URL.Query().Get("employee_id")

	if leaveTypeRef == "" || employeeID == "" {
		response.BadRequest(w, "leave_type_id or leave_type_name, and employee_id are required", nil)
		return
	}

	asOf := time.Now()
	if s := r.URL.Query().Get("as_of"); s != "" {
		if !validator.IsValidDate(s) {
			response.BadRequest(w, "as_of must be a YYYY-MM-DD date", nil)
			return
		}
		asOf, _ = time.Parse("2006-01-02", s)
	}

	balance, err := l.leaveService.RemainingBalance(r.Context(), leaveTypeRef, employeeID, asOf, nil)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewBalanceResponse(leaveTypeRef, employeeID, balance))
}

// ListSelf implements LeaveHandler.
func (l *LeaveHandlerImpl) ListSelf(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	filter.EmployeeID = &employeeID

	l.list(w, r, leave.ScopeSelf, filter)
}

// ListDepartment implements LeaveHandler.
func (l *LeaveHandlerImpl) ListDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id")
	if departmentID == "" {
		response.BadRequest(w, "department_id is required", nil)
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	filter.DepartmentID = &departmentID

	l.list(w, r, leave.ScopeDepartment, filter)
}

// ListCompany implements LeaveHandler.
func (l *LeaveHandlerImpl) ListCompany(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	l.list(w, r, leave.ScopeCompany, filter)
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := l.leaveService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

func (l *LeaveHandlerImpl) list(w http.ResponseWriter, r *http.Request, scope leave.ListScope, filter leave.LeaveRequestFilter) {
	requests, total, err := l.leaveService.List(r.Context(), scope, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, leave.NewLeaveRequestResponse(req))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	})
}

func parseListFilter(r *http.Request) (leave.LeaveRequestFilter, error) {
	var filter leave.LeaveRequestFilter
	query := r.URL.Query()

	if s := query.Get("start_date"); s != "" {
		if !validator.IsValidDate(s) {
			return filter, fmt.Errorf("start_date must be a YYYY-MM-DD date")
		}
		start, _ := time.Parse("2006-01-02", s)
		filter.StartDate = &start
	}

	if s := query.Get("end_date"); s != "" {
		if !validator.IsValidDate(s) {
			return filter, fmt.Errorf("end_date must be a YYYY-MM-DD date")
		}
		end, _ := time.Parse("2006-01-02", s)
		// Extend to the end of the day so the range is inclusive.
		end = end.Add(24*time.Hour - time.Second)
		filter.EndDate = &end
	}

	if s := query.Get("leave_type_id"); s != "" {
		filter.LeaveTypeID = &s
	}

	if s := query.Get("status"); s != "" {
		code, err := strconv.Atoi(s)
		if err != nil || !validator.IsValidStatus(code) {
			return filter, fmt.Errorf("status must be an integer between 0 and 4")
		}
		status := leave.Status(code)
		filter.Status = &status
	}

	if s := query.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err == nil && page > 0 {
			filter.Page = page
		}
	}

	if s := query.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	return filter, nil
}
