package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/leave"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/clock"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = uuid.NewString()
	request.CreatedAt = time.Now().UTC()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) GetByUserID(ctx context.Context, userID string, filter leave.MyLeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.UserID == userID {
			out = append(out, request)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if filter.UserID != "" && request.UserID != filter.UserID {
			continue
		}
		out = append(out, request)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) Decide(ctx context.Context, id string, status leave.RequestStatus, decidedBy string, comment *string) error {
	request, ok := f.requests[id]
	if !ok || request.Status != leave.RequestStatusPending {
		return leave.ErrAlreadyDecided
	}
	now := time.Now().UTC()
	request.Status = status
	request.DecidedBy = &decidedBy
	request.DecidedAt = &now
	request.AdminComment = comment
	f.requests[id] = request
	return nil
}

func (f *fakeLeaveRepo) SumDays(ctx context.Context, userID string, leaveType leave.LeaveType, year int, month int, statuses []leave.RequestStatus) (float64, error) {
	var sum float64
	for _, request := range f.requests {
		if request.UserID != userID || request.LeaveType != leaveType {
			continue
		}
		if request.FromDate.Year() != year {
			continue
		}
		if month != 0 && int(request.FromDate.Month()) != month {
			continue
		}
		for _, status := range statuses {
			if request.Status == status {
				sum += request.NumberOfDays
				break
			}
		}
	}
	return sum, nil
}

func authedContext(t *testing.T, userID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "worker@example.com",
		"role":    role,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

var testQuotas = leave.QuotaPolicy{
	leave.LeaveTypePaid:   12,
	leave.LeaveTypeSick:   10,
	leave.LeaveTypeCasual: 6,
}

func newTestService() (leave.LeaveService, *fakeLeaveRepo) {
	repo := newFakeLeaveRepo()
	clk := clock.NewFixed(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC))
	svc := NewLeaveService(nil, repo, testQuotas, clk)
	return svc, repo
}

func submitRequest(t *testing.T, svc leave.LeaveService, ctx context.Context, leaveType, from, to string) leave.LeaveRequestResponse {
	t.Helper()
	resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveType: leaveType,
		DayType:   "full",
		FromDate:  from,
		ToDate:    to,
		Reason:    "family matters",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateLeaveRequestDerivesDays(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := authedContext(t, "user-1", "employee")

	resp := submitRequest(t, svc, ctx, "paid", "2024-04-01", "2024-04-03")

	assert.Equal(t, leave.RequestStatusPending, resp.Status)
	assert.Equal(t, 3.0, resp.NumberOfDays)
	assert.Equal(t, "2024-04-01", resp.FromDate)
}

func TestCreateHalfDayLeaveRequest(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := authedContext(t, "user-1", "employee")

	resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveType: "sick",
		DayType:   "half",
		FromDate:  "2024-04-01",
		ToDate:    "2024-04-01",
		Reason:    "doctor appointment",
	})

	require.NoError(t, err)
	assert.Equal(t, 0.5, resp.NumberOfDays)
}

func TestCreateHalfDayOverRangeFails(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := authedContext(t, "user-1", "employee")

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveType: "sick",
		DayType:   "half",
		FromDate:  "2024-04-01",
		ToDate:    "2024-04-02",
		Reason:    "doctor appointment",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidLeaveRange)
}

func TestCreateInvertedRangeFails(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := authedContext(t, "user-1", "employee")

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveType: "paid",
		DayType:   "full",
		FromDate:  "2024-04-05",
		ToDate:    "2024-04-01",
		Reason:    "vacation",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidLeaveRange)
}

func TestCreateRejectsUnknownLeaveType(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := authedContext(t, "user-1", "employee")

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveType: "sabbatical",
		DayType:   "full",
		FromDate:  "2024-04-01",
		ToDate:    "2024-04-01",
		Reason:    "rest",
	})

	assert.Error(t, err)
}

func TestApproveLeaveRequest(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")
	adminCtx := authedContext(t, "admin-1", "admin")

	created := submitRequest(t, svc, userCtx, "paid", "2024-04-01", "2024-04-03")

	comment := "enjoy"
	decided, err := svc.ApproveLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: created.ID, Comment: &comment})

	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "admin-1", *decided.DecidedBy)
	require.NotNil(t, decided.AdminComment)
	assert.Equal(t, "enjoy", *decided.AdminComment)
	require.NotNil(t, decided.DecidedAt)
}

func TestDecideTwiceFails(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")
	adminCtx := authedContext(t, "admin-1", "admin")

	created := submitRequest(t, svc, userCtx, "paid", "2024-04-01", "2024-04-01")

	_, err := svc.ApproveLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = svc.RejectLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)
}

func TestDecideUnknownRequestFails(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	adminCtx := authedContext(t, "admin-1", "admin")

	_, err := svc.ApproveLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: uuid.NewString()})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestBalanceCountsApprovedOnly(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")
	adminCtx := authedContext(t, "admin-1", "admin")

	approved := submitRequest(t, svc, userCtx, "paid", "2024-04-01", "2024-04-03")
	_, err := svc.ApproveLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: approved.ID})
	require.NoError(t, err)

	// Still pending, must not count without includePending.
	submitRequest(t, svc, userCtx, "paid", "2024-05-06", "2024-05-07")

	balances, err := svc.MyBalance(userCtx, 2024, 0, false)
	require.NoError(t, err)
	require.Len(t, balances, 3)

	paid := balances[0]
	assert.Equal(t, leave.LeaveTypePaid, paid.LeaveType)
	assert.Equal(t, 3.0, paid.Taken)
	assert.Equal(t, 0.0, paid.Pending)
	assert.Equal(t, 12.0, paid.Quota)
	assert.Equal(t, 9.0, paid.Remaining)
}

func TestBalanceIncludesPendingWhenAsked(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")

	submitRequest(t, svc, userCtx, "paid", "2024-05-06", "2024-05-07")

	balances, err := svc.MyBalance(userCtx, 2024, 0, true)
	require.NoError(t, err)

	paid := balances[0]
	assert.Equal(t, 0.0, paid.Taken)
	assert.Equal(t, 2.0, paid.Pending)
	assert.Equal(t, 10.0, paid.Remaining)
}

func TestBalanceScopedToMonth(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")
	adminCtx := authedContext(t, "admin-1", "admin")

	april := submitRequest(t, svc, userCtx, "paid", "2024-04-01", "2024-04-02")
	may := submitRequest(t, svc, userCtx, "paid", "2024-05-06", "2024-05-08")
	for _, id := range []string{april.ID, may.ID} {
		_, err := svc.ApproveLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: id})
		require.NoError(t, err)
	}

	balances, err := svc.MyBalance(userCtx, 2024, 4, false)
	require.NoError(t, err)
	assert.Equal(t, 2.0, balances[0].Taken)

	balances, err = svc.MyBalance(userCtx, 2024, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 5.0, balances[0].Taken)
}

func TestBalanceDefaultsToCurrentYear(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")
	adminCtx := authedContext(t, "admin-1", "admin")

	created := submitRequest(t, svc, userCtx, "casual", "2024-06-03", "2024-06-03")
	_, err := svc.ApproveLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: created.ID})
	require.NoError(t, err)

	balances, err := svc.MyBalance(userCtx, 0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, balances[2].Taken)
}

func TestBalanceRejectsBadMonth(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")

	_, err := svc.MyBalance(userCtx, 2024, 13, false)
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveRange)
}

func TestOverdrawnBalanceGoesNegative(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	userCtx := authedContext(t, "user-1", "employee")
	adminCtx := authedContext(t, "admin-1", "admin")

	// 8 days against a quota of 6. Accounting reports the overdraw, it
	// never blocks the request.
	created := submitRequest(t, svc, userCtx, "casual", "2024-07-01", "2024-07-08")
	_, err := svc.ApproveLeaveRequest(adminCtx, leave.DecideRequestRequest{ID: created.ID})
	require.NoError(t, err)

	balances, err := svc.MyBalance(userCtx, 2024, 0, false)
	require.NoError(t, err)

	casual := balances[2]
	assert.Equal(t, 8.0, casual.Taken)
	assert.Equal(t, -2.0, casual.Remaining)
}
