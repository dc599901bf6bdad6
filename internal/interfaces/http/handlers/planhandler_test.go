package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	membershipdto "gymgate/internal/application/membership/dto"
	"gymgate/internal/application/membership/usecases"
	"gymgate/internal/domain/membership"
	"gymgate/internal/interfaces/http/handlers/testutil"
)

type mockCreatePlan struct {
	lastCmd usecases.CreatePlanCommand
	result  *membershipdto.PlanDTO
	err     error
}

func (m *mockCreatePlan) Execute(_ context.Context, cmd usecases.CreatePlanCommand) (*membershipdto.PlanDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetPlan struct {
	lastSID string
	result  *membershipdto.PlanDTO
	err     error
}

func (m *mockGetPlan) Execute(_ context.Context, sid string) (*membershipdto.PlanDTO, error) {
	m.lastSID = sid
	return m.result, m.err
}

type mockListPlans struct {
	lastQuery usecases.ListPlansQuery
	items     []*membershipdto.PlanDTO
	total     int64
	err       error
}

func (m *mockListPlans) Execute(_ context.Context, query usecases.ListPlansQuery) ([]*membershipdto.PlanDTO, int64, error) {
	m.lastQuery = query
	return m.items, m.total, m.err
}

type mockUpdatePlan struct {
	lastCmd usecases.UpdatePlanCommand
	result  *membershipdto.PlanDTO
	err     error
}

func (m *mockUpdatePlan) Execute(_ context.Context, cmd usecases.UpdatePlanCommand) (*membershipdto.PlanDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockDeletePlan struct {
	lastSID string
	err     error
}

func (m *mockDeletePlan) Execute(_ context.Context, sid string) error {
	m.lastSID = sid
	return m.err
}

func newPlanHandler(create *mockCreatePlan, get *mockGetPlan, list *mockListPlans, update *mockUpdatePlan, del *mockDeletePlan) *PlanHandler {
	if create == nil {
		create = &mockCreatePlan{}
	}
	if get == nil {
		get = &mockGetPlan{}
	}
	if list == nil {
		list = &mockListPlans{}
	}
	if update == nil {
		update = &mockUpdatePlan{}
	}
	if del == nil {
		del = &mockDeletePlan{}
	}
	return NewPlanHandler(create, get, list, update, del)
}

func samplePlanDTO() *membershipdto.PlanDTO {
	return &membershipdto.PlanDTO{
		ID:             "plan_abc123",
		Name:           "10 visits",
		DurationDays:   60,
		VisitAllotment: 10,
		PriceCents:     450000,
		Currency:       "RUB",
		Active:         true,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func TestPlanHandler_Create(t *testing.T) {
	create := &mockCreatePlan{result: samplePlanDTO()}
	handler := newPlanHandler(create, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/plans", map[string]interface{}{
		"name":            "10 visits",
		"duration_days":   60,
		"visit_allotment": 10,
		"price_cents":     450000,
		"currency":        "RUB",
	})

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var plan membershipdto.PlanDTO
	require.NoError(t, json.Unmarshal(resp.Data, &plan))
	assert.Equal(t, "plan_abc123", plan.ID)

	assert.Equal(t, "10 visits", create.lastCmd.Name)
	assert.Equal(t, 60, create.lastCmd.DurationDays)
	assert.Equal(t, 10, create.lastCmd.VisitAllotment)
}

func TestPlanHandler_Create_MissingName(t *testing.T) {
	create := &mockCreatePlan{}
	handler := newPlanHandler(create, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/plans", map[string]interface{}{
		"duration_days": 30,
	})

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, create.lastCmd.Name)
}

func TestPlanHandler_Get_NotFound(t *testing.T) {
	get := &mockGetPlan{err: membership.ErrPlanNotFound}
	handler := newPlanHandler(nil, get, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/plans/plan_missing", nil)
	testutil.SetURLParam(c, "sid", "plan_missing")

	handler.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "plan_missing", get.lastSID)
}

func TestPlanHandler_List(t *testing.T) {
	list := &mockListPlans{items: []*membershipdto.PlanDTO{samplePlanDTO()}, total: 1}
	handler := newPlanHandler(nil, nil, list, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/plans", nil)
	testutil.SetQueryParams(c, map[string]string{"active": "true", "page": "2", "page_size": "5"})

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, list.lastQuery.ActiveOnly)
	assert.Equal(t, 2, list.lastQuery.Page)
	assert.Equal(t, 5, list.lastQuery.PageSize)
}

func TestPlanHandler_Update_PartialFields(t *testing.T) {
	update := &mockUpdatePlan{result: samplePlanDTO()}
	handler := newPlanHandler(nil, nil, nil, update, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/plans/plan_abc123", map[string]interface{}{
		"price_cents": 500000,
	})
	testutil.SetURLParam(c, "sid", "plan_abc123")

	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan_abc123", update.lastCmd.SID)
	require.NotNil(t, update.lastCmd.PriceCents)
	assert.Equal(t, int64(500000), *update.lastCmd.PriceCents)
	assert.Nil(t, update.lastCmd.Name)
	assert.Nil(t, update.lastCmd.Active)
}

func TestPlanHandler_Delete_InUse(t *testing.T) {
	del := &mockDeletePlan{err: membership.ErrPlanInUse}
	handler := newPlanHandler(nil, nil, nil, nil, del)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/plans/plan_abc123", nil)
	testutil.SetURLParam(c, "sid", "plan_abc123")

	handler.Delete(c)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "plan_abc123", del.lastSID)
}

func TestPlanHandler_Delete_OK(t *testing.T) {
	del := &mockDeletePlan{}
	handler := newPlanHandler(nil, nil, nil, nil, del)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/plans/plan_abc123", nil)
	testutil.SetURLParam(c, "sid", "plan_abc123")

	handler.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}
