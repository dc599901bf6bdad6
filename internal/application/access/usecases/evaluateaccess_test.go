package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymgate/internal/domain/access"
	"gymgate/internal/domain/client"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

type fakeClientRepo struct {
	byFaceToken map[string]*client.Client
	resolveErr  error
}

func (f *fakeClientRepo) Create(ctx context.Context, c *client.Client) error { return nil }
func (f *fakeClientRepo) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	return nil, nil
}
func (f *fakeClientRepo) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	return nil, nil
}
func (f *fakeClientRepo) GetByFaceToken(ctx context.Context, faceToken string) (*client.Client, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.byFaceToken[faceToken], nil
}
func (f *fakeClientRepo) List(ctx context.Context, filter client.ListFilter) ([]*client.Client, int64, error) {
	return nil, 0, nil
}
func (f *fakeClientRepo) Update(ctx context.Context, c *client.Client) error { return nil }
func (f *fakeClientRepo) Delete(ctx context.Context, id uint) error          { return nil }

type fakeSubRepo struct {
	byClient        map[uint][]*membership.Subscription
	conflictsBefore int // UpdateWithVersion fails this many times first
	updateCalls     int
	updatedVersions []int
}

func (f *fakeSubRepo) Create(ctx context.Context, sub *membership.Subscription) error { return nil }
func (f *fakeSubRepo) GetByID(ctx context.Context, id uint) (*membership.Subscription, error) {
	return nil, nil
}
func (f *fakeSubRepo) GetBySID(ctx context.Context, sid string) (*membership.Subscription, error) {
	return nil, nil
}
func (f *fakeSubRepo) ListByClientID(ctx context.Context, clientID uint) ([]*membership.Subscription, error) {
	return f.byClient[clientID], nil
}
func (f *fakeSubRepo) Update(ctx context.Context, sub *membership.Subscription) error { return nil }
func (f *fakeSubRepo) UpdateWithVersion(ctx context.Context, sub *membership.Subscription, expectedVersion int) error {
	f.updateCalls++
	if f.updateCalls <= f.conflictsBefore {
		return membership.ErrVersionConflict
	}
	f.updatedVersions = append(f.updatedVersions, expectedVersion)
	return nil
}
func (f *fakeSubRepo) Delete(ctx context.Context, id uint) error { return nil }

type fakePlanRepo struct {
	byID map[uint]*membership.Plan
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *membership.Plan) error { return nil }
func (f *fakePlanRepo) GetByID(ctx context.Context, id uint) (*membership.Plan, error) {
	return f.byID[id], nil
}
func (f *fakePlanRepo) GetBySID(ctx context.Context, sid string) (*membership.Plan, error) {
	return nil, nil
}
func (f *fakePlanRepo) List(ctx context.Context, filter membership.PlanListFilter) ([]*membership.Plan, int64, error) {
	return nil, 0, nil
}
func (f *fakePlanRepo) Update(ctx context.Context, plan *membership.Plan) error { return nil }
func (f *fakePlanRepo) Delete(ctx context.Context, id uint) error               { return nil }
func (f *fakePlanRepo) CountSubscriptions(ctx context.Context, planID uint) (int64, error) {
	return 0, nil
}

type fakeLogRepo struct {
	mu        sync.Mutex
	entries   []*access.LogEntry
	appendErr error
}

func (f *fakeLogRepo) Append(ctx context.Context, entry *access.LogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, entry)
	return nil
}
func (f *fakeLogRepo) List(ctx context.Context, filter access.ListFilter) ([]*access.LogEntry, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}
func (f *fakeLogRepo) CountSince(ctx context.Context, since time.Time, granted bool) (int64, error) {
	return 0, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingAlerter struct {
	mu    sync.Mutex
	calls int
}

func (a *recordingAlerter) Enabled() bool { return true }
func (a *recordingAlerter) SendStorageFailureAlert(deviceID, faceToken string, cause error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return nil
}
func (a *recordingAlerter) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func testClient(t *testing.T, id uint, faceToken string) *client.Client {
	t.Helper()
	c, err := client.ReconstructClient(id, "clt_test", "Ivan", "Petrov", faceToken, "", "", "", "", time.Now(), time.Now())
	require.NoError(t, err)
	return c
}

func testSubscription(t *testing.T, id uint, clientID uint, paid, used int, lastAccess *time.Time) *membership.Subscription {
	t.Helper()
	sub, err := membership.ReconstructSubscription(
		id, "sub_test", clientID, 1,
		time.Now().Add(-30*24*time.Hour),
		paid, used, true,
		lastAccess, lastAccess, nil,
		1,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return sub
}

func testPlan(t *testing.T) *membership.Plan {
	t.Helper()
	plan, err := membership.NewPlan("plan_test", "10 visits", false, 90, 10, 500000, "RUB")
	require.NoError(t, err)
	require.NoError(t, plan.SetID(1))
	return plan
}

func newEngine(clients *fakeClientRepo, subs *fakeSubRepo, plans *fakePlanRepo, logs *fakeLogRepo, alerts Alerter) *EvaluateAccessUseCase {
	return NewEvaluateAccessUseCase(
		clients, subs, plans, logs,
		passthroughTx{}, alerts, 3,
		logger.NewLogger(),
	)
}

func TestEvaluateAccess_UnknownFaceToken(t *testing.T) {
	logs := &fakeLogRepo{}
	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{}},
		&fakeSubRepo{}, &fakePlanRepo{}, logs, nil,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{
		FaceToken: "ft-stranger",
		DeviceID:  "gate-1",
	})
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.False(t, decision.Deducted)
	assert.Equal(t, "client with this face token not found", decision.Reason)
	assert.Nil(t, decision.Client)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Nil(t, entry.ClientID())
	assert.Nil(t, entry.SubscriptionID())
	assert.False(t, entry.Granted())
	assert.Equal(t, "ft-stranger", entry.FaceToken())
	assert.Equal(t, "gate-1", entry.DeviceID())
}

func TestEvaluateAccess_FirstVisitToday(t *testing.T) {
	person := testClient(t, 7, "ft-ivan")
	sub := testSubscription(t, 42, 7, 10, 3, nil)
	subs := &fakeSubRepo{byClient: map[uint][]*membership.Subscription{7: {sub}}}
	logs := &fakeLogRepo{}

	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{"ft-ivan": person}},
		subs,
		&fakePlanRepo{byID: map[uint]*membership.Plan{1: testPlan(t)}},
		logs, nil,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan", DeviceID: "gate-1"})
	require.NoError(t, err)

	assert.True(t, decision.Granted)
	assert.True(t, decision.Deducted)
	require.NotNil(t, decision.Client)
	assert.Equal(t, "Ivan", decision.Client.FirstName)
	require.NotNil(t, decision.Subscription)
	assert.Equal(t, "10 visits", decision.Subscription.PlanName)
	assert.Equal(t, 4, decision.Subscription.UsedVisits)
	assert.Equal(t, 6, decision.Subscription.RemainingVisits)

	// The CAS ran against the version the subscription was loaded with.
	require.Equal(t, []int{1}, subs.updatedVersions)

	require.Len(t, logs.entries, 1)
	assert.True(t, logs.entries[0].Granted())
	assert.True(t, logs.entries[0].Deducted())
}

func TestEvaluateAccess_SameDayReentry_NoDeduction(t *testing.T) {
	today := time.Now().UTC()
	person := testClient(t, 7, "ft-ivan")
	sub := testSubscription(t, 42, 7, 10, 4, &today)
	logs := &fakeLogRepo{}

	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{"ft-ivan": person}},
		&fakeSubRepo{byClient: map[uint][]*membership.Subscription{7: {sub}}},
		&fakePlanRepo{byID: map[uint]*membership.Plan{1: testPlan(t)}},
		logs, nil,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan"})
	require.NoError(t, err)

	assert.True(t, decision.Granted)
	assert.False(t, decision.Deducted)
	assert.Equal(t, 6, decision.Subscription.RemainingVisits)

	require.Len(t, logs.entries, 1)
	assert.True(t, logs.entries[0].Granted())
	assert.False(t, logs.entries[0].Deducted())
}

func TestEvaluateAccess_ReentryAtZeroRemaining(t *testing.T) {
	// The last visit was deducted this morning; coming back from a break
	// must still open the gate.
	today := time.Now().UTC()
	person := testClient(t, 7, "ft-ivan")
	sub := testSubscription(t, 42, 7, 10, 10, &today)
	logs := &fakeLogRepo{}

	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{"ft-ivan": person}},
		&fakeSubRepo{byClient: map[uint][]*membership.Subscription{7: {sub}}},
		&fakePlanRepo{byID: map[uint]*membership.Plan{1: testPlan(t)}},
		logs, nil,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan"})
	require.NoError(t, err)

	assert.True(t, decision.Granted)
	assert.False(t, decision.Deducted)
}

func TestEvaluateAccess_ZeroRemainingFreshDay_Denied(t *testing.T) {
	yesterday := time.Now().UTC().Add(-48 * time.Hour)
	person := testClient(t, 7, "ft-ivan")
	sub := testSubscription(t, 42, 7, 10, 10, &yesterday)
	subs := &fakeSubRepo{byClient: map[uint][]*membership.Subscription{7: {sub}}}
	logs := &fakeLogRepo{}

	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{"ft-ivan": person}},
		subs, &fakePlanRepo{}, logs, nil,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan"})
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.Equal(t, "no active subscription with available visits", decision.Reason)
	require.NotNil(t, decision.Client)
	assert.Zero(t, subs.updateCalls)

	require.Len(t, logs.entries, 1)
	require.NotNil(t, logs.entries[0].ClientID())
	assert.Equal(t, uint(7), *logs.entries[0].ClientID())
}

func TestEvaluateAccess_VersionConflictRetries(t *testing.T) {
	person := testClient(t, 7, "ft-ivan")
	sub := testSubscription(t, 42, 7, 10, 3, nil)
	subs := &fakeSubRepo{
		byClient:        map[uint][]*membership.Subscription{7: {sub}},
		conflictsBefore: 2,
	}
	logs := &fakeLogRepo{}

	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{"ft-ivan": person}},
		subs,
		&fakePlanRepo{byID: map[uint]*membership.Plan{1: testPlan(t)}},
		logs, nil,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan"})
	require.NoError(t, err)

	assert.True(t, decision.Granted)
	assert.Equal(t, 3, subs.updateCalls)
	// Conflicted attempts abort before the audit append, so the surviving
	// attempt records the only entry.
	assert.Len(t, logs.entries, 1)
}

func TestEvaluateAccess_RetriesExhausted_FailsClosed(t *testing.T) {
	person := testClient(t, 7, "ft-ivan")
	sub := testSubscription(t, 42, 7, 10, 3, nil)
	subs := &fakeSubRepo{
		byClient:        map[uint][]*membership.Subscription{7: {sub}},
		conflictsBefore: 100,
	}
	logs := &fakeLogRepo{}
	alerts := &recordingAlerter{}

	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{"ft-ivan": person}},
		subs, &fakePlanRepo{}, logs, alerts,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan"})
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.Equal(t, "access temporarily unavailable", decision.Reason)
	assert.Equal(t, 3, subs.updateCalls)
}

func TestEvaluateAccess_StorageFailure_FailsClosedAndAlerts(t *testing.T) {
	logs := &fakeLogRepo{}
	alerts := &recordingAlerter{}

	engine := newEngine(
		&fakeClientRepo{resolveErr: errors.New("connection refused")},
		&fakeSubRepo{}, &fakePlanRepo{}, logs, alerts,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan", DeviceID: "gate-1"})
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.Equal(t, "access temporarily unavailable", decision.Reason)

	// The denial is still recorded when the audit store answers.
	require.Len(t, logs.entries, 1)
	assert.False(t, logs.entries[0].Granted())

	require.Eventually(t, func() bool {
		return alerts.count() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestEvaluateAccess_PicksEligibleAmongMany(t *testing.T) {
	person := testClient(t, 7, "ft-ivan")
	exhausted := testSubscription(t, 40, 7, 5, 5, nil)
	inactive := testSubscription(t, 41, 7, 10, 0, nil)
	inactive.Deactivate()
	healthy := testSubscription(t, 42, 7, 10, 2, nil)
	logs := &fakeLogRepo{}

	engine := newEngine(
		&fakeClientRepo{byFaceToken: map[string]*client.Client{"ft-ivan": person}},
		&fakeSubRepo{byClient: map[uint][]*membership.Subscription{7: {exhausted, inactive, healthy}}},
		&fakePlanRepo{byID: map[uint]*membership.Plan{1: testPlan(t)}},
		logs, nil,
	)

	decision, err := engine.Execute(context.Background(), EvaluateAccessCommand{FaceToken: "ft-ivan"})
	require.NoError(t, err)

	assert.True(t, decision.Granted)
	require.NotNil(t, decision.Subscription)
	assert.Equal(t, "sub_test", decision.Subscription.ID)
	assert.Equal(t, 7, decision.Subscription.RemainingVisits)

	require.Len(t, logs.entries, 1)
	require.NotNil(t, logs.entries[0].SubscriptionID())
	assert.Equal(t, uint(42), *logs.entries[0].SubscriptionID())
}
