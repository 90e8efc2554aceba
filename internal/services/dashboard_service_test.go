package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project-dashboard/internal/entities"
	"project-dashboard/internal/repositories"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
)

var base = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newDashboardFixture() (*fakeProjectRepo, *fakeTechRepo, *fakeClearanceRepo, *fakeUserRepo) {
	projects := &fakeProjectRepo{items: []entities.Project{
		{ID: 1, Name: "برج الياسمين", Status: "active", Progress: 40, IsPinned: true, CreatedAt: base},
		{ID: 2, Name: "Palm Villas", Status: "completed", Progress: 100, CreatedAt: base.Add(time.Hour)},
	}}
	tech := &fakeTechRepo{items: []entities.TechnicalRequest{
		{ID: 10, ProjectID: null.Int64From(1), ServiceType: "كهرباء", Status: "pending", CreatedAt: base},
		{ID: 11, ProjectName: "Palm Villas", ServiceType: "", Status: "done", CreatedAt: base.Add(2 * time.Hour)},
	}}
	clearance := &fakeClearanceRepo{items: []entities.ClearanceRequest{
		{ID: 20, ProjectName: "Palm Villas", ClientName: "Ali", Status: "مكتمل", CreatedAt: base.Add(3 * time.Hour)},
	}}
	users := &fakeUserRepo{items: []entities.User{{ID: 1}, {ID: 2}, {ID: 3}}}
	return projects, tech, clearance, users
}

func newTestDashboardService(cache repositories.CacheRepositoryInterface) (*DashboardService, *fakeProjectRepo, *fakeClearanceRepo) {
	p, t, c, u := newDashboardFixture()
	svc := NewDashboardService(p, t, c, u, cache, DashboardSettings{CacheTTL: time.Minute}, zap.NewNop())
	svc.now = func() time.Time { return base }
	return svc, p, c
}

func TestDashboardService_GetDashboard(t *testing.T) {
	svc, _, _ := newTestDashboardService(newFakeCache())

	got, err := svc.GetDashboard(context.Background(), DashboardOptions{Role: constants.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, constants.RoleAdmin, got.Role)
	assert.False(t, got.Cached)
	assert.Equal(t, base, got.GeneratedAt)
	assert.Equal(t, 1, got.KPIs.ActiveProjects)
	assert.Equal(t, 1, got.KPIs.PendingTech)
	assert.Equal(t, 1, got.KPIs.TotalClearance)
	assert.Equal(t, 3, got.KPIs.TeamCount)
	assert.Len(t, got.Activity, 3)
	assert.Equal(t, int64(20), got.Activity[0].ID)
	require.Len(t, got.TopProjects, 2)
	assert.Equal(t, int64(1), got.TopProjects[0].ID)
	assert.Equal(t, 3, got.Linkage.Linked)
}

func TestDashboardService_ViewerGetsNoClearance(t *testing.T) {
	svc, _, clearance := newTestDashboardService(newFakeCache())

	got, err := svc.GetDashboard(context.Background(), DashboardOptions{Role: constants.RoleViewer})
	require.NoError(t, err)

	assert.Equal(t, 0, clearance.listCalls)
	assert.Equal(t, 0, got.KPIs.TotalClearance)
	for _, item := range got.Activity {
		assert.NotEqual(t, "clearance", string(item.Kind))
	}
}

func TestDashboardService_UnknownRoleFallsBackToViewer(t *testing.T) {
	svc, _, clearance := newTestDashboardService(newFakeCache())

	got, err := svc.GetDashboard(context.Background(), DashboardOptions{Role: "root"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleViewer, got.Role)
	assert.Equal(t, 0, clearance.listCalls)
}

func TestDashboardService_Limits(t *testing.T) {
	svc, _, _ := newTestDashboardService(nil)

	got, err := svc.GetDashboard(context.Background(), DashboardOptions{Role: constants.RoleAdmin, ActivityLimit: 1, TopLimit: 1})
	require.NoError(t, err)
	assert.Len(t, got.Activity, 1)
	assert.Len(t, got.TopProjects, 1)
}

func TestDashboardService_CacheHit(t *testing.T) {
	cache := newFakeCache()
	svc, _, _ := newTestDashboardService(cache)
	ctx := context.Background()

	first, err := svc.GetDashboard(ctx, DashboardOptions{Role: constants.RoleManager})
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.GetDashboard(ctx, DashboardOptions{Role: constants.RoleManager})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.KPIs, second.KPIs)
	assert.Equal(t, first.Distribution, second.Distribution)
	assert.Equal(t, first.TopProjects, second.TopProjects)
	require.Len(t, second.Activity, len(first.Activity))
	assert.Equal(t, first.Activity[0].Category, second.Activity[0].Category)
}

func TestDashboardService_DataChangeMissesCache(t *testing.T) {
	cache := newFakeCache()
	svc, projects, _ := newTestDashboardService(cache)
	ctx := context.Background()

	_, err := svc.GetDashboard(ctx, DashboardOptions{Role: constants.RoleAdmin})
	require.NoError(t, err)

	projects.items[0].Progress = 100
	projects.items[0].Status = "done"
	got, err := svc.GetDashboard(ctx, DashboardOptions{Role: constants.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, got.Cached)
	assert.Equal(t, 0, got.KPIs.ActiveProjects)
}

func TestDashboardService_CacheFailureIsNotFatal(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	svc, _, _ := newTestDashboardService(cache)

	got, err := svc.GetDashboard(context.Background(), DashboardOptions{Role: constants.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, got.Cached)
}

func TestDashboardService_RepoError(t *testing.T) {
	svc, projects, _ := newTestDashboardService(newFakeCache())
	projects.listErr = errors.New("boom")

	_, err := svc.GetDashboard(context.Background(), DashboardOptions{Role: constants.RoleAdmin})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

func TestDashboardService_WarmAndInvalidate(t *testing.T) {
	cache := newFakeCache()
	svc, _, _ := newTestDashboardService(cache)
	ctx := context.Background()

	require.NoError(t, svc.Warm(ctx))
	assert.Len(t, cache.data, 1)

	require.NoError(t, svc.Invalidate(ctx))
	assert.Empty(t, cache.data)
}
