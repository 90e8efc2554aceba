package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/entities"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
)

func newTestProjectService() (*ProjectService, *fakeProjectRepo, *recordingBus) {
	p, t, c, _ := newDashboardFixture()
	// второй проект с тем же именем делает привязку по имени неоднозначной
	p.items = append(p.items, entities.Project{ID: 3, Title: "palm villas", Status: "active"})
	bus := &recordingBus{}
	return NewProjectService(p, t, c, bus, zap.NewNop()), p, bus
}

func TestProjectService_GetLinksRequests(t *testing.T) {
	svc, _, _ := newTestProjectService()

	got, err := svc.Get(context.Background(), 1, constants.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "برج الياسمين", got.DisplayName)
	require.Len(t, got.TechnicalRequests, 1)
	assert.Equal(t, int64(10), got.TechnicalRequests[0].ID)
	assert.Empty(t, got.ClearanceRequests)
	assert.NotNil(t, got.ClearanceRequests)
}

func TestProjectService_GetAmbiguousNameNotLinked(t *testing.T) {
	svc, _, _ := newTestProjectService()

	got, err := svc.Get(context.Background(), 2, constants.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, got.TechnicalRequests)
	assert.Empty(t, got.ClearanceRequests)
}

func TestProjectService_GetNotFound(t *testing.T) {
	svc, _, _ := newTestProjectService()

	_, err := svc.Get(context.Background(), 99, constants.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProjectService_CreateUpdatePublish(t *testing.T) {
	svc, repo, bus := newTestProjectService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProjectDTO{Client: "شركة النخبة", Status: "قيد التنفيذ", Progress: 12.5})
	require.NoError(t, err)
	assert.Equal(t, "شركة النخبة", created.DisplayName)
	assert.Equal(t, 13, created.Percent)

	status := "مكتمل"
	updated, err := svc.Update(ctx, created.ID, dto.UpdateProjectDTO{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "مكتمل", updated.Status)
	assert.Equal(t, 12.5, updated.Progress)
	assert.Len(t, repo.items, 4)

	require.Len(t, bus.events, 2)
	assert.Equal(t, constants.EventProjectChanged, bus.events[0].EventName)
	assert.Equal(t, ActionCreate, bus.events[0].Action)
	assert.Equal(t, ActionUpdate, bus.events[1].Action)
	assert.Equal(t, created.ID, bus.events[1].EntityID)
}

func TestProjectService_TogglePin(t *testing.T) {
	svc, _, bus := newTestProjectService()
	ctx := context.Background()

	got, err := svc.TogglePin(ctx, 2)
	require.NoError(t, err)
	assert.True(t, got.IsPinned)

	got, err = svc.TogglePin(ctx, 2)
	require.NoError(t, err)
	assert.False(t, got.IsPinned)
	assert.Len(t, bus.events, 2)
}

func TestProjectService_DeleteMissingDoesNotPublish(t *testing.T) {
	svc, _, bus := newTestProjectService()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, bus.events)
}
