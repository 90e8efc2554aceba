package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project-dashboard/internal/dashboard"
	"project-dashboard/pkg/constants"
)

func TestReportService_ProjectReport(t *testing.T) {
	p, tech, c, _ := newDashboardFixture()
	svc := NewReportService(p, tech, c, zap.NewNop())

	rows, err := svc.ProjectReport(context.Background(), constants.RoleManager)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "برج الياسمين", rows[0].Name)
	assert.Equal(t, 40, rows[0].Percent)
	assert.Equal(t, dashboard.CategoryInReview, rows[0].Category)
	assert.Equal(t, 1, rows[0].TechnicalTotal)
	assert.Equal(t, 1, rows[0].TechnicalOpen)
	require.NotNil(t, rows[0].ClearanceTotal)
	assert.Equal(t, 0, *rows[0].ClearanceTotal)

	assert.Equal(t, 1, rows[1].TechnicalTotal)
	assert.Equal(t, 0, rows[1].TechnicalOpen)
	require.NotNil(t, rows[1].ClearanceTotal)
	assert.Equal(t, 1, *rows[1].ClearanceTotal)
}

func TestReportService_EngineerSeesNoClearance(t *testing.T) {
	p, tech, c, _ := newDashboardFixture()
	svc := NewReportService(p, tech, c, zap.NewNop())

	rows, err := svc.ProjectReport(context.Background(), constants.RoleEngineer)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Nil(t, row.ClearanceTotal)
	}
	assert.Zero(t, c.listCalls)
}
