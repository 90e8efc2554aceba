package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/entities"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/config"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
	"project-dashboard/pkg/service"
	"project-dashboard/pkg/utils"
	"project-dashboard/pkg/websocket"
)

type stubAuth struct{}

func (stubAuth) Login(_ context.Context, p dto.LoginDTO) (*dto.TokenDTO, error) {
	if p.Password != "secret123" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &dto.TokenDTO{AccessToken: "tok", ExpiresIn: 60, Role: constants.RoleAdmin}, nil
}

type stubDashboard struct {
	last services.DashboardOptions
}

func (s *stubDashboard) GetDashboard(_ context.Context, opts services.DashboardOptions) (*dto.DashboardDTO, error) {
	s.last = opts
	return &dto.DashboardDTO{Role: opts.Role}, nil
}
func (s *stubDashboard) Warm(context.Context) error       { return nil }
func (s *stubDashboard) Invalidate(context.Context) error { return nil }

type stubProjects struct{}

func (stubProjects) List(context.Context) ([]dto.ProjectDTO, error) { return []dto.ProjectDTO{}, nil }
func (stubProjects) Get(_ context.Context, id int64, _ string) (*dto.ProjectDetailsDTO, error) {
	if id != 1 {
		return nil, apperrors.ErrNotFound
	}
	return &dto.ProjectDetailsDTO{ProjectDTO: dto.NewProjectDTO(entities.Project{ID: 1, Name: "Palm Villas"})}, nil
}
func (stubProjects) Create(_ context.Context, in dto.CreateProjectDTO) (*dto.ProjectDTO, error) {
	out := dto.NewProjectDTO(in.ToEntity())
	return &out, nil
}
func (stubProjects) Update(context.Context, int64, dto.UpdateProjectDTO) (*dto.ProjectDTO, error) {
	return &dto.ProjectDTO{}, nil
}
func (stubProjects) Delete(context.Context, int64) error { return nil }
func (stubProjects) TogglePin(context.Context, int64) (*dto.ProjectDTO, error) {
	return &dto.ProjectDTO{}, nil
}

type stubTechnical struct{}

func (stubTechnical) List(context.Context, dto.RequestListQueryDTO) ([]dto.TechnicalRequestDTO, error) {
	return []dto.TechnicalRequestDTO{}, nil
}
func (stubTechnical) Get(context.Context, int64) (*dto.TechnicalRequestDTO, error) {
	return &dto.TechnicalRequestDTO{}, nil
}
func (stubTechnical) Create(_ context.Context, in dto.CreateTechnicalRequestDTO) (*dto.TechnicalRequestDTO, error) {
	out := dto.NewTechnicalRequestDTO(in.ToEntity())
	return &out, nil
}
func (stubTechnical) Update(context.Context, int64, dto.UpdateTechnicalRequestDTO) (*dto.TechnicalRequestDTO, error) {
	return &dto.TechnicalRequestDTO{}, nil
}
func (stubTechnical) Delete(context.Context, int64) error { return nil }

type stubClearance struct {
	imported int
}

func (s *stubClearance) List(context.Context, dto.RequestListQueryDTO) ([]dto.ClearanceRequestDTO, error) {
	return []dto.ClearanceRequestDTO{}, nil
}
func (s *stubClearance) Get(context.Context, int64) (*dto.ClearanceRequestDTO, error) {
	return &dto.ClearanceRequestDTO{}, nil
}
func (s *stubClearance) Create(context.Context, dto.CreateClearanceRequestDTO) (*dto.ClearanceRequestDTO, error) {
	return &dto.ClearanceRequestDTO{}, nil
}
func (s *stubClearance) Update(context.Context, int64, dto.UpdateClearanceRequestDTO) (*dto.ClearanceRequestDTO, error) {
	return &dto.ClearanceRequestDTO{}, nil
}
func (s *stubClearance) Delete(context.Context, int64) error { return nil }
func (s *stubClearance) Import(_ context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	data, _ := io.ReadAll(r)
	s.imported = len(data)
	return &dto.ImportResultDTO{BatchID: uuid.New(), Inserted: 1}, nil
}

type stubReports struct {
	role string
}

func (s *stubReports) ProjectReport(_ context.Context, role string) ([]dto.ProjectReportRowDTO, error) {
	s.role = role
	return []dto.ProjectReportRowDTO{{ProjectID: 1, Name: "Palm Villas", Percent: 40, TechnicalTotal: 2}}, nil
}

type RouterTestSuite struct {
	suite.Suite
	Echo      *echo.Echo
	JWT       service.JWTService
	Dashboard *stubDashboard
	Clearance *stubClearance
	Reports   *stubReports
}

func (s *RouterTestSuite) SetupTest() {
	e := echo.New()
	v := validator.New()
	s.Require().NoError(utils.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	cfg := &config.Config{Upload: config.UploadConfig{MaxSizeMB: 1}}
	s.JWT = service.NewJWTService("router-test", time.Hour, zap.NewNop())
	s.Dashboard = &stubDashboard{}
	s.Clearance = &stubClearance{}
	s.Reports = &stubReports{}

	InitRouter(e, Dependencies{
		JWT:       s.JWT,
		Auth:      stubAuth{},
		Dashboard: s.Dashboard,
		Projects:  stubProjects{},
		Technical: stubTechnical{},
		Clearance: s.Clearance,
		Reports:   s.Reports,
		Hub:       websocket.NewHub(zap.NewNop()),
		Config:    cfg,
		Logger:    zap.NewNop(),
	})
	s.Echo = e
}

func (s *RouterTestSuite) token(role string) string {
	tok, err := s.JWT.GenerateAccessToken(1, role)
	s.Require().NoError(err)
	return tok
}

func (s *RouterTestSuite) do(method, path, role string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if role != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token(role))
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) doJSON(method, path, role string, payload interface{}) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)
	return s.do(method, path, role, bytes.NewReader(raw), echo.MIMEApplicationJSON)
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health", "", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestLogin() {
	rec := s.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@b.co", "password": "secret123"})
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"access_token":"tok"`)

	rec = s.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@b.co", "password": "bad-password"})
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "not-an-email", "password": "secret123"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestDashboardRequiresToken() {
	rec := s.do(http.MethodGet, "/api/dashboard", "", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestDashboardPassesRoleAndLimits() {
	rec := s.do(http.MethodGet, "/api/dashboard?activity_limit=3&top_limit=2", constants.RolePR, nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(services.DashboardOptions{Role: constants.RolePR, ActivityLimit: 3, TopLimit: 2}, s.Dashboard.last)

	rec = s.do(http.MethodGet, "/api/dashboard?activity_limit=500", constants.RolePR, nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestUnknownRoleTreatedAsViewer() {
	rec := s.do(http.MethodGet, "/api/dashboard", "intruder", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(constants.RoleViewer, s.Dashboard.last.Role)
}

func (s *RouterTestSuite) TestProjectMutationsGated() {
	payload := map[string]interface{}{"name": "Palm Villas", "status": "active", "progress": 10}

	rec := s.doJSON(http.MethodPost, "/api/projects", constants.RoleViewer, payload)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.doJSON(http.MethodPost, "/api/projects", constants.RoleManager, payload)
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.doJSON(http.MethodPost, "/api/projects", constants.RoleManager, map[string]interface{}{"name": "x", "status": "active", "progress": 140})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/projects/1", constants.RoleViewer, nil, "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/projects/2", constants.RoleViewer, nil, "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/projects/abc", constants.RoleViewer, nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestTechnicalRequestsEngineerMayEdit() {
	payload := map[string]interface{}{"project_name": "Palm Villas", "status": "pending"}

	rec := s.doJSON(http.MethodPost, "/api/technical-requests", constants.RoleEngineer, payload)
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.doJSON(http.MethodPost, "/api/technical-requests", constants.RolePR, payload)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RouterTestSuite) TestClearanceGated() {
	rec := s.do(http.MethodGet, "/api/clearance-requests", constants.RoleEngineer, nil, "")
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/clearance-requests", constants.RolePR, nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func multipartFile(s *RouterTestSuite, filename string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())
	return body, w.FormDataContentType()
}

func (s *RouterTestSuite) TestClearanceImport() {
	f := excelize.NewFile()
	s.Require().NoError(f.SetCellValue("Sheet1", "A1", "Project"))
	buf, err := f.WriteToBuffer()
	s.Require().NoError(err)
	s.Require().NoError(f.Close())

	body, ct := multipartFile(s, "batch.xlsx", buf.Bytes())
	rec := s.do(http.MethodPost, "/api/clearance-requests/import", constants.RolePR, body, ct)
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(buf.Len(), s.Clearance.imported)

	body, ct = multipartFile(s, "batch.csv", []byte("a,b\n"))
	rec = s.do(http.MethodPost, "/api/clearance-requests/import", constants.RolePR, body, ct)
	s.Equal(http.StatusBadRequest, rec.Code)

	body, ct = multipartFile(s, "fake.xlsx", []byte("plain text pretending"))
	rec = s.do(http.MethodPost, "/api/clearance-requests/import", constants.RolePR, body, ct)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/clearance-requests/import", constants.RolePR, strings.NewReader(""), echo.MIMEMultipartForm)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestProjectReport() {
	rec := s.do(http.MethodGet, "/api/reports/projects", constants.RoleViewer, nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(constants.RoleViewer, s.Reports.role)
	s.Contains(rec.Body.String(), "Palm Villas")

	rec = s.do(http.MethodGet, "/api/reports/projects?format=xlsx", constants.RoleManager, nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "projects_report_")

	f, err := excelize.OpenReader(rec.Body)
	s.Require().NoError(err)
	defer f.Close()
	name, err := f.GetCellValue(f.GetSheetName(0), "B2")
	s.Require().NoError(err)
	s.Equal("Palm Villas", name)

	rec = s.do(http.MethodGet, "/api/reports/projects?format=pdf", constants.RoleManager, nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
