package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
	"github.com/gfabrizzio79/Telecor-App/storage"
)

type testEnv struct {
	router   *gin.Engine
	store    *storage.MemoryStore
	projects *repository.ProjectRepository
	staff    *repository.StaffRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	projects := repository.NewProjectRepository(store)
	staff := repository.NewStaffRepository(store)
	registries := repository.NewRegistryRepository(store)

	r := gin.New()
	r.GET("/api/projects", GetProjects(projects))
	r.POST("/api/projects", SaveProject(projects))
	r.GET("/api/projects/:id", GetProjectByID(projects))
	r.DELETE("/api/projects/:id", DeleteProject(projects))
	r.POST("/api/projects/:id/resources", AssignResource(projects, staff))
	r.PUT("/api/projects/:id/resources/:resource_id/dates", UpdateResourceDates(projects))
	r.DELETE("/api/projects/:id/resources/:resource_id", RemoveResource(projects))
	r.GET("/api/projects/:id/available-staff", GetAvailableStaff(projects, staff))
	r.GET("/api/countries", GetCountries(registries))
	r.POST("/api/countries", AddCountry(registries))
	r.POST("/api/reports/projects", GenerateProjectReport(projects))

	return &testEnv{router: r, store: store, projects: projects, staff: staff}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSaveProjectDefaultsStatus(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/projects", gin.H{"name": "Fiber Rollout"})
	require.Equal(t, http.StatusOK, w.Code)

	saved := decodeJSON[models.Project](t, w)
	assert.Equal(t, models.StatusPlanned, saved.Status)
	assert.Regexp(t, `^PROJ-\d+$`, saved.ProjectID)
	assert.NotEmpty(t, saved.ClientID)
}

func TestSaveProjectRequiresName(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/projects", gin.H{"country": "Belize"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProjectByIDNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/projects/PROJ-0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject(t *testing.T) {
	env := newTestEnv(t)

	saved, err := env.projects.Save(models.Project{Name: "Fiber Rollout"})
	require.NoError(t, err)

	w := env.do(t, http.MethodDelete, "/api/projects/"+saved.ProjectID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/projects/"+saved.ProjectID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProjectsCorruptData(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Write(storage.KeyProjects, []byte("{broken")))

	w := env.do(t, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestResourceAssignmentFlow(t *testing.T) {
	env := newTestEnv(t)

	member, err := env.staff.Save(models.Staff{
		FirstNames: "Ana", LastNames: "García",
		ProjectRole: "Engineer", MonthlySalary: floatPtr(3000),
	})
	require.NoError(t, err)
	project, err := env.projects.Save(models.Project{Name: "Fiber Rollout"})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/projects/"+project.ProjectID+"/resources",
		models.AssignResourceRequest{StaffID: member.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	resource := decodeJSON[models.Resource](t, w)
	assert.Equal(t, "Ana García", resource.StaffFullName)
	assert.Equal(t, "Engineer", resource.StaffRole)
	assert.Equal(t, 0, resource.WorkingDays)

	// Assigning the same member again conflicts.
	w = env.do(t, http.MethodPost, "/api/projects/"+project.ProjectID+"/resources",
		models.AssignResourceRequest{StaffID: member.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The assigned member is no longer available.
	w = env.do(t, http.MethodGet, "/api/projects/"+project.ProjectID+"/available-staff", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[[]models.Staff](t, w))

	// Setting both dates recomputes the derived pair.
	base := "/api/projects/" + project.ProjectID + "/resources/" + resource.ID
	w = env.do(t, http.MethodPut, base+"/dates",
		models.UpdateResourceDatesRequest{Field: "start_date", Value: "2025-03-01"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, base+"/dates",
		models.UpdateResourceDatesRequest{Field: "end_date", Value: "2025-03-30"})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeJSON[models.Resource](t, w)
	assert.Equal(t, 30, updated.WorkingDays)
	assert.Equal(t, 3000.0, updated.AmountToPay)

	// Removing frees the member up again.
	w = env.do(t, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/projects/"+project.ProjectID+"/available-staff", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]models.Staff](t, w), 1)
}

func TestAssignResourceUnknownProjectOrStaff(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/projects/PROJ-0/resources",
		models.AssignResourceRequest{StaffID: "staff-1"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	project, err := env.projects.Save(models.Project{Name: "Fiber Rollout"})
	require.NoError(t, err)

	w = env.do(t, http.MethodPost, "/api/projects/"+project.ProjectID+"/resources",
		models.AssignResourceRequest{StaffID: "staff-0"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCountriesEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/countries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	initial := decodeJSON[models.RegistryResponse](t, w)
	assert.Equal(t, len(repository.DefaultCountries), initial.Count)

	w = env.do(t, http.MethodPost, "/api/countries", models.AddOptionRequest{Value: "Panamá"})
	require.Equal(t, http.StatusOK, w.Code)
	grown := decodeJSON[models.RegistryResponse](t, w)
	assert.Equal(t, initial.Count+1, grown.Count)
	assert.Contains(t, grown.Options, "Panamá")
}

func TestGenerateProjectReportEndpoint(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.projects.Save(models.Project{Name: "Fiber Rollout", Status: models.StatusInProgress})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/reports/projects", models.ReportFilter{})
	require.Equal(t, http.StatusOK, w.Code)

	report := decodeJSON[models.ProjectReport](t, w)
	require.Equal(t, 1, report.RowCount)
	assert.True(t, report.Rows[0].Placeholder)
	assert.Equal(t, 0.0, report.GrandTotal)

	// A status filter that matches nothing yields an empty report.
	w = env.do(t, http.MethodPost, "/api/reports/projects",
		models.ReportFilter{Statuses: []string{models.StatusCompleted}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeJSON[models.ProjectReport](t, w).RowCount)
}

func floatPtr(v float64) *float64 { return &v }
