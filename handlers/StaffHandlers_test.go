package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
	"github.com/gfabrizzio79/Telecor-App/storage"
)

func newStaffEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	staff := repository.NewStaffRepository(store)

	r := gin.New()
	r.GET("/api/staff", GetStaff(staff))
	r.POST("/api/staff", SaveStaff(staff))
	r.GET("/api/staff/:id", GetStaffByID(staff))
	r.DELETE("/api/staff/:id", DeleteStaff(staff))
	r.POST("/api/staff/:id/trainings", AddTraining(staff))
	r.PUT("/api/staff/:id/trainings/:training_id", UpdateTraining(staff))
	r.DELETE("/api/staff/:id/trainings/:training_id", RemoveTraining(staff))

	return &testEnv{router: r, store: store, staff: staff}
}

func TestSaveStaffComputesFullName(t *testing.T) {
	env := newStaffEnv(t)

	w := env.do(t, http.MethodPost, "/api/staff",
		gin.H{"first_names": "Ana María", "last_names": "García"})
	require.Equal(t, http.StatusOK, w.Code)

	saved := decodeJSON[models.Staff](t, w)
	assert.Equal(t, "Ana María García", saved.FullName)
	assert.Regexp(t, `^staff-\d+$`, saved.ID)
}

func TestGetStaffByIDNotFound(t *testing.T) {
	env := newStaffEnv(t)

	w := env.do(t, http.MethodGet, "/api/staff/staff-0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrainingFlow(t *testing.T) {
	env := newStaffEnv(t)

	member, err := env.staff.Save(models.Staff{FirstNames: "Ana", LastNames: "García"})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/staff/"+member.ID+"/trainings", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.Training](t, w)
	assert.Regexp(t, `^tr-\d+$`, created.ID)

	base := "/api/staff/" + member.ID + "/trainings/" + created.ID

	w = env.do(t, http.MethodPut, base,
		models.UpdateTrainingRequest{Field: "course_name", Value: "Tower Climbing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tower Climbing", decodeJSON[models.Training](t, w).CourseName)

	w = env.do(t, http.MethodPut, base,
		models.UpdateTrainingRequest{Field: "grade", Value: "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	reloaded, err := env.staff.Get(member.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Empty(t, reloaded.Trainings)
}

func TestTrainingEndpointsUnknownStaff(t *testing.T) {
	env := newStaffEnv(t)

	w := env.do(t, http.MethodPost, "/api/staff/staff-0/trainings", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPut, "/api/staff/staff-0/trainings/tr-1",
		models.UpdateTrainingRequest{Field: "level", Value: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
