package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/storage"
)

func newProjectRepo(t *testing.T) (*ProjectRepository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewProjectRepository(store), store
}

func TestProjectListEmptyStore(t *testing.T) {
	repo, _ := newProjectRepo(t)

	projects, err := repo.List()
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectSaveNewAssignsIdentities(t *testing.T) {
	repo, _ := newProjectRepo(t)

	saved, err := repo.Save(models.Project{Name: "Fiber Rollout", Status: models.StatusPlanned})
	require.NoError(t, err)

	assert.Regexp(t, `^PROJ-\d+$`, saved.ProjectID)
	assert.Regexp(t, `^\d{4}-[A-Z0-9]{4}$`, saved.ClientID)
	assert.NotNil(t, saved.Resources)

	projects, err := repo.List()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, saved.ProjectID, projects[0].ProjectID)
}

func TestProjectSaveExistingReplacesInPlace(t *testing.T) {
	repo, _ := newProjectRepo(t)

	first, err := repo.Save(models.Project{Name: "Fiber Rollout"})
	require.NoError(t, err)
	_, err = repo.Save(models.Project{Name: "Tower Maintenance"})
	require.NoError(t, err)

	first.Name = "Fiber Rollout Phase 2"
	updated, err := repo.Save(first)
	require.NoError(t, err)
	assert.Equal(t, first.ProjectID, updated.ProjectID)
	assert.Equal(t, first.ClientID, updated.ClientID)

	projects, err := repo.List()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Fiber Rollout Phase 2", projects[0].Name)
}

func TestProjectGet(t *testing.T) {
	repo, _ := newProjectRepo(t)

	saved, err := repo.Save(models.Project{Name: "Fiber Rollout"})
	require.NoError(t, err)

	found, err := repo.Get(saved.ProjectID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Fiber Rollout", found.Name)

	missing, err := repo.Get("PROJ-0")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectDelete(t *testing.T) {
	repo, _ := newProjectRepo(t)

	saved, err := repo.Save(models.Project{Name: "Fiber Rollout"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(saved.ProjectID))

	projects, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, projects)

	// Unknown id is a no-op.
	require.NoError(t, repo.Delete("PROJ-0"))
}

func TestProjectListCorruptData(t *testing.T) {
	repo, store := newProjectRepo(t)
	require.NoError(t, store.Write(storage.KeyProjects, []byte("{not json")))

	_, err := repo.List()
	assert.ErrorIs(t, err, ErrCorruptData)
}
