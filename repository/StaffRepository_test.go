package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/storage"
)

func newStaffRepo(t *testing.T) (*StaffRepository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewStaffRepository(store), store
}

func TestStaffSaveDerivesFullName(t *testing.T) {
	repo, _ := newStaffRepo(t)

	saved, err := repo.Save(models.Staff{FirstNames: "Ana María", LastNames: "García"})
	require.NoError(t, err)

	assert.Regexp(t, `^staff-\d+$`, saved.ID)
	assert.Equal(t, "Ana María García", saved.FullName)
	assert.NotNil(t, saved.Trainings)
	assert.NotNil(t, saved.Specialties)
}

func TestStaffSaveFullNameWithMissingParts(t *testing.T) {
	repo, _ := newStaffRepo(t)

	saved, err := repo.Save(models.Staff{FirstNames: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", saved.FullName)

	saved, err = repo.Save(models.Staff{LastNames: "García"})
	require.NoError(t, err)
	assert.Equal(t, "García", saved.FullName)
}

func TestStaffListSortedByLastNames(t *testing.T) {
	repo, _ := newStaffRepo(t)

	for _, member := range []models.Staff{
		{FirstNames: "Luis", LastNames: "Pérez"},
		{FirstNames: "Ana", LastNames: "Ávalos"},
		{FirstNames: "Marta", LastNames: "Castillo"},
	} {
		_, err := repo.Save(member)
		require.NoError(t, err)
	}

	staff, err := repo.List()
	require.NoError(t, err)
	require.Len(t, staff, 3)

	// Spanish collation sorts Ávalos before Castillo despite the accent.
	assert.Equal(t, "Ávalos", staff[0].LastNames)
	assert.Equal(t, "Castillo", staff[1].LastNames)
	assert.Equal(t, "Pérez", staff[2].LastNames)
}

func TestStaffSaveExistingReplaces(t *testing.T) {
	repo, _ := newStaffRepo(t)

	saved, err := repo.Save(models.Staff{FirstNames: "Ana", LastNames: "García"})
	require.NoError(t, err)

	saved.JobPosition = "Site Supervisor"
	updated, err := repo.Save(saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	staff, err := repo.List()
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Site Supervisor", staff[0].JobPosition)
}

func TestStaffGetAndDelete(t *testing.T) {
	repo, _ := newStaffRepo(t)

	saved, err := repo.Save(models.Staff{FirstNames: "Ana", LastNames: "García"})
	require.NoError(t, err)

	found, err := repo.Get(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)

	require.NoError(t, repo.Delete(saved.ID))

	found, err = repo.Get(saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Unknown id is a no-op.
	require.NoError(t, repo.Delete("staff-0"))
}

func TestStaffListCorruptData(t *testing.T) {
	repo, store := newStaffRepo(t)
	require.NoError(t, store.Write(storage.KeyStaff, []byte("[{")))

	_, err := repo.List()
	assert.ErrorIs(t, err, ErrCorruptData)
}
