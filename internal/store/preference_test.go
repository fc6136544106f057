package store

import (
	"testing"

	"volunteerhub/internal/localstore"
	"volunteerhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreferenceRepo(t *testing.T) *PreferenceRepository {
	t.Helper()

	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return NewPreferenceRepository(ls)
}

func TestPreferenceRepository_GetBeforeSaveReturnsNil(t *testing.T) {
	repo := newTestPreferenceRepo(t)

	prefs, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestPreferenceRepository_SaveReplacesWholesale(t *testing.T) {
	repo := newTestPreferenceRepo(t)

	require.NoError(t, repo.Save(types.VolunteerPreferences{
		VolunteeringTypes:  []types.OpportunityType{types.OpportunityTypeAnimals},
		PreferredDays:      []string{"saturday"},
		LocationPreference: types.LocationInPerson,
	}))

	require.NoError(t, repo.Save(types.VolunteerPreferences{
		VolunteeringTypes: []types.OpportunityType{types.OpportunityTypeFood},
	}))

	prefs, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, []types.OpportunityType{types.OpportunityTypeFood}, prefs.VolunteeringTypes)
	assert.Empty(t, prefs.PreferredDays, "previous record fully replaced")
	assert.Empty(t, prefs.LocationPreference)
}

func TestPreferenceRepository_Clear(t *testing.T) {
	repo := newTestPreferenceRepo(t)

	require.NoError(t, repo.Save(types.VolunteerPreferences{
		VolunteeringTypes: []types.OpportunityType{types.OpportunityTypeYouth},
	}))
	require.NoError(t, repo.Clear())

	prefs, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, prefs)
}
