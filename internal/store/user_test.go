package store

import (
	"testing"

	"volunteerhub/internal/localstore"
	"volunteerhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Lifecycle(t *testing.T) {
	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	repo := NewUserRepository(ls)

	user, err := repo.Current()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, repo.SaveCurrent(types.User{
		Email:    "ada@example.com",
		Name:     "Ada",
		UserType: types.UserTypeVolunteer,
	}))

	user, err = repo.Current()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Email)

	userType, err := repo.CurrentType()
	require.NoError(t, err)
	assert.Equal(t, types.UserTypeVolunteer, userType)

	require.NoError(t, repo.Clear())

	user, err = repo.Current()
	require.NoError(t, err)
	assert.Nil(t, user)

	userType, err = repo.CurrentType()
	require.NoError(t, err)
	assert.Empty(t, userType)
}

func TestUserRepository_CurrentTypeFallsBackToUserRecord(t *testing.T) {
	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	repo := NewUserRepository(ls)

	// Only the user record exists, as older data files may have it.
	require.NoError(t, ls.Put(localstore.KeyUser, types.User{
		Email:    "org@example.com",
		UserType: types.UserTypeOrganization,
	}))

	userType, err := repo.CurrentType()
	require.NoError(t, err)
	assert.Equal(t, types.UserTypeOrganization, userType)
}

func TestOrganizationRepository_SaveStampsTimes(t *testing.T) {
	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	repo := NewOrganizationRepository(ls)

	org, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, org)

	require.NoError(t, repo.Save(types.Organization{
		OrganizationName: "Green River Alliance",
		Email:            "contact@greenriver.org",
	}))

	org, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.False(t, org.CreatedAt.IsZero())
	assert.False(t, org.UpdatedAt.IsZero())

	created := org.CreatedAt

	// Re-saving with the original creation time keeps it but moves UpdatedAt.
	org.ShortDescription = "river cleanups"
	require.NoError(t, repo.Save(*org))

	org, err = repo.Get()
	require.NoError(t, err)
	assert.Equal(t, created, org.CreatedAt)
	assert.Equal(t, "river cleanups", org.ShortDescription)
}
