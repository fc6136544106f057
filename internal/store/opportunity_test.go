package store

import (
	"testing"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []types.Opportunity {
	return []types.Opportunity{
		{
			ID:       "1",
			Title:    "Tree Planting Day",
			Type:     types.OpportunityTypeEnvironment,
			Location: types.LocationInPerson,
			Capacity: 25, CurrentSignups: 12,
		},
		{
			ID:       "2",
			Title:    "Online Reading Buddy",
			Type:     types.OpportunityTypeEducation,
			Location: types.LocationOnline,
			Capacity: 8, CurrentSignups: 5,
		},
	}
}

func newTestOpportunityRepo(t *testing.T) *OpportunityRepository {
	t.Helper()

	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return NewOpportunityRepository(ls, testSeed())
}

func TestOpportunityRepository_AllReturnsSeedWhenEmpty(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Tree Planting Day", all[0].Title)
}

func TestOpportunityRepository_CreateRoundtrip(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	opp := types.Opportunity{
		Title:             "Beach Cleanup",
		Type:              types.OpportunityTypeEnvironment,
		Location:          types.LocationInPerson,
		OrganizationEmail: "org@example.com",
		Capacity:          10,
		CurrentSignups:    99, // must be zeroed on create
	}
	require.NoError(t, repo.Create(&opp))
	require.NotEmpty(t, opp.ID)

	got, err := repo.ByID(opp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beach Cleanup", got.Title)
	assert.Zero(t, got.CurrentSignups)
	assert.False(t, got.CreatedAt.IsZero())

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, opp.ID, all[2].ID, "submitted records append after seed")
}

func TestOpportunityRepository_CreateDuplicateID(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	opp := types.Opportunity{ID: "1", Title: "Clash With Seed"}
	assert.ErrorIs(t, repo.Create(&opp), types.ErrDuplicateID)

	first := types.Opportunity{ID: "custom", Title: "First"}
	require.NoError(t, repo.Create(&first))

	second := types.Opportunity{ID: "custom", Title: "Second"}
	assert.ErrorIs(t, repo.Create(&second), types.ErrDuplicateID)
}

func TestOpportunityRepository_AllDedupesSeedCollisions(t *testing.T) {
	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	// A persisted record reusing a seed ID, as a hand-edited data file could.
	require.NoError(t, ls.Put(localstore.KeyOpportunities, []types.Opportunity{
		{ID: "1", Title: "Impostor"},
		{ID: "x1", Title: "Legit"},
	}))

	repo := NewOpportunityRepository(ls, testSeed())

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Tree Planting Day", all[0].Title, "seed wins the ID collision")
	assert.Equal(t, "Legit", all[2].Title)
}

func TestOpportunityRepository_ByIDNotFound(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	_, err := repo.ByID("missing")
	assert.ErrorIs(t, err, types.ErrOpportunityNotFound)
}

func TestOpportunityRepository_ByOwnerMatchesCaseInsensitively(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	opp := types.Opportunity{Title: "Soup Kitchen Shift", OrganizationEmail: "Org@Example.com"}
	require.NoError(t, repo.Create(&opp))

	owned, err := repo.ByOwner("org@example.com")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Soup Kitchen Shift", owned[0].Title)

	none, err := repo.ByOwner("other@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpportunityRepository_UpdatePatchesFields(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	opp := types.Opportunity{Title: "Old Title", Capacity: 10, Address: "Old Address"}
	require.NoError(t, repo.Create(&opp))

	updated, err := repo.Update(opp.ID, types.OpportunityPatch{
		Title:    utils.StringPtr("New Title"),
		Capacity: utils.IntPtr(20),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 20, updated.Capacity)
	assert.Equal(t, "Old Address", updated.Address, "unpatched fields untouched")
	assert.NotNil(t, updated.UpdatedAt)
}

func TestOpportunityRepository_UpdateSeedFails(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	_, err := repo.Update("1", types.OpportunityPatch{Title: utils.StringPtr("Nope")})
	assert.ErrorIs(t, err, types.ErrSeedImmutable)
}

func TestOpportunityRepository_DeleteSemantics(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	opp := types.Opportunity{Title: "Short Lived"}
	require.NoError(t, repo.Create(&opp))

	require.NoError(t, repo.Delete(opp.ID))
	_, err := repo.ByID(opp.ID)
	assert.ErrorIs(t, err, types.ErrOpportunityNotFound)

	// Absent IDs are a silent no-op, seed IDs refuse.
	assert.NoError(t, repo.Delete("never-existed"))
	assert.ErrorIs(t, repo.Delete("1"), types.ErrSeedImmutable)
}

func TestOpportunityRepository_SetApproval(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	opp := types.Opportunity{Title: "Pending Thing", OrganizationEmail: "org@example.com"}
	require.NoError(t, repo.Create(&opp))

	require.NoError(t, repo.SetApproval(opp.ID, "admin@volunteerhub.com", types.ApprovalStatusApproved))

	got, err := repo.ByID(opp.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@volunteerhub.com", got.OrganizationEmail)
	assert.Equal(t, types.ApprovalStatusApproved, got.ApprovalStatus)

	assert.ErrorIs(t,
		repo.SetApproval("missing", "admin@volunteerhub.com", types.ApprovalStatusApproved),
		types.ErrOpportunityNotFound,
	)
}

func TestOpportunityRepository_IsSeed(t *testing.T) {
	repo := newTestOpportunityRepo(t)

	assert.True(t, repo.IsSeed("1"))
	assert.False(t, repo.IsSeed("anything-else"))
}
