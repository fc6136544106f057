package server

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"volunteerhub/internal"
	"volunteerhub/internal/localstore"
	"volunteerhub/internal/moderation"
	"volunteerhub/internal/store"
	"volunteerhub/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminEmail = "admin@volunteerhub.com"

type testEnv struct {
	service       *Service
	opportunities *store.OpportunityRepository
	submissions   *store.SubmissionRepository
	preferences   *store.PreferenceRepository
}

func newTestEnv(t *testing.T, seed []types.Opportunity) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	opportunityRepo := store.NewOpportunityRepository(ls, seed)
	submissionRepo := store.NewSubmissionRepository(ls)
	preferenceRepo := store.NewPreferenceRepository(ls)
	notificationRepo := store.NewNotificationRepository(ls)
	userRepo := store.NewUserRepository(ls)
	organizationRepo := store.NewOrganizationRepository(ls)

	gate := moderation.New(opportunityRepo, testAdminEmail)
	scheduler := moderation.NewScheduler(logger, time.Hour)

	key := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))
	config := &types.Config{
		ServerPort:       0,
		ReadTimeoutSec:   5,
		WriteTimeoutSec:  5,
		AdminEmail:       testAdminEmail,
		ApprovalDelaySec: 1,
		SessionMaxAgeSec: 3600,
		CookieHashKey:    key,
		CookieBlockKey:   key,
	}

	svc, err := New(
		config,
		logger,
		opportunityRepo,
		submissionRepo,
		preferenceRepo,
		notificationRepo,
		userRepo,
		organizationRepo,
		gate,
		scheduler,
	)
	require.NoError(t, err)

	return &testEnv{
		service:       svc,
		opportunities: opportunityRepo,
		submissions:   submissionRepo,
		preferences:   preferenceRepo,
	}
}

func (e *testEnv) sessionCookie(t *testing.T, email, name string, role types.UserType) *http.Cookie {
	t.Helper()

	encoded, err := e.service.cookie.Encode(internal.COOKIE_SESSION_NAME, Session{
		Email:    email,
		Name:     name,
		UserType: role,
	})
	require.NoError(t, err)

	return &http.Cookie{Name: internal.COOKIE_SESSION_NAME, Value: encoded}
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.service.server.Handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.service.server.Handler.ServeHTTP(rec, req)
	return rec
}

func platformOpportunity(id string, capacity, baseline int) types.Opportunity {
	return types.Opportunity{
		ID:             id,
		Title:          "Park Cleanup",
		Type:           types.OpportunityTypeEnvironment,
		Location:       types.LocationInPerson,
		Organization:   "VolunteerHub",
		Date:           "2026-09-12",
		Time:           "09:00 AM - 12:00 PM",
		Capacity:       capacity,
		CurrentSignups: baseline,
	}
}

func createPendingOpportunity(t *testing.T, env *testEnv, id, ownerEmail string) {
	t.Helper()

	opp := types.Opportunity{
		ID:                id,
		Title:             "River Survey",
		Type:              types.OpportunityTypeEnvironment,
		Location:          types.LocationInPerson,
		Organization:      "Green River",
		OrganizationEmail: ownerEmail,
		Date:              "2026-10-01",
		Time:              "10:00 AM - 01:00 PM",
		Capacity:          4,
		ApprovalStatus:    types.ApprovalStatusPending,
	}
	require.NoError(t, env.opportunities.Create(&opp))
}

func TestRequireSession_AnonymousRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/opportunities")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireSession_UndecodableCookieIsExpired(t *testing.T) {
	env := newTestEnv(t, nil)

	bad := &http.Cookie{Name: internal.COOKIE_SESSION_NAME, Value: "garbage"}
	rec := env.get("/opportunities", bad)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// The bad cookie must be expired in the same response, otherwise the
	// login page sees it and redirects home again forever.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == internal.COOKIE_SESSION_NAME {
			cleared = true
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
	assert.True(t, cleared, "expected an expiring session cookie")
}

func TestRequireAdmin_VolunteerCannotApprove(t *testing.T) {
	env := newTestEnv(t, nil)
	createPendingOpportunity(t, env, "p1", "contact@greenriver.org")

	volunteer := env.sessionCookie(t, "vol@example.com", "Sam", types.UserTypeVolunteer)
	rec := env.postForm("/admin/approve/p1", nil, volunteer)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	opp, err := env.opportunities.ByID("p1")
	require.NoError(t, err)
	assert.Equal(t, types.ApprovalStatusPending, opp.ApprovalStatus)
}

func TestAdminApprove_MarksApprovedAndRewritesOwner(t *testing.T) {
	env := newTestEnv(t, nil)
	createPendingOpportunity(t, env, "p1", "contact@greenriver.org")

	admin := env.sessionCookie(t, testAdminEmail, "Admin", types.UserTypeAdmin)
	rec := env.postForm("/admin/approve/p1", nil, admin)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	opp, err := env.opportunities.ByID("p1")
	require.NoError(t, err)
	assert.Equal(t, types.ApprovalStatusApproved, opp.ApprovalStatus)
	assert.Equal(t, testAdminEmail, opp.OrganizationEmail)
}

func TestAdminReject_DeletesOpportunity(t *testing.T) {
	env := newTestEnv(t, nil)
	createPendingOpportunity(t, env, "p1", "contact@greenriver.org")

	admin := env.sessionCookie(t, testAdminEmail, "Admin", types.UserTypeAdmin)
	rec := env.postForm("/admin/reject/p1", nil, admin)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	_, err := env.opportunities.ByID("p1")
	assert.True(t, errors.Is(err, types.ErrOpportunityNotFound))
}

func TestAdminReject_SeedOpportunityRefused(t *testing.T) {
	env := newTestEnv(t, []types.Opportunity{platformOpportunity("1", 5, 0)})

	admin := env.sessionCookie(t, testAdminEmail, "Admin", types.UserTypeAdmin)
	rec := env.postForm("/admin/reject/1", nil, admin)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/admin?error=")

	_, err := env.opportunities.ByID("1")
	assert.NoError(t, err)
}

func TestSignupPost_RecordsSubmission(t *testing.T) {
	env := newTestEnv(t, []types.Opportunity{platformOpportunity("1", 5, 0)})

	volunteer := env.sessionCookie(t, "vol@example.com", "Sam", types.UserTypeVolunteer)
	form := url.Values{
		"name":       {"Sam"},
		"email":      {"vol@example.com"},
		"motivation": {"I care about parks"},
	}
	rec := env.postForm("/signup/1", form, volunteer)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/my-opportunities", rec.Header().Get("Location"))

	attendees, err := env.submissions.AttendeesFor("1")
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, "vol@example.com", attendees[0].Email)
}

func TestSignupPost_DuplicateRedirectsWithError(t *testing.T) {
	env := newTestEnv(t, []types.Opportunity{platformOpportunity("1", 5, 0)})

	opp, err := env.opportunities.ByID("1")
	require.NoError(t, err)
	_, err = env.submissions.SignUp(*opp, "Sam", "vol@example.com", "")
	require.NoError(t, err)

	volunteer := env.sessionCookie(t, "vol@example.com", "Sam", types.UserTypeVolunteer)
	form := url.Values{
		"name":  {"Sam"},
		"email": {"vol@example.com"},
	}
	rec := env.postForm("/signup/1", form, volunteer)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/opportunity/1?error=")

	attendees, err := env.submissions.AttendeesFor("1")
	require.NoError(t, err)
	assert.Len(t, attendees, 1)
}

func TestSignupPost_CapacityFullRedirectsWithError(t *testing.T) {
	env := newTestEnv(t, []types.Opportunity{platformOpportunity("1", 1, 1)})

	volunteer := env.sessionCookie(t, "vol@example.com", "Sam", types.UserTypeVolunteer)
	form := url.Values{
		"name":  {"Sam"},
		"email": {"vol@example.com"},
	}
	rec := env.postForm("/signup/1", form, volunteer)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/opportunity/1?error=")
}

func TestSignupPost_PendingOpportunityNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	createPendingOpportunity(t, env, "p1", "contact@greenriver.org")

	volunteer := env.sessionCookie(t, "vol@example.com", "Sam", types.UserTypeVolunteer)
	form := url.Values{
		"name":  {"Sam"},
		"email": {"vol@example.com"},
	}
	rec := env.postForm("/signup/p1", form, volunteer)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpportunityDetail_PendingVisibleToOwnerAndAdminOnly(t *testing.T) {
	env := newTestEnv(t, nil)
	createPendingOpportunity(t, env, "p1", "contact@greenriver.org")

	volunteer := env.sessionCookie(t, "vol@example.com", "Sam", types.UserTypeVolunteer)
	rec := env.get("/opportunity/p1", volunteer)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	owner := env.sessionCookie(t, "Contact@GreenRiver.org", "Green River", types.UserTypeOrganization)
	rec = env.get("/opportunity/p1", owner)
	assert.Equal(t, http.StatusOK, rec.Code)

	admin := env.sessionCookie(t, testAdminEmail, "Admin", types.UserTypeAdmin)
	rec = env.get("/opportunity/p1", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfile_ShowsStoredPreferences(t *testing.T) {
	env := newTestEnv(t, nil)

	require.NoError(t, env.preferences.Save(types.VolunteerPreferences{
		VolunteeringTypes:  []types.OpportunityType{types.OpportunityTypeEnvironment},
		PreferredDays:      []string{"saturday"},
		LocationPreference: types.LocationHybrid,
	}))

	volunteer := env.sessionCookie(t, "vol@example.com", "Sam", types.UserTypeVolunteer)
	rec := env.get("/profile", volunteer)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Volunteering Preferences")
	assert.Contains(t, body, "Environment")
	assert.Contains(t, body, "Saturday")
	assert.Contains(t, body, `href="/onboarding"`)
}

func TestProfile_OrganizationSeesUpdateEntryPoint(t *testing.T) {
	env := newTestEnv(t, nil)

	org := env.sessionCookie(t, "contact@greenriver.org", "Green River", types.UserTypeOrganization)
	rec := env.get("/profile", org)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "No organization profile yet")
	assert.Contains(t, body, `href="/onboarding/organization"`)
}
