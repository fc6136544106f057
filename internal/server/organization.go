package server

import (
	"errors"
	"net/http"
	"strings"

	"volunteerhub/internal/notify"
	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"

	"github.com/alexedwards/flow"
)

type OpportunityFormPageData struct {
	types.BasePageData
	Editing     bool
	Opportunity types.Opportunity
	Types       []types.OpportunityType
	Form        opportunityForm
	Errors      map[string]string
}

type ApplicationsPageData struct {
	types.BasePageData
	Opportunity types.Opportunity
	Attendees   []types.VolunteerSubmission
}

func (s *Service) handleGetNewOpportunity(w http.ResponseWriter, r *http.Request) {
	data := OpportunityFormPageData{Types: types.OpportunityTypes}
	data.Title = "Post an Opportunity"

	if err := s.renderTemplate(w, r, "page.opportunity-form", &data); err != nil {
		s.logger.WithError(err).Error("failed to render opportunity form")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostNewOpportunity(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	form, errs := s.decodeOpportunityForm(w, r)
	if form == nil {
		return
	}

	timeWindow := ""
	if len(errs) == 0 {
		timeWindow, err = form.TimeWindow()
		if err != nil {
			errs = map[string]string{"Time": err.Error()}
		}
	}

	if len(errs) > 0 {
		data := OpportunityFormPageData{
			Types:  types.OpportunityTypes,
			Form:   *form,
			Errors: errs,
		}
		data.Title = "Post an Opportunity"
		if err := s.renderTemplate(w, r, "page.opportunity-form", &data); err != nil {
			s.logger.WithError(err).Error("failed to render opportunity form")
			s.internalServerError(w)
		}
		return
	}

	orgName := session.Name
	org, err := s.organizations.Get()
	if err != nil {
		s.logger.WithError(err).Error("failed to load organization profile")
	}
	if org != nil && org.OrganizationName != "" {
		orgName = org.OrganizationName
	}

	opp := types.Opportunity{
		Title:             strings.TrimSpace(form.Title),
		Type:              types.OpportunityType(form.Type),
		Location:          types.LocationMode(form.Location),
		Address:           strings.TrimSpace(form.Address),
		Description:       strings.TrimSpace(form.Description),
		FullDescription:   strings.TrimSpace(form.FullDescription),
		Organization:      orgName,
		OrganizationEmail: session.Email,
		Duration:          strings.TrimSpace(form.Duration),
		Commitment:        strings.TrimSpace(form.Commitment),
		Requirements:      splitLines(form.Requirements),
		Benefits:          splitLines(form.Benefits),
		ContactEmail:      strings.TrimSpace(form.ContactEmail),
		ContactPhone:      strings.TrimSpace(form.ContactPhone),
		Date:              strings.TrimSpace(form.Date),
		Time:              timeWindow,
		Capacity:          form.Capacity,
	}
	opp.ApprovalStatus = s.gate.Classify(opp)

	if err := s.opportunities.Create(&opp); err != nil {
		s.logger.WithError(err).Error("failed to create opportunity")
		s.internalServerError(w)
		return
	}

	if opp.ApprovalStatus == types.ApprovalStatusPending {
		s.scheduleApproval(opp.ID)
	}

	s.redirectWithNotice(w, r, "/my-opportunities", "opportunity submitted for review")
}

func (s *Service) handleGetEditOpportunity(w http.ResponseWriter, r *http.Request) {
	opp, ok := s.ownedOpportunity(w, r)
	if !ok {
		return
	}

	start, end := splitTimeWindow(opp.Time)

	data := OpportunityFormPageData{
		Editing:     true,
		Opportunity: *opp,
		Types:       types.OpportunityTypes,
		Form: opportunityForm{
			Title:           opp.Title,
			Type:            string(opp.Type),
			Location:        string(opp.Location),
			Address:         opp.Address,
			Description:     opp.Description,
			FullDescription: opp.FullDescription,
			Duration:        opp.Duration,
			Commitment:      opp.Commitment,
			Requirements:    strings.Join(opp.Requirements, "\n"),
			Benefits:        strings.Join(opp.Benefits, "\n"),
			ContactEmail:    opp.ContactEmail,
			ContactPhone:    opp.ContactPhone,
			Date:            opp.Date,
			StartTime:       start,
			EndTime:         end,
			Capacity:        opp.Capacity,
		},
	}
	data.Title = "Edit Opportunity"

	if err := s.renderTemplate(w, r, "page.opportunity-form", &data); err != nil {
		s.logger.WithError(err).Error("failed to render opportunity form")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostEditOpportunity(w http.ResponseWriter, r *http.Request) {
	opp, ok := s.ownedOpportunity(w, r)
	if !ok {
		return
	}

	form, errs := s.decodeOpportunityForm(w, r)
	if form == nil {
		return
	}

	timeWindow := ""
	var err error
	if len(errs) == 0 {
		timeWindow, err = form.TimeWindow()
		if err != nil {
			errs = map[string]string{"Time": err.Error()}
		}
	}

	if len(errs) > 0 {
		data := OpportunityFormPageData{
			Editing:     true,
			Opportunity: *opp,
			Types:       types.OpportunityTypes,
			Form:        *form,
			Errors:      errs,
		}
		data.Title = "Edit Opportunity"
		if err := s.renderTemplate(w, r, "page.opportunity-form", &data); err != nil {
			s.logger.WithError(err).Error("failed to render opportunity form")
			s.internalServerError(w)
		}
		return
	}

	patch := types.OpportunityPatch{
		Title:           utils.StringPtr(strings.TrimSpace(form.Title)),
		Type:            opportunityTypePtr(form.Type),
		Location:        locationModePtr(form.Location),
		Address:         utils.StringPtr(strings.TrimSpace(form.Address)),
		Description:     utils.StringPtr(strings.TrimSpace(form.Description)),
		FullDescription: utils.StringPtr(strings.TrimSpace(form.FullDescription)),
		Duration:        utils.StringPtr(strings.TrimSpace(form.Duration)),
		Commitment:      utils.StringPtr(strings.TrimSpace(form.Commitment)),
		Requirements:    splitLines(form.Requirements),
		Benefits:        splitLines(form.Benefits),
		ContactEmail:    utils.StringPtr(strings.TrimSpace(form.ContactEmail)),
		ContactPhone:    utils.StringPtr(strings.TrimSpace(form.ContactPhone)),
		Date:            utils.StringPtr(strings.TrimSpace(form.Date)),
		Time:            utils.StringPtr(timeWindow),
		Capacity:        utils.IntPtr(form.Capacity),
	}

	updated, err := s.opportunities.Update(opp.ID, patch)
	if err != nil {
		if errors.Is(err, types.ErrSeedImmutable) {
			s.redirectWithError(w, r, "/my-opportunities", "platform opportunities cannot be edited")
			return
		}
		s.logger.WithError(err).Error("failed to update opportunity")
		s.internalServerError(w)
		return
	}

	if err := s.notifications.Add(notify.EventUpdate(updated.ID, updated.Title)); err != nil {
		s.logger.WithError(err).Error("failed to store update notification")
	}
	s.toaster.Show(notify.EventUpdatedToast(updated.Title))

	http.Redirect(w, r, "/my-opportunities", http.StatusSeeOther)
}

func (s *Service) handlePostDeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	opp, ok := s.ownedOpportunity(w, r)
	if !ok {
		return
	}

	if err := s.opportunities.Delete(opp.ID); err != nil {
		if errors.Is(err, types.ErrSeedImmutable) {
			s.redirectWithError(w, r, "/my-opportunities", "platform opportunities cannot be deleted")
			return
		}
		s.logger.WithError(err).Error("failed to delete opportunity")
		s.internalServerError(w)
		return
	}

	if err := s.notifications.Add(notify.EventCancelled(opp.ID, opp.Title)); err != nil {
		s.logger.WithError(err).Error("failed to store cancellation notification")
	}
	s.toaster.Show(notify.EventCancelledToast(opp.Title))

	http.Redirect(w, r, "/my-opportunities", http.StatusSeeOther)
}

func (s *Service) handleApplications(w http.ResponseWriter, r *http.Request) {
	opp, ok := s.ownedOpportunity(w, r)
	if !ok {
		return
	}

	attendees, err := s.submissions.AttendeesFor(opp.ID)
	if err != nil {
		s.logger.WithError(err).Error("failed to load attendees")
		s.internalServerError(w)
		return
	}

	data := ApplicationsPageData{
		Opportunity: *opp,
		Attendees:   attendees,
	}
	data.Title = "Applications: " + opp.Title

	if err := s.renderTemplate(w, r, "page.applications", &data); err != nil {
		s.logger.WithError(err).Error("failed to render applications page")
		s.internalServerError(w)
		return
	}
}

// handlePostCompleteSubmission flips an attendee's signup to completed and
// raises the post-event feedback prompt.
func (s *Service) handlePostCompleteSubmission(w http.ResponseWriter, r *http.Request) {
	opp, ok := s.ownedOpportunity(w, r)
	if !ok {
		return
	}

	submissionID := flow.Param(r.Context(), "submissionID")

	if err := s.submissions.Complete(submissionID); err != nil {
		if errors.Is(err, types.ErrSubmissionNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to complete submission")
		s.internalServerError(w)
		return
	}

	if err := s.notifications.Add(notify.PostEventFeedback(opp.ID, opp.Title)); err != nil {
		s.logger.WithError(err).Error("failed to store feedback notification")
	}
	s.toaster.Show(notify.FeedbackRequestToast(opp.Title))

	http.Redirect(w, r, "/organization/opportunity/"+opp.ID+"/applications", http.StatusSeeOther)
}

// scheduleApproval arms the simulated review timer. The callback approves the
// opportunity and raises the approval notification unless a manual moderation
// action or shutdown disarmed it first.
func (s *Service) scheduleApproval(opportunityID string) {
	cancel := s.scheduler.After(s.baseCtx, func() {
		defer s.disarmApproval(opportunityID)

		if err := s.gate.Approve(opportunityID); err != nil {
			s.logger.WithError(err).Error("failed to approve opportunity")
			return
		}

		opp, err := s.opportunities.ByID(opportunityID)
		if err != nil {
			s.logger.WithError(err).Error("failed to load approved opportunity")
			return
		}

		if err := s.notifications.Add(notify.OpportunityApproved(opp.ID, opp.Title)); err != nil {
			s.logger.WithError(err).Error("failed to store approval notification")
		}
		s.toaster.Show(notify.OpportunityApprovedToast(opp.Title))
	})

	s.approvalMu.Lock()
	s.approvalCancels[opportunityID] = cancel
	s.approvalMu.Unlock()
}

// disarmApproval cancels the armed review timer for the opportunity, if any.
func (s *Service) disarmApproval(opportunityID string) {
	s.approvalMu.Lock()
	cancel, ok := s.approvalCancels[opportunityID]
	delete(s.approvalCancels, opportunityID)
	s.approvalMu.Unlock()

	if ok {
		cancel()
	}
}

// ownedOpportunity loads the :id opportunity and enforces that the session
// owns it. On failure the response has already been written.
func (s *Service) ownedOpportunity(w http.ResponseWriter, r *http.Request) (*types.Opportunity, bool) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return nil, false
	}

	opportunityID := flow.Param(r.Context(), "id")

	opp, err := s.opportunities.ByID(opportunityID)
	if err != nil {
		if errors.Is(err, types.ErrOpportunityNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		s.logger.WithError(err).Error("failed to load opportunity")
		s.internalServerError(w)
		return nil, false
	}

	if opp.OrganizationEmail == "" || !strings.EqualFold(opp.OrganizationEmail, session.Email) {
		http.NotFound(w, r)
		return nil, false
	}

	return opp, true
}

func (s *Service) decodeOpportunityForm(w http.ResponseWriter, r *http.Request) (*opportunityForm, map[string]string) {
	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.internalServerError(w)
		return nil, nil
	}

	var form = new(opportunityForm)
	err := decoder.Decode(form, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode opportunity form")
		s.internalServerError(w)
		return nil, nil
	}

	if err := validate.Struct(form); err != nil {
		return form, fieldErrors(err)
	}

	return form, nil
}

func splitTimeWindow(window string) (start, end string) {
	parts := strings.SplitN(window, " - ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return window, ""
}

func opportunityTypePtr(v string) *types.OpportunityType {
	t := types.OpportunityType(v)
	return &t
}

func locationModePtr(v string) *types.LocationMode {
	m := types.LocationMode(v)
	return &m
}
