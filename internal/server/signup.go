package server

import (
	"errors"
	"net/http"
	"strings"

	"volunteerhub/internal/notify"
	"volunteerhub/pkg/types"

	"github.com/alexedwards/flow"
)

type SignupPageData struct {
	types.BasePageData
	Opportunity types.Opportunity
	Form        signupForm
	Errors      map[string]string
}

func (s *Service) handleGetSignupForm(w http.ResponseWriter, r *http.Request) {
	session, _ := s.sessionFromContext(r.Context())
	opportunityID := flow.Param(r.Context(), "id")

	opp, err := s.opportunities.ByID(opportunityID)
	if err != nil {
		if errors.Is(err, types.ErrOpportunityNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to load opportunity")
		s.internalServerError(w)
		return
	}

	if s.gate.Classify(*opp) != types.ApprovalStatusApproved {
		http.NotFound(w, r)
		return
	}

	data := SignupPageData{
		Opportunity: *opp,
		Form: signupForm{
			Name:  session.Name,
			Email: session.Email,
		},
	}
	data.Title = "Sign Up: " + opp.Title

	if err := s.renderTemplate(w, r, "page.signup", &data); err != nil {
		s.logger.WithError(err).Error("failed to render signup page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostSignupForm(w http.ResponseWriter, r *http.Request) {
	opportunityID := flow.Param(r.Context(), "id")

	opp, err := s.opportunities.ByID(opportunityID)
	if err != nil {
		if errors.Is(err, types.ErrOpportunityNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to load opportunity")
		s.internalServerError(w)
		return
	}

	if s.gate.Classify(*opp) != types.ApprovalStatusApproved {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.internalServerError(w)
		return
	}

	var form = new(signupForm)
	err = decoder.Decode(form, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode signup form")
		s.internalServerError(w)
		return
	}

	if err := validate.Struct(form); err != nil {
		data := SignupPageData{
			Opportunity: *opp,
			Form:        *form,
			Errors:      fieldErrors(err),
		}
		data.Title = "Sign Up: " + opp.Title
		if err := s.renderTemplate(w, r, "page.signup", &data); err != nil {
			s.logger.WithError(err).Error("failed to render signup page")
			s.internalServerError(w)
		}
		return
	}

	_, err = s.submissions.SignUp(
		*opp,
		strings.TrimSpace(form.Name),
		strings.TrimSpace(form.Email),
		strings.TrimSpace(form.Motivation),
	)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrAlreadySignedUp):
			s.redirectWithError(w, r, "/opportunity/"+opp.ID, "you are already signed up for this opportunity")
		case errors.Is(err, types.ErrCapacityFull):
			s.redirectWithError(w, r, "/opportunity/"+opp.ID, "this opportunity is full")
		default:
			s.logger.WithError(err).Error("failed to record signup")
			s.internalServerError(w)
		}
		return
	}

	if err := s.notifications.Add(notify.SignupConfirmation(opp.ID, opp.Title)); err != nil {
		s.logger.WithError(err).Error("failed to store signup notification")
	}
	s.toaster.Show(notify.SignupSuccessToast(opp.Title))

	http.Redirect(w, r, "/my-opportunities", http.StatusSeeOther)
}

func (s *Service) handlePostWithdraw(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	opportunityID := flow.Param(r.Context(), "id")

	opp, err := s.opportunities.ByID(opportunityID)
	if err != nil {
		if errors.Is(err, types.ErrOpportunityNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to load opportunity")
		s.internalServerError(w)
		return
	}

	// Withdrawing something never signed up for is a silent no-op.
	if err := s.submissions.Withdraw(opp.ID, session.Email); err != nil {
		s.logger.WithError(err).Error("failed to withdraw signup")
		s.internalServerError(w)
		return
	}

	if err := s.notifications.Add(notify.SignupCancellation(opp.ID, opp.Title)); err != nil {
		s.logger.WithError(err).Error("failed to store cancellation notification")
	}
	s.toaster.Show(notify.SignupCancelledToast(opp.Title))

	http.Redirect(w, r, "/my-opportunities", http.StatusSeeOther)
}
