package server

import (
	"errors"
	"net/http"

	"volunteerhub/internal/notify"
	"volunteerhub/pkg/types"

	"github.com/alexedwards/flow"
)

type AdminPageData struct {
	types.BasePageData
	Pending   []OpportunityCard
	Approved  []OpportunityCard
	MySignups []OpportunityCard
}

func (s *Service) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	pending, err := s.gate.Pending()
	if err != nil {
		s.logger.WithError(err).Error("failed to load pending opportunities")
		s.internalServerError(w)
		return
	}

	approved, err := s.gate.Approved()
	if err != nil {
		s.logger.WithError(err).Error("failed to load approved opportunities")
		s.internalServerError(w)
		return
	}

	pendingCards, err := s.cardsFor(pending)
	if err != nil {
		s.logger.WithError(err).Error("failed to compute signup counts")
		s.internalServerError(w)
		return
	}

	approvedCards, err := s.cardsFor(approved)
	if err != nil {
		s.logger.WithError(err).Error("failed to compute signup counts")
		s.internalServerError(w)
		return
	}

	subs, err := s.submissions.ForEmail(session.Email)
	if err != nil {
		s.logger.WithError(err).Error("failed to load submissions")
		s.internalServerError(w)
		return
	}

	var mine []types.Opportunity
	for _, sub := range subs {
		if sub.Status != types.SubmissionStatusActive {
			continue
		}
		opp, err := s.opportunities.ByID(sub.OpportunityID)
		if err != nil {
			continue
		}
		mine = append(mine, *opp)
	}

	myCards, err := s.cardsFor(mine)
	if err != nil {
		s.logger.WithError(err).Error("failed to compute signup counts")
		s.internalServerError(w)
		return
	}

	data := AdminPageData{
		Pending:   pendingCards,
		Approved:  approvedCards,
		MySignups: myCards,
	}
	data.Title = "Moderation Dashboard"

	if err := s.renderTemplate(w, r, "page.admin", &data); err != nil {
		s.logger.WithError(err).Error("failed to render admin dashboard")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostApprove(w http.ResponseWriter, r *http.Request) {
	opportunityID := flow.Param(r.Context(), "id")

	// A manual decision beats the simulated review timer.
	s.disarmApproval(opportunityID)

	if err := s.gate.Approve(opportunityID); err != nil {
		if errors.Is(err, types.ErrOpportunityNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to approve opportunity")
		s.internalServerError(w)
		return
	}

	opp, err := s.opportunities.ByID(opportunityID)
	if err != nil {
		s.logger.WithError(err).Error("failed to load approved opportunity")
		s.internalServerError(w)
		return
	}

	if err := s.notifications.Add(notify.OpportunityApproved(opp.ID, opp.Title)); err != nil {
		s.logger.WithError(err).Error("failed to store approval notification")
	}
	s.toaster.Show(notify.OpportunityApprovedToast(opp.Title))

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Rejection deletes the record outright. There is no rejected state to revive
// from, so a rejected opportunity simply stops existing.
func (s *Service) handlePostReject(w http.ResponseWriter, r *http.Request) {
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

	s.disarmApproval(opp.ID)

	if err := s.gate.Reject(opp.ID); err != nil {
		if errors.Is(err, types.ErrSeedImmutable) {
			s.redirectWithError(w, r, "/admin", "platform opportunities cannot be rejected")
			return
		}
		s.logger.WithError(err).Error("failed to reject opportunity")
		s.internalServerError(w)
		return
	}

	s.toaster.Show(notify.EventCancelledToast(opp.Title))

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
