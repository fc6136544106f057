package server

import (
	"net/http"

	"volunteerhub/pkg/types"
)

// OwnedOpportunity pairs a posted opportunity with its moderation state and
// live attendance for the organization dashboard.
type OwnedOpportunity struct {
	types.Opportunity
	Status    types.ApprovalStatus
	Attendees int
}

type MyOpportunitiesPageData struct {
	types.BasePageData
	IsOrganization bool

	// Volunteer view
	Active    []types.VolunteerSubmission
	Completed []types.VolunteerSubmission

	// Organization view
	Posted []OwnedOpportunity
}

func (s *Service) handleMyOpportunities(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	data := MyOpportunitiesPageData{}
	data.Title = "My Opportunities"

	if session.UserType == types.UserTypeOrganization {
		data.IsOrganization = true

		posted, err := s.opportunities.ByOwner(session.Email)
		if err != nil {
			s.logger.WithError(err).Error("failed to load posted opportunities")
			s.internalServerError(w)
			return
		}

		for _, opp := range posted {
			attendees, err := s.submissions.AttendeesFor(opp.ID)
			if err != nil {
				s.logger.WithError(err).Error("failed to load attendees")
				s.internalServerError(w)
				return
			}

			data.Posted = append(data.Posted, OwnedOpportunity{
				Opportunity: opp,
				Status:      s.gate.Classify(opp),
				Attendees:   len(attendees),
			})
		}
	} else {
		subs, err := s.submissions.ForEmail(session.Email)
		if err != nil {
			s.logger.WithError(err).Error("failed to load submissions")
			s.internalServerError(w)
			return
		}

		// Cancelled history stays in the ledger but off the page.
		for _, sub := range subs {
			switch sub.Status {
			case types.SubmissionStatusActive:
				data.Active = append(data.Active, sub)
			case types.SubmissionStatusCompleted:
				data.Completed = append(data.Completed, sub)
			}
		}
	}

	if err := s.renderTemplate(w, r, "page.my-opportunities", &data); err != nil {
		s.logger.WithError(err).Error("failed to render my opportunities page")
		s.internalServerError(w)
		return
	}
}
