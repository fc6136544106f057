package server

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"volunteerhub/internal/recommend"
	"volunteerhub/internal/store"
	"volunteerhub/pkg/types"

	"github.com/alexedwards/flow"
)

// OpportunityCard pairs an opportunity with its live signup numbers for the
// list and detail views.
type OpportunityCard struct {
	types.Opportunity
	Signups       int
	CapacityLevel types.CapacityLevel
}

type HomePageData struct {
	types.BasePageData
	Recommended []OpportunityCard
	Fallback    bool
}

type BrowsePageData struct {
	types.BasePageData
	Opportunities []OpportunityCard
}

type OpportunityDetailPageData struct {
	types.BasePageData
	Card     OpportunityCard
	SignedUp bool
	IsFull   bool
	IsOwner  bool
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	switch session.UserType {
	case types.UserTypeAdmin:
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	case types.UserTypeOrganization:
		http.Redirect(w, r, "/my-opportunities", http.StatusSeeOther)
		return
	}

	prefs, err := s.preferences.Get()
	if err != nil {
		s.logger.WithError(err).Error("failed to load volunteer preferences")
		s.internalServerError(w)
		return
	}
	if prefs == nil {
		http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
		return
	}

	approved, err := s.gate.Approved()
	if err != nil {
		s.logger.WithError(err).Error("failed to load approved opportunities")
		s.internalServerError(w)
		return
	}

	recommended, fellBack := recommend.Filter(approved, *prefs)

	cards, err := s.cardsFor(recommended)
	if err != nil {
		s.logger.WithError(err).Error("failed to compute signup counts")
		s.internalServerError(w)
		return
	}

	data := HomePageData{
		Recommended: cards,
		Fallback:    fellBack,
	}
	data.Title = "Recommended For You"

	if err := s.renderTemplate(w, r, "page.home", &data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleAllOpportunities(w http.ResponseWriter, r *http.Request) {
	approved, err := s.gate.Approved()
	if err != nil {
		s.logger.WithError(err).Error("failed to load approved opportunities")
		s.internalServerError(w)
		return
	}

	cards, err := s.cardsFor(approved)
	if err != nil {
		s.logger.WithError(err).Error("failed to compute signup counts")
		s.internalServerError(w)
		return
	}

	data := BrowsePageData{Opportunities: cards}
	data.Title = "Browse Opportunities"

	if err := s.renderTemplate(w, r, "page.browse", &data); err != nil {
		s.logger.WithError(err).Error("failed to render browse page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleOpportunityDetail(w http.ResponseWriter, r *http.Request) {
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

	isOwner := opp.OrganizationEmail != "" &&
		strings.EqualFold(opp.OrganizationEmail, session.Email)

	// Pending submissions are visible only to their owner and the admin.
	if s.gate.Classify(*opp) != types.ApprovalStatusApproved &&
		!isOwner && session.UserType != types.UserTypeAdmin {
		http.NotFound(w, r)
		return
	}

	signups, err := s.submissions.EffectiveSignups(*opp)
	if err != nil {
		s.logger.WithError(err).Error("failed to compute signup count")
		s.internalServerError(w)
		return
	}

	signedUp, err := s.activeSignup(opp.ID, session.Email)
	if err != nil {
		s.logger.WithError(err).Error("failed to load submissions")
		s.internalServerError(w)
		return
	}

	data := OpportunityDetailPageData{
		Card: OpportunityCard{
			Opportunity:   *opp,
			Signups:       signups,
			CapacityLevel: store.CapacityLevelFor(signups, opp.Capacity),
		},
		SignedUp: signedUp,
		IsFull:   opp.Capacity > 0 && signups >= opp.Capacity,
		IsOwner:  isOwner,
	}
	data.Title = opp.Title

	if err := s.renderTemplate(w, r, "page.opportunity-detail", &data); err != nil {
		s.logger.WithError(err).Error("failed to render opportunity detail page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) cardsFor(opps []types.Opportunity) ([]OpportunityCard, error) {
	cards := make([]OpportunityCard, 0, len(opps))
	for _, opp := range opps {
		signups, err := s.submissions.EffectiveSignups(opp)
		if err != nil {
			return nil, err
		}

		cards = append(cards, OpportunityCard{
			Opportunity:   opp,
			Signups:       signups,
			CapacityLevel: store.CapacityLevelFor(signups, opp.Capacity),
		})
	}
	return cards, nil
}

func (s *Service) activeSignup(opportunityID, email string) (bool, error) {
	subs, err := s.submissions.ForEmail(email)
	if err != nil {
		return false, err
	}

	for _, sub := range subs {
		if sub.OpportunityID == opportunityID && sub.Status == types.SubmissionStatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}
