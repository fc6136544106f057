// Package moderation classifies submitted opportunities as pending or
// approved and drives the admin approve/reject transitions.
package moderation

import (
	"strings"

	"volunteerhub/internal/store"
	"volunteerhub/pkg/types"
)

// Gate owns the pending/approved buckets. An opportunity with no owner email,
// or owned by the reserved admin address, is approved; any other owner means
// pending review. Records written by the approve transition also carry an
// explicit status, which takes precedence over the email rule.
type Gate struct {
	opportunities *store.OpportunityRepository
	adminEmail    string
}

func New(opportunities *store.OpportunityRepository, adminEmail string) *Gate {
	return &Gate{opportunities: opportunities, adminEmail: adminEmail}
}

// AdminEmail returns the reserved platform address.
func (g *Gate) AdminEmail() string {
	return g.adminEmail
}

// Classify buckets a single opportunity.
func (g *Gate) Classify(opp types.Opportunity) types.ApprovalStatus {
	if opp.ApprovalStatus != "" {
		return opp.ApprovalStatus
	}

	if opp.OrganizationEmail == "" || strings.EqualFold(opp.OrganizationEmail, g.adminEmail) {
		return types.ApprovalStatusApproved
	}

	return types.ApprovalStatusPending
}

// Pending returns submitted opportunities awaiting review, in append order.
func (g *Gate) Pending() ([]types.Opportunity, error) {
	return g.byStatus(types.ApprovalStatusPending)
}

// Approved returns every approved opportunity, seed included.
func (g *Gate) Approved() ([]types.Opportunity, error) {
	return g.byStatus(types.ApprovalStatusApproved)
}

// Approve reclassifies a pending opportunity by rewriting its owner email to
// the admin address and stamping the explicit status. Approving an already
// approved opportunity is idempotent. Approved is terminal; there is no
// re-review path.
func (g *Gate) Approve(opportunityID string) error {
	return g.opportunities.SetApproval(opportunityID, g.adminEmail, types.ApprovalStatusApproved)
}

// Reject removes the opportunity from the submitted set entirely. Rejection
// is destructive and irreversible: a later Approve on the same ID fails with
// NotFound.
func (g *Gate) Reject(opportunityID string) error {
	return g.opportunities.Delete(opportunityID)
}

func (g *Gate) byStatus(status types.ApprovalStatus) ([]types.Opportunity, error) {
	all, err := g.opportunities.All()
	if err != nil {
		return nil, err
	}

	matched := make([]types.Opportunity, 0, len(all))
	for _, opp := range all {
		if g.Classify(opp) == status {
			matched = append(matched, opp)
		}
	}

	return matched, nil
}
