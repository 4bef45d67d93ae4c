package usecase

import (
	"strings"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const StatusFilterAll = "all"

// MatchesLead is the list view predicate: the search hits name or email
// (case-insensitive) or the raw WhatsApp number, AND the status filter
// is "all" or equal to the record's status.
func MatchesLead(lead *entity.Lead, q LeadListQuery) bool {
	search := strings.ToLower(q.Search)
	matchesSearch := strings.Contains(strings.ToLower(lead.Name), search) ||
		strings.Contains(strings.ToLower(lead.Email), search) ||
		(lead.WhatsApp != "" && strings.Contains(lead.WhatsApp, q.Search))

	matchesStatus := q.Status == "" || q.Status == StatusFilterAll || string(lead.Status) == q.Status

	return matchesSearch && matchesStatus
}

// FilterLeads keeps the input order.
func FilterLeads(leads []*entity.Lead, q LeadListQuery) []*entity.Lead {
	out := make([]*entity.Lead, 0, len(leads))
	for _, l := range leads {
		if MatchesLead(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func BuildLeadListView(leads []*entity.Lead, q LeadListQuery) *LeadListView {
	filtered := FilterLeads(leads, q)

	view := &LeadListView{
		Leads: filtered,
		Total: len(leads),
		Stats: entity.ComputeLeadStats(leads),
	}
	switch {
	case len(leads) == 0:
		view.EmptyState = EmptyStateNoLeads
	case len(filtered) == 0:
		view.EmptyState = EmptyStateNoMatches
	}
	return view
}
