package usecase_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

func names(leads []*entity.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.Name)
	}
	return out
}

func TestFilterLeads(t *testing.T) {
	now := time.Now()
	ana := seedLead("Ana", "a@x.com", entity.LeadStatusNovo, now)
	bia := seedLead("Bia", "b@x.com", entity.LeadStatusPerdido, now)
	bia.WhatsApp = "(47) 98888-7777"
	leads := []*entity.Lead{ana, bia}

	tests := []struct {
		name  string
		query usecase.LeadListQuery
		want  []string
	}{
		{"busca por nome", usecase.LeadListQuery{Search: "ana", Status: "all"}, []string{"Ana"}},
		{"filtro de status", usecase.LeadListQuery{Status: "perdido"}, []string{"Bia"}},
		{"sem filtro", usecase.LeadListQuery{}, []string{"Ana", "Bia"}},
		{"email maiúsculo", usecase.LeadListQuery{Search: "B@X"}, []string{"Bia"}},
		{"whatsapp literal", usecase.LeadListQuery{Search: "98888"}, []string{"Bia"}},
		{"busca e status divergentes", usecase.LeadListQuery{Search: "ana", Status: "perdido"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(usecase.FilterLeads(leads, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterLeads() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildLeadListViewEmptyStates(t *testing.T) {
	view := usecase.BuildLeadListView(nil, usecase.LeadListQuery{})
	assert.Equal(t, usecase.EmptyStateNoLeads, view.EmptyState)
	assert.Equal(t, 0, view.Total)

	ana := seedLead("Ana", "a@x.com", entity.LeadStatusNovo, time.Now())
	view = usecase.BuildLeadListView([]*entity.Lead{ana}, usecase.LeadListQuery{Search: "zzz"})
	assert.Equal(t, usecase.EmptyStateNoMatches, view.EmptyState)
	assert.Equal(t, 1, view.Total)
	assert.Equal(t, 1, view.Stats.ByStatus[entity.LeadStatusNovo])

	view = usecase.BuildLeadListView([]*entity.Lead{ana}, usecase.LeadListQuery{})
	assert.Equal(t, usecase.EmptyStateNone, view.EmptyState)
	assert.Len(t, view.Leads, 1)
}
