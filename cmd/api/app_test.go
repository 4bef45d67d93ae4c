package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/infra/database"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

var leadCols = []string{"id", "name", "email", "whatsapp", "project_type", "objective", "message", "status", "notes", "created_at", "updated_at"}

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if v, ok := labels[lp.GetName()]; ok && v != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestLeadCreatedRefreshesAdminList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := database.NewLeadRepository(db)
	admin := usecase.NewLeadAdminUseCase(repo, time.Hour)
	submit := usecase.NewSubmitLeadUseCase(repo, nil, "5547999999999", time.Second)
	submit.OnCreated = leadCreated(admin)
	sess := &entity.Session{UserID: "u-1", AccessToken: "tok", IsAdmin: true}
	before := counterValue(t, "leads_created_total", nil)

	mock.ExpectQuery("FROM leads ORDER BY").WillReturnRows(sqlmock.NewRows(leadCols))
	mock.ExpectExec("INSERT INTO leads").WillReturnResult(sqlmock.NewResult(0, 1))

	leads, err := admin.List(context.Background(), sess)
	require.NoError(t, err)
	assert.Empty(t, leads)

	out, err := submit.Execute(context.Background(), usecase.SubmitLeadInput{
		Name:      "Carla",
		Email:     "carla@test.com",
		WhatsApp:  "47988887777",
		Objective: "Cobertura de evento",
	})
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery("FROM leads ORDER BY").WillReturnRows(sqlmock.NewRows(leadCols).
		AddRow(out.ID, "Carla", "carla@test.com", "47988887777", nil, "Cobertura de evento", nil, "novo", nil, now, now))

	leads, err = admin.List(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, out.ID, leads[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, before+1, counterValue(t, "leads_created_total", nil))
}

type failingPublisher struct{}

func (failingPublisher) PublishLeadCreated(context.Context, usecase.LeadNotification) error {
	return errors.New("channel closed")
}

func TestRecordedCountsQueuePublishFailures(t *testing.T) {
	labels := map[string]string{"driver": "queue", "result": "failure"}
	before := counterValue(t, "lead_notifications_total", labels)

	hook := recorded("queue", usecase.PublishHook(failingPublisher{}))
	lead := entity.NewLead("Carla", "carla@test.com", "", "", "Cobertura de evento", "")
	err := hook(context.Background(), lead, usecase.SubmitLeadInput{Name: "Carla", Email: "carla@test.com"})

	assert.EqualError(t, err, "channel closed")
	assert.Equal(t, before+1, counterValue(t, "lead_notifications_total", labels))
}
