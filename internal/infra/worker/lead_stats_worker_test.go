package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/xavierca1/produtora-site/internal/entity"
)

type stubRepo struct {
	entity.LeadRepositoryInterface
	leads []*entity.Lead
	err   error
}

func (s *stubRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	return s.leads, s.err
}

func TestLeadStatsWorkerReportsCounts(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &stubRepo{leads: []*entity.Lead{
		{ID: "a", Status: entity.LeadStatusNovo},
		{ID: "b", Status: entity.LeadStatusNovo},
		{ID: "c", Status: entity.LeadStatusConvertido},
	}}

	var (
		mu      sync.Mutex
		reports []map[entity.LeadStatus]int
	)
	w := NewLeadStatsWorker(repo, 10*time.Millisecond)
	w.report = func(m map[entity.LeadStatus]int) {
		mu.Lock()
		defer mu.Unlock()
		reports = append(reports, m)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reports) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, reports[0][entity.LeadStatusNovo])
	assert.Equal(t, 1, reports[0][entity.LeadStatusConvertido])
	assert.Equal(t, 0, reports[0][entity.LeadStatusPerdido])
}

func TestLeadStatsWorkerSkipsReportOnError(t *testing.T) {
	w := NewLeadStatsWorker(&stubRepo{err: errors.New("db down")}, time.Minute)
	called := false
	w.report = func(map[entity.LeadStatus]int) { called = true }

	w.refresh(context.Background())
	assert.False(t, called)
}
