package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/logger"
)

const leadsCacheKey = "leads"

// LeadAdminUseCase mediates every admin read and write of leads. The full
// list is cached until a confirmed mutation invalidates it; failed
// mutations leave the cached state untouched.
type LeadAdminUseCase struct {
	Repo  entity.LeadRepositoryInterface
	cache *cache.Cache
}

func NewLeadAdminUseCase(repo entity.LeadRepositoryInterface, ttl time.Duration) *LeadAdminUseCase {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &LeadAdminUseCase{
		Repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// List returns every lead, newest first.
func (uc *LeadAdminUseCase) List(ctx context.Context, sess *entity.Session) ([]*entity.Lead, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return uc.load(ctx)
}

func (uc *LeadAdminUseCase) load(ctx context.Context) ([]*entity.Lead, error) {
	if cached, found := uc.cache.Get(leadsCacheKey); found {
		return cached.([]*entity.Lead), nil
	}

	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, databaseError(err)
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}
	uc.cache.Set(leadsCacheKey, leads, cache.DefaultExpiration)
	return leads, nil
}

// Get finds a lead in the loaded list, falling back to the store for
// records newer than the cache.
func (uc *LeadAdminUseCase) Get(ctx context.Context, sess *entity.Session, id string) (*entity.Lead, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	leads, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range leads {
		if l.ID == id {
			return l, nil
		}
	}

	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, uc.mutationError(err)
	}
	return lead, nil
}

func (uc *LeadAdminUseCase) SetStatus(ctx context.Context, sess *entity.Session, id string, status entity.LeadStatus) (*entity.Lead, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, &DomainError{Code: CodeInvalidStatus, Field: "status", Message: "Status inválido: " + string(status)}
	}

	lead, err := uc.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, uc.mutationError(err)
	}
	uc.Invalidate()
	logger.Log.Info().Str("lead_id", id).Str("status", string(status)).Msg("status do lead atualizado")
	return lead, nil
}

func (uc *LeadAdminUseCase) SetNotes(ctx context.Context, sess *entity.Session, id string, notes string) (*entity.Lead, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	lead, err := uc.Repo.UpdateNotes(ctx, id, notes)
	if err != nil {
		return nil, uc.mutationError(err)
	}
	uc.Invalidate()
	logger.Log.Info().Str("lead_id", id).Msg("notas do lead salvas")
	return lead, nil
}

func (uc *LeadAdminUseCase) Delete(ctx context.Context, sess *entity.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		return uc.mutationError(err)
	}
	uc.Invalidate()
	logger.Log.Info().Str("lead_id", id).Msg("lead excluído")
	return nil
}

// Stats is derived from the loaded list, never a separate query.
func (uc *LeadAdminUseCase) Stats(ctx context.Context, sess *entity.Session) (entity.LeadStats, error) {
	leads, err := uc.List(ctx, sess)
	if err != nil {
		return entity.LeadStats{}, err
	}
	return entity.ComputeLeadStats(leads), nil
}

// View loads the list and applies the search/status filter in memory.
func (uc *LeadAdminUseCase) View(ctx context.Context, sess *entity.Session, q LeadListQuery) (*LeadListView, error) {
	leads, err := uc.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	return BuildLeadListView(leads, q), nil
}

// Invalidate drops the cached list so the next read refetches.
func (uc *LeadAdminUseCase) Invalidate() {
	uc.cache.Delete(leadsCacheKey)
}

func (uc *LeadAdminUseCase) mutationError(err error) error {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		return leadNotFound()
	case errors.Is(err, entity.ErrInvalidLeadStatus):
		return &DomainError{Code: CodeInvalidStatus, Field: "status", Message: "Status inválido"}
	}
	return databaseError(err)
}
