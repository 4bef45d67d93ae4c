package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/logger"
)

// PostCommitHook runs after the primary write has been committed. Its
// outcome never affects the committed record nor the other hooks.
type PostCommitHook struct {
	Name string
	Fn   func(ctx context.Context, lead *entity.Lead, in SubmitLeadInput) error
}

type PostCommitHooks struct {
	hooks   []PostCommitHook
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewPostCommitHooks(timeout time.Duration) *PostCommitHooks {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PostCommitHooks{timeout: timeout}
}

func (h *PostCommitHooks) Add(name string, fn func(ctx context.Context, lead *entity.Lead, in SubmitLeadInput) error) {
	h.hooks = append(h.hooks, PostCommitHook{Name: name, Fn: fn})
}

func (h *PostCommitHooks) Len() int {
	return len(h.hooks)
}

// Run starts every hook in its own goroutine and returns immediately. The
// hooks get a context detached from the caller's cancellation, bounded by the
// hook timeout.
func (h *PostCommitHooks) Run(ctx context.Context, lead *entity.Lead, in SubmitLeadInput) {
	base := context.WithoutCancel(ctx)
	for _, hook := range h.hooks {
		h.wg.Add(1)
		go func(hook PostCommitHook) {
			defer h.wg.Done()
			hctx, cancel := context.WithTimeout(base, h.timeout)
			defer cancel()

			if err := runIsolated(hctx, hook, lead, in); err != nil {
				logger.Log.Warn().
					Err(err).
					Str("hook", hook.Name).
					Str("lead_id", lead.ID).
					Msg("hook pós-commit falhou; lead já está salvo")
			}
		}(hook)
	}
}

// Wait blocks until every hook started by Run has returned.
func (h *PostCommitHooks) Wait() {
	h.wg.Wait()
}

func runIsolated(ctx context.Context, hook PostCommitHook, lead *entity.Lead, in SubmitLeadInput) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic em %s: %v", hook.Name, r)
		}
	}()
	return hook.Fn(ctx, lead, in)
}
