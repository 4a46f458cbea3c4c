package generation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bannerarchitect/internal/catalog"
	"bannerarchitect/internal/domain"
	"bannerarchitect/internal/infra"
)

// Renderer produces an image reference for a banner style.
type Renderer interface {
	Render(ctx context.Context, style domain.BannerStyle) (string, error)
}

// Orchestrator drives the per-slot generation state machine. It is the only
// writer of its Store.
//
// Repeated requests for a slot that is still pending are not deduplicated:
// each one calls the renderer and whichever finishes last wins.
type Orchestrator struct {
	catalog  *catalog.Catalog
	store    *Store
	renderer Renderer
	logger   infra.Logger

	tasks sync.WaitGroup
}

// NewOrchestrator wires the catalog, the state store and the renderer.
func NewOrchestrator(cat *catalog.Catalog, store *Store, renderer Renderer, logger infra.Logger) *Orchestrator {
	return &Orchestrator{
		catalog:  cat,
		store:    store,
		renderer: renderer,
		logger:   logger.With().Str("component", "orchestrator").Logger(),
	}
}

// GenerateOne regenerates a single banner and blocks until it settles. The
// slot is pending before the renderer is called. Unknown ids are ignored.
func (o *Orchestrator) GenerateOne(ctx context.Context, id string) {
	def, ok := o.begin(id)
	if !ok {
		return
	}
	o.run(ctx, def)
}

// GenerateAll regenerates every banner concurrently and blocks until all of
// them settle. Individual failures only show up in the store.
func (o *Orchestrator) GenerateAll(ctx context.Context) {
	o.store.beginGenerateAll(false)
	defer o.store.endGenerateAll()
	o.fanOut(ctx, o.beginAll())
}

// DispatchOne marks the slot pending and renders it in the background,
// detached from ctx cancellation. It reports false for unknown ids.
func (o *Orchestrator) DispatchOne(ctx context.Context, id string) bool {
	def, ok := o.begin(id)
	if !ok {
		return false
	}
	ctx = context.WithoutCancel(ctx)
	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		o.run(ctx, def)
	}()
	return true
}

// DispatchAll is the background form of GenerateAll. The aggregate flag and
// the pending slots are visible once it returns.
func (o *Orchestrator) DispatchAll(ctx context.Context) error {
	if !o.store.beginGenerateAll(true) {
		return domain.ErrGenerateAllInProgress
	}
	defs := o.beginAll()
	ctx = context.WithoutCancel(ctx)
	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		defer o.store.endGenerateAll()
		o.fanOut(ctx, defs)
	}()
	return nil
}

// Wait blocks until every dispatched generation has settled.
func (o *Orchestrator) Wait() {
	o.tasks.Wait()
}

// Snapshot returns a copy of all slots.
func (o *Orchestrator) Snapshot() Snapshot {
	return o.store.Snapshot()
}

// State returns a copy of one slot.
func (o *Orchestrator) State(id string) (domain.GenerationState, bool) {
	return o.store.Get(id)
}

// IsGeneratingAll reports whether a generate-all is still running.
func (o *Orchestrator) IsGeneratingAll() bool {
	return o.store.IsGeneratingAll()
}

func (o *Orchestrator) begin(id string) (domain.BannerDefinition, bool) {
	def, ok := o.catalog.Find(id)
	if !ok {
		o.logger.Debug().Str("banner_id", id).Msg("generation: ignoring unknown banner")
		return domain.BannerDefinition{}, false
	}
	if !o.store.markPending(def.ID) {
		return domain.BannerDefinition{}, false
	}
	return def, true
}

func (o *Orchestrator) beginAll() []domain.BannerDefinition {
	defs := o.catalog.List()
	started := defs[:0]
	for _, def := range defs {
		if o.store.markPending(def.ID) {
			started = append(started, def)
		}
	}
	return started
}

// fanOut renders every definition at once. The group is not bound to a
// context so one failure never cancels its siblings.
func (o *Orchestrator) fanOut(ctx context.Context, defs []domain.BannerDefinition) {
	var g errgroup.Group
	for _, def := range defs {
		g.Go(func() error {
			o.run(ctx, def)
			return nil
		})
	}
	_ = g.Wait()
}

func (o *Orchestrator) run(ctx context.Context, def domain.BannerDefinition) {
	log := o.logger.With().
		Str("banner_id", def.ID).
		Str("style", string(def.Style)).
		Str("attempt_id", uuid.NewString()).
		Logger()
	log.Info().Msg("generation: started")
	start := time.Now()

	ref, err := o.renderer.Render(ctx, def.Style)
	if err == nil && ref == "" {
		err = &domain.GenerationError{Message: domain.NoImageDataMessage, Err: domain.ErrNoImageData}
	}
	if err != nil {
		message := domain.FailureMessage(err)
		o.store.markError(def.ID, message)
		log.Warn().
			Err(err).
			Str("message", message).
			Dur("elapsed", time.Since(start)).
			Msg("generation: failed")
		return
	}

	o.store.markSuccess(def.ID, ref)
	log.Info().
		Int("ref_bytes", len(ref)).
		Dur("elapsed", time.Since(start)).
		Msg("generation: succeeded")
}
