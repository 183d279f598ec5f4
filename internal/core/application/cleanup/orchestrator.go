package cleanup

import (
	"context"
	"log/slog"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/core/ports"
	"recruitment/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency   = 4
	DefaultDeleteTimeout = 30 * time.Second
)

// Options tunes the orchestrator. Zero values select the defaults.
type Options struct {
	Concurrency   int
	DeleteTimeout time.Duration
}

// Orchestrator deletes the remote assets of an entity on a best-effort basis.
//
// Every asset gets exactly one delete attempt and one Outcome. Undecodable
// URLs and unresolved kinds fail locally without a provider call; a missing
// object counts as success. Reconcile never fails as a whole: the database
// change that detached the assets stands regardless of the report.
type Orchestrator struct {
	store         ports.BlobStore
	resolver      services.ResourceKindResolver
	observer      ports.AssetObserver
	concurrency   int
	deleteTimeout time.Duration
	logger        *slog.Logger
}

func NewOrchestrator(
	store ports.BlobStore,
	resolver services.ResourceKindResolver,
	observer ports.AssetObserver,
	opts Options,
	logger *slog.Logger,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("blob store")
	}
	if observer == nil {
		observer = ports.NopAssetObserver{}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.DeleteTimeout <= 0 {
		opts.DeleteTimeout = DefaultDeleteTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		store:         store,
		resolver:      resolver,
		observer:      observer,
		concurrency:   opts.Concurrency,
		deleteTimeout: opts.DeleteTimeout,
		logger:        logger.With("component", "asset_cleanup"),
	}, nil
}

type task struct {
	field asset.Field
	asset *asset.Asset
}

// Reconcile deletes every asset of set and reports per-asset outcomes.
// Cancelling ctx does not abort deletes already admitted; each delete is
// bounded by the configured timeout instead.
func (o *Orchestrator) Reconcile(ctx context.Context, set AssetSet) Report {
	report := Report{Details: make(map[asset.Field]Outcome)}
	if set.IsEmpty() {
		return report
	}

	ctx = context.WithoutCancel(ctx)
	tasks := enumerate(set)
	results := make([]Outcome, len(tasks))

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i, t := range tasks {
		g.Go(func() error {
			results[i] = o.remove(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	for i, t := range tasks {
		outcome := results[i]
		switch t.field {
		case asset.FieldCoverImage:
			report.CoverImage = &outcome.Success
			report.Details[t.field] = outcome
		case asset.FieldCV:
			report.CV = &outcome.Success
			report.Details[t.field] = outcome
		case asset.FieldMedia:
			report.Media = append(report.Media, outcome)
		case asset.FieldDocuments:
			report.Documents = append(report.Documents, outcome)
		}
	}

	o.logger.InfoContext(ctx, "Asset cleanup finished",
		"assets", len(tasks),
		"failures", report.Failures(),
	)
	return report
}

func enumerate(set AssetSet) []task {
	tasks := make([]task, 0, set.Len())
	if set.CoverImage != nil {
		tasks = append(tasks, task{field: asset.FieldCoverImage, asset: set.CoverImage})
	}
	if set.CV != nil {
		tasks = append(tasks, task{field: asset.FieldCV, asset: set.CV})
	}
	for _, m := range set.Media {
		if m != nil {
			tasks = append(tasks, task{field: asset.FieldMedia, asset: m})
		}
	}
	for _, d := range set.Documents {
		if d != nil {
			tasks = append(tasks, task{field: asset.FieldDocuments, asset: d})
		}
	}
	return tasks
}

func (o *Orchestrator) remove(ctx context.Context, t task) Outcome {
	url := t.asset.URL()
	declared := t.asset.ResourceKind()
	outcome := Outcome{URL: url, ResourceKind: declared}

	id, err := services.Identify(url)
	if err != nil {
		outcome.Err = err
		o.observer.RecordDelete(t.field, declared, ports.DeleteOutcomeUndecodable, 0)
		o.logger.WarnContext(ctx, "Skipping asset with undecodable url",
			"field", t.field, "url", url, "error", err)
		return outcome
	}
	outcome.PublicID = id.PublicID

	resolution, err := o.resolver.Resolve(declared, t.field, url)
	if err != nil {
		outcome.Err = err
		o.observer.RecordDelete(t.field, declared, ports.DeleteOutcomeUnresolved, 0)
		o.logger.WarnContext(ctx, "Integrity warning: resource kind unresolved, asset left in storage",
			"field", t.field, "url", url, "declared_kind", declared.String())
		return outcome
	}
	if resolution.IsFallback() {
		o.observer.RecordKindFallback(t.field, string(resolution.Reason))
		o.logger.WarnContext(ctx, "Integrity warning: resource kind fallback applied",
			"field", t.field,
			"url", url,
			"declared_kind", declared.String(),
			"resolved_kind", resolution.Kind.String(),
			"reason", resolution.Reason,
		)
	}
	outcome.ResourceKind = resolution.Kind

	dctx, cancel := context.WithTimeout(ctx, o.deleteTimeout)
	defer cancel()

	start := time.Now()
	result, err := o.store.Delete(dctx, id, resolution.Kind)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		outcome.Err = err
		o.observer.RecordDelete(t.field, resolution.Kind, ports.DeleteOutcomeFailed, elapsed)
		o.logger.ErrorContext(ctx, "Asset delete failed",
			"field", t.field, "public_id", id.PublicID, "kind", resolution.Kind.String(), "error", err)
	case !result.Found:
		outcome.Success = true
		outcome.AlreadyAbsent = true
		o.observer.RecordDelete(t.field, resolution.Kind, ports.DeleteOutcomeAlreadyAbsent, elapsed)
		o.logger.InfoContext(ctx, "Asset already absent",
			"field", t.field, "public_id", id.PublicID, "kind", resolution.Kind.String())
	default:
		outcome.Success = true
		o.observer.RecordDelete(t.field, resolution.Kind, ports.DeleteOutcomeDeleted, elapsed)
		o.logger.InfoContext(ctx, "Asset deleted",
			"field", t.field, "public_id", id.PublicID, "kind", resolution.Kind.String())
	}
	return outcome
}
