package assets

import (
	"context"

	"go.uber.org/zap"
)

// Reconciler garbage-collects hosted images that a record no longer
// references. Deletion is best-effort: it runs detached from the request that
// triggered it and failures are logged, never returned.
type Reconciler struct {
	store Deleter
	log   *zap.Logger
}

func NewReconciler(store Deleter, log *zap.Logger) *Reconciler {
	return &Reconciler{store: store, log: log}
}

// Reconcile deletes every asset referenced by oldLinks but not by newLinks.
// It returns immediately; the deletions happen in a background goroutine with
// a fresh context, so a slow asset store never holds up the caller.
func (r *Reconciler) Reconcile(_ context.Context, oldLinks, newLinks []string) {
	removed := removedLinks(oldLinks, newLinks)
	if len(removed) == 0 {
		return
	}

	go func() {
		ctx := context.Background()
		for _, link := range removed {
			publicID, ok := PublicIDFromURL(link)
			if !ok {
				// Not our asset store; nothing to clean up.
				continue
			}
			r.log.Info("deleting unreferenced asset", zap.String("public_id", publicID))
			if err := r.store.DeleteByPublicID(ctx, publicID); err != nil {
				r.log.Warn("failed to delete asset",
					zap.String("public_id", publicID),
					zap.String("url", link),
					zap.Error(err))
			}
		}
	}()
}

// removedLinks returns the entries of oldLinks that are absent from newLinks,
// preserving order.
func removedLinks(oldLinks, newLinks []string) []string {
	kept := make(map[string]struct{}, len(newLinks))
	for _, link := range newLinks {
		kept[link] = struct{}{}
	}

	var removed []string
	for _, link := range oldLinks {
		if _, ok := kept[link]; !ok {
			removed = append(removed, link)
		}
	}
	return removed
}
