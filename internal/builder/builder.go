package builder

import (
	"context"

	"github.com/blackmamba/compgraph/internal/catalog"
	"github.com/blackmamba/compgraph/internal/ctxlog"
	"github.com/blackmamba/compgraph/internal/model"
	"github.com/blackmamba/compgraph/internal/store"
)

// DefaultCompositionName is used when a composition is created without a name.
const DefaultCompositionName = "Untitled"

// Builder mutates compositions held in a store, validating every change
// against the node catalog.
type Builder struct {
	store   *store.Store
	catalog *catalog.Catalog
}

// New returns a builder operating on the given store and catalog.
func New(st *store.Store, cat *catalog.Catalog) *Builder {
	return &Builder{store: st, catalog: cat}
}

// CompositionOptions overrides the defaults of a new composition. Zero
// fields keep their default.
type CompositionOptions struct {
	Name        string
	Width       int
	Height      int
	FrameRate   float64
	Duration    float64
	PixelAspect float64
	ColorSpace  string
}

func (o CompositionOptions) apply(c *model.Composition) {
	if o.Name != "" {
		c.Name = o.Name
	}
	if o.Width > 0 {
		c.Settings.Width = o.Width
	}
	if o.Height > 0 {
		c.Settings.Height = o.Height
	}
	if o.FrameRate > 0 {
		c.Settings.FrameRate = o.FrameRate
	}
	if o.Duration > 0 {
		c.Settings.Duration = o.Duration
	}
	if o.PixelAspect > 0 {
		c.Settings.PixelAspect = o.PixelAspect
	}
	if o.ColorSpace != "" {
		c.Settings.ColorSpace = o.ColorSpace
	}
}

// CreateComposition registers a new empty composition and returns a snapshot
// of it.
func (b *Builder) CreateComposition(ctx context.Context, opts CompositionOptions) *model.Composition {
	c := model.NewComposition(DefaultCompositionName)
	opts.apply(c)
	b.store.Put(c)
	ctxlog.FromContext(ctx).Debug("composition created",
		"composition", c.ID,
		"name", c.Name,
		"width", c.Settings.Width,
		"height", c.Settings.Height,
	)
	return c.Clone()
}

// GetComposition returns a deep copy of the composition.
func (b *Builder) GetComposition(ctx context.Context, compID string) (*model.Composition, error) {
	return b.store.Get(compID)
}

// DeleteComposition removes the composition from the store.
func (b *Builder) DeleteComposition(ctx context.Context, compID string) error {
	if err := b.store.Delete(compID); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("composition deleted", "composition", compID)
	return nil
}

// RenameComposition replaces the composition's display name.
func (b *Builder) RenameComposition(ctx context.Context, compID, name string) error {
	return b.store.Update(compID, func(c *model.Composition) error {
		c.Name = name
		return nil
	})
}
