package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackmamba/compgraph/internal/builder"
	"github.com/blackmamba/compgraph/internal/ctxlog"
)

// Build replays a document through the graph builder and returns the id of
// the newly created composition. Node names are script-local handles;
// connect endpoints refer to them as "handle.port".
func (l *Loader) Build(ctx context.Context, doc *Document) (string, error) {
	comp := l.builder.CreateComposition(ctx, doc.options())

	handles := make(map[string]string, len(doc.Nodes))
	for _, nb := range doc.Nodes {
		if _, dup := handles[nb.Name]; dup {
			return "", fmt.Errorf("%s: duplicate node name '%s'", doc.SourceFile, nb.Name)
		}
		def, err := l.catalog.Lookup(nb.TypeTag)
		if err != nil {
			return "", fmt.Errorf("%s: node '%s': %w", doc.SourceFile, nb.Name, err)
		}
		params, err := l.decodeParams(def, nb.Params)
		if err != nil {
			return "", fmt.Errorf("%s: node '%s': %w", doc.SourceFile, nb.Name, err)
		}
		n, err := l.builder.AddNode(ctx, comp.ID, nb.TypeTag, params)
		if err != nil {
			return "", fmt.Errorf("%s: node '%s': %w", doc.SourceFile, nb.Name, err)
		}
		if err := l.builder.RenameNode(ctx, comp.ID, n.ID, nb.Name); err != nil {
			return "", err
		}
		if nb.Enabled != nil && !*nb.Enabled {
			if err := l.builder.SetNodeEnabled(ctx, comp.ID, n.ID, false); err != nil {
				return "", err
			}
		}
		handles[nb.Name] = n.ID
	}

	for _, cb := range doc.Connects {
		srcID, srcPort, err := endpoint(handles, cb.From)
		if err != nil {
			return "", fmt.Errorf("%s: connect from: %w", doc.SourceFile, err)
		}
		dstID, dstPort, err := endpoint(handles, cb.To)
		if err != nil {
			return "", fmt.Errorf("%s: connect to: %w", doc.SourceFile, err)
		}
		if _, err := l.builder.ConnectNodes(ctx, comp.ID, srcID, srcPort, dstID, dstPort); err != nil {
			return "", fmt.Errorf("%s: connect %s -> %s: %w", doc.SourceFile, cb.From, cb.To, err)
		}
	}

	ctxlog.FromContext(ctx).Debug("composition built from script",
		"composition", comp.ID,
		"name", doc.Name,
		"nodes", len(doc.Nodes),
		"connections", len(doc.Connects))
	return comp.ID, nil
}

func (d *Document) options() builder.CompositionOptions {
	opts := builder.CompositionOptions{Name: d.Name}
	if s := d.Settings; s != nil {
		opts.Width = s.Width
		opts.Height = s.Height
		opts.FrameRate = s.FrameRate
		opts.Duration = s.Duration
		opts.PixelAspect = s.PixelAspect
		opts.ColorSpace = s.ColorSpace
	}
	return opts
}

// endpoint splits a "node.port" reference and resolves the node handle to
// its id.
func endpoint(handles map[string]string, ref string) (nodeID, port string, err error) {
	handle, port, ok := strings.Cut(ref, ".")
	if !ok || handle == "" || port == "" {
		return "", "", fmt.Errorf("endpoint '%s': want 'node.port'", ref)
	}
	id, ok := handles[handle]
	if !ok {
		return "", "", fmt.Errorf("endpoint '%s': unknown node '%s'", ref, handle)
	}
	return id, port, nil
}
