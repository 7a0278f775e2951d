// Package script loads composition scripts: HCL documents declaring a
// composition's settings, nodes and connections. Documents are replayed
// through the graph builder, so every script invariant is the builder's
// invariant; the script layer only adds parsing, parameter conversion and
// handle resolution.
package script

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/blackmamba/compgraph/internal/builder"
	"github.com/blackmamba/compgraph/internal/catalog"
	"github.com/blackmamba/compgraph/internal/ctxlog"
)

// Loader parses script files and builds compositions from them.
type Loader struct {
	builder *builder.Builder
	catalog *catalog.Catalog
}

// NewLoader returns a loader that replays documents through b, validating
// parameters against cat.
func NewLoader(b *builder.Builder, cat *catalog.Catalog) *Loader {
	return &Loader{builder: b, catalog: cat}
}

// Load parses the script at path, which names one file or a directory
// searched for .hcl scripts, and returns the composition documents in
// file order.
func (l *Loader) Load(ctx context.Context, path string) ([]*Document, error) {
	files, err := findScriptFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no composition scripts under '%s'", path)
	}
	ctxlog.FromContext(ctx).Debug("loading composition scripts", "path", path, "files", len(files))

	parser := hclparse.NewParser()
	var docs []*Document
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing script %s: %w", file, diags)
		}
		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("decoding script %s: %w", file, diags)
		}
		for _, doc := range root.Compositions {
			doc.SourceFile = file
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no composition blocks in '%s'", path)
	}
	return docs, nil
}

// findScriptFiles resolves a script path. A file is taken as-is; a
// directory is walked for files ending in .hcl, which also covers the
// .bmc.hcl naming convention. Walk order keeps the result deterministic.
func findScriptFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("accessing script path '%s': %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
