package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackmamba/compgraph/internal/catalog"
	"github.com/blackmamba/compgraph/internal/model"
	"github.com/blackmamba/compgraph/internal/store"
)

func newTestBuilder(t *testing.T) (context.Context, *Builder, *store.Store) {
	t.Helper()
	st := store.New()
	return context.Background(), New(st, catalog.New()), st
}

func mustAdd(t *testing.T, b *Builder, ctx context.Context, compID, tag string) *model.Node {
	t.Helper()
	n, err := b.AddNode(ctx, compID, tag, nil)
	require.NoError(t, err)
	return n
}

func mustConnect(t *testing.T, b *Builder, ctx context.Context, compID, src, out, dst, in string) *model.Connection {
	t.Helper()
	conn, err := b.ConnectNodes(ctx, compID, src, out, dst, in)
	require.NoError(t, err)
	return conn
}

func TestCreateComposition_Defaults(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)

	comp := b.CreateComposition(ctx, CompositionOptions{})
	assert.NotEmpty(t, comp.ID)
	assert.Equal(t, DefaultCompositionName, comp.Name)
	assert.Equal(t, 1920, comp.Settings.Width)
	assert.Equal(t, 1080, comp.Settings.Height)
	assert.Equal(t, 30.0, comp.Settings.FrameRate)
	assert.Equal(t, 10.0, comp.Settings.Duration)
	assert.Equal(t, 1.0, comp.Settings.PixelAspect)
	assert.Empty(t, comp.Nodes)
	assert.False(t, comp.Meta.CreatedAt.IsZero())
	assert.Equal(t, model.DocumentVersion, comp.Meta.Version)
}

func TestCreateComposition_Overrides(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)

	comp := b.CreateComposition(ctx, CompositionOptions{
		Name:      "teaser",
		Width:     3840,
		Height:    2160,
		FrameRate: 24,
		Duration:  42.5,
	})
	assert.Equal(t, "teaser", comp.Name)
	assert.Equal(t, 3840, comp.Settings.Width)
	assert.Equal(t, 2160, comp.Settings.Height)
	assert.Equal(t, 24.0, comp.Settings.FrameRate)
	assert.Equal(t, 42.5, comp.Settings.Duration)
	assert.Equal(t, 1.0, comp.Settings.PixelAspect)
}

func TestAddNode_SeedsCatalogDefaults(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})

	n, err := b.AddNode(ctx, comp.ID, "effects.blur", nil)
	require.NoError(t, err)
	assert.Equal(t, model.KindEffectsBlur, n.Kind)
	assert.Equal(t, "blur", n.Name)
	assert.Equal(t, model.NumberVal(5), n.Params["sigma"])
	assert.True(t, n.Enabled)

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, n.ID, snap.Nodes[0].ID)
}

func TestAddNode_UnknownTypeLeavesGraphUntouched(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	mustAdd(t, b, ctx, comp.ID, "input.media")

	_, err := b.AddNode(ctx, comp.ID, "effects.timewarp", nil)
	assert.ErrorIs(t, err, model.ErrInvalidNodeType)

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Len(t, snap.Nodes, 1)
}

func TestAddNode_ParamOverridesAndValidation(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})

	t.Run("override applied", func(t *testing.T) {
		n, err := b.AddNode(ctx, comp.ID, "effects.blur", map[string]model.Value{
			"sigma": model.NumberVal(12),
		})
		require.NoError(t, err)
		assert.Equal(t, model.NumberVal(12), n.Params["sigma"])
	})

	t.Run("type mismatch rejected", func(t *testing.T) {
		_, err := b.AddNode(ctx, comp.ID, "effects.blur", map[string]model.Value{
			"sigma": model.StringVal("heavy"),
		})
		assert.ErrorIs(t, err, model.ErrParamType)
	})

	t.Run("undeclared key rejected", func(t *testing.T) {
		_, err := b.AddNode(ctx, comp.ID, "effects.blur", map[string]model.Value{
			"radius": model.NumberVal(3),
		})
		assert.ErrorIs(t, err, model.ErrParamNotDeclared)
	})

	t.Run("choice outside set rejected", func(t *testing.T) {
		_, err := b.AddNode(ctx, comp.ID, "merge.blend", map[string]model.Value{
			"mode": model.ChoiceVal("dissolve"),
		})
		assert.ErrorIs(t, err, model.ErrParamType)
	})

	t.Run("unknown composition", func(t *testing.T) {
		_, err := b.AddNode(ctx, "missing", "effects.blur", nil)
		assert.ErrorIs(t, err, model.ErrCompositionNotFound)
	})
}

func TestConnectNodes_LinksPorts(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	src := mustAdd(t, b, ctx, comp.ID, "input.media")
	dst := mustAdd(t, b, ctx, comp.ID, "effects.blur")

	conn := mustConnect(t, b, ctx, comp.ID, src.ID, "video", dst.ID, "source")
	assert.NotEmpty(t, conn.ID)

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, snap.Connections, 1)

	blur := snap.NodeByID(dst.ID)
	require.NotNil(t, blur.Input("source").Upstream)
	assert.Equal(t, src.ID, blur.Input("source").Upstream.NodeID)

	media := snap.NodeByID(src.ID)
	require.Len(t, media.Output("video").Downstream, 1)
	assert.Equal(t, dst.ID, media.Output("video").Downstream[0].NodeID)
}

func TestConnectNodes_ReplacesOccupiedInput(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	first := mustAdd(t, b, ctx, comp.ID, "input.media")
	second := mustAdd(t, b, ctx, comp.ID, "input.solidColor")
	blur := mustAdd(t, b, ctx, comp.ID, "effects.blur")

	mustConnect(t, b, ctx, comp.ID, first.ID, "video", blur.ID, "source")
	newest := mustConnect(t, b, ctx, comp.ID, second.ID, "video", blur.ID, "source")

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, snap.Connections, 1)
	assert.Equal(t, newest.ID, snap.Connections[0].ID)
	assert.Equal(t, second.ID, snap.NodeByID(blur.ID).Input("source").Upstream.NodeID)
	assert.Empty(t, snap.NodeByID(first.ID).Output("video").Downstream)
}

func TestConnectNodes_Errors(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	src := mustAdd(t, b, ctx, comp.ID, "input.media")
	dst := mustAdd(t, b, ctx, comp.ID, "effects.blur")

	_, err := b.ConnectNodes(ctx, comp.ID, "ghost", "video", dst.ID, "source")
	assert.ErrorIs(t, err, model.ErrNodeNotFound)

	_, err = b.ConnectNodes(ctx, comp.ID, src.ID, "aux", dst.ID, "source")
	assert.ErrorIs(t, err, model.ErrPortNotFound)

	_, err = b.ConnectNodes(ctx, comp.ID, src.ID, "video", dst.ID, "matte")
	assert.ErrorIs(t, err, model.ErrPortNotFound)

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Connections)
}

func TestDisconnectNodes(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	src := mustAdd(t, b, ctx, comp.ID, "input.media")
	dst := mustAdd(t, b, ctx, comp.ID, "effects.blur")
	conn := mustConnect(t, b, ctx, comp.ID, src.ID, "video", dst.ID, "source")

	require.NoError(t, b.DisconnectNodes(ctx, comp.ID, conn.ID))

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Connections)
	assert.Nil(t, snap.NodeByID(dst.ID).Input("source").Upstream)
	assert.Empty(t, snap.NodeByID(src.ID).Output("video").Downstream)

	assert.ErrorIs(t, b.DisconnectNodes(ctx, comp.ID, conn.ID), model.ErrConnectionNotFound)
}

func TestRemoveNode_CascadesConnections(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	a := mustAdd(t, b, ctx, comp.ID, "input.media")
	mid := mustAdd(t, b, ctx, comp.ID, "effects.blur")
	c := mustAdd(t, b, ctx, comp.ID, "output.write")
	mustConnect(t, b, ctx, comp.ID, a.ID, "video", mid.ID, "source")
	mustConnect(t, b, ctx, comp.ID, mid.ID, "video", c.ID, "video")

	require.NoError(t, b.RemoveNode(ctx, comp.ID, mid.ID))

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Len(t, snap.Nodes, 2)
	assert.Empty(t, snap.Connections)
	assert.Empty(t, snap.NodeByID(a.ID).Output("video").Downstream)
	assert.Nil(t, snap.NodeByID(c.ID).Input("video").Upstream)
}

func TestRemoveNode_PrunesGroupMembership(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	a := mustAdd(t, b, ctx, comp.ID, "input.media")
	bn := mustAdd(t, b, ctx, comp.ID, "effects.blur")
	g, err := b.GroupNodes(ctx, comp.ID, "pair", []string{a.ID, bn.ID})
	require.NoError(t, err)

	require.NoError(t, b.RemoveNode(ctx, comp.ID, a.ID))

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, snap.Groups, 1)
	assert.Equal(t, g.ID, snap.Groups[0].ID)
	assert.Equal(t, []string{bn.ID}, snap.Groups[0].NodeIDs)
}

func TestRemoveNode_Unknown(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	assert.ErrorIs(t, b.RemoveNode(ctx, comp.ID, "ghost"), model.ErrNodeNotFound)
}

func TestUpdateNodeParams_MergesAndRejectsAtomically(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	n, err := b.AddNode(ctx, comp.ID, "color.colorCorrect", nil)
	require.NoError(t, err)

	err = b.UpdateNodeParams(ctx, comp.ID, n.ID, map[string]model.Value{
		"brightness": model.NumberVal(0.2),
	})
	require.NoError(t, err)

	err = b.UpdateNodeParams(ctx, comp.ID, n.ID, map[string]model.Value{
		"contrast": model.NumberVal(1.4),
		"gamma":    model.BoolVal(true),
	})
	assert.ErrorIs(t, err, model.ErrParamType)

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	params := snap.NodeByID(n.ID).Params
	assert.Equal(t, model.NumberVal(0.2), params["brightness"])
	assert.Equal(t, model.NumberVal(1), params["contrast"], "rejected update must not partially apply")
	assert.Equal(t, model.NumberVal(1), params["gamma"])
	assert.Equal(t, model.NumberVal(1), params["saturation"])
}

func TestDuplicateNode(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	src := mustAdd(t, b, ctx, comp.ID, "input.media")
	orig, err := b.AddNode(ctx, comp.ID, "effects.blur", map[string]model.Value{
		"sigma": model.NumberVal(9),
	})
	require.NoError(t, err)
	require.NoError(t, b.MoveNode(ctx, comp.ID, orig.ID, 100, 200))
	mustConnect(t, b, ctx, comp.ID, src.ID, "video", orig.ID, "source")

	dup, err := b.DuplicateNode(ctx, comp.ID, orig.ID)
	require.NoError(t, err)

	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "blur copy", dup.Name)
	assert.Equal(t, model.NumberVal(9), dup.Params["sigma"])
	assert.Equal(t, model.Point{X: 140, Y: 240}, dup.Position)
	assert.Nil(t, dup.Input("source").Upstream)
	assert.Empty(t, dup.Output("video").Downstream)

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Len(t, snap.Nodes, 3)
	assert.Len(t, snap.Connections, 1, "original connection survives duplication")
	require.NotNil(t, snap.NodeByID(orig.ID).Input("source").Upstream)
}

func TestGroupNodes_SkipsUnknownAndComputesCentroid(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	a := mustAdd(t, b, ctx, comp.ID, "input.media")
	c := mustAdd(t, b, ctx, comp.ID, "effects.blur")
	require.NoError(t, b.MoveNode(ctx, comp.ID, a.ID, 0, 0))
	require.NoError(t, b.MoveNode(ctx, comp.ID, c.ID, 200, 100))

	g, err := b.GroupNodes(ctx, comp.ID, "plate", []string{a.ID, "ghost", c.ID})
	require.NoError(t, err)
	assert.Equal(t, "plate", g.Name)
	assert.Equal(t, []string{a.ID, c.ID}, g.NodeIDs)
	assert.Equal(t, model.Point{X: 100, Y: 50}, g.Position)

	require.NoError(t, b.UngroupNodes(ctx, comp.ID, g.ID))
	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Groups)
	assert.Len(t, snap.Nodes, 2)

	assert.ErrorIs(t, b.UngroupNodes(ctx, comp.ID, g.ID), model.ErrGroupNotFound)
}

func TestGroupNodes_AllUnknownFails(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})

	_, err := b.GroupNodes(ctx, comp.ID, "empty", []string{"ghost", "phantom"})
	assert.ErrorIs(t, err, model.ErrNodeNotFound)

	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Groups)
}

func TestSetNodeEnabled(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	n := mustAdd(t, b, ctx, comp.ID, "effects.blur")

	require.NoError(t, b.SetNodeEnabled(ctx, comp.ID, n.ID, false))
	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.False(t, snap.NodeByID(n.ID).Enabled)
}

func TestRenameNode(t *testing.T) {
	ctx, b, _ := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{})
	n := mustAdd(t, b, ctx, comp.ID, "effects.blur")

	require.NoError(t, b.RenameNode(ctx, comp.ID, n.ID, "soften"))
	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, "soften", snap.NodeByID(n.ID).Name)

	err = b.RenameNode(ctx, comp.ID, "missing", "x")
	assert.ErrorIs(t, err, model.ErrNodeNotFound)
}

func TestRenameAndDeleteComposition(t *testing.T) {
	ctx, b, st := newTestBuilder(t)
	comp := b.CreateComposition(ctx, CompositionOptions{Name: "draft"})

	require.NoError(t, b.RenameComposition(ctx, comp.ID, "final"))
	snap, err := b.GetComposition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", snap.Name)

	require.NoError(t, b.DeleteComposition(ctx, comp.ID))
	assert.Equal(t, 0, st.Len())
	_, err = b.GetComposition(ctx, comp.ID)
	assert.ErrorIs(t, err, model.ErrCompositionNotFound)
}
