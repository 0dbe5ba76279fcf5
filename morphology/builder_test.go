package morphology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrngo/morphio/morphology"
	"github.com/nrngo/morphio/swc"
)

func TestBuilder_AppendRootSectionAndChild(t *testing.T) {
	b := morphology.NewBuilder()
	root := b.AppendRootSection(
		[]swc.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}},
		[]float64{1, 1},
		swc.Axon,
	)
	root.AppendSection(
		[]swc.Point{{X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}},
		[]float64{1, 1},
		swc.Axon,
	)

	props := b.BuildReadOnly()
	require.Len(t, props.Sections, 2)
	require.Equal(t, -1, props.Sections[0].Parent)
	require.Equal(t, []int{1}, props.Sections[0].Children)
	require.Equal(t, 0, props.Sections[1].Parent)
}

func TestBuilder_SomaShapeRoundtrips(t *testing.T) {
	b := morphology.NewBuilder()
	b.Soma().SetShape(swc.SomaSinglePoint, []swc.Point{{X: 1, Y: 2, Z: 3}}, []float64{4})

	props := b.BuildReadOnly()
	require.Equal(t, swc.SomaSinglePoint, props.Soma.Shape)
	require.Equal(t, []swc.Point{{X: 1, Y: 2, Z: 3}}, props.Soma.Points)
	require.Equal(t, []float64{4}, props.Soma.Diameters)
}

func TestBuilder_ApplyModifiers_RecenterSoma(t *testing.T) {
	b := morphology.NewBuilder()
	b.Soma().SetShape(swc.SomaSinglePoint, []swc.Point{{X: 10, Y: 0, Z: 0}}, []float64{2})
	b.AppendRootSection([]swc.Point{{X: 10, Y: 0, Z: 0}, {X: 12, Y: 0, Z: 0}}, []float64{2, 2}, swc.Axon)

	err := b.ApplyModifiers(uint64(morphology.RecenterSoma))
	require.NoError(t, err)

	props := b.BuildReadOnly()
	require.Equal(t, swc.Point{X: 0, Y: 0, Z: 0}, props.Soma.Points[0])
	require.Equal(t, swc.Point{X: 0, Y: 0, Z: 0}, props.Sections[0].Points[0])
	require.Equal(t, swc.Point{X: 2, Y: 0, Z: 0}, props.Sections[0].Points[1])
}

func TestBuilder_ApplyModifiers_UnifyBranchOrders(t *testing.T) {
	b := morphology.NewBuilder()
	root := b.AppendRootSection([]swc.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, []float64{1, 1}, swc.Axon)
	child := root.AppendSection([]swc.Point{{X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, []float64{1, 1}, swc.Axon)
	child.AppendSection([]swc.Point{{X: 2, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}}, []float64{1, 1}, swc.Axon)

	err := b.ApplyModifiers(uint64(morphology.UnifyBranchOrders))
	require.NoError(t, err)

	props := b.BuildReadOnly()
	require.Equal(t, 0, props.Sections[0].Order)
	require.Equal(t, 1, props.Sections[1].Order)
	require.Equal(t, 2, props.Sections[2].Order)
}

func TestBuilder_ApplyModifiers_NoDuplicates(t *testing.T) {
	b := morphology.NewBuilder()
	root := b.AppendRootSection([]swc.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, []float64{1, 1}, swc.Axon)
	root.AppendSection([]swc.Point{{X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, []float64{1, 1}, swc.Axon)

	err := b.ApplyModifiers(uint64(morphology.NoDuplicates))
	require.NoError(t, err)

	props := b.BuildReadOnly()
	require.Equal(t, []swc.Point{{X: 2, Y: 0, Z: 0}}, props.Sections[1].Points)
}

func TestBuilder_ApplyModifiers_UnknownBit(t *testing.T) {
	b := morphology.NewBuilder()
	err := b.ApplyModifiers(1 << 63)
	require.ErrorIs(t, err, morphology.ErrUnknownOption)
}

func TestBuilder_ApplyModifiers_AfterBuildReadOnly(t *testing.T) {
	b := morphology.NewBuilder()
	b.BuildReadOnly()

	err := b.ApplyModifiers(uint64(morphology.DefaultOptions()))
	require.ErrorIs(t, err, morphology.ErrAlreadyBuilt)
}

func TestBuilder_AppendSectionAfterBuildReadOnlyPanics(t *testing.T) {
	b := morphology.NewBuilder()
	root := b.AppendRootSection([]swc.Point{{X: 0, Y: 0, Z: 0}}, []float64{1}, swc.Axon)
	b.BuildReadOnly()

	require.Panics(t, func() {
		root.AppendSection([]swc.Point{{X: 1, Y: 0, Z: 0}}, []float64{1}, swc.Axon)
	})
}

func TestBuilder_WithOnSectionHook(t *testing.T) {
	var seen []int
	b := morphology.NewBuilder(morphology.WithOnSection(func(index int, typ swc.SectionType, isRoot bool) {
		seen = append(seen, index)
	}))
	root := b.AppendRootSection([]swc.Point{{X: 0, Y: 0, Z: 0}}, []float64{1}, swc.Axon)
	root.AppendSection([]swc.Point{{X: 1, Y: 0, Z: 0}}, []float64{1}, swc.Axon)

	require.Equal(t, []int{0, 1}, seen)
}
