package morphology_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrngo/morphio/morphology"
	"github.com/nrngo/morphio/swc"
)

func buildForkedTree() morphology.Properties {
	b := morphology.NewBuilder()
	root := b.AppendRootSection([]swc.Point{{X: 0}, {X: 1}}, []float64{1, 1}, swc.Axon)
	root.AppendSection([]swc.Point{{X: 1}, {X: 2}}, []float64{1, 1}, swc.Axon)
	root.AppendSection([]swc.Point{{X: 1}, {X: 3}}, []float64{1, 1}, swc.BasalDendrite)
	return b.BuildReadOnly()
}

func TestWalk_PreOrderSourceOrder(t *testing.T) {
	props := buildForkedTree()
	var visited []int

	err := morphology.Walk(props, func(index int, section morphology.Section) error {
		visited = append(visited, index)
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, visited)
}

func TestWalk_OnExitRunsAfterSubtree(t *testing.T) {
	props := buildForkedTree()
	var order []string

	err := morphology.Walk(props,
		func(index int, section morphology.Section) error {
			order = append(order, "enter")
			return nil
		},
		morphology.WithOnExit(func(index int, typ swc.SectionType) error {
			order = append(order, "exit")
			return nil
		}),
	)

	require.NoError(t, err)
	require.Equal(t, []string{"enter", "enter", "exit", "enter", "exit", "exit"}, order)
}

func TestWalk_VisitErrorAborts(t *testing.T) {
	props := buildForkedTree()
	sentinel := errors.New("stop")

	err := morphology.Walk(props, func(index int, section morphology.Section) error {
		if index == 1 {
			return sentinel
		}
		return nil
	})

	require.ErrorIs(t, err, sentinel)
}
