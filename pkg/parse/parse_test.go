package parse

import (
	"testing"

	"github.com/lance6716/aoc-circuits/pkg/edge"
	"github.com/lance6716/aoc-circuits/pkg/graph"
	"github.com/lance6716/aoc-circuits/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	got, err := Points("162,817,812\n57,618,57\r\n-1, 0 ,3\n")
	require.NoError(t, err)
	require.Equal(t, []edge.Point{
		{X: 162, Y: 817, Z: 812},
		{X: 57, Y: 618, Z: 57},
		{X: -1, Y: 0, Z: 3},
	}, got)

	got, err = Points("\n")
	require.NoError(t, err)
	require.Empty(t, got)

	for _, input := range []string{
		"1,2",
		"1,2,3,4",
		"1,2,3\n1,x,3",
		"1,,3",
	} {
		_, err = Points(input)
		require.Error(t, err, input)
		require.True(t, util.IsMalformedInputError(err), input)
	}

	_, err = Points("1,2,3\n1,x,3")
	require.ErrorContains(t, err, "line 2")
}

func TestAdjacency(t *testing.T) {
	got, err := Adjacency("aaa: you hhh\nyou: bbb\nout:\n")
	require.NoError(t, err)
	require.Equal(t, []graph.Record{
		{Label: "aaa", Successors: []string{"you", "hhh"}},
		{Label: "you", Successors: []string{"bbb"}},
		{Label: "out", Successors: []string{}},
	}, got)

	for _, input := range []string{"aaa you", ": you", "a b: c"} {
		_, err = Adjacency(input)
		require.True(t, util.IsMalformedInputError(err), input)
	}
}

func TestRotations(t *testing.T) {
	got, err := Rotations("L68\nR48\nL5\n")
	require.NoError(t, err)
	require.Equal(t, []int64{-68, 48, -5}, got)

	for _, input := range []string{"X5", "L", "Rx", "L68\n\nR1"} {
		_, err = Rotations(input)
		require.True(t, util.IsMalformedInputError(err), input)
	}
}

func TestRanges(t *testing.T) {
	got, err := Ranges("11-22,95-115,\n998-1012\n")
	require.NoError(t, err)
	require.Equal(t, []Range{{11, 22}, {95, 115}, {998, 1012}}, got)

	got, err = Ranges("")
	require.NoError(t, err)
	require.Empty(t, got)

	for _, input := range []string{"11", "11-x", "x-11", "22-11", "11-22,,95-115"} {
		_, err = Ranges(input)
		require.True(t, util.IsMalformedInputError(err), input)
	}
}

func TestTiles(t *testing.T) {
	got, err := Tiles("7,1\n11,1\r\n2, 5\n")
	require.NoError(t, err)
	require.Equal(t, []Vec2{{X: 7, Y: 1}, {X: 11, Y: 1}, {X: 2, Y: 5}}, got)

	_, err = Tiles("7,1\n11\n")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "line 2")
}

func TestGrid(t *testing.T) {
	got, err := Grid("..@\n@@.\r\n", ".@")
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("..@"), []byte("@@.")}, got)

	_, err = Grid("..@\n@.\n", ".@")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "expect width 3, got 2")

	_, err = Grid("..@\n@x.\n", ".@")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "column 2")

	_, err = Grid("\n", ".@")
	require.True(t, util.IsMalformedInputError(err))
}

func TestBanks(t *testing.T) {
	got, err := Banks("987654321111111\n811111111111119\n")
	require.NoError(t, err)
	require.Equal(t, []string{"987654321111111", "811111111111119"}, got)

	_, err = Banks("12a4\n")
	require.True(t, util.IsMalformedInputError(err))
}

func TestInventory(t *testing.T) {
	ranges, ids, err := Inventory("3-5\n10-14\r\n\r\n1\n17\n")
	require.NoError(t, err)
	require.Equal(t, []Range{{Start: 3, End: 5}, {Start: 10, End: 14}}, ranges)
	require.Equal(t, []uint64{1, 17}, ids)

	_, _, err = Inventory("3-5\n1\n")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "blank line")

	_, _, err = Inventory("3-5,7-9\n\n1\n")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "expect one range")

	_, _, err = Inventory("3-5\n\nx\n")
	require.True(t, util.IsMalformedInputError(err))
}

func TestParseWorksheet(t *testing.T) {
	w, err := ParseWorksheet("123 328\n 45 64\n*   +  \n")
	require.NoError(t, err)
	require.Equal(t, []string{"123 328", " 45 64 "}, w.Rows)
	require.Equal(t, []byte{'*', '+'}, w.Ops)

	_, err = ParseWorksheet("1 2\n* -\n")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "operator 2")

	_, err = ParseWorksheet("1 2 3\n* +\n")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "expect 2 numbers, got 3")

	_, err = ParseWorksheet("* +\n")
	require.True(t, util.IsMalformedInputError(err))
}

func TestMachines(t *testing.T) {
	got, err := Machines("[.##.] (3) (1,3) (2) {3,5,4,7}\n")
	require.NoError(t, err)
	require.Equal(t, []Machine{{
		Lights:  []bool{false, true, true, false},
		Buttons: [][]int{{3}, {1, 3}, {2}},
		Joltage: []int{3, 5, 4, 7},
	}}, got)

	for _, bad := range []string{
		"[.##.]",
		".##. (3) {3,5,4,7}",
		"[.#x.] (3) {3,5,4,7}",
		"[.##.] (3) 3,5,4,7",
		"[.##.] 3 {3,5,4,7}",
		"[.##.] (4) {3,5,4,7}",
		"[.##.] (1,-1) {3,5,4,7}",
	} {
		_, err = Machines(bad)
		require.True(t, util.IsMalformedInputError(err), bad)
	}
}

func TestPresents(t *testing.T) {
	shapes, regions, err := Presents("0:\n##\n#.\n\n1:\n#.\n##\n\n4x4: 1 2\n3x2: 0 1\n")
	require.NoError(t, err)
	require.Equal(t, map[int]Shape{
		0: {{true, true}, {true, false}},
		1: {{true, false}, {true, true}},
	}, shapes)
	require.Equal(t, 3, shapes[0].Area())
	require.Equal(t, []Region{
		{Width: 4, Height: 4, Counts: []int{1, 2}},
		{Width: 3, Height: 2, Counts: []int{0, 1}},
	}, regions)

	_, _, err = Presents("4x4: 1 2\n")
	require.True(t, util.IsMalformedInputError(err))

	_, _, err = Presents("x:\n##\n\n4x4: 1\n")
	require.True(t, util.IsMalformedInputError(err))

	_, _, err = Presents("0:\n##\n\n4by4: 1\n")
	require.True(t, util.IsMalformedInputError(err))
	require.ErrorContains(t, err, "region 1")
}
