package importer

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectSegments(w, h float64) []segment {
	return []segment{
		{start: point{0, 0}, end: point{w, 0}},
		{start: point{0, h}, end: point{w, h}}, // reversed on purpose
		{start: point{w, 0}, end: point{w, h}},
		{start: point{0, h}, end: point{0, 0}},
	}
}

func TestChainSegmentsClosesRectangle(t *testing.T) {
	outlines := chainSegments(rectSegments(4000, 3000), 0.01)

	require.Len(t, outlines, 1)
	assert.Len(t, outlines[0], 4)
	assert.InDelta(t, 12_000_000, outlineArea(outlines[0]), 1e-6)
	assert.InDelta(t, 14_000, outlinePerimeter(outlines[0]), 1e-6)
}

func TestChainSegmentsDropsOpenChain(t *testing.T) {
	segs := rectSegments(4000, 3000)[:3]
	assert.Empty(t, chainSegments(segs, 0.01))
}

func TestMeasureRoomPicksLargestOutline(t *testing.T) {
	small := outline{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}}
	room := outline{{0, 0}, {5000, 0}, {5000, 4000}, {0, 4000}}

	got := measureRoom([]outline{small, room}, DefaultDXFUnitsPerMetre, RoomImport{})

	assert.Empty(t, got.Errors)
	assert.InDelta(t, 18.0, got.PerimeterM, 1e-9)
	assert.InDelta(t, 20.0, got.FloorM2, 1e-9)
	assert.Equal(t, 2, got.Outlines)
	assert.Len(t, got.Warnings, 1)
}

func TestMeasureRoomLShape(t *testing.T) {
	// 6 x 4 m with a 2 x 2 m corner cut away, drawn in metres
	l := outline{{0, 0}, {6, 0}, {6, 2}, {4, 2}, {4, 4}, {0, 4}}

	got := measureRoom([]outline{l}, 1, RoomImport{})

	assert.InDelta(t, 20.0, got.PerimeterM, 1e-9)
	assert.InDelta(t, 20.0, got.FloorM2, 1e-9)
}

func TestMeasureRoomNoOutlines(t *testing.T) {
	got := measureRoom(nil, DefaultDXFUnitsPerMetre, RoomImport{})
	assert.NotEmpty(t, got.Errors)
	assert.Zero(t, got.PerimeterM)
}

func TestMeasureRoomDegenerate(t *testing.T) {
	flat := outline{{0, 0}, {5000, 0}, {10000, 0}}
	got := measureRoom([]outline{flat}, DefaultDXFUnitsPerMetre, RoomImport{})
	assert.NotEmpty(t, got.Errors)
}

func TestBulgeArcPointsSemicircle(t *testing.T) {
	pts := bulgeArcPoints(point{0, 0}, point{2, 0}, 1, 16)

	require.Len(t, pts, 17)
	for _, p := range pts {
		assert.InDelta(t, 1.0, math.Hypot(p.x-1, p.y), 1e-9)
	}
}

func TestImportRoomDXFErrors(t *testing.T) {
	got := ImportRoomDXF(filepath.Join(t.TempDir(), "missing.dxf"), DefaultDXFUnitsPerMetre)
	assert.NotEmpty(t, got.Errors)

	got = ImportRoomDXF("plan.dxf", 0)
	assert.NotEmpty(t, got.Errors)
}
