package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// DefaultDXFUnitsPerMetre assumes drawings in millimetres.
const DefaultDXFUnitsPerMetre = 1000.0

type point struct {
	x, y float64
}

type outline []point

// segment is a line between two points, used for chaining loose LINE and
// ARC entities into closed outlines.
type segment struct {
	start point
	end   point
}

// RoomImport is the result of reading a floor plan.
type RoomImport struct {
	PerimeterM float64 // Perimeter of the largest closed outline
	FloorM2    float64 // Area enclosed by that outline
	Outlines   int     // Closed outlines found
	Errors     []string
	Warnings   []string
}

// ImportRoomDXF reads a floor plan and measures the wall run of the room.
// Every closed shape (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs)
// is a candidate; the one enclosing the largest area is taken as the room.
// unitsPerMetre converts drawing units, e.g. 1000 for millimetres.
func ImportRoomDXF(path string, unitsPerMetre float64) RoomImport {
	result := RoomImport{}

	if unitsPerMetre <= 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid drawing scale %g units per metre", unitsPerMetre))
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []outline
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			o := lwPolylineToOutline(e)
			if len(o) >= 3 {
				outlines = append(outlines, o)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circleToOutline(e, 64))

		case *entity.Arc:
			pts := arcToPoints(e, 32)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{e.Start[0], e.Start[1]},
				end:   point{e.End[0], e.End[1]},
			})
		}
	}

	outlines = append(outlines, chainSegments(segments, 0.01*unitsPerMetre/1000)...)
	return measureRoom(outlines, unitsPerMetre, result)
}

// measureRoom picks the largest outline and converts it to metres.
func measureRoom(outlines []outline, unitsPerMetre float64, result RoomImport) RoomImport {
	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	sort.SliceStable(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})

	room := outlines[0]
	area := outlineArea(room) / (unitsPerMetre * unitsPerMetre)
	if area < 0.01 {
		result.Errors = append(result.Errors, "Largest outline encloses no usable floor area")
		return result
	}

	result.Outlines = len(outlines)
	result.PerimeterM = outlinePerimeter(room) / unitsPerMetre
	result.FloorM2 = area
	if len(outlines) > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Found %d closed shapes, using the largest", len(outlines)))
	}
	return result
}

// lwPolylineToOutline converts a DXF LWPOLYLINE entity to an outline.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToOutline(lw *entity.LwPolyline) outline {
	var o outline

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := point{v[0], v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			nextIdx := (i + 1) % len(lw.Vertices)
			next := point{lw.Vertices[nextIdx][0], lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 32)
			o = append(o, arcPts[:len(arcPts)-1]...)
		} else {
			o = append(o, current)
		}
	}

	return o
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 point, bulge float64, numSegments int) outline {
	mx := (p1.x + p2.x) / 2
	my := (p1.y + p2.y) / 2
	dx := p2.x - p1.x
	dy := p2.y - p1.y
	chordLen := math.Hypot(dx, dy)
	if chordLen < 1e-9 {
		return outline{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.y-cy, p1.x-cx)
	endAngle := math.Atan2(p2.y-cy, p2.x-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else if endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	pts := make(outline, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, point{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)})
	}
	return pts
}

// circleToOutline approximates a circle as a regular polygon.
func circleToOutline(c *entity.Circle, numSegments int) outline {
	o := make(outline, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		o[i] = point{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return o
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = point{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return pts
}

func pointsToSegments(pts []point) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
// Chains that do not close are dropped.
func chainSegments(segs []segment, tolerance float64) []outline {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []outline

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := outline{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	return outlines
}

func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o outline) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].x * o[j].y
		area -= o[j].x * o[i].y
	}
	return math.Abs(area) / 2
}

// outlinePerimeter sums the edges of a closed polygon.
func outlinePerimeter(o outline) float64 {
	n := len(o)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += math.Hypot(o[j].x-o[i].x, o[j].y-o[i].y)
	}
	return total
}
