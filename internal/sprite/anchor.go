package sprite

import (
	"log"
	"math"
	"strconv"
	"strings"
)

// ResolveAnchor converts an alignment request into a normalized anchor.
//
// Two request forms are accepted:
//
//   - A numeric pair "x,y" with components in [0,1]. Components outside
//     the range are clamped and logged.
//   - Semantic tokens combined with any separators: "center", "middle",
//     "top", "bottom", "left", "right". Matching is case-insensitive and
//     by substring containment, so "Top-Left" and "centered" work.
//
// Token resolution order:
//
//   - "center"/"middle" with one direction maps to that edge midpoint
//     ("center top" -> (0.5, 0)).
//   - "center"/"middle" alone -> (0.5, 0.5).
//   - Directions alone set their axis to the edge and leave the other at
//     0.5 ("left" -> (0, 0.5), "bottom right" -> (1, 1)).
//   - Anything else resolves to (0, 0) with a logged warning.
func ResolveAnchor(request string) Anchor {
	if a, ok := parseAnchorPair(request); ok {
		return a
	}

	s := strings.ToLower(request)
	centered := strings.Contains(s, "center") || strings.Contains(s, "middle")
	top := strings.Contains(s, "top")
	bottom := strings.Contains(s, "bottom")
	left := strings.Contains(s, "left")
	right := strings.Contains(s, "right")

	if centered {
		switch {
		case top:
			return Anchor{X: 0.5, Y: 0}
		case bottom:
			return Anchor{X: 0.5, Y: 1}
		case left:
			return Anchor{X: 0, Y: 0.5}
		case right:
			return Anchor{X: 1, Y: 0.5}
		}
		return Anchor{X: 0.5, Y: 0.5}
	}

	if !top && !bottom && !left && !right {
		log.Printf("Unrecognized alignment %q, anchoring top-left", request)
		return Anchor{}
	}

	a := Anchor{X: 0.5, Y: 0.5}
	switch {
	case left:
		a.X = 0
	case right:
		a.X = 1
	}
	switch {
	case top:
		a.Y = 0
	case bottom:
		a.Y = 1
	}
	return a
}

// parseAnchorPair parses the numeric "x,y" request form.
func parseAnchorPair(request string) (Anchor, bool) {
	parts := strings.Split(request, ",")
	if len(parts) != 2 {
		return Anchor{}, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil || math.IsNaN(x) || math.IsNaN(y) {
		return Anchor{}, false
	}

	cx, cy := clamp01(x), clamp01(y)
	if cx != x || cy != y {
		log.Printf("Alignment %q outside [0,1], clamped to %g,%g", request, cx, cy)
	}
	return Anchor{X: cx, Y: cy}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
