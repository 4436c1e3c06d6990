package geom

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
	"gonum.org/v1/gonum/floats"
)

// AreaUnion returns the area covered by at least one of boxes. All of
// the boxes must share an identical canvas.
//
// Every box is split against the corners of all of the boxes, so any
// region covered by more than one box is tiled identically by each of
// them and is counted only once.
func AreaUnion(boxes ...Box) (float64, error) {
	if err := sameCanvas(boxes); err != nil {
		return 0, err
	}

	markers := corners(boxes)

	var union tileSet
	for _, b := range boxes {
		union.add(b.Tiles(markers...))
	}
	return union.area(), nil
}

// AreaIntersection returns the area covered by every one of groups,
// where each group stands for the union of the boxes in it. All of
// the boxes in all of the groups must share an identical canvas. The
// intersection of no groups is empty.
func AreaIntersection(groups ...[]Box) (float64, error) {
	all := slices.Concat(groups...)
	if err := sameCanvas(all); err != nil {
		return 0, err
	}
	if len(groups) == 0 {
		return 0, nil
	}

	markers := corners(all)

	sets := make([]tileSet, len(groups))
	for i, group := range groups {
		for _, b := range group {
			sets[i].add(b.Tiles(markers...))
		}
	}

	var common tileSet
	common.add(xiter.Filter(slices.Values(sets[0].tiles), func(t Box) bool {
		for _, s := range sets[1:] {
			if !s.has(t) {
				return false
			}
		}
		return true
	}))
	return common.area(), nil
}

func sameCanvas(boxes []Box) error {
	for i, b := range boxes {
		if !b.canvas.Equal(boxes[0].canvas) {
			return fmt.Errorf("box %v has canvas %v, box 0 has %v: %w", i, b.canvas, boxes[0].canvas, ErrCanvas)
		}
	}
	return nil
}

// corners returns the distinct anchors and distant corners of boxes.
func corners(boxes []Box) []Point {
	seen := make(map[string]struct{}, 2*len(boxes))
	markers := make([]Point, 0, 2*len(boxes))
	for _, b := range boxes {
		for _, p := range [...]Point{b.Anchor(), b.Distant()} {
			k := p.Key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			markers = append(markers, p)
		}
	}
	return markers
}

// tileSet is a set of boxes that remembers insertion order so that
// areas are always summed in the same order.
type tileSet struct {
	keys  map[string]struct{}
	tiles []Box
}

func (s *tileSet) add(seq iter.Seq[Box]) {
	if s.keys == nil {
		s.keys = make(map[string]struct{})
	}
	for b := range seq {
		k := b.Key()
		if _, ok := s.keys[k]; ok {
			continue
		}
		s.keys[k] = struct{}{}
		s.tiles = append(s.tiles, b)
	}
}

func (s *tileSet) has(b Box) bool {
	_, ok := s.keys[b.Key()]
	return ok
}

func (s *tileSet) area() float64 {
	areas := make([]float64, len(s.tiles))
	for i, t := range s.tiles {
		areas[i] = t.Area()
	}
	return floats.Sum(areas)
}
