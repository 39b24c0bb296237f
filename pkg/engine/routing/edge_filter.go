package routing

import (
	"fmt"
	"slices"
	"strings"

	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
)

// EdgeFilter. decides whether a search may traverse an edge.
// filters are immutable and shared by concurrent searches.
type EdgeFilter interface {
	Accept(e da.EdgeIteratorState) bool
	String() string
}

type AllEdgesFilter struct{}

func NewAllEdgesFilter() AllEdgesFilter {
	return AllEdgesFilter{}
}

func (AllEdgesFilter) Accept(e da.EdgeIteratorState) bool {
	return true
}

func (AllEdgesFilter) String() string {
	return "all edges"
}

// DefaultEdgeFilter. accepts an edge if the encoder grants access out of the base node (out) or into the base
// node (in).
type DefaultEdgeFilter struct {
	encoder encoding.FlagEncoder
	in      bool
	out     bool
}

func NewDefaultEdgeFilter(encoder encoding.FlagEncoder, in, out bool) DefaultEdgeFilter {
	return DefaultEdgeFilter{encoder: encoder, in: in, out: out}
}

// OutEdgeFilter. edges that can be left from their base node, what a forward search needs.
func OutEdgeFilter(encoder encoding.FlagEncoder) DefaultEdgeFilter {
	return NewDefaultEdgeFilter(encoder, false, true)
}

func InEdgeFilter(encoder encoding.FlagEncoder) DefaultEdgeFilter {
	return NewDefaultEdgeFilter(encoder, true, false)
}

func (f DefaultEdgeFilter) Accept(e da.EdgeIteratorState) bool {
	flags := e.GetFlags()
	if f.out && f.encoder.IsAccessible(flags, e.IsReversed()) {
		return true
	}
	return f.in && f.encoder.IsAccessible(flags, !e.IsReversed())
}

func (f DefaultEdgeFilter) String() string {
	return fmt.Sprintf("%s, in:%v, out:%v", f.encoder.String(), f.in, f.out)
}

// ExcludeIdEdgeFilter. base filter minus a fixed set of edge ids.
type ExcludeIdEdgeFilter struct {
	base     EdgeFilter
	excluded map[da.Index]struct{}
}

// NewExcludeIdEdgeFilter. ids are copied, later changes to the slice don't affect the filter.
func NewExcludeIdEdgeFilter(base EdgeFilter, ids []da.Index) *ExcludeIdEdgeFilter {
	excluded := make(map[da.Index]struct{}, len(ids))
	for _, id := range ids {
		excluded[id] = struct{}{}
	}
	return &ExcludeIdEdgeFilter{
		base:     base,
		excluded: excluded,
	}
}

func (f *ExcludeIdEdgeFilter) Accept(e da.EdgeIteratorState) bool {
	if !f.base.Accept(e) {
		return false
	}
	_, excluded := f.excluded[e.GetEdge()]
	return !excluded
}

func (f *ExcludeIdEdgeFilter) Excludes(id da.Index) bool {
	_, ok := f.excluded[id]
	return ok
}

func (f *ExcludeIdEdgeFilter) String() string {
	ids := make([]da.Index, 0, len(f.excluded))
	for id := range f.excluded {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return f.base.String() + " excluding: [" + strings.Join(parts, ", ") + "]"
}
