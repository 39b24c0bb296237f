package datastructure

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
)

const noEncoder = "-"

// WriteGraph. bzip2 compressed text: header, encoder names, vertices, edges, then the two marker bitmaps (base64).
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d\n", len(g.vertices), len(g.edges))
	encodedWith := g.encodedWith
	if encodedWith == "" {
		encodedWith = noEncoder
	}
	fmt.Fprintf(w, "%s\n", encodedWith)

	for _, v := range g.vertices {
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)
		fmt.Fprintf(w, "%s %s\n", latF, lonF)
	}

	for _, e := range g.edges {
		distF := strconv.FormatFloat(e.dist, 'f', -1, 64)
		fmt.Fprintf(w, "%d %d %s %d\n", e.base, e.adj, distF, e.flags)
	}

	for _, bm := range []bool{false, true} {
		encoded, err := g.markers.bitmap(bm).ToBase64()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", encoded)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return bz.Close()
}

func fields(s string) []string {
	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}
	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "invalid graph header %q", line)
	}
	numVertices, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := ParseIndex(tokens[1])
	if err != nil {
		return nil, err
	}

	encodedWith, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}

	g := NewGraph()
	if encodedWith != noEncoder {
		g.SetEncodedWith(encodedWith)
	}

	for i := 0; i < int(numVertices); i++ {
		vertexLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		tokens := fields(vertexLine)
		if len(tokens) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "invalid vertex line %q", vertexLine)
		}
		lat, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return nil, err
		}
		lon, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return nil, err
		}
		g.AddVertex(lat, lon)
	}

	for i := 0; i < int(numEdges); i++ {
		edgeLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		if err := parseEdge(g, edgeLine); err != nil {
			return nil, err
		}
	}

	for _, reverse := range []bool{false, true} {
		markerLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		if _, err := g.markers.bitmap(reverse).FromBase64(markerLine); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid edge markers")
		}
	}

	return g, nil
}

func parseEdge(g *Graph, line string) error {
	tokens := fields(line)
	if len(tokens) != 4 {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "invalid edge line %q", line)
	}
	base, err := ParseIndex(tokens[0])
	if err != nil {
		return err
	}
	adj, err := ParseIndex(tokens[1])
	if err != nil {
		return err
	}
	dist, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return err
	}
	flags, err := strconv.ParseUint(tokens[3], 10, 64)
	if err != nil {
		return err
	}
	_, err = g.AddEdge(base, adj, dist, flags)
	return err
}
