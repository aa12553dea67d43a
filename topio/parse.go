// Package topio parses the TOP instance text-file format and builds the
// Euclidean directed graph the core solver runs over (spec §6 "Instance
// file format"), the way the teacher's matrix.BuildDenseAdjacency turns a
// vertex/edge list into a dense adjacency representation.
package topio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/toppricer/instance"
)

// ErrMalformedInstance signals that the instance file's header or vertex
// rows could not be parsed.
var ErrMalformedInstance = errors.New("topio: malformed instance file")

// vertexRecord is one parsed (x, y, prize) line.
type vertexRecord struct {
	x, y, prize float64
}

// Parse reads the instance file at dir/name and builds an Instance (spec
// §6). fleetOverride, if > 0, replaces the file's fleet size (CLI `-f`,
// sensitivity analysis); pass 0 to use the file's value unchanged.
func Parse(dir, name string, fleetOverride int) (*instance.Instance, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topio: opening %s: %w", path, err)
	}
	defer f.Close()

	return parseReader(f, fleetOverride)
}

func parseReader(r io.Reader, fleetOverride int) (*instance.Instance, error) {
	sc := bufio.NewScanner(r)

	n, err := readHeaderLine(sc, "n")
	if err != nil {
		return nil, err
	}
	m, err := readHeaderLine(sc, "m")
	if err != nil {
		return nil, err
	}
	bLine, err := readHeaderFloatLine(sc, "b")
	if err != nil {
		return nil, err
	}

	if fleetOverride > 0 {
		m = fleetOverride
	}

	records := make([]vertexRecord, 0, n)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: expected 3 fields per vertex row, got %d", ErrMalformedInstance, len(fields))
		}
		x, err1 := strconv.ParseFloat(fields[0], 64)
		y, err2 := strconv.ParseFloat(fields[1], 64)
		p, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w: non-numeric vertex row %q", ErrMalformedInstance, sc.Text())
		}
		records = append(records, vertexRecord{x: x, y: y, prize: p})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("topio: reading instance: %w", err)
	}
	if len(records) != n {
		return nil, fmt.Errorf("%w: header declared n=%d but found %d vertex rows", ErrMalformedInstance, n, len(records))
	}

	source, dest := 0, n-1
	prizes := make([]float64, n)
	for i, rec := range records {
		prizes[i] = rec.prize
	}

	var edges []instance.Edge
	for i := 0; i < n; i++ {
		if i == dest {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || j == source {
				continue
			}
			dx := records[i].x - records[j].x
			dy := records[i].y - records[j].y
			d := math.Hypot(dx, dy)
			if d <= bLine {
				edges = append(edges, instance.Edge{From: i, To: j, Weight: d})
			}
		}
	}

	g, err := instance.NewGraph(n, edges, source, dest, bLine)
	if err != nil {
		return nil, fmt.Errorf("topio: building graph: %w", err)
	}

	return instance.New(g, prizes, source, dest, m, bLine)
}

func readHeaderLine(sc *bufio.Scanner, key string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: missing %q header", ErrMalformedInstance, key)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 || fields[0] != key {
		return 0, fmt.Errorf("%w: expected %q header, got %q", ErrMalformedInstance, key, sc.Text())
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: non-integer %q value %q", ErrMalformedInstance, key, fields[1])
	}

	return v, nil
}

func readHeaderFloatLine(sc *bufio.Scanner, key string) (float64, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: missing %q header", ErrMalformedInstance, key)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 || fields[0] != key {
		return 0, fmt.Errorf("%w: expected %q header, got %q", ErrMalformedInstance, key, sc.Text())
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric %q value %q", ErrMalformedInstance, key, fields[1])
	}

	return v, nil
}
