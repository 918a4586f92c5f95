package tsptw

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mdd-lns/ddlns/containers"
)

// Parse reads one TSPTW instance: a '#'-comment-and-blank-line-tolerant
// header giving the city count, then that many rows of distance-matrix
// coefficients, then that many rows of "start stop" time-window pairs.
// Distances and time windows are floating point in the source text and
// stored internally as integers scaled by 10000.
func Parse(r io.Reader) (*Problem, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrMissingField
	}

	nbCities, err := strconv.Atoi(lines[0])
	if err != nil {
		return nil, ErrParseInt
	}
	if len(lines) < 1+2*nbCities {
		return nil, ErrMissingField
	}

	dist, err := containers.NewMatrix[int](nbCities, nbCities, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nbCities; i++ {
		fields := strings.Fields(lines[1+i])
		for j, tok := range fields {
			if j >= nbCities {
				break
			}
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, ErrParseFloat
			}
			if err := dist.Set(i, j, int(f*10000)); err != nil {
				return nil, err
			}
		}
	}

	windows := make([]TimeWindow, nbCities)
	for i := 0; i < nbCities; i++ {
		fields := strings.Fields(lines[1+nbCities+i])
		if len(fields) < 1 {
			return nil, ErrMissingField
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, ErrParseFloat
		}
		if len(fields) < 2 {
			return nil, ErrMissingField
		}
		stop, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, ErrParseFloat
		}
		windows[i] = TimeWindow{Start: int(start * 10000), Stop: int(stop * 10000)}
	}

	return NewProblem(nbCities, dist, windows)
}
