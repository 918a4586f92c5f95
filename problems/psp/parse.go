package psp

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mdd-lns/ddlns/containers"
)

// Parse reads one pigment sequencing instance: nb_periods, nb_items,
// nb_orders (one int per line), a blank line, nb_items rows of changeover
// costs, a blank line, one line of per-item stocking costs, a blank line,
// nb_items rows of per-period demand indicators (0 or a positive demand
// quantity), a blank line, and finally an optional known-optimum line.
func Parse(r io.Reader) (*Problem, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	pos := 0
	next := func() (string, bool) {
		if pos >= len(lines) {
			return "", false
		}
		s := lines[pos]
		pos++
		return s, true
	}
	skipBlank := func() {
		for pos < len(lines) && strings.TrimSpace(lines[pos]) == "" {
			pos++
		}
	}
	readInt := func() (int, error) {
		s, ok := next()
		if !ok {
			return 0, ErrMissingField
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, ErrParseInt
		}
		return v, nil
	}

	nbPeriods, err := readInt()
	if err != nil {
		return nil, err
	}
	nbItems, err := readInt()
	if err != nil {
		return nil, err
	}
	nbOrders, err := readInt()
	if err != nil {
		return nil, err
	}
	if nbItems > MaxItems {
		return nil, ErrTooManyItems
	}

	skipBlank()

	changeover, err := containers.NewMatrix[int](nbItems, nbItems, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nbItems; i++ {
		s, ok := next()
		if !ok {
			return nil, ErrMissingField
		}
		for j, tok := range strings.Fields(s) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, ErrParseInt
			}
			if err := changeover.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	skipBlank()

	stockingLine, ok := next()
	if !ok {
		return nil, ErrMissingField
	}
	stocking := make([]int, nbItems)
	for i, tok := range strings.Fields(stockingLine) {
		if i >= nbItems {
			break
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, ErrParseInt
		}
		stocking[i] = v
	}

	skipBlank()

	prevDemand, err := containers.NewMatrix[int32](nbItems, nbPeriods+1, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nbItems; i++ {
		s, ok := next()
		if !ok {
			return nil, ErrMissingField
		}
		lastPeriod := bot
		for period, tok := range strings.Fields(s) {
			if err := prevDemand.Set(i, period, lastPeriod); err != nil {
				return nil, err
			}
			demand, err := strconv.Atoi(tok)
			if err != nil {
				return nil, ErrParseInt
			}
			if demand > 0 {
				lastPeriod = int32(period)
			}
			if period == nbPeriods-1 {
				if err := prevDemand.Set(i, period+1, lastPeriod); err != nil {
					return nil, err
				}
			}
		}
	}

	skipBlank()

	var optimum *int
	if s, ok := next(); ok {
		s = strings.TrimSpace(s)
		if s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, ErrParseInt
			}
			optimum = &v
		}
	}

	return NewProblem(nbPeriods, nbItems, nbOrders, changeover, stocking, prevDemand, optimum)
}
