package graph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
)

// fmi parse states
const (
	PARSE_NODE_COUNT = iota
	PARSE_EDGE_COUNT = iota
	PARSE_NODES      = iota
	PARSE_EDGES      = iota
)

// Fields are separated by tabs since port names may contain spaces.
const fmiSeparator = "\t"

func WriteFmi(g Graph, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

func NewAdjacencyListFromFmiString(fmi string) (*AdjacencyListGraph, error) {
	scanner := bufio.NewScanner(strings.NewReader(fmi))

	numNodes := 0
	numParsedNodes := 0

	alg := NewAdjacencyListGraph()

	parseState := PARSE_NODE_COUNT
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		switch parseState {
		case PARSE_NODE_COUNT:
			val, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: node count: %v", ErrInvalidFormat, lineNumber, err)
			}
			numNodes = val
			parseState = PARSE_EDGE_COUNT
		case PARSE_EDGE_COUNT:
			parseState = PARSE_NODES
			if numNodes == 0 {
				parseState = PARSE_EDGES
			}
		case PARSE_NODES:
			fields := strings.Split(line, fmiSeparator)
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: expected 4 node fields, got %d", ErrInvalidFormat, lineNumber, len(fields))
			}
			lat, latErr := strconv.ParseFloat(fields[1], 64)
			lon, lonErr := strconv.ParseFloat(fields[2], 64)
			if latErr != nil || lonErr != nil {
				return nil, fmt.Errorf("%w: line %d: invalid coordinates", ErrInvalidFormat, lineNumber)
			}
			if !alg.AddPoint(fields[0], geo.MakePoint(lat, lon), fields[3] == "1") {
				return nil, fmt.Errorf("%w: line %d: duplicate node %v", ErrInvalidFormat, lineNumber, fields[0])
			}
			numParsedNodes++
			if numParsedNodes == numNodes {
				parseState = PARSE_EDGES
			}
		case PARSE_EDGES:
			fields := strings.Split(line, fmiSeparator)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: expected 3 edge fields, got %d", ErrInvalidFormat, lineNumber, len(fields))
			}
			distance, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: distance: %v", ErrInvalidFormat, lineNumber, err)
			}
			if !ValidDistance(distance) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidDistance, lineNumber, distance)
			}
			if alg.GetNode(fields[0]) == nil || alg.GetNode(fields[1]) == nil {
				return nil, fmt.Errorf("%w: line %d: %v -> %v", ErrDanglingArc, lineNumber, fields[0], fields[1])
			}
			alg.AddArc(fields[0], fields[1], distance)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if alg.NodeCount() != numNodes {
		return nil, fmt.Errorf("%w: expected %d nodes, parsed %d", ErrInvalidFormat, numNodes, alg.NodeCount())
	}

	return alg, nil
}

func NewAdjacencyListFromFmiFile(filename string) (*AdjacencyListGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyListFromFmiString(string(fmi))
}

func NewAdjacencyArrayFromFmiString(fmi string) (*AdjacencyArrayGraph, error) {
	alg, err := NewAdjacencyListFromFmiString(fmi)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyArrayFromGraph(alg), nil
}

func NewAdjacencyArrayFromFmiFile(filename string) (*AdjacencyArrayGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyArrayFromFmiString(string(fmi))
}
