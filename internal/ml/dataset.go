package ml

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/patrikeh/go-deep/training"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	labelPositive = "positive"
	labelNegative = "negative"

	recordFields = entity.CellCount + 1
)

// LoadDataset reads a labelled board file from disk. See ReadDataset for the format.
func LoadDataset(path string) (training.Examples, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	examples, err := ReadDataset(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	return examples, nil
}

// ReadDataset parses one board per line: nine cells (x, o or b for blank)
// followed by a positive/negative label.
func ReadDataset(r io.Reader) (training.Examples, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = recordFields
	reader.TrimLeadingSpace = true

	var examples training.Examples
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", apperror.ErrMalformedDataset, line, err)
		}

		example, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", apperror.ErrMalformedDataset, line, err)
		}

		examples = append(examples, example)
	}

	if len(examples) == 0 {
		return nil, apperror.ErrEmptyDataset
	}

	return examples, nil
}

func parseRecord(record []string) (training.Example, error) {
	input := make([]float64, entity.CellCount)
	for i := 0; i < entity.CellCount; i++ {
		cell, err := parseCell(record[i])
		if err != nil {
			return training.Example{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		input[i] = float64(cell)
	}

	var label float64
	switch strings.TrimSpace(record[entity.CellCount]) {
	case labelPositive:
		label = 1
	case labelNegative:
		label = 0
	default:
		return training.Example{}, fmt.Errorf("unknown label %q", record[entity.CellCount])
	}

	return training.Example{Input: input, Response: []float64{label}}, nil
}

var errUnknownCell = errors.New("unknown cell value")

func parseCell(value string) (entity.Cell, error) {
	switch strings.TrimSpace(value) {
	case "x":
		return entity.X, nil
	case "o":
		return entity.O, nil
	case "b", "":
		return entity.Empty, nil
	default:
		return entity.Empty, fmt.Errorf("%w %q", errUnknownCell, value)
	}
}

// Shuffle permutes examples in place.
func Shuffle(examples training.Examples, rng *rand.Rand) {
	rng.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

// Split cuts examples by position: the first ratio share trains, the rest tests.
func Split(examples training.Examples, ratio float64) (training.Examples, training.Examples) {
	trainSize := int(ratio * float64(len(examples)))
	trainSize = min(max(trainSize, 0), len(examples))

	return examples[:trainSize], examples[trainSize:]
}
