package ml

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrikeh/go-deep/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const sampleDataset = `x,x,x,x,o,o,x,o,o,positive
x,x,x,x,o,o,o,x,o,positive
o,x,x,b,o,x,b,b,o,negative
b,b,b,b,b,b,b,b,b,negative
`

func TestReadDataset(t *testing.T) {
	t.Run("Parses cells and labels", func(t *testing.T) {
		// Given: a well-formed dataset
		reader := strings.NewReader(sampleDataset)

		// When: reading it
		examples, err := ReadDataset(reader)

		// Then: every record is encoded X=+1, O=-1, blank=0
		require.NoError(t, err)
		require.Len(t, examples, 4)
		assert.Equal(t, []float64{1, 1, 1, 1, -1, -1, 1, -1, -1}, examples[0].Input)
		assert.Equal(t, []float64{1}, examples[0].Response)
		assert.Equal(t, []float64{-1, 1, 1, 0, -1, 1, 0, 0, -1}, examples[2].Input)
		assert.Equal(t, []float64{0}, examples[2].Response)
		assert.Equal(t, make([]float64, 9), examples[3].Input)
	})

	t.Run("Rejects unknown labels", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader("x,x,x,o,o,b,b,b,b,maybe\n"))

		require.ErrorIs(t, err, apperror.ErrMalformedDataset)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("Rejects unknown cell values", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader(sampleDataset + "x,x,q,o,o,b,b,b,b,positive\n"))

		require.ErrorIs(t, err, apperror.ErrMalformedDataset)
		assert.Contains(t, err.Error(), "line 5")
	})

	t.Run("Rejects records with the wrong field count", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader("x,x,x,o,o,positive\n"))

		require.ErrorIs(t, err, apperror.ErrMalformedDataset)
	})

	t.Run("Rejects an empty file", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader(""))

		require.ErrorIs(t, err, apperror.ErrEmptyDataset)
	})
}

func TestLoadDataset(t *testing.T) {
	t.Run("Reads from disk", func(t *testing.T) {
		// Given: a dataset file
		path := filepath.Join(t.TempDir(), "tic-tac-toe.data")
		require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o600))

		// When: loading it
		examples, err := LoadDataset(path)

		// Then: all records are loaded
		require.NoError(t, err)
		assert.Len(t, examples, 4)
	})

	t.Run("Fails on a missing file", func(t *testing.T) {
		_, err := LoadDataset(filepath.Join(t.TempDir(), "missing.data"))

		require.Error(t, err)
	})
}

func TestShuffle(t *testing.T) {
	// Given: two copies of the same examples
	first := numberedExamples(20)
	second := numberedExamples(20)

	// When: shuffling both with the same seed
	Shuffle(first, rand.New(rand.NewSource(42)))
	Shuffle(second, rand.New(rand.NewSource(42)))

	// Then: the permutation is the same and nothing is lost
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, numberedExamples(20), first)
}

func TestSplit(t *testing.T) {
	examples := numberedExamples(10)

	t.Run("Splits by position", func(t *testing.T) {
		train, test := Split(examples, 0.8)

		assert.Equal(t, examples[:8], train)
		assert.Equal(t, examples[8:], test)
	})

	t.Run("Clamps out of range ratios", func(t *testing.T) {
		train, test := Split(examples, 1.5)
		assert.Len(t, train, 10)
		assert.Empty(t, test)

		train, test = Split(examples, -1)
		assert.Empty(t, train)
		assert.Len(t, test, 10)
	})
}

func numberedExamples(n int) training.Examples {
	examples := make(training.Examples, n)
	for i := range examples {
		examples[i] = training.Example{
			Input:    []float64{float64(i), 0, 0, 0, 0, 0, 0, 0, 0},
			Response: []float64{float64(i % 2)},
		}
	}

	return examples
}
