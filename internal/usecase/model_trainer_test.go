package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/patrikeh/go-deep/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/ml"
)

type mockModelRepo struct {
	mock.Mock
}

func (that *mockModelRepo) CreateOrUpdate(ctx context.Context, id string, model *ml.Model) error {
	args := that.Called(ctx, id, model)
	return args.Error(0)
}

func (that *mockModelRepo) GetByID(ctx context.Context, id string) (*ml.Model, error) {
	args := that.Called(ctx, id)
	model, _ := args.Get(0).(*ml.Model)

	return model, args.Error(1)
}

func trainerExamples() training.Examples {
	examples := make(training.Examples, 0, 50)
	for i := 0; i < 50; i++ {
		input := make([]float64, 9)
		label := 0.0
		if i%2 == 0 {
			input[0] = 1
			label = 1
		} else {
			input[0] = -1
		}
		input[1+i%8] = float64(i%3 - 1)

		examples = append(examples, training.Example{Input: input, Response: []float64{label}})
	}

	return examples
}

func trainerConfig(t *testing.T) TrainerConfig {
	t.Helper()

	return TrainerConfig{
		Seed:        42,
		Fit:         ml.DefaultFitConfig(),
		MetricsPath: filepath.Join(t.TempDir(), "metrics.csv"),
	}
}

func TestModelTrainer_Train(t *testing.T) {
	ctx := context.Background()
	examples := trainerExamples()

	t.Run("Trains without a cache and writes metrics", func(t *testing.T) {
		// Given: a trainer with no repository
		conf := trainerConfig(t)
		trainer := NewModelTrainer(discardLogger(), conf, nil)

		// When: training
		model, err := trainer.Train(ctx, examples)

		// Then: a model is produced on an 80/20 split
		require.NoError(t, err)
		assert.Equal(t, 40, model.TrainSize)
		assert.Equal(t, 10, model.TestSize)

		// And: the test metrics are on disk
		content, err := os.ReadFile(conf.MetricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Metric,Value\n")
	})

	t.Run("Stores the model on a cache miss", func(t *testing.T) {
		conf := trainerConfig(t)
		fingerprint := Fingerprint(examples, conf)
		repo := &mockModelRepo{}
		repo.On("GetByID", ctx, fingerprint).Return(nil, apperror.ErrModelNotFound).Once()
		repo.On("CreateOrUpdate", ctx, fingerprint, mock.AnythingOfType("*ml.Model")).Return(nil).Once()
		trainer := NewModelTrainer(discardLogger(), conf, repo)

		_, err := trainer.Train(ctx, examples)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Returns the cached model on a hit", func(t *testing.T) {
		// Given: a cached model
		conf := trainerConfig(t)
		cached := &ml.Model{Weights: ml.Weights{0: 0.7}, TrainSize: 40, TestSize: 10}
		repo := &mockModelRepo{}
		repo.On("GetByID", ctx, Fingerprint(examples, conf)).Return(cached, nil).Once()
		trainer := NewModelTrainer(discardLogger(), conf, repo)

		// When: training
		model, err := trainer.Train(ctx, examples)

		// Then: the cached model is used and nothing is stored
		require.NoError(t, err)
		assert.Same(t, cached, model)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cache failures do not stop training", func(t *testing.T) {
		conf := trainerConfig(t)
		repo := &mockModelRepo{}
		repo.On("GetByID", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()
		repo.On("CreateOrUpdate", ctx, mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
		trainer := NewModelTrainer(discardLogger(), conf, repo)

		model, err := trainer.Train(ctx, examples)

		require.NoError(t, err)
		assert.NotNil(t, model)
		repo.AssertExpectations(t)
	})

	t.Run("Metrics write failure is not fatal", func(t *testing.T) {
		conf := trainerConfig(t)
		conf.MetricsPath = filepath.Join(t.TempDir(), "missing", "metrics.csv")
		trainer := NewModelTrainer(discardLogger(), conf, nil)

		model, err := trainer.Train(ctx, examples)

		require.NoError(t, err)
		assert.NotNil(t, model)
	})

	t.Run("Is deterministic for a fixed seed", func(t *testing.T) {
		conf := trainerConfig(t)

		first, err := NewModelTrainer(discardLogger(), conf, nil).Train(ctx, examples)
		require.NoError(t, err)
		second, err := NewModelTrainer(discardLogger(), conf, nil).Train(ctx, examples)
		require.NoError(t, err)

		assert.Equal(t, first.Weights, second.Weights)
	})

	t.Run("Fails on an empty training set", func(t *testing.T) {
		trainer := NewModelTrainer(discardLogger(), trainerConfig(t), nil)

		_, err := trainer.Train(ctx, nil)

		require.ErrorIs(t, err, apperror.ErrEmptyTrainingSet)
	})
}

func TestFingerprint(t *testing.T) {
	examples := trainerExamples()
	conf := TrainerConfig{Seed: 1, Fit: ml.DefaultFitConfig()}

	t.Run("Is stable", func(t *testing.T) {
		assert.Equal(t, Fingerprint(examples, conf), Fingerprint(trainerExamples(), conf))
		assert.Len(t, Fingerprint(examples, conf), 64)
	})

	t.Run("Changes with the seed", func(t *testing.T) {
		other := conf
		other.Seed = 2

		assert.NotEqual(t, Fingerprint(examples, conf), Fingerprint(examples, other))
	})

	t.Run("Changes with the data", func(t *testing.T) {
		assert.NotEqual(t, Fingerprint(examples, conf), Fingerprint(examples[:10], conf))
	})

	t.Run("Ignores the metrics path", func(t *testing.T) {
		other := conf
		other.MetricsPath = "elsewhere.csv"

		assert.Equal(t, Fingerprint(examples, conf), Fingerprint(examples, other))
	})
}
