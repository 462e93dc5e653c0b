package ml

import (
	"fmt"
	"math/rand"

	"github.com/patrikeh/go-deep/training"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	DefaultEpochs       = 1000
	DefaultLearningRate = 0.01
	DefaultTrainSplit   = 0.8

	// DefaultNoise bounds the uniform noise added to a score before thresholding.
	DefaultNoise = 0.05

	threshold = 0.5
	biasIndex = entity.CellCount
)

// Weights holds one weight per cell followed by the bias.
type Weights [entity.CellCount + 1]float64

type TrainConfig struct {
	Epochs       int
	LearningRate float64
}

type FitConfig struct {
	TrainConfig
	TrainSplit float64
}

func DefaultFitConfig() FitConfig {
	return FitConfig{
		TrainConfig: TrainConfig{
			Epochs:       DefaultEpochs,
			LearningRate: DefaultLearningRate,
		},
		TrainSplit: DefaultTrainSplit,
	}
}

// Model is the trained classifier together with how well it did on each partition.
type Model struct {
	Weights   Weights `json:"weights"`
	TrainSize int     `json:"train_size"`
	TestSize  int     `json:"test_size"`
	Train     Metrics `json:"train"`
	Test      Metrics `json:"test"`
}

// Score is the raw linear output: bias plus the weighted sum of the features.
func Score(features []float64, weights Weights) float64 {
	result := weights[biasIndex]
	for i := 0; i < entity.CellCount && i < len(features); i++ {
		result += weights[i] * features[i]
	}

	return result
}

// Predict classifies features as 1 when the score reaches 0.5.
func Predict(features []float64, weights Weights) int {
	if Score(features, weights) >= threshold {
		return 1
	}

	return 0
}

// PredictWithImperfection perturbs the score with uniform noise in [-noise, +noise]
// before thresholding, so close calls do not always go the same way.
func PredictWithImperfection(features []float64, weights Weights, noise float64, rng *rand.Rand) int {
	score := Score(features, weights) + (rng.Float64()*2-1)*noise
	if score > threshold {
		return 1
	}

	return 0
}

// Train fits weights with batch gradient descent on a plain linear prediction.
func Train(examples training.Examples, conf TrainConfig) Weights {
	var weights Weights
	if len(examples) == 0 {
		return weights
	}

	size := float64(len(examples))
	for epoch := 0; epoch < conf.Epochs; epoch++ {
		var gradient Weights

		for _, example := range examples {
			errValue := Score(example.Input, weights) - example.Response[0]

			for j := 0; j < entity.CellCount && j < len(example.Input); j++ {
				gradient[j] += errValue * example.Input[j]
			}
			gradient[biasIndex] += errValue
		}

		for j := range weights {
			weights[j] -= conf.LearningRate * gradient[j] / size
		}
	}

	return weights
}

// Fit shuffles examples once, splits them and trains on the first partition.
// Both partitions are evaluated with the final weights.
func Fit(examples training.Examples, conf FitConfig, rng *rand.Rand) (*Model, error) {
	shuffled := make(training.Examples, len(examples))
	copy(shuffled, examples)
	Shuffle(shuffled, rng)

	trainSet, testSet := Split(shuffled, conf.TrainSplit)
	if len(trainSet) == 0 {
		return nil, fmt.Errorf("%w: %d examples with split %.2f", apperror.ErrEmptyTrainingSet, len(examples), conf.TrainSplit)
	}

	weights := Train(trainSet, conf.TrainConfig)

	return &Model{
		Weights:   weights,
		TrainSize: len(trainSet),
		TestSize:  len(testSet),
		Train:     Evaluate(trainSet, weights),
		Test:      Evaluate(testSet, weights),
	}, nil
}
