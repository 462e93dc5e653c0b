package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/patrikeh/go-deep/training"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/ml"
)

type modelRepo interface {
	CreateOrUpdate(ctx context.Context, id string, model *ml.Model) error
	GetByID(ctx context.Context, id string) (*ml.Model, error)
}

type TrainerConfig struct {
	Seed        int64
	Fit         ml.FitConfig
	MetricsPath string
}

// ModelTrainer fits the linear model at startup. When a repository is given,
// models are cached under a fingerprint of the examples and the training setup.
type ModelTrainer struct {
	logger *slog.Logger
	conf   TrainerConfig

	// optional
	modelRepo modelRepo
}

func NewModelTrainer(logger *slog.Logger, conf TrainerConfig, modelRepo modelRepo) *ModelTrainer {
	return &ModelTrainer{
		logger:    logger.With("component", "model-trainer"),
		conf:      conf,
		modelRepo: modelRepo,
	}
}

func (that *ModelTrainer) Train(ctx context.Context, examples training.Examples) (*ml.Model, error) {
	log := that.logger.With("method", "Train")

	fingerprint := Fingerprint(examples, that.conf)

	if model := that.getCached(ctx, fingerprint); model != nil {
		log.Info("model loaded from cache", "fingerprint", fingerprint)
		that.report(model)

		return model, nil
	}

	model, err := ml.Fit(examples, that.conf.Fit, rand.New(rand.NewSource(that.conf.Seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to fit model: %w", err)
	}

	log.Info("model trained", "examples", len(examples), "epochs", that.conf.Fit.Epochs)
	that.report(model)
	that.storeCached(ctx, fingerprint, model)

	return model, nil
}

func (that *ModelTrainer) getCached(ctx context.Context, fingerprint string) *ml.Model {
	if that.modelRepo == nil {
		return nil
	}

	model, err := that.modelRepo.GetByID(ctx, fingerprint)
	if err != nil {
		if !errors.Is(err, apperror.ErrModelNotFound) {
			that.logger.Error("failed to read model cache", "error", err)
		}

		return nil
	}

	return model
}

func (that *ModelTrainer) storeCached(ctx context.Context, fingerprint string, model *ml.Model) {
	if that.modelRepo == nil {
		return
	}

	if err := that.modelRepo.CreateOrUpdate(ctx, fingerprint, model); err != nil {
		that.logger.Error("failed to store model in cache", "error", err)
	}
}

// report logs both partitions and writes the test metrics file.
func (that *ModelTrainer) report(model *ml.Model) {
	that.logger.Info("train metrics", metricsAttrs(model.TrainSize, model.Train)...)
	that.logger.Info("test metrics", metricsAttrs(model.TestSize, model.Test)...)

	if that.conf.MetricsPath == "" {
		return
	}

	if err := ml.SaveMetrics(that.conf.MetricsPath, model.Test); err != nil {
		that.logger.Error("failed to save metrics", "path", that.conf.MetricsPath, "error", err)
	}
}

func metricsAttrs(size int, metrics ml.Metrics) []any {
	return []any{
		"size", size,
		"tp", metrics.TruePositives,
		"tn", metrics.TrueNegatives,
		"fp", metrics.FalsePositives,
		"fn", metrics.FalseNegatives,
		"precision", metrics.Precision,
		"recall", metrics.Recall,
		"f1", metrics.F1Score,
		"error_rate", metrics.ErrorRate,
	}
}

// Fingerprint identifies a training run: same examples in the same order and
// the same setup give the same model.
func Fingerprint(examples training.Examples, conf TrainerConfig) string {
	hash := sha256.New()

	fmt.Fprintf(hash, "seed=%d split=%g epochs=%d lr=%g\n",
		conf.Seed, conf.Fit.TrainSplit, conf.Fit.Epochs, conf.Fit.LearningRate)

	for _, example := range examples {
		fmt.Fprintf(hash, "%v %v\n", example.Input, example.Response)
	}

	return hex.EncodeToString(hash.Sum(nil))
}
