package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/ml"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/tui"
)

// RunApp - trains the model, builds the game and runs it in the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("Starting", "os", runtime.GOOS, "arch", runtime.GOARCH)

	examples, err := ml.LoadDataset(conf.DatasetPath)
	if err != nil {
		return fmt.Errorf("could not load dataset: %w", err)
	}

	var modelCache repository.ModelRepository
	if conf.ModelCache.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			// the cache is optional, train without it
			log.Error("model cache disabled", "error", err)
		} else {
			defer func() {
				if err := redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}()

			modelCache = repository.NewModelRepository(redisStorage)
		}
	}

	trainer := usecase.NewModelTrainer(logger, usecase.TrainerConfig{
		Seed: conf.Training.Seed,
		Fit: ml.FitConfig{
			TrainConfig: ml.TrainConfig{
				Epochs:       conf.Training.Epochs,
				LearningRate: conf.Training.LearningRate,
			},
			TrainSplit: conf.Training.TrainSplit,
		},
		MetricsPath: conf.MetricsPath,
	}, modelCache)

	model, err := trainer.Train(ctx, examples)
	if err != nil {
		return fmt.Errorf("could not train model: %w", err)
	}

	rng := rand.New(rand.NewSource(rand.Int63()))

	bot := service.NewBotService(logger, map[entity.Difficulty]service.Strategy{
		entity.DifficultyNormal:     ml.NewPlayer(logger, rng, model.Weights, conf.AI.Noise, conf.AI.Forgetfulness),
		entity.DifficultyImpossible: minimax.NewEngine(logger, rng, conf.AI.SecondBestChance),
	})

	stats := &entity.Stats{}
	gameController := tictactoe.NewGameController(logger, bot, stats, conf.AI.Delay)
	gameManager := usecase.NewGameManager(logger, stats, gameController)

	if err = tui.Run(ctx, logger, gameManager); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	final := gameManager.Stats()
	log.Info("Bye", "ai_wins", final.AIWins, "total_games", final.TotalGames)

	return nil
}
