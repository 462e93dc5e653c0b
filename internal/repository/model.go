package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/ml"
)

type ModelRepository interface {
	CreateOrUpdate(ctx context.Context, id string, model *ml.Model) error
	GetByID(ctx context.Context, id string) (*ml.Model, error)
}

type dbModel struct {
	client *redis.Client
}

func NewModelRepository(client *redis.Client) ModelRepository {
	return &dbModel{
		client: client,
	}
}

func modelKey(id string) string {
	return "model:" + id
}

func (that *dbModel) CreateOrUpdate(ctx context.Context, id string, model *ml.Model) error {
	modelJSON, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("could not marshal model: %w", err)
	}

	if err = that.client.Set(ctx, modelKey(id), modelJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set model: %w", err)
	}

	return nil
}

func (that *dbModel) GetByID(ctx context.Context, id string) (*ml.Model, error) {
	response, err := that.client.Get(ctx, modelKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrModelNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get model by id: %w", err)
	}

	var model ml.Model
	if err = json.Unmarshal([]byte(response), &model); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model: %w", err)
	}

	return &model, nil
}
