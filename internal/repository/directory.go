package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// opCenNamesKey - hash id -> отображаемое имя, заполняется основным бэкендом
const opCenNamesKey = "opcen:names"

// OpCenDirectory разрешает имена OpCen из Redis
type OpCenDirectory struct {
	redisClient *redis.Client
}

func NewOpCenDirectory(redisClient *redis.Client) *OpCenDirectory {
	return &OpCenDirectory{redisClient: redisClient}
}

func (d *OpCenDirectory) OpCenName(ctx context.Context, opCenID string) (string, error) {
	name, err := d.redisClient.HGet(ctx, opCenNamesKey, opCenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("opcen %s is not in directory", opCenID)
		}
		return "", fmt.Errorf("failed to get opcen name: %w", err)
	}
	return name, nil
}
