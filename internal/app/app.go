package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires the in-memory store, services and routes onto the
// router and loads the seed dataset.
func BuildApp(router *gin.Engine) (*Registry, error) {
	logger := zap.L()

	registry, err := registerModules(router, logger)
	if err != nil {
		return nil, err
	}

	if err := Seed(context.Background(), registry); err != nil {
		return nil, err
	}

	return registry, nil
}
