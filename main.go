package main

import (
	"context"
	"time"

	"competition-hub/config"
	competition "competition-hub/internal/competitionService"
	"competition-hub/internal/inflight"
	"competition-hub/internal/server"
	"competition-hub/internal/source"
	"competition-hub/utils"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	src := selectSource(ctx, cfg)
	guard := newGuard(ctx, cfg)

	competitionSvc := competition.NewCompetitionService(src, guard, time.Now)

	router := server.SetupRouter(competitionSvc)

	utils.Info("Starting competition server", map[string]any{
		"addr":   cfg.Addr(),
		"source": src.Name(),
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

// selectSource picks the chain source when its contracts are deployed and falls back to the
// demo data otherwise. The choice is made once at startup.
func selectSource(ctx context.Context, cfg config.Config) source.CompetitionSource {
	demo := source.NewDemoSource(time.Now)
	if cfg.DemoMode {
		utils.Info("Demo mode enabled, serving mock competitions", nil)
		return demo
	}

	chain, err := source.DialChainSource(ctx, cfg.RPCURL, cfg.CompetitionContractAddress, cfg.FeedContractAddress, cfg.CompetitionScanCount)
	if err != nil {
		utils.Warn("Failed to connect to chain, serving mock competitions", map[string]any{
			"rpc_url": cfg.RPCURL,
			"error":   err.Error(),
		})
		return demo
	}
	return source.Select(ctx, chain, demo)
}

// newGuard uses redis when configured so several instances share in-flight actions
func newGuard(ctx context.Context, cfg config.Config) inflight.Guard {
	if cfg.RedisAddr == "" {
		return inflight.NewMemoryGuard()
	}

	rdb, err := inflight.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		utils.Warn("Redis unavailable, using in-memory action guard", map[string]any{
			"redis_addr": cfg.RedisAddr,
			"error":      err.Error(),
		})
		return inflight.NewMemoryGuard()
	}
	return inflight.NewRedisGuard(rdb, cfg.ActionLockTTL)
}
