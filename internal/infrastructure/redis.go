package infrastructure

import (
	"github.com/rodrigordgfs/CashWise-API/config"
	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	"github.com/rodrigordgfs/CashWise-API/internal/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache monta a camada de cache: Redis quando habilitado, memória como
// fallback de desenvolvimento. Falha de conexão não impede o boot — o cache
// é melhor-esforço por contrato.
func NewCache(cfg *config.Config) *cache.Cache {
	if !cfg.Redis.Enabled || cfg.Redis.URL == "" {
		logger.Info().Msg("Cache Redis desabilitado, usando cache em memória")
		return cache.New(cache.NewMemoryStore(), cfg.Cache.TTL)
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn().Err(err).Msg("REDIS_URL inválida, usando cache em memória")
		return cache.New(cache.NewMemoryStore(), cfg.Cache.TTL)
	}

	client := redis.NewClient(opts)
	logger.Info().Str("addr", opts.Addr).Msg("Cache Redis configurado")
	return cache.New(cache.NewRedisStore(client), cfg.Cache.TTL)
}
