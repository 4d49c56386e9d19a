package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/logger"
)

// DefaultTTL é a validade padrão de uma entrada de cache.
const DefaultTTL = time.Hour

// Store é o contrato mínimo com o armazenamento chave-valor (Redis em
// produção, memória em testes). Qualquer falha do Store é tratada como
// cache indisponível, nunca como erro da operação que o consultou.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Keys(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, keys ...string) error
}

type Cache struct {
	store Store
	ttl   time.Duration
}

func New(store Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl}
}

// Key deriva uma chave determinística a partir de um prefixo de recurso e de
// um conjunto de filtros: "{prefixo}:{md5hex(json canônico)}". json.Marshal
// serializa mapas com chaves ordenadas, então filtros iguais em ordens
// diferentes produzem a mesma chave.
func Key(prefix string, filters map[string]interface{}) string {
	raw, err := json.Marshal(filters)
	if err != nil {
		raw = []byte("{}")
	}
	sum := md5.Sum(raw)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// GetJSON busca e desserializa uma entrada. Retorna false em miss, entrada
// expirada ou indisponibilidade do cache.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.store == nil {
		return false
	}

	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache indisponível na leitura")
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("entrada de cache corrompida")
		return false
	}

	return true
}

// SetJSON serializa e grava uma entrada com o TTL configurado. Falhas são
// registradas e engolidas: a resposta já foi computada a partir do banco.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil || c.store == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("falha ao serializar entrada de cache")
		return
	}

	if err := c.store.Set(ctx, key, string(raw), c.ttl); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache indisponível na gravação")
	}
}

// Invalidate remove em lote todas as chaves "{prefixo}:*" de cada prefixo.
// Nenhuma chave correspondente não é erro, e falhas do Store nunca se
// propagam para a operação de escrita que disparou a invalidação.
func (c *Cache) Invalidate(ctx context.Context, prefixes ...string) {
	if c == nil || c.store == nil {
		return
	}

	for _, prefix := range prefixes {
		keys, err := c.store.Keys(ctx, prefix+":*")
		if err != nil {
			logger.Warn().Err(err).Str("prefix", prefix).Msg("cache indisponível na invalidação")
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.store.Del(ctx, keys...); err != nil {
			logger.Warn().Err(err).Str("prefix", prefix).Int("keys", len(keys)).Msg("falha ao invalidar chaves de cache")
		}
	}
}
