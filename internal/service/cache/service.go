package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/gyejin/reactboard-server/internal/config"
)

const (
	dialTimeout  = 5 * time.Second
	readyTimeout = 5 * time.Second
)

// Service: Valkey(Redis) 클라이언트를 래핑하여 캐싱 기능을 제공하는 서비스
// 인기 게시글 캐시와 로그인 실패 카운터가 이 서비스를 사용한다.
type Service struct {
	client    valkey.Client
	logger    *slog.Logger
	closeOnce sync.Once
}

// New: 새로운 Valkey 캐시 서비스 인스턴스를 생성하고 연결을 수립한다.
func New(cfg config.CacheConfig, logger *slog.Logger) (*Service, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.Addr()},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
		Dialer:      net.Dialer{Timeout: dialTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create cache client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping cache store: %w", err)
	}

	logger.Info("cache_store_connected",
		slog.String("addr", cfg.Addr()),
		slog.Int("db", cfg.DB),
	)

	return &Service{client: client, logger: logger}, nil
}

// NewFromClient: 이미 연결된 클라이언트를 감싸 서비스를 만든다.
func NewFromClient(client valkey.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Get: 키에 해당하는 값을 조회하고, 결과를 dest 에 언마샬링한다.
// 키가 없으면 (false, nil) 을 반환한다.
func (c *Service) Get(ctx context.Context, key string, dest any) (bool, error) {
	resp := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if valkey.IsValkeyNil(resp.Error()) {
		return false, nil
	}
	if resp.Error() != nil {
		c.logger.Error("cache_get_failed", slog.String("key", key), slog.Any("error", resp.Error()))
		return false, fmt.Errorf("cache get %q: %w", key, resp.Error())
	}

	value, err := resp.ToString()
	if err != nil {
		return false, fmt.Errorf("cache get %q: %w", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			return false, fmt.Errorf("cache unmarshal %q: %w", key, err)
		}
	}
	return true, nil
}

// Set: 값을 JSON으로 마샬링하여 키에 저장한다. (TTL 지정 가능)
func (c *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %q: %w", key, err)
	}

	var cmd valkey.Completed
	if ttl > 0 {
		cmd = c.client.B().Set().Key(key).Value(string(jsonData)).ExSeconds(int64(ttl.Seconds())).Build()
	} else {
		cmd = c.client.B().Set().Key(key).Value(string(jsonData)).Build()
	}

	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Error("cache_set_failed", slog.String("key", key), slog.Any("error", err))
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// Del: 지정된 키를 삭제한다.
func (c *Service) Del(ctx context.Context, key string) error {
	if err := c.client.Do(ctx, c.client.B().Del().Key(key).Build()).Error(); err != nil {
		c.logger.Error("cache_del_failed", slog.String("key", key), slog.Any("error", err))
		return fmt.Errorf("cache del %q: %w", key, err)
	}
	return nil
}

// Exists: 키 존재 여부를 확인한다.
func (c *Service) Exists(ctx context.Context, key string) (bool, error) {
	resp := c.client.Do(ctx, c.client.B().Exists().Key(key).Build())
	if resp.Error() != nil {
		return false, fmt.Errorf("cache exists %q: %w", key, resp.Error())
	}
	count, err := resp.AsInt64()
	if err != nil {
		return false, fmt.Errorf("cache exists %q: %w", key, err)
	}
	return count > 0, nil
}

// IncrWithTTL: 카운터를 1 증가시키고, 새로 생성된 키에만 TTL을 건다.
// 로그인 실패 횟수 추적에 사용한다.
func (c *Service) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	resp := c.client.Do(ctx, c.client.B().Incr().Key(key).Build())
	if resp.Error() != nil {
		return 0, fmt.Errorf("cache incr %q: %w", key, resp.Error())
	}
	count, err := resp.AsInt64()
	if err != nil {
		return 0, fmt.Errorf("cache incr %q: %w", key, err)
	}

	if count == 1 && ttl > 0 {
		if err := c.client.Do(ctx, c.client.B().Expire().Key(key).Seconds(int64(ttl.Seconds())).Build()).Error(); err != nil {
			return count, fmt.Errorf("cache expire %q: %w", key, err)
		}
	}
	return count, nil
}

// Expire: 키의 TTL을 재설정한다.
func (c *Service) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Do(ctx, c.client.B().Expire().Key(key).Seconds(int64(ttl.Seconds())).Build()).Error(); err != nil {
		return fmt.Errorf("cache expire %q: %w", key, err)
	}
	return nil
}

// Close: 클라이언트 연결을 종료한다.
func (c *Service) Close() error {
	c.closeOnce.Do(func() {
		c.client.Close()
	})
	return nil
}
