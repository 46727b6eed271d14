package config

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// geminiKeyMinLength: 이보다 짧은 키는 자리표시자로 간주하고 AI 기능을 비활성화한다.
const geminiKeyMinLength = 10

// GeminiConfig: Gemini 모델 설정입니다.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

// Timeout: 생성 호출 데드라인을 반환합니다.
func (g GeminiConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// KeyUsable: API 키가 실제 호출 가능한 형태인지 검사합니다.
// 키 부재, 자리표시자, 지나치게 짧은 값은 모두 사용 불가로 본다.
func (g GeminiConfig) KeyUsable() bool {
	key := strings.TrimSpace(g.APIKey)
	if key == "" || key == "YOUR_API_KEY_HERE" {
		return false
	}
	return len(key) >= geminiKeyMinLength
}

// AuthConfig: JWT 발급 및 로그인 보호 설정입니다.
type AuthConfig struct {
	JWTSecret          string
	TokenTTLHours      int
	LoginFailLimit     int
	LoginFailWindowMin int
	LoginLockMinutes   int
}

// TokenTTL: 액세스 토큰 수명을 반환합니다.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
	CORSOrigins  []string
}

// CacheConfig: Valkey 연결 설정입니다.
type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

// Addr: 캐시 접속 주소를 반환합니다.
func (c CacheConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig: DB 연결 설정입니다.
type DatabaseConfig struct {
	Host                   string
	Port                   int
	Name                   string
	User                   string
	Password               string
	MinPool                int
	MaxPool                int
	ConnMaxLifetimeMinutes int
	ConnMaxIdleTimeMinutes int
}

// DSN: DB 접속 문자열을 반환합니다.
func (d DatabaseConfig) DSN() string {
	host := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	u := &url.URL{
		Scheme: "postgresql",
		Host:   host,
		Path:   "/" + d.Name,
	}
	if d.Password == "" {
		u.User = url.User(d.User)
	} else {
		u.User = url.UserPassword(d.User, d.Password)
	}
	return u.String()
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	Gemini   GeminiConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	HTTP     HTTPConfig
	Cache    CacheConfig
	Database DatabaseConfig
}
