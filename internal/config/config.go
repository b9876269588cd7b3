package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kapu/nova-discord-bot/internal/util"
)

// Config: 봇 전체 동작에 필요한 설정을 담는 구조체
type Config struct {
	Discord      DiscordConfig
	OpenAI       OpenAIConfig
	Weather      WeatherConfig
	Crypto       CryptoConfig
	Watch2Gether Watch2GetherConfig
	Excuse       ExcuseConfig
	Server       ServerConfig
	Logging      LoggingConfig
	Version      string
}

// DiscordConfig: Discord 게이트웨이 연결 및 슬래시 커맨드 등록 설정
type DiscordConfig struct {
	Token   string
	GuildID string // 비어 있으면 글로벌 커맨드로 등록
}

// OpenAIConfig: 채팅 완성 및 이미지 생성 API 설정
type OpenAIConfig struct {
	APIKey     string
	ChatURL    string
	ImageURL   string
	ChatModel  string
	ImageModel string
}

// WeatherConfig: 날씨 API 설정 (URL 템플릿 + API 키)
type WeatherConfig struct {
	APIKey string
	URL    string
}

// CryptoConfig: 암호화폐 시세 API 설정
type CryptoConfig struct {
	BaseURL string
}

// Watch2GetherConfig: 공유 시청방 생성 API 설정
type Watch2GetherConfig struct {
	APIKey        string
	CreateRoomURL string
	ShowRoomURL   string
}

// ExcuseConfig: 상태 로테이션용 핑계 목록 출처 설정
type ExcuseConfig struct {
	URL string
}

// ServerConfig: 운영용 HTTP 서버(/healthz, /api/stats) 설정
type ServerConfig struct {
	Port int
}

// LoggingConfig: 애플리케이션 로그 설정 (레벨, 디렉토리, 로테이션 정책)
type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load: .env 파일 및 환경 변수로부터 설정을 로드하고, 기본값을 적용하여 Config 객체를 생성한다.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Discord: DiscordConfig{
			Token:   util.TrimSpace(getEnv("DISCORD_TOKEN", "")),
			GuildID: util.TrimSpace(getEnv("DISCORD_GUILD_ID", "")),
		},
		OpenAI: OpenAIConfig{
			APIKey:     util.TrimSpace(getEnv("OPENAI_API_KEY", "")),
			ChatURL:    getEnv("OPENAI_CHAT_URL", "https://api.openai.com/v1/chat/completions"),
			ImageURL:   getEnv("OPENAI_IMAGE_URL", "https://api.openai.com/v1/images/generations"),
			ChatModel:  getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
		},
		Weather: WeatherConfig{
			APIKey: util.TrimSpace(getEnv("WEATHER_API_KEY", "")),
			URL:    getEnv("WEATHER_URL", "https://api.openweathermap.org/data/2.5/weather?q="),
		},
		Crypto: CryptoConfig{
			BaseURL: getEnv("CRYPTO_BASE_URL", "https://api.bybit.com/v5/market/tickers?category=spot&symbol="),
		},
		Watch2Gether: Watch2GetherConfig{
			APIKey:        util.TrimSpace(getEnv("W2G_API_KEY", "")),
			CreateRoomURL: getEnv("W2G_CREATE_ROOM_URL", "https://api.w2g.tv/rooms/create.json"),
			ShowRoomURL:   getEnv("W2G_SHOW_ROOM_URL", "https://w2g.tv/rooms/"),
		},
		Excuse: ExcuseConfig{
			URL: getEnv("EXCUSE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 30080),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Dir:        getEnv("LOG_DIR", "logs"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Version: util.TrimSpace(getEnv("APP_VERSION", "1.0.0-go")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate: 프로세스 기동에 반드시 필요한 설정값을 검증한다.
// 외부 API 키는 기동 실패 사유가 아니다. 각 서비스가 호출 시점에 검사한다.
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Server.Port == 0 {
		return fmt.Errorf("SERVER_PORT is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
