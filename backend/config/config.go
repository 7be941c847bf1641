package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 애플리케이션 전역 설정
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Log      LogConfig      `mapstructure:"log"`
	Clock    ClockConfig    `mapstructure:"clock"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	BaseURL      string     `mapstructure:"base_url"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"`
	CORS         CORSConfig `mapstructure:"cors"`
	RateLimit    RateConfig `mapstructure:"rate_limit"`
}

// CORSConfig 교차 출처 설정
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RateConfig 로그인/가입 엔드포인트 요청 제한
type RateConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

// DatabaseConfig 관계형 DB 설정 (postgres | mysql)
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // 분
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 분
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DSN 드라이버별 접속 문자열 생성
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverMySQL {
		// multiStatements 는 migrate 가 한 파일에 여러 구문을 실행할 때 필요하다
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=%s&multiStatements=true",
			c.User, c.Password, c.Host, c.Port, c.Name, strings.ReplaceAll(c.Timezone, "/", "%2F"),
		)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig 요청 제한 및 멱등 키 저장소
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NATSConfig 공고 이벤트 발행 설정 (URL 이 비어 있으면 발행하지 않음)
type NATSConfig struct {
	URL         string        `mapstructure:"url"`
	ConnTimeout time.Duration `mapstructure:"conn_timeout"`
}

// UploadConfig 프로필 이미지 저장 설정
type UploadConfig struct {
	Dir          string `mapstructure:"dir"`
	PublicPath   string `mapstructure:"public_path"`
	MaxBytes     int64  `mapstructure:"max_bytes"`
	DefaultImage string `mapstructure:"default_image"`
}

// LogConfig 로그 설정
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ClockConfig 공고 마감 판정에 쓰는 기준 시간대
type ClockConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Load 설정 파일과 환경 변수에서 설정을 불러온다
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func Load(path string) (*Config, error) {
	// .env 는 없어도 된다
	_ = godotenv.Load()

	v := viper.New()

	// ── 기본값 ──
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.base_url", "http://localhost:3000")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:8081", "http://localhost:19006"})
	v.SetDefault("server.rate_limit.limit", 20)
	v.SetDefault("server.rate_limit.window", "1m")

	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "ysu_job")
	v.SetDefault("db.user", "ysu")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Seoul")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("nats.url", "")
	v.SetDefault("nats.conn_timeout", "5s")

	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.public_path", "/uploads")
	v.SetDefault("upload.max_bytes", 5<<20)
	v.SetDefault("upload.default_image", "default-profile.jpg")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("clock.timezone", "Asia/Seoul")

	// ── 설정 파일 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 환경 변수 ──
	v.SetEnvPrefix("YSU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 해석 실패: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 핵심 설정값 검사
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("설정 검사 실패: server.port 는 1-65535 범위여야 합니다")
	}
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverMySQL {
		return fmt.Errorf("설정 검사 실패: 지원하지 않는 db.driver %q", c.Database.Driver)
	}
	if c.Upload.Dir == "" {
		return fmt.Errorf("설정 검사 실패: upload.dir 는 비어 있을 수 없습니다")
	}
	if _, err := time.LoadLocation(c.Clock.Timezone); err != nil {
		return fmt.Errorf("설정 검사 실패: clock.timezone %q: %w", c.Clock.Timezone, err)
	}
	return nil
}

// Location 마감 판정 기준 시간대
func (c *ClockConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
