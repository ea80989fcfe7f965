package config

import (
	"fmt"
	"os"
	"time"

	"github.com/reusedev/plant-hub/internal/consts"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(config []byte) {
	initFromYaml(config)
	GConfig.FullWithDefault()
	err := GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
	if GConfig == nil {
		GConfig = &Config{}
	}
}

const (
	StorageLocal  = "local"
	StorageAliOss = "ali_oss"
)

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	StaticDir       string `yaml:"static_dir"`
	TemplateDir     string `yaml:"template_dir"`
	HistoryFile     string `yaml:"history_file"`
	HistoryCacheTTL string `yaml:"history_cache_ttl"`
	StorageSupplier string `yaml:"storage_supplier"`
	MaxUploadMB     int    `yaml:"max_upload_mb"`

	Image  `yaml:"image"`
	Local  `yaml:"local"`
	AliOss `yaml:"ali_oss"`
	Gemini `yaml:"gemini"`
}

func (c *Config) FullWithDefault() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSize == 0 {
		c.LogMaxSize = 100
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.HistoryFile == "" {
		c.HistoryFile = "analysis_history.json"
	}
	if c.HistoryCacheTTL == "" {
		c.HistoryCacheTTL = "5m"
	}
	if c.StorageSupplier == "" {
		c.StorageSupplier = StorageLocal
	}
	if c.MaxUploadMB == 0 {
		c.MaxUploadMB = 16
	}
	if c.Image.JPEGQuality == 0 {
		c.Image.JPEGQuality = 85
	}
	if c.Local.UploadDir == "" {
		c.Local.UploadDir = "static/uploads"
	}
	if c.Local.URLPrefix == "" {
		c.Local.URLPrefix = "/static/uploads/"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = consts.DefaultModel
	}
	if c.Gemini.APIKeyEnv == "" {
		c.Gemini.APIKeyEnv = "GEMINI_API_KEY"
	}
	if c.Gemini.Timeout == "" {
		c.Gemini.Timeout = "2m"
	}
}

func (c *Config) Verify() error {
	if c.StorageSupplier != StorageLocal && c.StorageSupplier != StorageAliOss {
		return fmt.Errorf("storage_supplier must be %s or %s", StorageLocal, StorageAliOss)
	}
	if c.StorageSupplier == StorageAliOss && (c.AliOss.Bucket == "" || c.AliOss.Endpoint == "") {
		return fmt.Errorf("ali_oss.bucket and ali_oss.endpoint are required")
	}
	if _, err := time.ParseDuration(c.HistoryCacheTTL); err != nil {
		return fmt.Errorf("invalid history_cache_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.Gemini.Timeout); err != nil {
		return fmt.Errorf("invalid gemini.timeout: %w", err)
	}
	if c.Image.JPEGQuality < 1 || c.Image.JPEGQuality > 100 {
		return fmt.Errorf("image.jpeg_quality must be between 1 and 100")
	}
	if c.Image.MaxSide < 0 {
		return fmt.Errorf("image.max_side must be non-negative")
	}
	return nil
}

func (c *Config) CacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.HistoryCacheTTL)
	return d
}

type Image struct {
	JPEGQuality int `yaml:"jpeg_quality"`
	MaxSide     int `yaml:"max_side"` // 0 keeps the original size
}

type Local struct {
	UploadDir string `yaml:"upload_dir"`
	URLPrefix string `yaml:"url_prefix"`
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
	PublicBaseURL   string `yaml:"public_base_url"`
}

// Gemini holds the model settings. The API key itself is only read from
// the environment variable named by APIKeyEnv.
type Gemini struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	Timeout   string `yaml:"timeout"`
	BaseURL   string `yaml:"base_url"` // empty uses the public endpoint
}

func (g Gemini) APIKey() string {
	return os.Getenv(g.APIKeyEnv)
}

func (g Gemini) RequestTimeout() time.Duration {
	d, _ := time.ParseDuration(g.Timeout)
	return d
}
