// internal/config/config.go
package config

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DataConfig は単語帳ファイル (vocab_<level>.json) と進捗ファイルの置き場所
type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	ProgressFile string `mapstructure:"progress_file"`
}

// StorageConfig は進捗ストアの種類。json 以外は gorm 経由で DSN に接続します。
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // json | sqlite | postgres
	DSN    string `mapstructure:"dsn"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type TTSConfig struct {
	Engine       string `mapstructure:"engine"` // command | none
	Command      string `mapstructure:"command"`
	Voice        string `mapstructure:"voice"`
	GoogleAPIKey string `mapstructure:"google_api_key"`
	LanguageCode string `mapstructure:"language_code"`
	CacheDir     string `mapstructure:"cache_dir"`
}

type FetchConfig struct {
	URL   string `mapstructure:"url"`
	Level string `mapstructure:"level"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Data    DataConfig    `mapstructure:"data"`
	Storage StorageConfig `mapstructure:"storage"`
	CORS    CORSConfig    `mapstructure:"cors"`
	TTS     TTSConfig     `mapstructure:"tts"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_DATA_DIR, APP_STORAGE_DRIVER
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("tts.google_api_key", "GOOGLE_TTS_API_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	cfg.applyFallbacks()
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Data Dir: %s", Cfg.Data.Dir)
	log.Printf("Storage Driver: %s", Cfg.Storage.Driver)

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("data.dir", DefaultDataDir)
	v.SetDefault("storage.driver", StorageDriverJSON)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"*"})
	v.SetDefault("tts.engine", DefaultTTSEngine)
	v.SetDefault("tts.command", DefaultTTSCommand)
	v.SetDefault("tts.voice", DefaultTTSVoice)
	v.SetDefault("tts.language_code", DefaultTTSLanguageCode)
	v.SetDefault("fetch.url", DefaultFetchURL)
	v.SetDefault("fetch.level", DefaultFetchLevel)
}

// applyFallbacks は設定ファイルで空文字が指定された場合にも既定値を入れます。
func (c *Config) applyFallbacks() {
	if c.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.Data.Dir == "" {
		c.Data.Dir = DefaultDataDir
	}
	if c.Data.ProgressFile == "" {
		c.Data.ProgressFile = filepath.Join(c.Data.Dir, DefaultProgressFileName)
	}
	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverJSON
	}
	if c.Storage.Driver == StorageDriverSQLite && c.Storage.DSN == "" {
		c.Storage.DSN = filepath.Join(c.Data.Dir, DefaultSQLiteFileName)
	}
	if c.TTS.CacheDir == "" {
		c.TTS.CacheDir = filepath.Join(c.Data.Dir, "tts_cache")
	}
}
