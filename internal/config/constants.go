// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "Japanese Learning API"
	AppVersion = "1.0.0"
)

// ストアの種類
const (
	StorageDriverJSON     = "json"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8000"
	DefaultLogLevel         = "info"
	DefaultDataDir          = "data"
	DefaultProgressFileName = "user_progress.json"
	DefaultSQLiteFileName   = "user_progress.db"
	DefaultTTSEngine        = "command"
	DefaultTTSCommand       = "say"
	DefaultTTSVoice         = "Kyoko"
	DefaultTTSLanguageCode  = "ja-JP"
	DefaultFetchLevel       = "n5"
)

// 単語リストの取得元
const DefaultFetchURL = "https://raw.githubusercontent.com/elzup/jlpt-word-list/master/json/n5.json"
