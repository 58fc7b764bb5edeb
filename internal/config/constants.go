// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "FlashcardReview"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultDatabaseDriver = "postgres"
	DefaultLogLevel       = "info"
	DefaultAppReviewLimit = 20
	DefaultSessionTTL     = 30 * time.Minute
	DefaultSweepInterval  = time.Minute
	DefaultMailerType     = "log"
	DefaultSMTPTimeout    = 10 * time.Second
)
