package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talent-screen" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"" env:"SMTP_EMAIL_FROM"`
		HrEmail    string `default:"" env:"HR_NOTIFY_EMAIL"`
	}
	S3 struct {
		Endpoint  string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKey string `default:"" env:"S3_ACCESS_KEY"`
		SecretKey string `default:"" env:"S3_SECRET_KEY"`
		UseSSL    *bool  `default:"false" env:"S3_USE_SSL"`
		Bucket    string `default:"talent-screen" env:"S3_BUCKET"`
	}
	YaGPT struct {
		APIToken  string `default:"" env:"YA_GPT_API_TOKEN"`
		CatalogID string `default:"" env:"YA_GPT_CATALOG_ID"`
	}
	Session struct {
		IdleTimeoutMin  int `default:"30" env:"SESSION_IDLE_TIMEOUT_MIN"`
		MaxMessageSize  int `default:"1000" env:"SESSION_MAX_MESSAGE_SIZE"`
		TurnLockWaitSec int `default:"5" env:"SESSION_TURN_LOCK_WAIT_SEC"`
	}
	Export struct {
		RegisterFileName string `default:"candidate_register.xlsx" env:"EXPORT_REGISTER_FILE_NAME"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
