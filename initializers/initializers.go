package initializers

import (
	"context"

	"talent-screen-backend/config"
	"talent-screen-backend/db"
	"talent-screen-backend/fiberlog"
	candidatestore "talent-screen-backend/lib/candidate/store"
	xlsexport "talent-screen-backend/lib/export/xls"
	filestorage "talent-screen-backend/lib/file-storage"
	"talent-screen-backend/lib/interview"
	llmhandler "talent-screen-backend/lib/llm"
	"talent-screen-backend/lib/notify"
	recordsink "talent-screen-backend/lib/record-sink"
	"talent-screen-backend/lib/sentiment"
	sessioncleaner "talent-screen-backend/lib/session-cleaner"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	sentiment.NewHandler()
	xlsexport.NewHandler()
	llmhandler.NewHandler(config.Conf.YaGPT.APIToken, config.Conf.YaGPT.CatalogID)
	notify.NewHandler(config.Conf.Smtp.EmailFrom, config.Conf.Smtp.HrEmail)
	recordsink.NewHandler(candidatestore.NewInstance(db.DB))
	interview.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Closes sessions abandoned past the idle timeout
	sessioncleaner.StartWorker(ctx)
}
