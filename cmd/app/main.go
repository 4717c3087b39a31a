package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"groupbuy/cmd"
	httpin "groupbuy/internal/adapters/in/http"
	"groupbuy/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateExpireOverdueCreditsCommandHandler(),
		app.CreateGetOverduePaymentPoolsQueryHandler(),
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.ServerHandlers{
		RegisterCustomer:      app.CreateRegisterCustomerCommandHandler(),
		RegisterSupplier:      app.CreateRegisterSupplierCommandHandler(),
		SubmitCustomOrder:     app.CreateSubmitCustomOrderCommandHandler(),
		AnalyzeCustomOrder:    app.CreateAnalyzeCustomOrderCommandHandler(),
		ConfirmCustomOrder:    app.CreateConfirmCustomOrderCommandHandler(),
		CancelCustomOrder:     app.CreateCancelCustomOrderCommandHandler(),
		OpenCollectiveOrder:   app.CreateOpenCollectiveOrderCommandHandler(),
		AttachOrderToPool:     app.CreateAttachOrderToPoolCommandHandler(),
		DetachOrderFromPool:   app.CreateDetachOrderFromPoolCommandHandler(),
		CloseCollectiveOrder:  app.CreateCloseCollectiveOrderCommandHandler(),
		OpenPaymentWindow:     app.CreateOpenPaymentWindowCommandHandler(),
		RecordCustomerPayment: app.CreateRecordCustomerPaymentCommandHandler(),
		PaySupplier:           app.CreatePaySupplierCommandHandler(),
		MarkShipped:           app.CreateMarkShippedCommandHandler(),
		MarkReceived:          app.CreateMarkReceivedCommandHandler(),
		MarkDelivered:         app.CreateMarkDeliveredCommandHandler(),
		CancelCollectiveOrder: app.CreateCancelCollectiveOrderCommandHandler(),

		RecordCredit:    app.CreateRecordCreditCommandHandler(),
		RecordDebit:     app.CreateRecordDebitCommandHandler(),
		TransferCredits: app.CreateTransferCreditsCommandHandler(),
		UseCreditEntry:  app.CreateUseCreditEntryCommandHandler(),

		GetOrdersPendingAnalysis:   app.CreateGetOrdersPendingAnalysisQueryHandler(),
		GetCustomerOrders:          app.CreateGetCustomerOrdersQueryHandler(),
		GetConfirmedUnpooledOrders: app.CreateGetConfirmedUnpooledOrdersQueryHandler(),
		GetPoolsEligibleForAction:  app.CreateGetPoolsEligibleForActionQueryHandler(),
		GetPoolProgress:            app.CreateGetPoolProgressQueryHandler(),
		GetCustomerBalance:         app.CreateGetCustomerBalanceQueryHandler(),
		GetCustomerLedgerHistory:   app.CreateGetCustomerLedgerHistoryQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
