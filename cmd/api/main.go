package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nimasrn/biztime/internal/config"
	"github.com/nimasrn/biztime/internal/handlers"
	"github.com/nimasrn/biztime/internal/repository"
	"github.com/nimasrn/biztime/internal/services"
	xhttp "github.com/nimasrn/biztime/pkg/http"
	"github.com/nimasrn/biztime/pkg/logger"
	"github.com/nimasrn/biztime/pkg/pg"
	"github.com/nimasrn/biztime/pkg/prom"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	if ns := config.Get().PromNamespace; ns != "" {
		host, _ := os.Hostname()
		if err := prom.Create(host, config.Get().AppEnv, ns); err != nil {
			logger.Error("failed to register metrics", "error", err)
			return
		}
	}

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(prom.HTTPMetricsMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := config.Get().AppEnv == "dev"
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	companyRepo := repository.NewCompanyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	industryRepo := repository.NewIndustryRepository(db)

	// services
	companyService := services.NewCompanyService(companyRepo, invoiceRepo, industryRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, companyRepo)
	industryService := services.NewIndustryService(industryRepo)
	healthService := services.NewHealthService()

	// handlers
	companyHandler := handlers.NewCompanyHandler(companyService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	industryHandler := handlers.NewIndustryHandler(industryService)
	healthHandler := handlers.NewHealthHandler(healthService)

	handlers.RegisterCompanyRoutes(s.Router, companyHandler)
	handlers.RegisterIndustryRoutes(s.Router, industryHandler)
	handlers.RegisterInvoiceRoutes(s.Router, invoiceHandler)
	handlers.RegisterHealthRoutes(s.Router, healthHandler)

	if addr := config.Get().AppDebugMetricsAddr; addr != "" {
		go prom.ListenAndServe(addr, config.Get().AppDebugMetricsURI)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(config.Get().HttpListenAddr); err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
