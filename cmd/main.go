package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingWizardHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/booking_wizard"
	changePasswordHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/change_password"
	createBlockDayHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/create_block_day"
	createBookingHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/create_booking"
	createTourHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/create_tour"
	dashboardCountsHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/dashboard_counts"
	deleteBlockDayHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/delete_block_day"
	deleteBookingHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/delete_booking"
	deleteLeadHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/delete_lead"
	getAvailableDatesHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/get_available_dates"
	getCustomerHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/get_customer"
	getTourHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/get_tour"
	listBlockDaysHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/list_block_days"
	listBookingsHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/list_bookings"
	listCustomersHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/list_customers"
	listLeadsHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/list_leads"
	listToursHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/list_tours"
	loginHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/login"
	updateLeadHandler "github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers/update_lead"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/middleware"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/availability"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/config"
	starlinerClient "github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
	createBookingUC "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/get_available_dates"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/wizard"
	"github.com/sandboxtechnology/starliner-booking-portal/pkg/logger"
	"github.com/sandboxtechnology/starliner-booking-portal/pkg/metrics"
)

func main() {
	// Секреты приходят из окружения; .env поддерживается для локальной разработки
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Starliner booking portal...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var upstreamObserver starlinerClient.MetricsObserver
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		upstreamObserver = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент Starliner backend - единственный источник данных сервиса
	client := starlinerClient.NewClient(
		cfg.Starliner.URL,
		cfg.Starliner.Token,
		time.Duration(cfg.Starliner.Timeout)*time.Second,
		log,
		upstreamObserver,
	)
	log.Info("Starliner client initialized (url=%s, timeout=%ds)", cfg.Starliner.URL, cfg.Starliner.Timeout)

	// Правила разрешения доступности
	availabilityOpts := availability.Options{
		SundayAlwaysBookable: cfg.Wizard.SundayAlwaysBookable,
	}

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(client, client, availabilityOpts, log)
	createBookingUseCase := createBookingUC.NewUseCase(client, availabilityOpts, log)

	// Мастер бронирования: фабрика сессий, хранилище, отправка
	wizardService := wizard.NewService(client, client, availabilityOpts, log)
	sessionStore := wizard.NewStore(time.Duration(cfg.Wizard.SessionTTL) * time.Minute)
	submitter := createBookingUC.NewWizardSubmitter(createBookingUseCase)

	stopSweeperCh := make(chan struct{})
	go sessionStore.RunSweeper(time.Duration(cfg.Wizard.SweepInterval)*time.Minute, stopSweeperCh)
	log.Info("Wizard session store initialized (ttl=%dm, sweep=%dm)",
		cfg.Wizard.SessionTTL, cfg.Wizard.SweepInterval)

	// Инициализируем handlers
	login := loginHandler.NewHandler(client, log)
	changePassword := changePasswordHandler.NewHandler(client, log)
	listBookings := listBookingsHandler.NewHandler(client, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(client, log)
	listCustomers := listCustomersHandler.NewHandler(client, log)
	getCustomer := getCustomerHandler.NewHandler(client, log)
	listTours := listToursHandler.NewHandler(client, log)
	createTour := createTourHandler.NewHandler(client, log)
	getTour := getTourHandler.NewHandler(client, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	listBlockDays := listBlockDaysHandler.NewHandler(client, log)
	createBlockDay := createBlockDayHandler.NewHandler(client, log)
	deleteBlockDay := deleteBlockDayHandler.NewHandler(client, log)
	listLeads := listLeadsHandler.NewHandler(client, log)
	updateLead := updateLeadHandler.NewHandler(client, log)
	deleteLead := deleteLeadHandler.NewHandler(client, log)
	dashboardCounts := dashboardCountsHandler.NewHandler(client, log)
	bookingWizard := bookingWizardHandler.NewHandler(wizardService, sessionStore, submitter, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (витрина и мастер бронирования)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/tours", listTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{slug}", getTour.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{slug}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Мастер бронирования: состояние прохода живет на сервере
	api.HandleFunc("/wizard/sessions", bookingWizard.HandleStart).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}", bookingWizard.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{id}/schedule", bookingWizard.HandleSelectSchedule).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/travellers", bookingWizard.HandleSetTravellers).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/customer", bookingWizard.HandleSetCustomer).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/next", bookingWizard.HandleNext).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/back", bookingWizard.HandleBack).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/submit", bookingWizard.HandleSubmit).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (админская часть, требуют токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	admin.HandleFunc("/auth/change-password", changePassword.Handle).Methods(http.MethodPost)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id}", getCustomer.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/tours", createTour.Handle).Methods(http.MethodPost)

	admin.HandleFunc("/block-days", listBlockDays.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/block-days", createBlockDay.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/block-days/{id}", deleteBlockDay.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/leads", listLeads.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/leads/{id}", updateLead.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/leads/{id}", deleteLead.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/dashboard/counts", dashboardCounts.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopSweeperCh)
	log.Info("Session sweeper stopped")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
