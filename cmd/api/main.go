package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/vehicleto-api/internal/application/intake"
	"github.com/jhoicas/vehicleto-api/internal/application/reservation"
	"github.com/jhoicas/vehicleto-api/internal/application/usecase"
	infrakafka "github.com/jhoicas/vehicleto-api/internal/infrastructure/kafka"
	"github.com/jhoicas/vehicleto-api/internal/infrastructure/postgres"
	infrasmtp "github.com/jhoicas/vehicleto-api/internal/infrastructure/smtp"
	httpRouter "github.com/jhoicas/vehicleto-api/internal/interfaces/http"
	"github.com/jhoicas/vehicleto-api/pkg/config"
	"github.com/jhoicas/vehicleto-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := infrakafka.EnsureTopic(cfg.Kafka.Brokers, cfg.Kafka.CustomerTopic, log); err != nil {
		log.Fatal().Err(err).Msg("verificar topic de Kafka")
	}

	vehicleRepo := postgres.NewVehicleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)

	publisher := infrakafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.CustomerTopic, log)
	defer publisher.Close()

	emailSender := infrasmtp.NewSender(cfg.SMTP)

	intakeUC := intake.NewSubmitCustomerUseCase(vehicleRepo, customerRepo, publisher)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	reservationUC := reservation.NewUseCase(reservationRepo, emailSender, cfg.SMTP.From)

	// Consumidor de reservas: proyecta cada cliente publicado como reserva.
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	consumer := infrakafka.NewConsumer(
		cfg.Kafka.Brokers, cfg.Kafka.CustomerTopic, cfg.Kafka.ConsumerGroup,
		reservationUC, log,
	)
	go consumer.Run(consumerCtx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VehicleTo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		IntakeUC:      intakeUC,
		CustomerUC:    customerUC,
		VehicleUC:     vehicleUC,
		ReservationUC: reservationUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	stopConsumer()
	if err := consumer.Close(); err != nil {
		log.Error().Err(err).Msg("cierre del consumidor de Kafka")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
