package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/logger"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/attendance"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/classes"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/dashboard"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/enrollments"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/faculty"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/queries"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/students"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/subjects"
	"github.com/zohaib-han/Attendance-Management-System/app/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.Environment)

	if err := config.InitDB(); err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to database")
	}
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		logger.Log.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.Seed(config.GetDB()); err != nil {
		logger.Log.WithError(err).Warn("seeding failed")
	}

	digest := services.NewDigest(config.GetDB())
	if err := digest.Start(cfg.DigestSpec); err != nil {
		logger.Log.WithError(err).Fatal("failed to start digest scheduler")
	}
	defer digest.Stop()

	app := fiber.New(fiber.Config{
		AppName: "Attendance Management System",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	classes.SetupClassesRoutes(app)
	students.SetupStudentsRoutes(app)
	faculty.SetupFacultyRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	enrollments.SetupEnrollmentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	queries.SetupQueryRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Log.Info("shutting down")
		_ = app.Shutdown()
	}()

	logger.Log.WithField("port", cfg.Port).Info("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}
