package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"ritmo_backend/internals/configs"
	database "ritmo_backend/internals/databases"
	orgModel "ritmo_backend/internals/features/organizations/model"
	attModel "ritmo_backend/internals/features/school/attendance/model"
	scheduleModel "ritmo_backend/internals/features/school/group_schedules/model"
	groupModel "ritmo_backend/internals/features/school/groups/model"
	sessionModel "ritmo_backend/internals/features/school/sessions/model"
	studentModel "ritmo_backend/internals/features/school/students/model"
	teacherModel "ritmo_backend/internals/features/school/teachers/model"
	venueModel "ritmo_backend/internals/features/school/venues/model"
	userModel "ritmo_backend/internals/features/users/auth/model"
	middlewares "ritmo_backend/internals/middlewares"
	routes "ritmo_backend/internals/route"
	seeds "ritmo_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing (lightweight observability)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (aligned with statement_timeout on the DB side)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	database.Migrate(
		&userModel.UserModel{},
		&orgModel.OrganizationModel{},
		&orgModel.OrganizationMemberModel{},
		&studentModel.StudentModel{},
		&teacherModel.TeacherModel{},
		&venueModel.VenueModel{},
		&groupModel.GroupModel{},
		&groupModel.EnrollmentModel{},
		&scheduleModel.GroupScheduleModel{},
		&scheduleModel.GroupScheduleSlotModel{},
		&sessionModel.SessionModel{},
		&attModel.AttendanceEntryModel{},
	)
	seeds.Run(database.DB)

	// ❤️ Health check (anti-cold start)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
