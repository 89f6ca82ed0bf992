package config

import (
	"GiveHub-Backend/internal/api/handlers"
	"GiveHub-Backend/internal/api/routes"
	"GiveHub-Backend/internal/middleware"
	"GiveHub-Backend/internal/utils"
	"GiveHub-Backend/internal/utils/storage"
	"GiveHub-Backend/pkg/blog"
	"GiveHub-Backend/pkg/dashboard"
	"GiveHub-Backend/pkg/donation"
	"GiveHub-Backend/pkg/jwt"
	"GiveHub-Backend/pkg/message"
	"GiveHub-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	blogRepository := blog.NewBlogRepository(db)
	messageRepository := message.NewMessageRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	donationService := donation.NewDonationService(donationRepository, s3)
	blogService := blog.NewBlogService(blogRepository, s3)
	messageService := message.NewMessageService(messageRepository)
	dashboardService := dashboard.NewDashboardService(dashboardRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	blogHandler := handlers.NewBlogHandler(blogService, validator)
	messageHandler := handlers.NewMessageHandler(messageService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		DonationHandler:  donationHandler,
		BlogHandler:      blogHandler,
		MessageHandler:   messageHandler,
		DashboardHandler: dashboardHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
