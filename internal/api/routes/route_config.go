package routes

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/internal/api/handlers"
	"GiveHub-Backend/internal/middleware"
	"GiveHub-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	DonationHandler  handlers.DonationHandler
	BlogHandler      handlers.BlogHandler
	MessageHandler   handlers.MessageHandler
	DashboardHandler handlers.DashboardHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Donations()
	c.BlogPosts()
	c.Messages()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		users.Get("", c.UserHandler.GetUsers)
		users.Get("/ranking", c.UserHandler.GetUserRanking)
		users.Get("/reported", c.Middleware.RequireRole(domain.RoleAdmin), c.UserHandler.GetReportedUsers)
		users.Get("/:userId", c.UserHandler.GetUserByID)
		users.Patch("/profile", c.UserHandler.PatchProfile)
		users.Delete("/:userId", c.Middleware.RequireRole(domain.RoleAdmin), c.UserHandler.DeleteUser)

		users.Post("/:userId/reports", c.UserHandler.ReportUser)

		users.Put("/profile-photo", c.UserHandler.UploadProfilePhoto)
		users.Delete("/profile-photo", c.UserHandler.DeleteProfilePhoto)
		users.Put("/background-image", c.UserHandler.UploadBackgroundImage)
		users.Delete("/background-image", c.UserHandler.DeleteBackgroundImage)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/donations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		donations.Post("", c.DonationHandler.CreateDonation)
		donations.Get("", c.DonationHandler.GetDonations)
		donations.Get("/reports/pending", c.Middleware.RequireRole(domain.RoleAdmin), c.DonationHandler.GetPendingReports)
		donations.Get("/:donationId", c.DonationHandler.GetDonationByID)
		donations.Put("/:donationId", c.DonationHandler.UpdateDonation)
		donations.Delete("/:donationId", c.DonationHandler.DeleteDonation)

		donations.Post("/:donationId/requests", c.DonationHandler.SubmitRequest)
		donations.Get("/:donationId/requests", c.DonationHandler.GetRequests)
		donations.Patch("/:donationId/requests/:requestId/status", c.DonationHandler.DecideRequest)
		donations.Post("/:donationId/approve", c.Middleware.RequireRole(domain.RoleAdmin), c.DonationHandler.ApproveRequest)

		donations.Post("/:donationId/reports", c.DonationHandler.CreateReport)
		donations.Delete("/:donationId/reports/:reportId", c.DonationHandler.DeleteReport)
		donations.Patch("/:donationId/reports/:reportId/review", c.Middleware.RequireRole(domain.RoleAdmin), c.DonationHandler.ReviewReport)
		donations.Patch("/:donationId/reports/:reportId/resolve", c.Middleware.RequireRole(domain.RoleAdmin), c.DonationHandler.ResolveReport)

		donations.Post("/:donationId/likes", c.DonationHandler.ToggleLike)
		donations.Post("/:donationId/saves", c.DonationHandler.ToggleSave)

		donations.Post("/:donationId/comments", c.DonationHandler.AddComment)
		donations.Patch("/:donationId/comments/:commentId", c.DonationHandler.UpdateComment)
		donations.Delete("/:donationId/comments/:commentId", c.DonationHandler.DeleteComment)

		donations.Patch("/:donationId/recipient", c.DonationHandler.SelectRecipient)

		donations.Post("/:donationId/media", c.DonationHandler.AttachMedia)
		donations.Get("/:donationId/media", c.DonationHandler.ListMedia)
		donations.Delete("/:donationId/media/:index", c.DonationHandler.RemoveMedia)
	}
}

func (c *Config) BlogPosts() {
	posts := c.App.Group("/api/blog-posts", c.Middleware.AuthMiddleware(c.JWTService))
	{
		posts.Post("", c.BlogHandler.CreateBlogPost)
		posts.Get("", c.BlogHandler.GetBlogPosts)
		posts.Get("/reports/pending", c.Middleware.RequireRole(domain.RoleAdmin), c.BlogHandler.GetPendingReports)
		posts.Get("/:postId", c.BlogHandler.GetBlogPostByID)
		posts.Put("/:postId", c.BlogHandler.UpdateBlogPost)
		posts.Patch("/:postId/status", c.BlogHandler.UpdateBlogPostStatus)
		posts.Delete("/:postId", c.BlogHandler.DeleteBlogPost)

		posts.Post("/:postId/reports", c.BlogHandler.CreateReport)
		posts.Delete("/:postId/reports/:reportId", c.BlogHandler.DeleteReport)
		posts.Patch("/:postId/reports/:reportId/review", c.Middleware.RequireRole(domain.RoleAdmin), c.BlogHandler.ReviewReport)
		posts.Patch("/:postId/reports/:reportId/resolve", c.Middleware.RequireRole(domain.RoleAdmin), c.BlogHandler.ResolveReport)

		posts.Post("/:postId/likes", c.BlogHandler.ToggleLike)
		posts.Post("/:postId/saves", c.BlogHandler.ToggleSave)

		posts.Post("/:postId/comments", c.BlogHandler.AddComment)
		posts.Get("/:postId/comments", c.BlogHandler.GetComments)
		posts.Patch("/:postId/comments/:commentId", c.BlogHandler.UpdateComment)
		posts.Delete("/:postId/comments/:commentId", c.BlogHandler.DeleteComment)

		posts.Post("/:postId/media", c.BlogHandler.AttachMedia)
		posts.Get("/:postId/media", c.BlogHandler.ListMedia)
		posts.Delete("/:postId/media/:index", c.BlogHandler.RemoveMedia)
	}
}

func (c *Config) Messages() {
	messages := c.App.Group("/api/messages", c.Middleware.AuthMiddleware(c.JWTService))
	{
		messages.Post("", c.MessageHandler.CreateMessage)
		messages.Get("", c.MessageHandler.GetMyMessages)
		messages.Get("/chats", c.MessageHandler.GetMyChats)
		messages.Get("/conversation/:userId", c.MessageHandler.GetConversation)
		messages.Get("/:messageId", c.MessageHandler.GetMessageByID)
		messages.Delete("/:messageId", c.MessageHandler.DeleteMessage)
	}
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/dashboard", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.RequireRole(domain.RoleAdmin))
	dashboard.Get("/stats", c.DashboardHandler.GetStats)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
