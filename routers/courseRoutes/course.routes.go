package courseRoutes

import (
	controllers "microlearn/controllers/course"
	"microlearn/middleware"
	validators "microlearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Reads are open: unauthenticated callers get the sample catalog
	courseGroup.Get("/list", middleware.OptionalJWTMiddleware, controllers.GetAllCourses)

	// Authoring (admin only)
	courseGroup.Post("/save", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, validators.SaveCourse(), controllers.SaveCourse)
	courseGroup.Post("/:id/duplicate", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, controllers.DuplicateCourse)
	courseGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, controllers.PublishCourse)
	courseGroup.Post("/:id/archive", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, controllers.ArchiveCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, controllers.DeleteCourse)

	// Learner progress
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, controllers.EnrollInCourse)
	courseGroup.Post("/:course_id/day/:day/complete", middleware.JWTMiddleware, controllers.MarkDayComplete)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, controllers.GetUserProgress)

	// Detail route last so the static paths above are matched first
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, controllers.GetCourseDetails)
}
