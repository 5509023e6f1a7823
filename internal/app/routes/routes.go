package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gris34/psis-inscripciones-backend/internal/app/controllers"
	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/app/models/dto"
	"github.com/gris34/psis-inscripciones-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Student routes. Reads are open to any authenticated user, writes
		// are restricted to administrators.
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.GET("/:id/courses", studentController.GetStudentCourses)
			students.GET("/:id/report-pdf", studentController.GetStudentReport)

			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				studentsAdminProtected.POST("", studentController.CreateStudent)
				studentsAdminProtected.PUT("/:id", studentController.UpdateStudent)
				studentsAdminProtected.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Course routes
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.GET("/:id/students", courseController.GetCourseStudents)
			courses.GET("/:id/report-pdf", courseController.GetCourseReport)

			coursesAdminProtected := courses.Group("")
			coursesAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				coursesAdminProtected.POST("", courseController.CreateCourse)
				coursesAdminProtected.PUT("/:id", courseController.UpdateCourse)
				coursesAdminProtected.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		// Enrollment routes
		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.GetAllEnrollments)
			enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)

			enrollmentsAdminProtected := enrollments.Group("")
			enrollmentsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				enrollmentsAdminProtected.POST("", enrollmentController.RegisterEnrollment)
				enrollmentsAdminProtected.DELETE("/:id", enrollmentController.DeleteEnrollment)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
