package handlers

import (
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/services"
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newRouter() *gin.Engine {
	validation.Register()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))
	return r
}

// NewGameRouter wires the question bank, game runs, stats, leaderboard and
// placement endpoints onto a fresh engine.
func NewGameRouter(db *gorm.DB) *gin.Engine {
	questionHandler := NewQuestionHandler(services.NewQuestionService(db))
	runHandler := NewGameRunHandler(services.NewGameRunService(db))

	r := newRouter()
	r.GET("/health", Health)

	api := r.Group("/api")
	{
		api.GET("/questions", questionHandler.ListQuestions)
		api.GET("/questions/random", questionHandler.RandomQuestion)
		api.GET("/questions/:id", questionHandler.GetQuestion)
		api.POST("/questions", questionHandler.CreateQuestion)
		api.PUT("/questions/:id", questionHandler.UpdateQuestion)
		api.PATCH("/questions/:id", questionHandler.PatchQuestion)
		api.DELETE("/questions/:id", questionHandler.DeleteQuestion)

		api.GET("/users/:uid/stats", runHandler.UserStats)
		api.POST("/users/:uid/runs", runHandler.CreateRun)
		api.GET("/leaderboard", runHandler.Leaderboard)

		api.POST("/game/validate-placement", questionHandler.ValidatePlacement)
	}

	return r
}

// NewUserRouter wires the account CRUD endpoints onto a fresh engine.
func NewUserRouter(db *gorm.DB) *gin.Engine {
	userHandler := NewUserHandler(services.NewUserService(db))

	r := newRouter()
	r.GET("/health", Health)

	api := r.Group("/api")
	{
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.POST("/users", userHandler.CreateUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
	}

	return r
}
