package memorandum_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the memorandum module
func RegisterRoutes(g *gin.RouterGroup) {
	// Create base group for memorandum routes
	group := g.Group("/memorandums")

	// Metadata used to render forms
	group.GET("/fields", GetFields)
	group.GET("/types", GetTypes)
	group.GET("/default", GetDefault)

	// Validation without persistence
	group.POST("/validate", ValidateMemorandum)

	// CRUD
	group.POST("", CreateMemorandum)
	group.GET("", ListMemorandums)
	group.GET("/:id", GetMemorandum)
	group.PUT("/:id", UpdateMemorandum)
	group.DELETE("/:id", DeleteMemorandum)
}
