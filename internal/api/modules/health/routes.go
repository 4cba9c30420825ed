package health

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the health module. storeKind reports
// which store backs the memorandum module.
func RegisterRoutes(g *gin.RouterGroup, storeKind func() string) {
	g.GET("/health", getStatus(storeKind))
}
