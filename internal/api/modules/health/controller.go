package health

import (
	"github.com/ethanbaker/gestuab/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Return status of the API
func getStatus(storeKind func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := sdk.HealthResponse{Status: "OK", Store: storeKind()}
		c.JSON(sdk.NewSuccessResponse("OK", status).AsGinResponse())
	}
}
