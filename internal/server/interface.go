package server

import "github.com/gin-gonic/gin"

// Server exposes the HTTP API: lecture upload, status polling, and the
// operational endpoints.
type Server interface {
	Router() *gin.Engine
}
