package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"
)

// DefaultRequestTimeout bounds every request unless SetupRouter is given another value.
const DefaultRequestTimeout = 30 * time.Second

// SetupRouter returns a gin engine with request IDs, request logging,
// panic recovery and the request deadline installed, in that order.
func SetupRouter(l *logharbour.Logger, timeout time.Duration) *gin.Engine {
	r := gin.New()

	r.Use(RequestID())
	if l != nil {
		r.Use(LogRequest(NewLogHarbourAdapter(l)))
	}
	r.Use(gin.Recovery())
	r.Use(Deadline(timeout))

	return r
}
