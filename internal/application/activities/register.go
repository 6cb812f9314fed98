package activities

import (
	"github.com/activityhub/core/internal/application/mediator"
	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

// RegisterHandlers binds every activity request type to its handler
// on the dispatcher
func RegisterHandlers(d *mediator.Dispatcher, repo ports.ActivityRepository, logger *logger.Logger) {
	mediator.Register(d, NewListHandler(repo, logger).Handle)
	mediator.Register(d, NewDetailsHandler(repo, logger).Handle)
	mediator.Register(d, NewCreateHandler(repo, logger).Handle)
	mediator.Register(d, NewEditHandler(repo, logger).Handle)
	mediator.Register(d, NewDeleteHandler(repo, logger).Handle)
}
