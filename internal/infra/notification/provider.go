// Package notification delivers caretaker check-in messages.
package notification

import (
	"log/slog"

	"freedge/config"
	"freedge/internal/domain/constants"
	"freedge/internal/domain/entity"
	"freedge/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NewCheckInTransport selects the transport named in the lifecycle config.
func NewCheckInTransport(cfg *config.Config, logger *slog.Logger) (service.CheckInTransport, error) {
	logger = logger.With(slog.String("component", "checkin_transport"))

	lifecycle := cfg.Lifecycle
	if lifecycle == nil {
		lifecycle = &config.LifecycleConfig{}
	}

	switch lifecycle.Transport {
	case "", constants.TransportLog:
		return NewLogTransport(logger), nil

	case constants.TransportSimulated:
		reply := entity.ResponseConfirmedActive
		if lifecycle.SimulatedReply != "" {
			parsed, err := entity.ParseCheckInResponse(lifecycle.SimulatedReply)
			if err != nil {
				return nil, errors.Wrap(err, "lifecycle.simulatedReply")
			}
			reply = parsed
		}
		logger.Info("Using simulated check-in transport",
			slog.String("reply", reply.String()),
			slog.Duration("delay", lifecycle.SimulatedDelay),
			slog.Duration("timeout", lifecycle.ResponseTimeout),
		)

		return NewSimulatedTransport(reply, lifecycle.SimulatedDelay, lifecycle.ResponseTimeout, logger), nil

	default:
		return nil, errors.Errorf("unknown check-in transport: %s", lifecycle.Transport)
	}
}

// Module provides the check-in transport FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCheckInTransport),
)
