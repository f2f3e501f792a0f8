package notification

import (
	"context"
	"log/slog"
	"net/http"

	"eventhub/config"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushServiceParams defines the dependencies for creating a push service
type PushServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushService selects the push provider from push.provider (default expo).
func NewPushService(params PushServiceParams) (service.PushService, error) {
	pushCfg := params.Config.Push
	if pushCfg == nil {
		pushCfg = &config.PushConfig{}
	}

	switch pushCfg.Provider {
	case constants.PushProviderFirebase:
		firebaseCfg := params.Config.Firebase
		if firebaseCfg == nil {
			return nil, errors.New("firebase configuration is required for the firebase push provider")
		}
		params.Logger.Info("Using Firebase push provider", slog.String("project_id", firebaseCfg.ProjectID))

		return NewFirebaseService(context.Background(), firebaseCfg.ProjectID, firebaseCfg.CredentialsPath)
	case constants.PushProviderExpo, "":
		params.Logger.Info("Using Expo push provider")

		return NewExpoService(pushCfg.ExpoEndpoint, pushCfg.ExpoAccessToken, &http.Client{}), nil
	default:
		return nil, errors.Errorf("unknown push provider: %s", pushCfg.Provider)
	}
}

// Module provides the push service
var Module = fx.Options(
	fx.Provide(NewPushService),
)
