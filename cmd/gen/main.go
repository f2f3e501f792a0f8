package main

import (
	"eventhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models into internal/infra/persistence/query.
func main() {
	models := []any{
		model.UserModel{},
		model.LocationModel{},
		model.UserLocationModel{},
		model.AuthenticationLinkModel{},
		model.UserAuthenticationModel{},
		model.OAuthStateModel{},
		model.EventModel{},
		model.EventLocationModel{},
		model.EventOrganizerModel{},
		model.UserEventModel{},
		model.EventNotificationModel{},
		model.UserNotificationModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
