package main

import (
	"seguridad/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DeviceModel{},
		model.LocationEventModel{},
		model.SafeZoneModel{},
		model.ContactModel{},
		model.DeviceTokenModel{},
		model.SubscriptionModel{},
		model.InvitationModel{},
		model.AlertEventModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
