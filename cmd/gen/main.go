package main

import (
	"freedge/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Regenerates internal/infra/persistence/postgres/query from the persistence models.
func main() {
	models := []any{
		model.FreedgeModel{},
		model.FreedgeAddressModel{},
		model.CheckInAttemptModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
