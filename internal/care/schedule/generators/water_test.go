package generators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

func TestWaterGenerator(t *testing.T) {
	jan1 := utcDate(2025, time.January, 1)

	t.Run("medium maintenance piedmont winter fixture", func(t *testing.T) {
		// 1200mm/yr is 100mm/mo, loam soil, early-January gap: no adjustments
		c := ctxAt(jan1,
			domain.PlantTraits{Maintenance: domain.MaintenanceMedium},
			domain.GardenSiteAttributes{SoilTexture: domain.SoilLoam},
			piedmontProfile(),
		)
		tasks := water{}.Generate(c)
		require.NotEmpty(t, tasks)

		assert.Equal(t, utcDate(2025, time.January, 5), tasks[0].DueDate.Time())
		assert.Equal(t, utcDate(2025, time.January, 9), tasks[1].DueDate.Time())

		for _, task := range tasks {
			due := task.DueDate.Time()
			assert.True(t, due.After(c.Today))
			assert.False(t, due.After(c.Horizon))
		}
	})

	t.Run("sandy soil waters on a longer interval", func(t *testing.T) {
		c := ctxAt(jan1,
			domain.PlantTraits{Maintenance: domain.MaintenanceMedium},
			domain.GardenSiteAttributes{SoilTexture: domain.SoilSand},
			piedmontProfile(),
		)
		tasks := water{}.Generate(c)
		require.NotEmpty(t, tasks)
		assert.Equal(t, utcDate(2025, time.January, 6), tasks[0].DueDate.Time())
	})

	t.Run("warm window adds two days on the coast", func(t *testing.T) {
		c := ctxAt(utcDate(2025, time.June, 1),
			domain.PlantTraits{Maintenance: domain.MaintenanceMedium},
			domain.GardenSiteAttributes{SoilTexture: domain.SoilLoam},
			coastalProfile(),
		)
		tasks := water{}.Generate(c)
		require.NotEmpty(t, tasks)
		// base 4, +2 coastal warm
		assert.Equal(t, utcDate(2025, time.June, 7), tasks[0].DueDate.Time())
	})

	t.Run("interval never drops below one day", func(t *testing.T) {
		// high maintenance (2), wet climate (-1), fall cool window (-1)
		wet := piedmontProfile()
		wet.AnnualPrecipMM = 1500
		c := ctxAt(utcDate(2025, time.October, 1),
			domain.PlantTraits{Maintenance: domain.MaintenanceHigh},
			domain.GardenSiteAttributes{SoilTexture: domain.SoilLoam},
			wet,
		)
		tasks := water{}.Generate(c)
		require.NotEmpty(t, tasks)
		assert.Equal(t, utcDate(2025, time.October, 2), tasks[0].DueDate.Time())

		// daily cadence
		assert.Equal(t, utcDate(2025, time.October, 3), tasks[1].DueDate.Time())
	})

	t.Run("dry climate stretches the interval", func(t *testing.T) {
		dry := piedmontProfile()
		dry.AnnualPrecipMM = 900 // 75mm/mo
		c := ctxAt(jan1,
			domain.PlantTraits{Maintenance: domain.MaintenanceLow},
			domain.GardenSiteAttributes{SoilTexture: domain.SoilLoam},
			dry,
		)
		tasks := water{}.Generate(c)
		require.NotEmpty(t, tasks)
		assert.Equal(t, utcDate(2025, time.January, 9), tasks[0].DueDate.Time())
	})
}
