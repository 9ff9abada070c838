package generators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

func TestFertilizeGenerator(t *testing.T) {
	jan1 := utcDate(2025, time.January, 1)
	loam := domain.GardenSiteAttributes{SoilTexture: domain.SoilLoam}

	t.Run("slow grower quarterly from piedmont delay", func(t *testing.T) {
		c := ctxAt(jan1, domain.PlantTraits{GrowthRate: domain.GrowthSlow}, loam, piedmontProfile())
		tasks := fertilize{}.Generate(c)
		require.Len(t, tasks, 4)

		// spring cool start Mar 1 + 21 day piedmont delay
		assert.Equal(t, []time.Time{
			utcDate(2025, time.March, 22),
			utcDate(2025, time.June, 22),
			utcDate(2025, time.September, 22),
			utcDate(2025, time.December, 22),
		}, dueDates(tasks))
	})

	t.Run("fast grower feeds monthly", func(t *testing.T) {
		c := ctxAt(jan1, domain.PlantTraits{GrowthRate: domain.GrowthFast}, loam, piedmontProfile())
		tasks := fertilize{}.Generate(c)
		require.Len(t, tasks, 10)
		assert.Equal(t, utcDate(2025, time.March, 22), tasks[0].DueDate.Time())
		assert.Equal(t, utcDate(2025, time.April, 22), tasks[1].DueDate.Time())
		assert.Equal(t, utcDate(2025, time.December, 22), tasks[9].DueDate.Time())
	})

	t.Run("never emits a past-dated feed", func(t *testing.T) {
		midYear := utcDate(2025, time.June, 1)
		c := ctxAt(midYear, domain.PlantTraits{GrowthRate: domain.GrowthSlow}, loam, piedmontProfile())
		tasks := fertilize{}.Generate(c)
		require.NotEmpty(t, tasks)
		assert.Equal(t, utcDate(2025, time.June, 22), tasks[0].DueDate.Time())
		for _, task := range tasks {
			assert.True(t, task.DueDate.Time().After(midYear))
		}
	})

	t.Run("cool season plants skip warm window feeds", func(t *testing.T) {
		c := ctxAt(jan1,
			domain.PlantTraits{GrowthRate: domain.GrowthFast, PrefersCoolSeason: true},
			loam, piedmontProfile(),
		)
		tasks := fertilize{}.Generate(c)

		// may through august land inside warm (May 16 - Sep 12) and drop out,
		// but the cadence keeps running
		assert.Equal(t, []time.Time{
			utcDate(2025, time.March, 22),
			utcDate(2025, time.April, 22),
			utcDate(2025, time.September, 22),
			utcDate(2025, time.October, 22),
			utcDate(2025, time.November, 22),
			utcDate(2025, time.December, 22),
		}, dueDates(tasks))
	})

	t.Run("region delay table", func(t *testing.T) {
		assert.Equal(t, 14, regionFertilizeDelay(domain.RegionCoastal))
		assert.Equal(t, 28, regionFertilizeDelay(domain.RegionMountains))
		assert.Equal(t, 21, regionFertilizeDelay(domain.RegionPiedmont))
		assert.Equal(t, 14, regionFertilizeDelay("Tundra"))
	})
}
