package pipeline

import (
	"log"
	"sort"
	"time"

	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/normalize"
	"github.com/lakshitasisodia/Ni3S/utils"
)

type dateKey struct {
	key  models.RegionKey
	date time.Time
}

type demoSum struct {
	youth float64
	adult float64
}

type enrollSum struct {
	child float64
	youth float64
	adult float64
}

// BuildMaster aggregates the concatenated source series into one row per
// (state, district, date). Order of operations matters and is fixed:
// drop Unknown states, sum age bands across finer subdivisions, drop
// zero-population keys, inner-join the two series, then derive rates.
// Summing before joining is what makes totals conserved; joining first
// would duplicate rows across pincodes.
func BuildMaster(demo []DemographicRecord, enroll []EnrollmentRecord) ([]models.MasterRow, models.JoinDrops) {
	demoAgg := make(map[dateKey]demoSum)
	droppedUnknown := 0
	for _, r := range demo {
		if r.State == normalize.Unknown {
			droppedUnknown++
			continue
		}
		k := dateKey{key: models.RegionKey{State: r.State, District: r.District}, date: r.Date}
		s := demoAgg[k]
		s.youth += r.Youth
		s.adult += r.Adult
		demoAgg[k] = s
	}

	// Zero-population keys cannot produce a meaningful rate.
	for k, s := range demoAgg {
		if s.youth+s.adult <= 0 {
			delete(demoAgg, k)
		}
	}

	enrollAgg := make(map[dateKey]enrollSum)
	for _, r := range enroll {
		if r.State == normalize.Unknown {
			droppedUnknown++
			continue
		}
		k := dateKey{key: models.RegionKey{State: r.State, District: r.District}, date: r.Date}
		s := enrollAgg[k]
		s.child += r.Child
		s.youth += r.Youth
		s.adult += r.Adult
		enrollAgg[k] = s
	}

	if droppedUnknown > 0 {
		log.Printf("pipeline: dropped %d source rows with unresolvable state", droppedUnknown)
	}

	// Inner join: a district-date present in only one series means the
	// other source is missing that snapshot, and extrapolating would
	// fabricate history. The shrinkage is counted, not hidden.
	var drops models.JoinDrops
	rows := make([]models.MasterRow, 0, len(demoAgg))
	for k, d := range demoAgg {
		e, ok := enrollAgg[k]
		if !ok {
			drops.Demographic++
			continue
		}

		totalPop := d.youth + d.adult
		totalEnroll := e.child + e.youth + e.adult

		rows = append(rows, models.MasterRow{
			State:           k.key.State,
			District:        k.key.District,
			Date:            k.date,
			YouthPopulation: d.youth,
			AdultPopulation: d.adult,
			TotalPopulation: totalPop,
			ChildEnrollment: e.child,
			YouthEnrollment: e.youth,
			AdultEnrollment: e.adult,
			TotalEnrollment: totalEnroll,
			PenetrationRate: utils.Clamp01(totalEnroll / totalPop),
			YouthEnrollmentRate: rateOrZero(e.youth, d.youth),
			AdultEnrollmentRate: rateOrZero(e.adult, d.adult),
		})
	}
	for k := range enrollAgg {
		if _, ok := demoAgg[k]; !ok {
			drops.Enrollment++
		}
	}

	if drops.Demographic > 0 || drops.Enrollment > 0 {
		log.Printf("pipeline: inner join dropped %d demographic-only and %d enrollment-only district-dates",
			drops.Demographic, drops.Enrollment)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.State != b.State {
			return a.State < b.State
		}
		if a.District != b.District {
			return a.District < b.District
		}
		return a.Date.Before(b.Date)
	})
	return rows, drops
}

func rateOrZero(numer, denom float64) float64 {
	if denom <= 0 {
		return 0
	}
	return utils.Clamp01(numer / denom)
}
