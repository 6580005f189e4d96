package seed

import (
	"math/rand"
	"time"
)

// DateRange intervalo cerrado [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del intervalo (bordes inclusivos).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// MonthsInRange divide el intervalo en sub-intervalos por mes calendario en
// la zona horaria de r.Start, recortados a los bordes del intervalo.
func MonthsInRange(r DateRange) []DateRange {
	loc := r.Start.Location()
	var months []DateRange

	cursor := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, loc)
	for !cursor.After(r.End) {
		next := cursor.AddDate(0, 1, 0)
		m := DateRange{Start: cursor, End: next.Add(-time.Millisecond)}
		if m.Start.Before(r.Start) {
			m.Start = r.Start
		}
		if m.End.After(r.End) {
			m.End = r.End
		}
		months = append(months, m)
		cursor = next
	}
	return months
}

// RandomDateInRange sortea un instante uniforme sobre los milisegundos del
// intervalo, bordes inclusivos.
func RandomDateInRange(rng *rand.Rand, r DateRange) time.Time {
	span := r.End.Sub(r.Start).Milliseconds()
	if span <= 0 {
		return r.Start
	}
	off := rng.Int63n(span + 1)
	return r.Start.Add(time.Duration(off) * time.Millisecond)
}

// Allocate reparte n marcas de tiempo sobre el intervalo con cuota base
// n/meses por mes; el remanente se reparte de a una marca extra entre los
// primeros meses. Con n >= meses todo mes recibe al menos una marca. Si n
// es menor que la cantidad de meses, los meses finales pueden quedar en
// cero; para garantizar piso usar AllocateWithFloor.
func Allocate(rng *rand.Rand, n int, r DateRange) []time.Time {
	if n <= 0 {
		return nil
	}
	months := MonthsInRange(r)
	if len(months) == 0 {
		return nil
	}

	quota := n / len(months)
	extra := n % len(months)
	out := make([]time.Time, 0, n)
	for i, m := range months {
		take := quota
		if i < extra {
			take++
		}
		for j := 0; j < take; j++ {
			out = append(out, RandomDateInRange(rng, m))
		}
	}
	return out
}

// AllocateWithFloor garantiza al menos minPerMonth marcas en cada mes del
// intervalo aunque n sea chico, rellenando con marcas sintéticas si hace
// falta; el excedente sobre el piso se reparte round-robin entre los meses.
// El largo del resultado es max(n, meses*minPerMonth).
func AllocateWithFloor(rng *rand.Rand, n, minPerMonth int, r DateRange) []time.Time {
	if minPerMonth < 1 {
		minPerMonth = 1
	}
	months := MonthsInRange(r)
	if len(months) == 0 {
		return nil
	}

	floor := len(months) * minPerMonth
	total := n
	if total < floor {
		total = floor
	}

	out := make([]time.Time, 0, total)
	for _, m := range months {
		for j := 0; j < minPerMonth; j++ {
			out = append(out, RandomDateInRange(rng, m))
		}
	}
	for i := 0; len(out) < total; i++ {
		m := months[i%len(months)]
		out = append(out, RandomDateInRange(rng, m))
	}
	return out
}
