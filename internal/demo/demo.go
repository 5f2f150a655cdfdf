// Package demo generates a sample workout export: a push, pull and legs
// rotation trained every other day with progressive loads.
package demo

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
)

// Source is the dataset source label of generated data.
const Source = "demo"

// Days is the number of training days generated.
const Days = 30

type exercise struct {
	name      string
	sets      int
	firstSet  int
	start     float64
	increment float64
	// jitter is the exclusive bound of the whole-kg variation applied to
	// the progressed weight.
	jitter int
	reps   func(set int) int

	// The last set may fall short by failDrop reps once the session index
	// passes failAfter.
	failAfter  int
	failChance float64
	failDrop   int
}

type workout struct {
	name      string
	exercises []exercise
}

func fixed(n int) func(int) int { return func(int) int { return n } }

var program = []workout{
	{"Push Day", []exercise{
		{name: "Bench Press", sets: 3, firstSet: 1, start: 65, increment: 2.5, jitter: 2,
			reps: func(i int) int { return []int{5, 5, 4}[i] }, failAfter: 8, failChance: 0.2, failDrop: 1},
		{name: "Overhead Press", sets: 3, firstSet: 4, start: 40, increment: 1.25, jitter: 1,
			reps: func(i int) int { return 6 - i/2 }},
		{name: "Incline Bench Press", sets: 3, firstSet: 7, start: 50, increment: 2, reps: fixed(8)},
		{name: "Lateral Raise", sets: 3, firstSet: 10, start: 10, reps: func(i int) int { return 15 - i/2 }},
	}},
	{"Pull Day", []exercise{
		{name: "Pull-up", sets: 3, firstSet: 1, start: 0, increment: 2.5, reps: func(i int) int { return 8 - i }},
		{name: "Barbell Row", sets: 3, firstSet: 4, start: 60, increment: 2.5, jitter: 2, reps: fixed(8)},
		{name: "Face Pull", sets: 3, firstSet: 7, start: 15, reps: func(i int) int { return 20 - 2*i }},
		{name: "Bicep Curl", sets: 3, firstSet: 10, start: 12, increment: 1, reps: func(i int) int { return 12 - i }},
	}},
	{"Leg Day", []exercise{
		{name: "Squat", sets: 3, firstSet: 1, start: 80, increment: 5, jitter: 2,
			reps: fixed(5), failAfter: 6, failChance: 0.3, failDrop: 1},
		{name: "Romanian Deadlift", sets: 3, firstSet: 4, start: 70, increment: 2.5, reps: fixed(8)},
		{name: "Leg Press", sets: 3, firstSet: 7, start: 120, increment: 10, reps: func(i int) int { return 12 - i/2 }},
		{name: "Standing Calf Raise", sets: 4, firstSet: 10, start: 40, reps: fixed(15)},
	}},
}

// Rows generates the sample export in the current schema. The calendar
// ends on today's date and the same seed always yields the same rows.
func Rows(seed int64, today time.Time) []models.RawRow {
	faker := gofakeit.New(seed)
	dates := trainingDates(today)

	var rows []models.RawRow
	for slot, w := range program {
		session := 0
		for i, date := range dates {
			if i%len(program) != slot {
				continue
			}
			rows = append(rows, w.session(faker, date, session)...)
			session++
		}
	}
	return rows
}

// trainingDates returns every other day ending today, oldest first.
func trainingDates(today time.Time) []string {
	dates := make([]string, 0, Days)
	for i := Days - 1; i >= 0; i-- {
		dates = append(dates, today.AddDate(0, 0, -2*i).Format(models.DayLayout))
	}
	return dates
}

func (w workout) session(faker *gofakeit.Faker, date string, index int) []models.RawRow {
	duration := analysis.FormatDuration(float64(faker.Number(45, 75) * 60))

	var rows []models.RawRow
	for _, ex := range w.exercises {
		base := ex.start + float64(index/3)*ex.increment
		for i := 0; i < ex.sets; i++ {
			weight := base
			if ex.jitter > 0 {
				weight = vary(faker, base, ex.jitter)
			}
			reps := ex.reps(i)
			if ex.failChance > 0 && index > ex.failAfter && i == ex.sets-1 &&
				faker.Float64Range(0, 1) < ex.failChance {
				reps -= ex.failDrop
			}

			rows = append(rows, models.RawRow{
				models.ColDate:            date,
				models.ColWorkoutName:     w.name,
				models.ColExerciseName:    ex.name,
				models.ColSetOrder:        strconv.Itoa(ex.firstSet + i),
				models.ColWeight:          strconv.FormatFloat(weight, 'f', -1, 64),
				models.ColWeightUnit:      "kg",
				models.ColReps:            strconv.Itoa(reps),
				models.ColDuration:        "",
				models.ColWorkoutDuration: duration,
				models.ColNotes:           "",
			})
		}
	}
	return rows
}

// vary moves base up or down by a whole number of kilograms below bound.
func vary(faker *gofakeit.Faker, base float64, bound int) float64 {
	delta := float64(faker.Number(0, bound-1))
	if faker.Bool() {
		return base + delta
	}
	return base - delta
}
