package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

type fixedRandom struct {
	value int
}

func (f fixedRandom) Intn(n int) int {
	if f.value >= n {
		return n - 1
	}
	return f.value
}

type sequenceRandom struct {
	values []int
	pos    int
}

func (s *sequenceRandom) Intn(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func TestPlanProducesOneSlotPerWateringWithinTheWeek(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	p := newTestPlanner(t, NewRandomSource(), OverflowDrop)

	for n := 1; n <= 20; n++ {
		planned, err := p.Plan(ctx, n)
		is.NoErr(err)
		is.Equal(n, len(planned))

		for _, wt := range planned {
			m := MinutesSinceWeekStart(wt.Weekday, wt.Hour, wt.Minute)
			is.True(m >= 0 && m < MinutesPerWeek)
		}
	}
}

func TestPlanSpacesSlotsEvenlyWithBoundedJitter(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	p := newTestPlanner(t, &sequenceRandom{values: []int{0, 10, 3, 7, 5}}, OverflowDrop)

	for n := 2; n <= 20; n++ {
		planned, err := p.Plan(ctx, n)
		is.NoErr(err)

		delay := MinutesPerWeek / n
		for i := 1; i < len(planned); i++ {
			prev := MinutesSinceWeekStart(planned[i-1].Weekday, planned[i-1].Hour, planned[i-1].Minute)
			curr := MinutesSinceWeekStart(planned[i].Weekday, planned[i].Hour, planned[i].Minute)
			diff := curr - prev
			is.True(diff >= delay-MaxJitter && diff <= delay+MaxJitter)
		}
	}
}

func TestPlanSevenTimesAWeekWithoutJitter(t *testing.T) {
	is := is.New(t)

	p := newTestPlanner(t, fixedRandom{0}, OverflowDrop)
	planned, err := p.Plan(context.Background(), 7)
	is.NoErr(err)

	for i, wt := range planned {
		is.Equal(IntToWeekday(i), wt.Weekday)
		is.Equal(0, wt.Hour)
		is.Equal(0, wt.Minute)
	}
}

func TestPlanZeroTimesAWeekIsEmpty(t *testing.T) {
	is := is.New(t)

	planned, err := newTestPlanner(t, nil, OverflowDrop).Plan(context.Background(), 0)
	is.NoErr(err)
	is.Equal(0, len(planned))
}

func TestPlanNegativeTimesAWeekFails(t *testing.T) {
	is := is.New(t)

	_, err := newTestPlanner(t, nil, OverflowDrop).Plan(context.Background(), -1)
	is.True(errors.Is(err, ErrInvalidFrequency))
}

func TestPlanDropsSlotsBeyondTheEndOfTheWeek(t *testing.T) {
	is := is.New(t)

	p := newTestPlanner(t, fixedRandom{MaxJitter}, OverflowDrop)
	planned, err := p.Plan(context.Background(), MinutesPerWeek)
	is.NoErr(err)
	is.Equal(MinutesPerWeek-MaxJitter, len(planned))
}

func TestPlanClampsSlotsBeyondTheEndOfTheWeek(t *testing.T) {
	is := is.New(t)

	p := newTestPlanner(t, fixedRandom{MaxJitter}, OverflowClamp)
	planned, err := p.Plan(context.Background(), MinutesPerWeek)
	is.NoErr(err)
	is.Equal(MinutesPerWeek, len(planned))

	last := planned[len(planned)-1]
	is.Equal(MinutesPerWeek-1, MinutesSinceWeekStart(last.Weekday, last.Hour, last.Minute))
}

func TestUnknownOverflowPolicyIsRejected(t *testing.T) {
	is := is.New(t)

	for _, policy := range []OverflowPolicy{"wrap", "Clamp", ""} {
		p, err := NewPlanner(nil, policy)
		is.True(errors.Is(err, ErrUnknownOverflowPolicy))
		is.True(p == nil)
	}
}

func newTestPlanner(t *testing.T, random RandomSource, overflow OverflowPolicy) *Planner {
	p, err := NewPlanner(random, overflow)
	if err != nil {
		t.Fatalf("failed to create planner: %s", err.Error())
	}
	return p
}
