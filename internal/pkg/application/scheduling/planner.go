package scheduling

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

const MaxJitter = 10

var ErrInvalidFrequency = fmt.Errorf("times a week must not be negative")
var ErrUnknownOverflowPolicy = fmt.Errorf("unknown overflow policy")

// OverflowPolicy decides what happens to a planned slot that lands at or
// beyond the end of the week.
type OverflowPolicy string

const (
	OverflowDrop  OverflowPolicy = "drop"
	OverflowClamp OverflowPolicy = "clamp"
)

func (o OverflowPolicy) Validate() error {
	if o != OverflowDrop && o != OverflowClamp {
		return fmt.Errorf("%w: %q", ErrUnknownOverflowPolicy, o)
	}
	return nil
}

type RandomSource interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func NewRandomSource() RandomSource {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

type Planner struct {
	random   RandomSource
	overflow OverflowPolicy
}

// NewPlanner uses a time seeded source when random is nil.
func NewPlanner(random RandomSource, overflow OverflowPolicy) (*Planner, error) {
	if err := overflow.Validate(); err != nil {
		return nil, err
	}

	if random == nil {
		random = NewRandomSource()
	}

	return &Planner{
		random:   random,
		overflow: overflow,
	}, nil
}

// Plan spreads timesAWeek waterings evenly over the week, delaying each one
// by a random jitter of 0 to MaxJitter minutes.
func (p *Planner) Plan(ctx context.Context, timesAWeek int) ([]types.WeekTime, error) {
	if timesAWeek < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrequency, timesAWeek)
	}

	planned := make([]types.WeekTime, 0, timesAWeek)
	if timesAWeek == 0 {
		return planned, nil
	}

	log := logging.GetFromContext(ctx)
	delay := MinutesPerWeek / timesAWeek
	dropped := 0

	for m := 0; m < timesAWeek; m++ {
		candidate := MinutesPerWeek
		if delay*m < MinutesPerWeek {
			candidate = delay*m + p.random.Intn(MaxJitter+1)
		}

		if candidate >= MinutesPerWeek && p.overflow == OverflowClamp {
			candidate = MinutesPerWeek - 1
		}

		wt, err := WeekTimeFromMinutes(candidate)
		if err != nil {
			dropped++
			continue
		}

		planned = append(planned, wt)
	}

	if dropped > 0 {
		log.Warn().Msgf("dropped %d of %d planned slots beyond the end of the week", dropped, timesAWeek)
	}

	return planned, nil
}
