package game

import (
	"sort"
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a generator seeded with seed, or with the clock when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

type randomDice struct {
	rng Intner
}

// NewDice returns fair dice drawing from rng.
func NewDice(rng Intner) Dice {
	return &randomDice{rng: rng}
}

func (d *randomDice) Roll() int {
	return d.rng.Intn(DIE_FACES) + 1
}

// SequenceDice replays fixed values in order and wraps around once exhausted.
type SequenceDice struct {
	values []int
	next   int
}

func NewSequenceDice(values ...int) *SequenceDice {
	if len(values) == 0 {
		panic("sequence dice need at least one value")
	}
	return &SequenceDice{values: values}
}

func (d *SequenceDice) Roll() int {
	v := d.values[d.next%len(d.values)]
	d.next++
	return v
}

// rollDice rolls num dice sorted highest first.
func rollDice(dice Dice, num int) []int {
	rolls := make([]int, num)
	for i := 0; i < num; i++ {
		rolls[i] = dice.Roll()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}
