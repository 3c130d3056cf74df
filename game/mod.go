package game

// Faction identifies the army owning a territory by its color.
type Faction string

const (
	Blue   Faction = "Blue"
	Green  Faction = "Green"
	Red    Faction = "Red"
	Yellow Faction = "Yellow"
	White  Faction = "White"
)

// Dice produces die values between 1 and DIE_FACES.
type Dice interface {
	Roll() int
}

// Intner draws a uniform integer in [0, n). *rand.Rand from golang.org/x/exp/rand satisfies it.
type Intner interface {
	Intn(n int) int
}

const DIE_FACES = 6
