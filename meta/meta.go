// meta/meta.go
package meta

// MAX_TERRITORIES bounds the size of a territory store.
const MAX_TERRITORIES = 42

// MIN_ATTACK_TROOPS is the smallest garrison allowed to attack, one troop always stays behind.
const MIN_ATTACK_TROOPS = 2

// DEFAULT_TRIALS defines the number of attack sequences for the odds experiment.
const DEFAULT_TRIALS = 10000

// BATTLE_LOG_FILE is the CSV file name of recorded battle rounds.
const BATTLE_LOG_FILE = "battle_records.csv"
