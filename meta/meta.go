// Package meta collects the engine's tunable defaults in one place, the way
// a caller would expect to override them without digging through every
// package that consumes one.
package meta

// DefaultHorizon is the expectimax search depth used when no WithHorizon
// option is supplied.
const DefaultHorizon = 6

// MaxLootOptions bounds how many loot offers a single decision may carry.
const MaxLootOptions = 4

// MicroSimRounds is the default greedy forward-simulation window of the
// loot valuator. The valuator reads LootWeights.MicroSimRounds, which
// combat.DefaultLootWeights sets to the same value without reading this
// constant.
const MicroSimRounds = 3

// LethalThreshold is the value below which a search child is treated as
// certainly lethal and triggers the lethal-branch override. It sits with a
// margin above the evaluator's player-dead sentinel so floating point noise
// never masks a real death.
const LethalThreshold = -900_000.0
