package game

import "time"

// FramesPerSecond is the frame rate the gravity table is expressed in.
const FramesPerSecond = 60

// MaxLevel is the level at which gravity stops accelerating.
const MaxLevel = 29

// LinesPerLevel is the number of cleared lines needed to advance one level.
const LinesPerLevel = 10

// fallSpeed is the number of frames between each automatic fall of the piece at each level
var fallSpeed = map[int]int{
	0:  53,
	1:  49,
	2:  45,
	3:  41,
	4:  37,
	5:  33,
	6:  28,
	7:  22,
	8:  17,
	9:  11,
	10: 10,
	11: 9,
	12: 8,
	13: 7,
	14: 6,
	16: 5,
	18: 4,
	20: 3,
	22: 2,
	29: 1,
}

// lineScore is awarded once per pass, keyed by the number of lines cleared in it.
var lineScore = map[int]int{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// LineScore returns the points for clearing n lines in a single pass. Any n outside 1..4 scores
// nothing.
func LineScore(n int) int {
	return lineScore[n]
}

// FallFrames returns the number of frames between gravity ticks at the given level.
func FallFrames(level int) int {
	if level > MaxLevel {
		return 1
	}
	if level < 0 {
		level = 0
	}
	if speed, ok := fallSpeed[level]; ok {
		return speed
	}
	return FallFrames(level - 1)
}

// TickSpeed returns the duration between gravity ticks at the given level.
func TickSpeed(level int) time.Duration {
	return time.Duration(FallFrames(level)) * time.Second / FramesPerSecond
}

// LevelFor returns the level reached after clearing the given number of lines.
func LevelFor(lines int) int {
	return min(lines/LinesPerLevel, MaxLevel)
}
