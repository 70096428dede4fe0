package progress

import "math"

// Leveling curve constants. XP required per level grows geometrically,
// producing the classic diminishing-XP-per-level feel.
const (
	levelBase       = 100
	levelMultiplier = 1.5
)

// levelTitles maps levels 1-10 to display names. Levels above 10 clamp to
// the last title.
var levelTitles = []string{
	"Curioso de Dados",
	"Aprendiz de SELECT",
	"Explorador de Tabelas",
	"Caçador de Linhas",
	"Arquiteto de Consultas",
	"Domador de JOINs",
	"Mestre das Agregações",
	"Feiticeiro das Subqueries",
	"Guru das Janelas",
	"Lenda do SQL",
}

// Level derives the learner level from total XP. Non-decreasing in XP,
// floored at 1.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := int(math.Floor(math.Log(float64(xp)/levelBase+1)/math.Log(levelMultiplier))) + 1
	if level < 1 {
		level = 1
	}
	return level
}

// XPForLevel returns the total XP at the upper boundary of the given level,
// i.e. the point where level+1 begins. It is the inverse of Level:
// xpForLevel(L) = BASE × (MULTIPLIER^L − 1).
func XPForLevel(level int) int {
	if level < 0 {
		level = 0
	}
	return int(math.Round(levelBase * (math.Pow(levelMultiplier, float64(level)) - 1)))
}

// LevelTitle returns the display title for a level.
func LevelTitle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelTitles) {
		level = len(levelTitles)
	}
	return levelTitles[level-1]
}

// levelProgress returns the total XP at which the next level begins and
// the percentage (0-100) of the current span already earned.
func levelProgress(xp int) (nextLevelXP int, percent float64) {
	level := Level(xp)
	current := XPForLevel(level - 1)
	next := XPForLevel(level)
	span := next - current

	nextLevelXP = next
	if span <= 0 {
		return nextLevelXP, 0
	}
	percent = float64(xp-current) / float64(span) * 100
	percent = math.Min(100, math.Max(0, percent))
	return nextLevelXP, percent
}
