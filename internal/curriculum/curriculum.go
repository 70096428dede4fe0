// Package curriculum holds the static course content: modules, lessons and
// quizzes. The content is read-only reference data and is never mutated at
// runtime.
package curriculum

// Level is the difficulty tag of a module.
type Level string

// Module difficulty levels, ordered.
const (
	LevelIniciante     Level = "Iniciante"
	LevelIntermediario Level = "Intermediário"
	LevelAvancado      Level = "Avançado"
	LevelExpert        Level = "Expert"
)

// Quiz is a single multiple-choice question attached to a lesson.
// Options always has exactly four entries; Correct indexes into it.
type Quiz struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Lesson is one unit of the curriculum. Solution is the canonical query the
// learner's result is verified against.
type Lesson struct {
	ID           string `json:"id"`
	ModuleID     string `json:"module_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Content      string `json:"content"`
	StarterQuery string `json:"starter_query"`
	Solution     string `json:"-"`
	Hint         string `json:"hint,omitempty"`
	Order        int    `json:"order"`
	Quiz         Quiz   `json:"quiz"`
}

// Module is an ordered collection of lessons.
type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       Level    `json:"level"`
	Icon        string   `json:"icon"`
	Order       int      `json:"order"`
	Lessons     []Lesson `json:"lessons"`
}

// Modules returns all modules in curriculum order.
func Modules() []Module {
	return modules
}

// FindModule returns the module with the given id.
func FindModule(moduleID string) (*Module, bool) {
	for i := range modules {
		if modules[i].ID == moduleID {
			return &modules[i], true
		}
	}
	return nil, false
}

// FindLesson returns a lesson by module and lesson id.
func FindLesson(moduleID, lessonID string) (*Lesson, bool) {
	mod, ok := FindModule(moduleID)
	if !ok {
		return nil, false
	}
	for i := range mod.Lessons {
		if mod.Lessons[i].ID == lessonID {
			return &mod.Lessons[i], true
		}
	}
	return nil, false
}

// AllLessons returns every lesson across all modules, in curriculum order.
func AllLessons() []Lesson {
	var out []Lesson
	for _, m := range modules {
		out = append(out, m.Lessons...)
	}
	return out
}

// LessonCount returns the total number of lessons in the curriculum.
func LessonCount() int {
	n := 0
	for _, m := range modules {
		n += len(m.Lessons)
	}
	return n
}

// ModuleProgress returns the percentage (0-100) of a module's lessons that
// appear in the completed set.
func ModuleProgress(moduleID string, completed map[string]bool) int {
	mod, ok := FindModule(moduleID)
	if !ok || len(mod.Lessons) == 0 {
		return 0
	}
	done := 0
	for _, l := range mod.Lessons {
		if completed[l.ID] {
			done++
		}
	}
	return done * 100 / len(mod.Lessons)
}

// IsModuleUnlocked reports whether the module at the given index is
// accessible. The first module is always unlocked; every other module
// requires the previous module to be 100% complete.
func IsModuleUnlocked(index int, completed map[string]bool) bool {
	if index <= 0 {
		return true
	}
	if index >= len(modules) {
		return false
	}
	return ModuleProgress(modules[index-1].ID, completed) == 100
}

// NextLesson returns the lesson following the given one, crossing module
// boundaries. Returns false at the end of the curriculum.
func NextLesson(moduleID, lessonID string) (*Lesson, bool) {
	all := AllLessons()
	for i := range all {
		if all[i].ModuleID == moduleID && all[i].ID == lessonID {
			if i+1 < len(all) {
				return &all[i+1], true
			}
			return nil, false
		}
	}
	return nil, false
}

// PrevLesson returns the lesson preceding the given one, crossing module
// boundaries. Returns false at the start of the curriculum.
func PrevLesson(moduleID, lessonID string) (*Lesson, bool) {
	all := AllLessons()
	for i := range all {
		if all[i].ModuleID == moduleID && all[i].ID == lessonID {
			if i > 0 {
				return &all[i-1], true
			}
			return nil, false
		}
	}
	return nil, false
}
