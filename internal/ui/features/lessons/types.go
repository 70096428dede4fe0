package lessons

import "github.com/sqlacademy-labs/sqlacademy/internal/curriculum"

type moduleView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Level       string       `json:"level"`
	Icon        string       `json:"icon"`
	Locked      bool         `json:"locked"`
	Progress    int          `json:"progress"`
	Lessons     []lessonView `json:"lessons"`
}

type lessonView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Order     int    `json:"order"`
	Completed bool   `json:"completed"`
}

type curriculumResponse struct {
	Modules []moduleView `json:"modules"`
}

type lessonDetail struct {
	ID          string           `json:"id"`
	ModuleID    string           `json:"module_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	Editor      string           `json:"editor"`
	Order       int              `json:"order"`
	Quiz        *curriculum.Quiz `json:"quiz,omitempty"`
	State       string           `json:"state"`
	Attempts    int              `json:"attempts"`
	HintShown   bool             `json:"hint_shown"`
	CanReveal   bool             `json:"can_reveal_solution"`
	Completed   bool             `json:"completed"`
}

type attemptRequest struct {
	Query string `json:"query"`
}

type hintResponse struct {
	Shown bool   `json:"shown"`
	Hint  string `json:"hint,omitempty"`
}

type solutionResponse struct {
	Solution string `json:"solution"`
}
