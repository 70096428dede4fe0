package progress

import (
	"fmt"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
)

// Achievement is a named, idempotently-unlockable milestone. The predicate
// is evaluated against the learner's already-updated state after every
// completion.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	predicate func(v progressView) bool
}

// progressView is the read-only snapshot predicates are evaluated against.
type progressView struct {
	completed    map[string]bool
	totalLessons int
	streak       int
}

// moduleAchievementMeta assigns each module's completion achievement its
// display identity. Modules without an entry get a generic one.
var moduleAchievementMeta = map[string]Achievement{
	"mod-1": {ID: "basics-master", Title: "Base Sólida", Icon: "database",
		Description: "Complete o módulo de Fundamentos de SQL."},
	"mod-2": {ID: "join-master", Title: "Mestre dos JOINS", Icon: "git-merge",
		Description: "Complete o módulo de Consultas Intermediárias."},
	"mod-3": {ID: "subquery-master", Title: "Pensamento Aninhado", Icon: "layers",
		Description: "Complete o módulo de SQL Avançado."},
	"mod-4": {ID: "business-analyst", Title: "Analista de Negócios", Icon: "briefcase",
		Description: "Complete o módulo de Casos de Negócio."},
	"mod-5": {ID: "window-master", Title: "Através da Janela", Icon: "bar_chart",
		Description: "Complete o módulo de Window Functions."},
}

// buildCatalog assembles the full achievement catalog for the given
// curriculum.
func buildCatalog(modules []curriculum.Module) []Achievement {
	catalog := []Achievement{
		{
			ID: "first-query", Title: "Primeiro SELECT", Icon: "search",
			Description: "Execute sua primeira query com sucesso.",
			predicate:   func(v progressView) bool { return len(v.completed) >= 1 },
		},
		{
			ID: "ten-lessons", Title: "Dedicação", Icon: "award",
			Description: "Complete 10 lições.",
			predicate:   func(v progressView) bool { return len(v.completed) >= 10 },
		},
		{
			ID: "halfway-there", Title: "Meio Caminho Andado", Icon: "trending-up",
			Description: "Complete metade de todas as lições.",
			predicate: func(v progressView) bool {
				return v.totalLessons > 0 && len(v.completed)*2 >= v.totalLessons
			},
		},
		{
			ID: "sql-master", Title: "Currículo Completo", Icon: "trophy",
			Description: "Complete todas as lições da plataforma.",
			predicate: func(v progressView) bool {
				return v.totalLessons > 0 && len(v.completed) == v.totalLessons
			},
		},
		{
			ID: "streak-3", Title: "Constância", Icon: "calendar",
			Description: "3 dias seguidos de estudo.",
			predicate:   func(v progressView) bool { return v.streak >= 3 },
		},
		{
			ID: "streak-7", Title: "On Fire!", Icon: "flame",
			Description: "7 dias seguidos de estudo.",
			predicate:   func(v progressView) bool { return v.streak >= 7 },
		},
	}

	for _, mod := range modules {
		meta, ok := moduleAchievementMeta[mod.ID]
		if !ok {
			meta = Achievement{
				ID:          mod.ID + "-complete",
				Title:       "Módulo Completo",
				Icon:        "check-circle",
				Description: fmt.Sprintf("Complete o módulo %s.", mod.Title),
			}
		}

		lessonIDs := make([]string, 0, len(mod.Lessons))
		for _, l := range mod.Lessons {
			lessonIDs = append(lessonIDs, l.ID)
		}
		meta.predicate = func(v progressView) bool {
			for _, id := range lessonIDs {
				if !v.completed[id] {
					return false
				}
			}
			return len(lessonIDs) > 0
		}
		catalog = append(catalog, meta)
	}

	return catalog
}
