package specification

import (
	"gorm.io/gorm"
)

// MatchesQuery does a literal, case-sensitive substring match over title,
// description and attached label names.
type MatchesQuery struct {
	Query string
}

func (s MatchesQuery) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + escapeLike(s.Query) + "%"
	return db.
		Joins("LEFT JOIN note_labels ON note_labels.note_id = notes.id").
		Joins("LEFT JOIN labels ON labels.id = note_labels.label_id").
		Where("notes.title LIKE ? OR notes.description LIKE ? OR labels.name LIKE ?", like, like, like).
		Distinct("notes.*")
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
