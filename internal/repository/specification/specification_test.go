package specification_test

import (
	"regexp"
	"testing"

	"fundoo-notes-be/internal/model"
	"fundoo-notes-be/internal/repository/scope"
	"fundoo-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// bareId matches a column reference to id that is not qualified with a
// table. With collaborators or labels joined in, such a reference is
// ambiguous and Postgres rejects the whole query.
var bareId = regexp.MustCompile(`[^.\w]id\s*=`)

// renderNoteQuery builds the statement the note repository would send for
// the given specification combination without touching a database.
func renderNoteQuery(t *testing.T, specs ...specification.Specification) *gorm.Statement {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	tx := db.Model(&model.Note{})
	for _, s := range specs {
		tx = s.Apply(tx)
	}

	var rows []model.Note
	tx = tx.Find(&rows)
	require.NoError(t, tx.Error)
	return tx.Statement
}

// Every composed note query the services issue must qualify its column
// references, because VisibleToUser and MatchesQuery join tables that carry
// id columns of their own.
func TestNoteQueriesQualifyColumns(t *testing.T) {
	userId := uuid.New()
	noteId := uuid.New()
	email := "someone@example.com"

	tests := []struct {
		name         string
		specs        []specification.Specification
		wantContains []string
	}{
		{
			name: "visible note lookup",
			specs: []specification.Specification{
				specification.NoteByID{ID: noteId},
				specification.VisibleToUser{UserID: userId, Email: email},
			},
			wantContains: []string{
				"notes.id = ?",
				"LEFT JOIN collaborators ON collaborators.note_id = notes.id",
				"notes.user_id = ? OR collaborators.email = ?",
			},
		},
		{
			name: "owned note lookup",
			specs: []specification.Specification{
				specification.NoteByID{ID: noteId},
				specification.NoteOwnedByUser{UserID: userId},
			},
			wantContains: []string{
				"notes.id = ?",
				"notes.user_id = ?",
			},
		},
		{
			name: "main listing",
			specs: []specification.Specification{
				specification.VisibleToUser{UserID: userId, Email: email},
				specification.InTrash{Trash: false},
				specification.Archived{Archive: false},
				specification.WithScope(scope.PinnedFirst),
			},
			wantContains: []string{
				"notes.trash = ?",
				"notes.archive = ?",
				"notes.pin DESC",
			},
		},
		{
			name: "search",
			specs: []specification.Specification{
				specification.VisibleToUser{UserID: userId, Email: email},
				specification.MatchesQuery{Query: "groceries"},
				specification.InTrash{Trash: false},
				specification.OrderBy{Field: "notes.created_at", Desc: true},
			},
			wantContains: []string{
				"LEFT JOIN note_labels ON note_labels.note_id = notes.id",
				"LEFT JOIN labels ON labels.id = note_labels.label_id",
				"notes.title LIKE ?",
				"labels.name LIKE ?",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := renderNoteQuery(t, tt.specs...).SQL.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, sql, want)
			}
			assert.False(t, bareId.MatchString(sql), "unqualified id reference in %q", sql)
		})
	}
}

func TestMatchesQueryEscapesLikeMetacharacters(t *testing.T) {
	stmt := renderNoteQuery(t,
		specification.VisibleToUser{UserID: uuid.New(), Email: "a@b.c"},
		specification.MatchesQuery{Query: "50%_done"},
	)

	assert.Contains(t, stmt.SQL.String(), "notes.description LIKE ?")
	// % and _ in the query are literals, not wildcards.
	assert.Contains(t, stmt.Vars, `%50\%\_done%`)
}
