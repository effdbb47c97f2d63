package sql

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
)

func TestStatements(t *testing.T) {
	g := newGraph(t, kennelSchema, "")
	dog, master, kennel := mustType(t, g, "Dog"), mustType(t, g, "Master"), mustType(t, g, "Kennel")
	dogMaster, kennelDog := dog.ManyEdges()[0], kennel.ManyEdges()[0]

	tests := []struct {
		name     string
		build    func(b sq.StatementBuilderType) string
		question string
		dollar   string
	}{
		{
			name:     "select",
			build:    func(b sq.StatementBuilderType) string { return selectStmt(b, master) },
			question: "SELECT MASTER_ID, FIRST_NAME, LAST_NAME FROM MASTER",
			dollar:   "SELECT MASTER_ID, FIRST_NAME, LAST_NAME FROM MASTER",
		},
		{
			name:     "select_by_id",
			build:    func(b sq.StatementBuilderType) string { return selectByIDStmt(b, kennel) },
			question: "SELECT KENNEL_ID, NAME FROM KENNEL WHERE KENNEL_ID = ?",
			dollar:   "SELECT KENNEL_ID, NAME FROM KENNEL WHERE KENNEL_ID = $1",
		},
		{
			name:     "next_id",
			build:    func(b sq.StatementBuilderType) string { return nextIDStmt(b, dog) },
			question: "SELECT MAX(DOG_ID) AS NEWID FROM DOG",
			dollar:   "SELECT MAX(DOG_ID) AS NEWID FROM DOG",
		},
		{
			name:     "update",
			build:    func(b sq.StatementBuilderType) string { return updateStmt(b, master) },
			question: "UPDATE MASTER SET FIRST_NAME = ?, LAST_NAME = ? WHERE MASTER_ID = ?",
			dollar:   "UPDATE MASTER SET FIRST_NAME = $1, LAST_NAME = $2 WHERE MASTER_ID = $3",
		},
		{
			name:     "delete",
			build:    func(b sq.StatementBuilderType) string { return deleteStmt(b, dog) },
			question: "DELETE FROM DOG WHERE DOG_ID = ?",
			dollar:   "DELETE FROM DOG WHERE DOG_ID = $1",
		},
		{
			name:     "list_m2m",
			build:    func(b sq.StatementBuilderType) string { return listStmt(b, dogMaster) },
			question: "SELECT MASTER_ID FROM DOG_MASTER WHERE DOG_ID = ?",
			dollar:   "SELECT MASTER_ID FROM DOG_MASTER WHERE DOG_ID = $1",
		},
		{
			name:     "list_o2m",
			build:    func(b sq.StatementBuilderType) string { return listStmt(b, kennelDog) },
			question: "SELECT DOG_ID FROM DOG WHERE KENNEL_ID = ?",
			dollar:   "SELECT DOG_ID FROM DOG WHERE KENNEL_ID = $1",
		},
		{
			name:     "unlink",
			build:    func(b sq.StatementBuilderType) string { return unlinkStmt(b, dogMaster) },
			question: "DELETE FROM DOG_MASTER WHERE DOG_ID = ?",
			dollar:   "DELETE FROM DOG_MASTER WHERE DOG_ID = $1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.question, tt.build(sq.StatementBuilder))
			assert.Equal(t, tt.dollar, tt.build(sq.StatementBuilder.PlaceholderFormat(sq.Dollar)))
		})
	}

	assert.Equal(t, "INSERT INTO KENNEL(KENNEL_ID, NAME) VALUES(?, ?)", insertStmt(kennel))
	assert.Equal(t, "INSERT INTO DOG_MASTER(DOG_ID, MASTER_ID) VALUES(?, ?)", linkStmt(dogMaster))
}

func TestStatements_DeclarationOrder(t *testing.T) {
	const src = `
entity Dog {
  name: string(40) required;
  age: real required;
  legs: integer required;
  death: date;
  many Master;
}

entity Master {
  many Dog zero;
}
`
	g := newGraph(t, src, "")
	dog, master := mustType(t, g, "Dog"), mustType(t, g, "Master")

	assert.Equal(t, "INSERT INTO DOG(DOG_ID, NAME, AGE, LEGS, DEATH) VALUES(?, ?, ?, ?, ?)", insertStmt(dog))
	assert.Equal(t, "UPDATE DOG SET NAME = ?, AGE = ?, LEGS = ?, DEATH = ? WHERE DOG_ID = ?", updateStmt(sq.StatementBuilder, dog))
	assert.Empty(t, updateStmt(sq.StatementBuilder, master))
	assert.Equal(t, "SELECT MASTER_ID FROM MASTER WHERE MASTER_ID = ?", selectByIDStmt(sq.StatementBuilder, master))
}
