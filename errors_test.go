package pergen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/syssam/pergen"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := pergen.NewNotFoundError("Dog", 7)
		assert.Equal(t, "pergen: Dog not found (id=7)", err.Error())
	})

	t.Run("IsNotFound", func(t *testing.T) {
		err := pergen.NewNotFoundError("Dog", 7)
		assert.True(t, errors.Is(err, pergen.ErrNotFound))
		assert.True(t, pergen.IsNotFound(err))
		assert.True(t, pergen.IsNotFound(fmt.Errorf("wrapper: %w", err)))
		assert.True(t, pergen.IsNotFound(pergen.ErrNotFound))
		assert.False(t, pergen.IsNotFound(errors.New("other error")))
		assert.False(t, pergen.IsNotFound(nil))
	})
}

func TestNullityError(t *testing.T) {
	err := pergen.NewNullityError("Dog", "name")
	assert.Equal(t, "pergen: Dog.name is required", err.Error())
	assert.True(t, errors.Is(err, pergen.ErrNullity))
	assert.True(t, pergen.IsNullity(fmt.Errorf("save: %w", err)))
	assert.False(t, pergen.IsNullity(pergen.ErrNotFound))
	assert.False(t, pergen.IsNullity(nil))
}

func TestDAOError(t *testing.T) {
	cause := errors.New("connection refused")
	err := pergen.NewDAOError("Dog", "save", cause)
	assert.Equal(t, "pergen: save Dog: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, pergen.IsDAOError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, pergen.IsDAOError(cause))
	assert.False(t, pergen.IsDAOError(nil))
}

func TestIsConstraintError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
	}{
		{
			name:   "mysql duplicate entry",
			err:    &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'rex-4' for key 'INDEX_DOG1'"},
			unique: true,
		},
		{
			name:       "mysql missing parent",
			err:        &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			foreignKey: true,
		},
		{
			name:   "postgres unique violation",
			err:    &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "index_dog1"`},
			unique: true,
		},
		{
			name:       "postgres foreign key violation",
			err:        &pq.Error{Code: "23503", Message: `insert or update on table "dog" violates foreign key constraint "fk_dog_kennel"`},
			foreignKey: true,
		},
		{
			name:   "sqlite unique",
			err:    errors.New("constraint failed: UNIQUE constraint failed: DOG.NAME, DOG.LEGS (2067)"),
			unique: true,
		},
		{
			name:       "sqlite foreign key wrapped",
			err:        pergen.NewDAOError("Dog", "save", errors.New("FOREIGN KEY constraint failed")),
			foreignKey: true,
		},
		{
			name: "other",
			err:  errors.New("connection reset"),
		},
		{
			name: "nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, pergen.IsUniqueConstraintError(tt.err))
			assert.Equal(t, tt.foreignKey, pergen.IsForeignKeyConstraintError(tt.err))
			assert.Equal(t, tt.unique || tt.foreignKey, pergen.IsConstraintError(tt.err))
		})
	}
}
