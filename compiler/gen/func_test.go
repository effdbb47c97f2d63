package gen

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"test", "test"},
		{"test_word", "testWord"},
		{"TEST_WORD", "testWord"},
		{"TEST__WORD", "testWord"},
		{"this_test_is_super_long", "thisTestIsSuperLong"},
		{"this_____test", "thisTest"},
		{"_this_is_testing", "thisIsTesting"},
		{"this_is_testing_", "thisIsTesting"},
		{"", ""},
		{"____", ""},
		{"Last_Name", "lastName"},
		{"address2", "address2"},
		{"BOOK", "book"},
		{"book", "book"},
		{"Dog", "dog"},
		{"masterList", "masterList"},
		{"MasterList", "masterList"},
		{"été_chaud", "étéChaud"},
		// mixed case without underscores is taken as already camel-cased
		{"bOOK", "bOOK"},
		{"dogID", "dogID"},
		{"BOOK_list", "bookList"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CamelCase(tt.input))
		})
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"test", "Test"},
		{"test_word", "TestWord"},
		{"TEST_WORD", "TestWord"},
		{"TEST__WORD", "TestWord"},
		{"this_test_is_super_long", "ThisTestIsSuperLong"},
		{"_this_is_testing", "ThisIsTesting"},
		{"", ""},
		{"____", ""},
		{"BOOK", "Book"},
		{"book", "Book"},
		{"masterList", "MasterList"},
		{"bOOK", "BOOK"},
		{"dogID", "DogID"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PascalCase(tt.input))
		})
	}
}

func TestSQLName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"first_name", "FIRST_NAME"},
		{"Last_Name", "LAST_NAME"},
		{"address2", "ADDRESS2"},
		{"__odd__", "__ODD__"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SQLName(tt.input))
		})
	}
}

func TestTransformerProperties(t *testing.T) {
	inputs := []string{
		"test", "test_word", "TEST__WORD", "_test_word", "test_word_", "__test___word__",
		"a", "dog", "Dog", "masterList", "kennel_id",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			camel := CamelCase(in)
			assert.Equal(t, upperFirst(camel), PascalCase(in))
			// Transforming an already transformed name changes nothing.
			assert.Equal(t, camel, CamelCase(camel))
			assert.Equal(t, PascalCase(in), PascalCase(PascalCase(in)))
			assert.NotContains(t, camel, "_")
		})
	}

	normalized := []string{"test_word", "TEST_WORD", "TEST__WORD", "_test_word", "test_word_", "__Test___Word__"}
	for _, in := range normalized {
		assert.Equal(t, "testWord", CamelCase(in), in)
	}
}

func TestReceiver(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Dog", "d"},
		{"DogDAO", "dd"},
		{"UserQuery", "uq"},
		{"[]User", "u"},
		{"*User", "u"},
		{"HTTPClient", "hc"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, receiver(tt.input))
		})
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Dog", "Dogs"},
		{"Master", "Masters"},
		{"Category", "Categories"},
		{"dog", "dogs"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, plural(tt.input))
		})
	}
}

func TestGoIdent(t *testing.T) {
	assert.Equal(t, "type_", goIdent("type"))
	assert.Equal(t, "range_", goIdent("range"))
	assert.Equal(t, "name", goIdent("name"))
}

func TestFuncs(t *testing.T) {
	tmpl, err := template.New("t").Funcs(Funcs).Parse(`{{ camel . }} {{ pascal . }} {{ sql . }} {{ plural (pascal .) }}`)
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, tmpl.Execute(&b, "kennel_owner"))
	assert.Equal(t, "kennelOwner KennelOwner KENNEL_OWNER KennelOwners", b.String())
}
