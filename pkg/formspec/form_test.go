package formspec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verifyinput/pkg/formspec"
	"github.com/dmitrymomot/verifyinput/pkg/validator"
	"github.com/dmitrymomot/verifyinput/pkg/verify"
)

const signupForm = `
name: signup
fields:
  - name: name
    error: name must not be empty
    min_length: 2
    max_length: 20
  - name: phone
    kind: phone_cn
    order: 2
    error: phone number is invalid
  - name: email
    kind: EMAIL
    order: 3
  - name: id
    source: ID_NUMBER
    kind: id_cn
    order: 3
    report: false
`

func TestParse(t *testing.T) {
	t.Run("decodes fields and rules", func(t *testing.T) {
		form, err := formspec.Parse([]byte(signupForm))
		require.NoError(t, err)

		assert.Equal(t, "signup", form.Name)
		require.Len(t, form.Fields, 4)

		assert.Equal(t, "NAME", form.Fields[0].Source)
		assert.Equal(t, "ID_NUMBER", form.Fields[3].Source)

		name := form.Rule(0)
		assert.Equal(t, verify.KindEmpty, name.Kind())
		assert.Equal(t, "name must not be empty", name.ErrorMessage())
		assert.Equal(t, 2, name.MinLength())
		assert.Equal(t, 20, name.MaxLength())
		assert.Equal(t, 1, name.Order())
		assert.True(t, name.ReportFailure())

		phone := form.Rule(1)
		assert.Equal(t, verify.KindPhoneCN, phone.Kind())
		assert.Equal(t, 2, phone.Order())
		assert.Equal(t, -1, phone.MaxLength())

		assert.Equal(t, verify.KindEmail, form.Rule(2).Kind())
		assert.Empty(t, form.Rule(2).ErrorMessage())

		id := form.Rule(3)
		assert.Equal(t, verify.KindIDCN, id.Kind())
		assert.False(t, id.ReportFailure())
	})

	t.Run("empty document", func(t *testing.T) {
		form, err := formspec.Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, form.Fields)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		testCases := []struct {
			name string
			doc  string
			err  error
		}{
			{"unknown kind", "fields:\n  - name: a\n    kind: ipv4\n", verify.ErrUnknownKind},
			{"missing name", "fields:\n  - kind: email\n", formspec.ErrInvalidForm},
			{"duplicate name", "fields:\n  - name: a\n  - name: a\n", formspec.ErrDuplicateField},
			{"unknown key", "fields:\n  - name: a\n    required: true\n", formspec.ErrInvalidForm},
			{"malformed yaml", "fields: [", formspec.ErrInvalidForm},
		}

		for _, tc := range testCases {
			_, err := formspec.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err, tc.name)
		}
	})
}

func TestParse_ReportsEveryBadField(t *testing.T) {
	doc := `
fields:
  - name: phone
    kind: phone_cn
  - kind: email
  - name: phone
    kind: mobile
  - name: code
    kind: number
`
	_, err := formspec.Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, formspec.ErrInvalidForm)
	assert.ErrorIs(t, err, formspec.ErrDuplicateField)
	assert.ErrorIs(t, err, verify.ErrUnknownKind)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 3)
	assert.Equal(t, "#2", verrs[0].Field)
	assert.Equal(t, "field has no name", verrs[0].Message)
	assert.Equal(t, "phone", verrs[1].Field)
	assert.Equal(t, "formspec.name_duplicate", verrs[1].TranslationKey)
	assert.Equal(t, "phone", verrs[2].Field)
	assert.Equal(t, `unknown rule kind "mobile"`, verrs[2].Message)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(signupForm), 0o600))

	form, err := formspec.Load(path)
	require.NoError(t, err)
	assert.Len(t, form.Fields, 4)

	_, err = formspec.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, formspec.ErrReadForm)
}

func TestBindings(t *testing.T) {
	form, err := formspec.Parse([]byte(signupForm))
	require.NoError(t, err)

	t.Run("passes with valid values", func(t *testing.T) {
		src := formspec.MapSource{
			"NAME":      "Alice",
			"PHONE":     "13800138000",
			"EMAIL":     "alice@example.com",
			"ID_NUMBER": "11010519491231002X",
		}
		res := verify.New().ValidateAll(form.Bindings(src)...)
		assert.True(t, res.Passed(), res.String())
	})

	t.Run("missing key is an absent value", func(t *testing.T) {
		res := verify.New().ValidateAll(form.Bindings(formspec.MapSource{})...)
		assert.Equal(t, "name", res.Field)
		assert.Equal(t, "name must not be empty", res.Message)
	})

	t.Run("lookups stop at the first failure", func(t *testing.T) {
		src := &countingSource{values: formspec.MapSource{"NAME": "Alice", "PHONE": "123"}}
		res := verify.New().ValidateAll(form.Bindings(src)...)
		assert.Equal(t, "phone", res.Field)
		assert.Equal(t, "phone number is invalid", res.Message)
		assert.Equal(t, []string{"NAME", "PHONE"}, src.keys)
	})

	t.Run("equal orders keep document order", func(t *testing.T) {
		src := formspec.MapSource{
			"NAME":      "Alice",
			"PHONE":     "13800138000",
			"EMAIL":     "bad",
			"ID_NUMBER": "bad",
		}
		res := verify.New().ValidateAll(form.Bindings(src)...)
		assert.Equal(t, "email", res.Field)
	})
}

func TestEnvSource(t *testing.T) {
	t.Setenv("FORMSPEC_TEST_VALUE", "x")

	v, ok := formspec.EnvSource{}.Lookup("FORMSPEC_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = formspec.EnvSource{}.Lookup("FORMSPEC_TEST_MISSING_VALUE")
	assert.False(t, ok)
}

type countingSource struct {
	values formspec.MapSource
	keys   []string
}

func (c *countingSource) Lookup(key string) (string, bool) {
	c.keys = append(c.keys, key)
	return c.values.Lookup(key)
}
