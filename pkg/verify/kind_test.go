package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verifyinput/pkg/verify"
)

func TestKind(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var k verify.Kind
		assert.Equal(t, verify.KindEmpty, k)
		assert.Equal(t, verify.KindEmpty, verify.RuleSpec{}.Kind())
	})

	t.Run("seven declared kinds", func(t *testing.T) {
		kinds := verify.Kinds()
		require.Len(t, kinds, 7)
		for _, k := range kinds {
			assert.True(t, k.Valid(), k.String())
			assert.NotEmpty(t, k.Description())
		}
		assert.False(t, verify.Kind(-1).Valid())
		assert.False(t, verify.Kind(7).Valid())
		assert.Equal(t, "Kind(7)", verify.Kind(7).String())
		assert.Empty(t, verify.Kind(7).Description())
	})
}

func TestKind_DefaultMessage(t *testing.T) {
	tests := []struct {
		kind    verify.Kind
		bad     string
		message string
	}{
		{verify.KindEmpty, " ", "content must not be empty"},
		{verify.KindEmail, "user@", "invalid email format"},
		{verify.KindPhoneCN, "1381234567", "invalid phone number format"},
		{verify.KindIDCN, "110105194912310021", "invalid ID number format"},
		{verify.KindCNText, "abc", "invalid Chinese-text format"},
		{verify.KindENText, "abc1", "invalid English-text format"},
		{verify.KindNumber, "12a", "invalid numeric format"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.message, tt.kind.DefaultMessage())

			res := verify.New().ValidateAll(verify.Bind("f", verify.NewRule(tt.kind), verify.String(tt.bad)))
			assert.Equal(t, tt.kind.DefaultMessage(), res.Message, "a failing value reports the default message")
		})
	}

	assert.Empty(t, verify.Kind(9).DefaultMessage())
}

func TestParseKind(t *testing.T) {
	t.Run("round-trips names", func(t *testing.T) {
		for _, k := range verify.Kinds() {
			parsed, err := verify.ParseKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
	})

	t.Run("ignores case and surrounding space", func(t *testing.T) {
		k, err := verify.ParseKind("  PHONE_CN ")
		require.NoError(t, err)
		assert.Equal(t, verify.KindPhoneCN, k)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := verify.ParseKind("ipv4")
		assert.ErrorIs(t, err, verify.ErrUnknownKind)

		_, err = verify.ParseKind("")
		assert.ErrorIs(t, err, verify.ErrUnknownKind)
	})
}
