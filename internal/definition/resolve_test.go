package definition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"entity-exposure/exposure"
)

func TestResolve(t *testing.T) {
	f, err := Parse([]byte(userDefinition))
	require.NoError(t, err)

	entities, err := Resolve(f)
	require.NoError(t, err)
	require.Len(t, entities, 1)

	e := entities[0]
	assert.Equal(t, "UserEntity", e.Name)

	var attrs []string
	for _, x := range e.Exposures {
		attrs = append(attrs, x.Attribute)
	}

	assert.Equal(t, []string{"id", "name", "email", "address", "phone"}, attrs)

	id, ok := e.Lookup("id")
	require.True(t, ok)
	assert.Equal(t, exposure.Options{exposure.KeySafe: true}, id.Options)

	email, ok := e.Lookup("email")
	require.True(t, ok)
	assert.Equal(t, exposure.Options{
		exposure.KeySafe:     true,
		exposure.KeyAs:       "mail",
		exposure.KeyIf:       map[string]any{"admin": "is_admin"},
		exposure.KeyIfExtras: []any{"verified"},
	}, email.Options)

	address, ok := e.Lookup("address")
	require.True(t, ok)
	assert.Equal(t, exposure.Options{
		exposure.KeySafe:  true,
		exposure.KeyUsing: "AddressEntity",
		exposure.KeyIf:    exposure.Conditions{"admin": "is_admin", "owner": "is_owner"},
	}, address.Options)

	phone, ok := e.Lookup("phone")
	require.True(t, ok)
	assert.Equal(t, exposure.Options{
		exposure.KeySafe:         true,
		exposure.KeyIf:           map[string]any{"admin": "is_admin"},
		exposure.KeyUnless:       map[string]any{"hidden": "is_hidden"},
		exposure.KeyUnlessExtras: []any{"suspended"},
	}, phone.Options)

	_, ok = e.Lookup("missing")
	assert.False(t, ok)
}

func TestResolve_BlocksDoNotLeakIntoSiblings(t *testing.T) {
	f, err := Parse([]byte(`
entities:
  - name: E
    blocks:
      - options: { as: inner }
        exposures:
          - attributes: a
      - exposures:
          - attributes: b
`))
	require.NoError(t, err)

	entities, err := Resolve(f)
	require.NoError(t, err)

	a, _ := entities[0].Lookup("a")
	b, _ := entities[0].Lookup("b")

	assert.Equal(t, exposure.Options{exposure.KeyAs: "inner"}, a.Options)
	assert.Equal(t, exposure.Options{}, b.Options)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		target error
		msg    string
	}{
		{
			name:   "invalid block option",
			yaml:   "entities:\n  - name: E\n    options: { iff: x }\n    exposures:\n      - attributes: a\n",
			target: exposure.ErrInvalidOption,
			msg:    `entity E: block options: "iff" is not a valid option`,
		},
		{
			name:   "invalid exposure option",
			yaml:   "entities:\n  - name: E\n    exposures:\n      - attributes: a\n        options: { expose: true }\n",
			target: exposure.ErrInvalidOption,
			msg:    `entity E: attribute a: "expose" is not a valid option`,
		},
		{
			name:   "as with several attributes",
			yaml:   "entities:\n  - name: E\n    exposures:\n      - attributes: [a, b]\n        options: { as: c }\n",
			target: ErrAsWithMultipleAttributes,
			msg:    "entity E: attributes [a b]: as may only be used when exposing a single attribute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = Resolve(f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestResolve_Nil(t *testing.T) {
	_, err := Resolve(nil)
	require.Error(t, err)
}

func TestResolve_PassesConfigOptions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	f, err := Parse([]byte(userDefinition))
	require.NoError(t, err)

	_, err = Resolve(f, exposure.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("predicate displaced by map form").Len())
}
