package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/peoplemap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "person",
			ID:       "bamboo:42",
		}
		assert.Equal(t, "person with ID bamboo:42 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("person", "google:XYZ")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("source", "ldap", "unsupported source")
		assert.Equal(t, "validation failed for field source: unsupported source", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty query"}
		assert.Equal(t, "validation failed: empty query", err.Error())
	})
}

func TestIdentityError(t *testing.T) {
	t.Run("missing value", func(t *testing.T) {
		err := pkgerrors.NewIdentityError("google", "id.$t", "", "identifier is absent")
		assert.Equal(t, "google record has no identity in id.$t: identifier is absent", err.Error())
		assert.True(t, pkgerrors.IsInvalidIdentity(err))
		assert.True(t, pkgerrors.IsValidationError(err), "identity errors are input errors too")
	})

	t.Run("malformed value", func(t *testing.T) {
		err := pkgerrors.NewIdentityError("google", "id.$t", "https://host/feed/", "no final path segment")
		assert.Contains(t, err.Error(), `"https://host/feed/"`)
		assert.False(t, pkgerrors.IsNotFound(err))
	})

	t.Run("errors.As", func(t *testing.T) {
		var wrapped error = pkgerrors.NewSourceError("google", pkgerrors.NewIdentityError("google", "id.$t", "", "absent"))
		var idErr *pkgerrors.IdentityError
		require.True(t, pkgerrors.As(wrapped, &idErr))
		assert.Equal(t, "google", idErr.Source)
	})
}

func TestSourceError(t *testing.T) {
	base := errors.New("connection refused")
	err := pkgerrors.NewSourceError("bamboo", base)
	assert.Equal(t, "source bamboo: connection refused", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestConfigError(t *testing.T) {
	base := errors.New("file missing")
	err := pkgerrors.NewConfigError("fixtures", "directory not readable", base)
	assert.Equal(t, "configuration error in fixtures: directory not readable", err.Error())
	assert.ErrorIs(t, err, base)

	bare := &pkgerrors.ConfigError{Message: "bad"}
	assert.Equal(t, "configuration error: bad", bare.Error())
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("read", "/tmp/bamboo.yaml", base)
	assert.Equal(t, "IO error during read of /tmp/bamboo.yaml: permission denied", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestParseError(t *testing.T) {
	err := pkgerrors.NewParseError("yaml", "google.yaml", "unexpected key", nil)
	assert.Equal(t, "parse error in yaml file google.yaml: unexpected key", err.Error())

	noFile := pkgerrors.NewParseError("json", "", "unexpected EOF", nil)
	assert.Equal(t, "json parse error: unexpected EOF", noFile.Error())
}

func TestResourceError(t *testing.T) {
	base := errors.New("boom")
	err := pkgerrors.NewResourceError("load", "fixtures", "testdata", base)
	assert.Equal(t, "failed to load fixtures testdata: boom", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestWrapHelpers(t *testing.T) {
	tests := []struct {
		name string
		wrap func(error) error
	}{
		{"validation", func(err error) error { return pkgerrors.WrapValidation("field", err) }},
		{"io", func(err error) error { return pkgerrors.WrapIO("read", "path", err) }},
		{"resource", func(err error) error { return pkgerrors.WrapResource("load", "config", "", err) }},
		{"parse", func(err error) error { return pkgerrors.WrapParse("yaml", "file", err) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.wrap(nil))
			assert.Error(t, tt.wrap(errors.New("x")))
		})
	}
}

func TestWrapValidationAttributesField(t *testing.T) {
	t.Run("validation error keeps its message", func(t *testing.T) {
		inner := pkgerrors.NewValidationError("source", "ldap", "unknown source")
		err := pkgerrors.WrapValidation("--source", inner)

		var ve *pkgerrors.ValidationError
		require.True(t, pkgerrors.As(err, &ve))
		assert.Equal(t, "--source", ve.Field)
		assert.Equal(t, "ldap", ve.Value)
		assert.Equal(t, "validation failed for field --source: unknown source", err.Error())
	})

	t.Run("other errors become the message", func(t *testing.T) {
		err := pkgerrors.WrapValidation("query", errors.New("empty"))
		assert.Equal(t, "validation failed for field query: empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
