//go:build unit

package dockerhub //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogoForm(t *testing.T) {
	t.Parallel()

	t.Run("should encode file, type and dark parts in order", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("<svg/>")

		// when
		form, err := newLogoForm(data, "image/svg+xml")

		// then
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(form.Boundary, boundaryPrefix))
		assert.Equal(t, "multipart/form-data; boundary="+form.Boundary, form.ContentType)

		want := "--" + form.Boundary + "\r\n" +
			"Content-Disposition: form-data; name=\"file\"; filename=\"file\"\r\n" +
			"Content-Type: image/svg+xml\r\n" +
			"\r\n" +
			"<svg/>\r\n" +
			"--" + form.Boundary + "\r\n" +
			"Content-Disposition: form-data; name=\"type\"\r\n" +
			"\r\n" +
			"logo\r\n" +
			"--" + form.Boundary + "\r\n" +
			"Content-Disposition: form-data; name=\"dark\"\r\n" +
			"\r\n" +
			"false\r\n" +
			"--" + form.Boundary + "--\r\n"
		assert.Equal(t, want, string(form.Body))
	})

	t.Run("should keep binary content byte for byte", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0xff}

		// when
		form, err := newLogoForm(data, "image/png")

		// then
		require.NoError(t, err)
		assert.True(t, bytes.Contains(form.Body, data))
		assert.Equal(t, 4, strings.Count(string(form.Body), "--"+form.Boundary))
	})
}

func TestNewBoundary(t *testing.T) {
	t.Parallel()

	first := newBoundary(nil)
	second := newBoundary(nil)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, len(boundaryPrefix)+32)
}
