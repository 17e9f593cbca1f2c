package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/curp/pkg/qrcode"
)

const sampleCode = "HEGM900515HJCRRX07"

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		for _, content := range []string{"", "   \t\n"} {
			result, err := qrcode.Generate(content, 256)
			require.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, result)
		}
	})

	t.Run("rejects oversized images", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate(sampleCode, qrcode.MaxSize+1)
		require.ErrorIs(t, err, qrcode.ErrSizeTooLarge)
		assert.Nil(t, result)
	})

	sizes := []struct {
		name     string
		size     int
		expected int
	}{
		{"requested size", 300, 300},
		{"zero means default", 0, qrcode.DefaultSize},
		{"negative means default", -10, qrcode.DefaultSize},
		{"max size allowed", qrcode.MaxSize, qrcode.MaxSize},
	}

	for _, tt := range sizes {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := qrcode.Generate(sampleCode, tt.size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(result))
			require.NoError(t, err, "result should be a valid PNG")
			assert.Equal(t, tt.expected, img.Bounds().Dx())
			assert.Equal(t, tt.expected, img.Bounds().Dy())
		})
	}

	t.Run("recovery level changes the symbol", func(t *testing.T) {
		t.Parallel()
		low, err := qrcode.Generate(sampleCode, 256, qrcode.WithRecoveryLevel(qrcode.Low))
		require.NoError(t, err)
		highest, err := qrcode.Generate(sampleCode, 256, qrcode.WithRecoveryLevel(qrcode.Highest))
		require.NoError(t, err)
		assert.NotEqual(t, low, highest)
	})
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.GenerateBase64Image(" ", 256)
		require.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Empty(t, result)
	})

	t.Run("returns a decodable data URI", func(t *testing.T) {
		t.Parallel()
		const prefix = "data:image/png;base64,"

		result, err := qrcode.GenerateBase64Image(sampleCode, 128)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(result, prefix))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result, prefix))
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
	})
}
