package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsCommand(t *testing.T) {
	t.Run("Success - Category and sort", func(t *testing.T) {
		// Arrange
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"products", "--category", "courses", "--sort", "price-low", "--search", ""})

		// Act
		err := rootCmd.Execute()

		// Assert
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Greater(t, len(lines), 2)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.Contains(t, lines[len(lines)-1], "category=courses sort=price-low")
	})

	t.Run("Success - No match", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"products", "--search", "zzz-no-such-product", "--category", "all", "--sort", "featured"})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "0 of ")
	})
}
