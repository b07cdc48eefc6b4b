package chapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All("https://example.org/Juan+{n}")

	require.Len(t, all, 21)
	for i, ch := range all {
		assert.Equal(t, i+1, ch.Number)
	}
	assert.Equal(t, "https://example.org/Juan+1", all[0].URL)
	assert.Equal(t, "https://example.org/Juan+21", all[20].URL)
}

func TestBuildURL_RepeatedPlaceholder(t *testing.T) {
	assert.Equal(t, "/JHN.7/7", BuildURL("/JHN.{n}/{n}", 7))
	assert.Equal(t, "/static", BuildURL("/static", 3))
}

func TestHeader(t *testing.T) {
	ch := Chapter{Number: 4}

	h := ch.Header()
	require.Len(t, h, 2)
	assert.Equal(t, "CAPÍTULO 4", h[0])
	assert.Len(t, h[1], 40)
}
