package sources

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	p, err := Lookup("gateway")
	require.NoError(t, err)
	assert.Equal(t, Gateway, p.Name)
	assert.Equal(t, GatewayFile, p.FileName)
	assert.Equal(t, 2*time.Second, p.Delay)
	assert.Equal(t, 20*time.Second, p.Timeout)
	assert.Contains(t, p.URLTemplate, "search=Juan+{n}&version=RVR1960")
	assert.Equal(t, "es-ES,es;q=0.9", p.Headers["Accept-Language"])
	assert.NotEmpty(t, p.Headers["User-Agent"])
	assert.NotEmpty(t, p.Headers["Accept"])
	assert.Len(t, p.Title, 2)

	p, err = Lookup(" BibleCom ")
	require.NoError(t, err)
	assert.Equal(t, BibleComFile, p.FileName)
	assert.Equal(t, 3*time.Second, p.Delay)
	assert.Contains(t, p.URLTemplate, "/es/bible/149/JHN.{n}.RVR1960")
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("intratext")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "biblecom, gateway")
}

func TestLookup_ReturnsCopies(t *testing.T) {
	a, _ := Lookup(Gateway)
	a.Headers["User-Agent"] = "changed"

	b, _ := Lookup(Gateway)
	assert.NotEqual(t, "changed", b.Headers["User-Agent"])
}

func TestGatewayChain(t *testing.T) {
	p, _ := Lookup(Gateway)

	res, err := p.Extractor.FromReader(strings.NewReader(`<div class="passage-content">
		<p><span class="text John-1-1"><sup>1</sup>En el principio era el Verbo,</span></p>
	</div>`))

	require.NoError(t, err)
	assert.Equal(t, []string{"En el principio era el Verbo,"}, res.Fragments)
	assert.Equal(t, "verse-class", res.Strategy)
}

func TestProfileClean(t *testing.T) {
	gw, _ := Lookup(Gateway)
	assert.Equal(t, "luz", gw.Clean("El Nuevo Testamento  luz"))

	bc, _ := Lookup(BibleCom)
	assert.Equal(t, "El Nuevo Testamento luz", bc.Clean("  El Nuevo Testamento   luz "))

	assert.Equal(t, " x ", Profile{}.Clean(" x "))
}
