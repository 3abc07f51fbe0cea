package mm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newtestmaker(level int) (*MessageMaker, *bytes.Buffer) {
	var buf bytes.Buffer
	m := NewMessageMaker()
	m.BW = true
	m.SNm = "HGT"
	m.LLvl = level
	m.Out = &buf
	return m, &buf
}

func TestEmitRespectsLogLevel(t *testing.T) {
	m, buf := newtestmaker(MSGNOTE)

	m.TMI("too much")
	m.PEEK("a peek")
	assert.Empty(t, buf.String())

	m.NOTE("noted")
	m.CRIT("critical")
	assert.Equal(t, "[HGT] noted\n[HGT] critical\n", buf.String())
}

func TestMandatoryAlwaysPrints(t *testing.T) {
	m, buf := newtestmaker(MSGMAND)
	m.MAND("hello")
	m.CRIT("hidden")
	assert.Equal(t, "[HGT] hello\n", buf.String())
}

func TestColorStripsTagsInBlackAndWhite(t *testing.T) {
	m, _ := newtestmaker(0)
	assert.Equal(t, "[git: abc]", m.Color("[git: C4abcC0]"))
	assert.Equal(t, "bold", m.Styled("S1boldS0"))
	assert.Equal(t, "both", m.ColStyle("S1C3bothC0S0"))
}

func TestColorAddsCodes(t *testing.T) {
	m, _ := newtestmaker(0)
	m.BW = false
	m.Win = false
	assert.Equal(t, GREEN+"x"+RESET, m.Color("C4xC0"))
}

func TestCount(t *testing.T) {
	m, _ := newtestmaker(0)
	assert.Equal(t, "1,234,567", m.Count(1234567))
	assert.Equal(t, "12", m.Count(12))
}

func TestECIgnoresNil(t *testing.T) {
	m, buf := newtestmaker(MSGTMI)
	m.EC(nil)
	m.EF(nil, "somefunc()")
	assert.Empty(t, buf.String())
}
