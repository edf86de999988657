package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerLine(t *testing.T) {
	s := NewSpinner(nil, "Generating plan...")

	assert.Equal(t, "\r  ⠋ Generating plan...", stripANSI(s.line(0, 300*time.Millisecond)))
	assert.Equal(t, "\r  ⠹ Generating plan... 3s", stripANSI(s.line(2, 3500*time.Millisecond)))
	assert.Equal(t, "\r  ⠋ Generating plan... 10s", stripANSI(s.line(len(spinnerFrames), 10*time.Second)))
}

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Generating plan...")
	time.Sleep(3 * spinnerInterval)
	stop()
	stop()

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\r\033[K"), "%q", out)
}
