package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodDedupKey(t *testing.T) {
	a := Period{Label: "Acme Corp", Start: MustDatePoint(2020, 1), End: MustDatePoint(2021, 1)}
	b := Period{Label: "  acme corp ", Start: MustDatePoint(2020, 1), End: MustDatePoint(2021, 1)}
	c := Period{Label: "Acme Corp", Start: MustDatePoint(2020, 2), End: MustDatePoint(2021, 1)}

	assert.Equal(t, a.DedupKey(), b.DedupKey(), "label comparison ignores case and padding")
	assert.NotEqual(t, a.DedupKey(), c.DedupKey(), "different start dates are distinct periods")
}
