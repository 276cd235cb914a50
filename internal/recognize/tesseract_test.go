package recognize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvRow(block, par, line, conf, word string) string {
	return strings.Join([]string{"5", "1", block, par, line, "1", "0", "0", "10", "10", conf, word}, "\t")
}

func TestParseTSV(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvRow("1", "1", "1", "90", "Super"),
		tsvRow("1", "1", "1", "80", "Mart"),
		tsvRow("1", "1", "2", "-1", ""),
		tsvRow("1", "1", "2", "70", "Total"),
		tsvRow("1", "1", "2", "60", "250.00"),
	}, "\n")

	got := parseTSV(tsv)

	assert.Equal(t, "Super Mart\nTotal 250.00", got.Text)
	assert.InDelta(t, 75.0, got.Confidence, 0.001)
}

func TestParseTSV_SkipsLayoutRows(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvRow("1", "1", "1", "-1", ""),
		tsvRow("1", "1", "1", "95", "Hello"),
	}, "\n")

	got := parseTSV(tsv)

	assert.Equal(t, "Hello", got.Text)
	assert.InDelta(t, 95.0, got.Confidence, 0.001)
}

func TestParseTSV_Empty(t *testing.T) {
	got := parseTSV(tsvHeader + "\n")

	assert.Equal(t, "", got.Text)
	assert.Zero(t, got.Confidence)
}
