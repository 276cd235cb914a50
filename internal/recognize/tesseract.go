package recognize

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Tesseract runs the tesseract CLI on an image and assembles text plus an
// average word confidence from its TSV output.
type Tesseract struct {
	binary string
}

// NewTesseract builds a CLI-backed recognizer. binary may be a bare command
// name resolved via PATH or an absolute path.
func NewTesseract(binary string) *Tesseract {
	if binary == "" {
		binary = "tesseract"
	}

	return &Tesseract{binary: binary}
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte) (Result, error) {
	tmp, err := os.CreateTemp("", "bill-*.img")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(image); err != nil {
		tmp.Close()
		return Result{}, fmt.Errorf("writing temp image: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("closing temp image: %w", err)
	}

	cmd := exec.CommandContext(ctx, t.binary, tmp.Name(), "stdout", "tsv")

	out, err := cmd.Output()
	if err != nil {
		return Result{}, fmt.Errorf("running tesseract: %w", err)
	}

	return parseTSV(string(out)), nil
}

// parseTSV rebuilds line-broken text from tesseract's word-level TSV rows and
// averages the per-word confidences. Rows with conf -1 are layout markers,
// not words.
func parseTSV(tsv string) Result {
	var (
		text     strings.Builder
		lastLine string
		confSum  float64
		words    int
	)

	for i, row := range strings.Split(tsv, "\n") {
		if i == 0 {
			continue // header
		}

		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue
		}

		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}

		word := strings.TrimSpace(cols[11])
		if word == "" {
			continue
		}

		// block/par/line numbers identify the visual line.
		lineKey := cols[2] + ":" + cols[3] + ":" + cols[4]
		if lastLine != "" && lineKey != lastLine {
			text.WriteByte('\n')
		} else if lastLine != "" {
			text.WriteByte(' ')
		}

		text.WriteString(word)
		lastLine = lineKey

		confSum += conf
		words++
	}

	res := Result{Text: text.String()}
	if words > 0 {
		res.Confidence = confSum / float64(words)
	}

	return res
}
