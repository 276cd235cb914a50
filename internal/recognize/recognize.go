package recognize

import "context"

// Result is what a text-recognition engine produces for one image: the raw
// text and an overall confidence on a 0..100 scale. The extraction pipeline
// stores the confidence alongside its output but does not branch on it.
type Result struct {
	Text       string
	Confidence float64
}

// Recognizer turns an image into text. The engine itself is a black box to
// the pipeline; any implementation (hosted API, local binary) fits here.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (Result, error)
}
