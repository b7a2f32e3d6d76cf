package editor

import "io"

// Renderer writes a result to an output surface. Success output and
// failure messages land in the same slot with no distinction; the
// surface shows whatever the last transform produced.
type Renderer interface {
	Render(r Result) error
}

// WriterRenderer renders the payload verbatim to an io.Writer.
type WriterRenderer struct {
	W io.Writer
}

func (wr WriterRenderer) Render(r Result) error {
	_, err := io.WriteString(wr.W, r.Text())
	return err
}
