package cli

import (
	"io"
	"os"
)

// out is where prompts are written; tests may swap it for a buffer.
var out io.Writer = os.Stdout

func outWriter() io.Writer { return out }
