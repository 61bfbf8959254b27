package launcher

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/inter"
	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// decodeResult is the outcome for a single input file.
type decodeResult struct {
	File   string
	Record interface{}
	Size   int
	Err    error
}

// decodeFiles reads and decodes every file with at most workers running at once.
// Results come back in input order.
func decodeFiles(files []string, kind inter.Kind, workers int) []decodeResult {
	results := make([]decodeResult, len(files))
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	tasks := make(chan int)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range tasks {
				results[i] = decodeFile(files[i], kind)
			}
		}()
	}
	for i := range files {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return results
}

func decodeFile(path string, kind inter.Kind) decodeResult {
	res := decodeResult{File: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		res.Err = errors.Wrap(err, "read")
		return res
	}
	res.Size = len(raw)
	res.Record, res.Err = inter.Decode(kind, path, raw)
	return res
}

// errorKind names the sentinel behind err for log fields.
func errorKind(err error) string {
	switch {
	case errors.Is(err, inter.ErrFormatVersionMismatch):
		return "version"
	case errors.Is(err, inter.ErrStructuralSentinelMismatch):
		return "sentinel"
	case errors.Is(err, inter.ErrInvalidBondType):
		return "bond-type"
	case errors.Is(err, inter.ErrInvalidEnumValue):
		return "enum"
	case errors.Is(err, inter.ErrUnknownKind):
		return "unknown-kind"
	case errors.Is(err, lebin.ErrUnexpectedEOF):
		return "truncated"
	case errors.Is(err, lebin.ErrInvalidEncoding):
		return "encoding"
	case errors.Is(err, os.ErrNotExist):
		return "not-found"
	}
	return "io"
}
