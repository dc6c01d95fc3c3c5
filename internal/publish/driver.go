package publish

import (
	"context"
	"fmt"
	"io"

	"assetpush/internal/output"
)

// Run resolves the file set and publishes each file sequentially. Every
// outcome that carries a URL updates the register, so in glob mode the last
// processed file's URL is what gets reported; skips leave the register
// untouched. The first error stops the loop and abandons the remaining
// files. A conflict stores the existing asset's URL before failing.
func Run(ctx context.Context, p *Publisher, reg *output.Register, info io.Writer, file, assetName string, globMode bool) error {
	files, err := ResolveFiles(file, globMode)
	if err != nil {
		return err
	}

	for _, path := range files {
		outcome, err := p.Publish(ctx, path, assetName)
		if outcome.URL != "" {
			reg.Set(outcome.URL)
		}
		if err != nil {
			return err
		}
		if outcome.Status == StatusUploaded && info != nil {
			_, _ = fmt.Fprintf(info, "uploaded %s as %s: %s\n", path, assetName, outcome.URL)
		}
	}
	return nil
}
