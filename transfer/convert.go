package transfer

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/samber/lo"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/log"
)

// Converter remuxes an intermediate transport stream into the final container.
type Converter interface {
	Convert(ctx context.Context, input, output string, verbose bool) error
}

// DefaultConverters are looked up in order when no converter path is configured.
var DefaultConverters = []string{"avconv", "ffmpeg"}

// ExecConverter runs avconv or ffmpeg.
type ExecConverter struct {
	// Path of the tool. Empty means the first of DefaultConverters found in PATH.
	Path string
}

// LookupConverter returns the configured tool or finds a default one.
func LookupConverter(path string) (string, error) {
	if path != "" {
		resolved, err := exec.LookPath(path)
		if err != nil {
			return "", errs.Servicef(err, "converter %s is not usable", path)
		}
		return resolved, nil
	}

	for _, name := range DefaultConverters {
		if resolved, err := exec.LookPath(name); err == nil {
			return resolved, nil
		}
	}

	return "", errs.Servicef(exec.ErrNotFound, "neither %s is installed", strings.Join(DefaultConverters, " nor "))
}

func (c ExecConverter) Convert(ctx context.Context, input, output string, verbose bool) error {
	tool, err := LookupConverter(c.Path)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, tool, "-y", "-i", input, "-c", "copy", output)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if verbose {
		cmd.Stdout = os.Stderr
	}

	log.Infof("converting %s to %s with %s", input, output, tool)
	if err := cmd.Run(); err != nil {
		lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
		return errs.Servicef(err, "conversion failed: %s", lo.LastOrEmpty(lines))
	}

	if verbose {
		log.Debug(stderr.String())
	}

	return nil
}
