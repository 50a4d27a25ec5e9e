package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ffprobeOutput is the slice of ffprobe's JSON output we care about.
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probeDuration reads the container duration in seconds via ffprobe.
func (a *implAcquirer) probeDuration(ctx context.Context, videoPath string) (float64, error) {
	out, err := a.executor.Execute(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		videoPath,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", videoPath, err)
	}

	var probed ffprobeOutput
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}

	if probed.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe reported no duration for %s", videoPath)
	}

	duration, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probed.Format.Duration, err)
	}

	return duration, nil
}
