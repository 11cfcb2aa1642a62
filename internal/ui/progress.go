package ui

import (
	"os"
	"time"

	"github.com/hvollset/dinodaily/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// DownloadBar renders progress for a single file download. It is only
// created when the server reported a Content-Length.
type DownloadBar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func NewDownloadBar(name string, total int64) *DownloadBar {
	p := mpb.New(
		mpb.WithWidth(52),
		mpb.WithOutput(os.Stdout),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	bar := p.New(
		total,
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name(name+"  "),
		),

		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.Any(func(st decor.Statistics) string {
				return " | " + util.FormatBytes(st.Current)
			}),
		),
	)

	return &DownloadBar{p: p, bar: bar}
}

func (b *DownloadBar) Set(written int64) {
	b.bar.SetCurrent(written)
}

// Close flushes the bar. An incomplete bar is aborted so Wait does not
// block after a failed download.
func (b *DownloadBar) Close() {
	if !b.bar.Completed() {
		b.bar.Abort(true)
	}
	b.p.Wait()
}
