package transfer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/grafov/m3u8"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/network"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/util"
	"github.com/vod-cli/vod/where"
)

// Downloader saves a show from its HLS playlist or direct mp4 stream.
type Downloader struct {
	Client    *http.Client
	Converter Converter
}

// NewDownloader uses the shared network client and the configured converter.
func NewDownloader(converterPath string) *Downloader {
	return &Downloader{
		Client:    network.Client,
		Converter: ExecConverter{Path: converterPath},
	}
}

// Destination is the artifact path for a request.
func Destination(req Request) string {
	name := util.SanitizeFilename(req.Show.Title)
	if name == "" {
		name = util.SanitizeFilename(req.Show.ID)
	}
	return filepath.Join(req.Config.Destination, name+".mp4")
}

func (d *Downloader) Save(ctx context.Context, req Request, tick Tick) (string, error) {
	if req.Show.Source == nil {
		return "", errs.Servicef(fmt.Errorf("show %s has no catalog", req.Show.ID), "resolve stream")
	}

	stream, err := req.Show.Source.Stream(req.Show)
	if err != nil {
		return "", errs.Service(err)
	}

	if err := filesystem.API().MkdirAll(req.Config.Destination, os.ModePerm); err != nil {
		return "", errs.Service(err)
	}

	destination := Destination(req)

	if isDirect(stream.URL) {
		return destination, d.copyDirect(ctx, stream, destination, tick)
	}

	segments, err := d.segments(ctx, stream)
	if err != nil {
		return "", err
	}

	intermediate, err := d.downloadSegments(ctx, stream, segments, tick)
	if err != nil {
		return "", err
	}

	if !req.Config.KeepIntermediate {
		defer util.Ignore(func() error {
			return filesystem.API().Remove(intermediate)
		})
	}

	if err := d.Converter.Convert(ctx, intermediate, destination, req.Config.Verbose); err != nil {
		return "", err
	}

	return destination, nil
}

func isDirect(streamURL string) bool {
	u, err := url.Parse(streamURL)
	if err != nil {
		return strings.HasSuffix(streamURL, ".mp4")
	}
	return strings.EqualFold(path.Ext(u.Path), ".mp4")
}

// segments returns the absolute segment URLs of the stream, following a master
// playlist to its highest bandwidth variant.
func (d *Downloader) segments(ctx context.Context, stream *source.Stream) ([]string, error) {
	playlistURL := stream.URL

	playlist, listType, err := d.playlist(ctx, playlistURL, stream.Headers)
	if err != nil {
		return nil, err
	}

	if listType == m3u8.MASTER {
		master := playlist.(*m3u8.MasterPlaylist)
		variant := bestVariant(master.Variants)
		if variant == nil {
			return nil, errs.Servicef(fmt.Errorf("no variant in %s", playlistURL), "read playlist")
		}

		playlistURL, err = resolveURL(playlistURL, variant.URI)
		if err != nil {
			return nil, errs.Service(err)
		}
		log.Debugf("selected variant %s (%d bps)", playlistURL, variant.Bandwidth)

		playlist, listType, err = d.playlist(ctx, playlistURL, stream.Headers)
		if err != nil {
			return nil, err
		}
		if listType != m3u8.MEDIA {
			return nil, errs.Servicef(fmt.Errorf("nested master playlist at %s", playlistURL), "read playlist")
		}
	}

	media := playlist.(*m3u8.MediaPlaylist)
	if media.Key != nil && media.Key.Method != "" && media.Key.Method != "NONE" {
		return nil, errs.Servicef(fmt.Errorf("encryption %s is not supported", media.Key.Method), "read playlist")
	}

	var urls []string
	for _, segment := range media.Segments {
		if segment == nil {
			break
		}
		resolved, err := resolveURL(playlistURL, segment.URI)
		if err != nil {
			return nil, errs.Service(err)
		}
		urls = append(urls, resolved)
	}

	if len(urls) == 0 {
		return nil, errs.Servicef(fmt.Errorf("no segment in %s", playlistURL), "read playlist")
	}

	return urls, nil
}

func (d *Downloader) playlist(ctx context.Context, playlistURL string, headers map[string]string) (m3u8.Playlist, m3u8.ListType, error) {
	resp, err := network.Get(ctx, d.Client, playlistURL, headers)
	if err != nil {
		return nil, 0, errs.Servicef(err, "fetch playlist")
	}
	defer util.Ignore(resp.Body.Close)

	playlist, listType, err := m3u8.DecodeFrom(resp.Body, true)
	if err != nil {
		return nil, 0, errs.Servicef(err, "parse playlist %s", playlistURL)
	}

	return playlist, listType, nil
}

func bestVariant(variants []*m3u8.Variant) *m3u8.Variant {
	variants = slices.DeleteFunc(slices.Clone(variants), func(v *m3u8.Variant) bool { return v == nil })
	if len(variants) == 0 {
		return nil
	}
	return slices.MaxFunc(variants, func(a, b *m3u8.Variant) int {
		switch {
		case a.Bandwidth < b.Bandwidth:
			return -1
		case a.Bandwidth > b.Bandwidth:
			return 1
		default:
			return 0
		}
	})
}

func resolveURL(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// downloadSegments appends every segment to a temporary transport stream and
// ticks once per segment.
func (d *Downloader) downloadSegments(ctx context.Context, stream *source.Stream, segments []string, tick Tick) (string, error) {
	file, err := filesystem.CreateTemp(where.Temp(), "vod-*.ts")
	if err != nil {
		return "", errs.Service(err)
	}
	defer util.Ignore(file.Close)

	var (
		start   = time.Now()
		written int64
	)

	for i, segment := range segments {
		n, err := d.fetchInto(ctx, file, segment, stream.Headers)
		if err != nil {
			_ = filesystem.API().Remove(file.Name())
			return "", errs.Servicef(err, "download segment %d/%d", i+1, len(segments))
		}
		written += n
		tick(i+1, len(segments), time.Since(start).Seconds(), start)
	}

	log.Infof("downloaded %d segments, %s", len(segments), humanize.Bytes(uint64(written)))
	return file.Name(), nil
}

func (d *Downloader) fetchInto(ctx context.Context, w io.Writer, segmentURL string, headers map[string]string) (int64, error) {
	resp, err := network.Get(ctx, d.Client, segmentURL, headers)
	if err != nil {
		return 0, err
	}
	defer util.Ignore(resp.Body.Close)

	return io.Copy(w, resp.Body)
}

// copyDirect saves an mp4 stream as is, ticking on received bytes.
func (d *Downloader) copyDirect(ctx context.Context, stream *source.Stream, destination string, tick Tick) error {
	resp, err := network.Get(ctx, d.Client, stream.URL, stream.Headers)
	if err != nil {
		return errs.Servicef(err, "fetch stream")
	}
	defer util.Ignore(resp.Body.Close)

	file, err := filesystem.API().Create(destination)
	if err != nil {
		return errs.Service(err)
	}

	progress := &tickWriter{
		total: int(resp.ContentLength),
		start: time.Now(),
		tick:  tick,
	}

	n, err := io.Copy(io.MultiWriter(file, progress), resp.Body)
	if err != nil {
		_ = file.Close()
		_ = filesystem.API().Remove(destination)
		return errs.Servicef(err, "download stream")
	}

	if err := file.Close(); err != nil {
		_ = filesystem.API().Remove(destination)
		return errs.Service(err)
	}

	log.Infof("downloaded %s to %s", humanize.Bytes(uint64(n)), destination)
	return nil
}

// tickWriter reports the bytes written so far. Without a known length no tick is sent.
type tickWriter struct {
	total    int
	position int
	start    time.Time
	tick     Tick
}

func (w *tickWriter) Write(p []byte) (int, error) {
	w.position += len(p)
	if w.total > 0 {
		w.tick(min(w.position, w.total), w.total, time.Since(w.start).Seconds(), w.start)
	}
	return len(p), nil
}
