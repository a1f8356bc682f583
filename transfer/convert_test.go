package transfer

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/errs"
)

func TestLookupConverter(t *testing.T) {
	Convey("A configured converter that does not exist is a service error", t, func() {
		_, err := LookupConverter("/nonexistent/avconv")
		So(errs.IsService(err), ShouldBeTrue)

		err = ExecConverter{Path: "/nonexistent/avconv"}.Convert(context.Background(), "in.ts", "out.mp4", false)
		So(errs.IsService(err), ShouldBeTrue)
	})
}
