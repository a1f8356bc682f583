package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("With logs.write off nothing is written", t, func() {
		viper.Set(key.LogsWrite, false)
		viper.Set(key.CliVerbose, false)
		So(Setup(), ShouldBeNil)
		So(enabled, ShouldBeFalse)

		WithFields(logrus.Fields{"show": "1"}).Info("ignored")
	})

	Convey("With logs.write on entries go to the daily file", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		WithFields(logrus.Fields{"show": "1"}).Info("saved")

		path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
		contents, err := filesystem.API().ReadFile(path)
		So(err, ShouldBeNil)
		So(string(contents), ShouldContainSubstring, "saved")
		So(string(contents), ShouldContainSubstring, "show=1")
	})
}
