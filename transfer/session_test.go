package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/source"
)

// scriptedMechanism replays ticks, then waits for release before finishing.
type scriptedMechanism struct {
	ticks   [][2]int
	release chan struct{}
	err     error
	panics  any
}

func (m *scriptedMechanism) Save(ctx context.Context, req Request, tick Tick) (string, error) {
	start := time.Now()
	for i, t := range m.ticks {
		tick(t[0], t[1], float64(i+1), start)
	}

	if m.panics != nil {
		panic(m.panics)
	}

	if m.release != nil {
		select {
		case <-m.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if m.err != nil {
		return "", m.err
	}
	return "/videos/" + req.Show.ID + ".mp4", nil
}

func request(id string) Request {
	return Request{Show: &source.Show{ID: id, Title: "Show " + id}}
}

func drain(events <-chan Event) []Event {
	var all []Event
	for e := range events {
		all = append(all, e)
	}
	return all
}

func TestRun(t *testing.T) {
	Convey("Given a blocking run", t, func() {
		mechanism := &scriptedMechanism{ticks: [][2]int{{1, 4}, {2, 4}, {4, 4}}}
		registry := NewRegistry(mechanism)

		Convey("Every tick is delivered before the terminal event", func() {
			var events []Event
			result, err := registry.Run(context.Background(), request("42"), func(e Event) {
				events = append(events, e)
			})

			So(err, ShouldBeNil)
			So(result.ArtifactPath, ShouldEqual, "/videos/42.mp4")
			So(events, ShouldHaveLength, 4)
			So(events[0].Estimate.Fraction, ShouldEqual, 0.25)
			So(events[0].Estimate.ETA, ShouldEqual, 4)
			So(events[2].Progress.Position, ShouldEqual, 4)
			So(events[3].Kind, ShouldEqual, EventCompleted)
			So(registry.Running("42"), ShouldBeFalse)
		})

		Convey("A panicking mechanism fails the session and frees the show", func() {
			mechanism.panics = "boom"

			var terminals []Event
			_, err := registry.Run(context.Background(), request("42"), func(e Event) {
				if e.Terminal() {
					terminals = append(terminals, e)
				}
			})

			So(errs.IsService(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "boom")
			So(terminals, ShouldHaveLength, 1)
			So(terminals[0].Kind, ShouldEqual, EventFailed)
			So(registry.Running("42"), ShouldBeFalse)
		})

		Convey("Zero, out of range and decreasing positions are dropped", func() {
			mechanism.ticks = [][2]int{{0, 4}, {2, 4}, {1, 4}, {5, 4}, {3, 4}}

			var positions []int
			_, err := registry.Run(context.Background(), request("42"), func(e Event) {
				if e.Kind == EventTick {
					positions = append(positions, e.Progress.Position)
				}
			})

			So(err, ShouldBeNil)
			So(positions, ShouldResemble, []int{2, 3})
		})

		Convey("Failures are service errors", func() {
			mechanism.err = errors.New("network unreachable")

			var last Event
			_, err := registry.Run(context.Background(), request("42"), func(e Event) { last = e })

			So(errs.IsService(err), ShouldBeTrue)
			So(last.Kind, ShouldEqual, EventFailed)
			So(last.Err, ShouldEqual, err)
		})

		Convey("A missing show id is a user input error", func() {
			_, err := registry.Run(context.Background(), Request{Show: &source.Show{}}, nil)
			So(errs.IsUserInput(err), ShouldBeTrue)
		})
	})
}

func TestStart(t *testing.T) {
	Convey("Given a background session", t, func() {
		mechanism := &scriptedMechanism{
			ticks:   [][2]int{{1, 2}, {2, 2}},
			release: make(chan struct{}),
		}
		registry := NewRegistry(mechanism)

		session, events, err := registry.Start(context.Background(), request("7"))
		So(err, ShouldBeNil)
		So(session.ID, ShouldNotBeEmpty)
		So(session.State(), ShouldEqual, Running)

		Convey("A second start for the same show is rejected", func() {
			_, _, err := registry.Start(context.Background(), request("7"))
			So(errs.IsConcurrency(err), ShouldBeTrue)

			Convey("and the first session is unaffected", func() {
				close(mechanism.release)
				all := drain(events)

				So(all, ShouldHaveLength, 3)
				So(all[2].Kind, ShouldEqual, EventCompleted)
				So(session.State(), ShouldEqual, Completed)
			})
		})

		Convey("Another show can run at the same time", func() {
			other, otherEvents, err := registry.Start(context.Background(), request("8"))
			So(err, ShouldBeNil)
			So(other.ID, ShouldNotEqual, session.ID)

			close(mechanism.release)
			So(drain(otherEvents), ShouldHaveLength, 3)
			So(drain(events), ShouldHaveLength, 3)
		})

		Convey("The show can be started again once finished", func() {
			close(mechanism.release)
			drain(events)

			_, again, err := registry.Start(context.Background(), request("7"))
			So(err, ShouldBeNil)
			So(drain(again), ShouldHaveLength, 3)
		})

		Convey("Cancel fails the session", func() {
			session.Cancel()
			all := drain(events)

			terminal := all[len(all)-1]
			So(terminal.Kind, ShouldEqual, EventFailed)
			So(errs.IsService(terminal.Err), ShouldBeTrue)
			So(errors.Is(terminal.Err, context.Canceled), ShouldBeTrue)
			So(session.State(), ShouldEqual, Failed)

			_, err := session.Wait()
			So(err, ShouldEqual, terminal.Err)
		})

		Convey("Exactly one terminal event is delivered, last", func() {
			close(mechanism.release)
			all := drain(events)

			terminals := 0
			for i, e := range all {
				if e.Terminal() {
					terminals++
					So(i, ShouldEqual, len(all)-1)
				}
			}
			So(terminals, ShouldEqual, 1)
		})
	})
}
