package bot

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v3"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/format"
)

// MockContext stands in for a Telegram update.
type MockContext struct {
	tele.Context
	PayloadVal string
	UserID     int64
	SentMsg    interface{}
}

func (m *MockContext) Message() *tele.Message {
	return &tele.Message{Payload: m.PayloadVal}
}

func (m *MockContext) Sender() *tele.User {
	return &tele.User{ID: m.UserID}
}

func (m *MockContext) Send(what interface{}, opts ...interface{}) error {
	m.SentMsg = what
	return nil
}

type fakeCommands struct {
	args []string
	resp *format.Response
	err  error
}

func (f *fakeCommands) Stat(ctx context.Context, location, state string) (*format.Response, error) {
	f.args = []string{"stat", location, state}
	return f.resp, f.err
}

func (f *fakeCommands) Top(ctx context.Context, key string, n int) (*format.Response, error) {
	f.args = []string{"top", key, strconv.Itoa(n)}
	return f.resp, f.err
}

func (f *fakeCommands) Graph(ctx context.Context, kind, series, location string) (*format.Response, error) {
	f.args = []string{"graph", kind, series, location}
	return f.resp, f.err
}

func newTestBot(cmds Commands) *Bot {
	nop := zerolog.Nop()
	return &Bot{commands: cmds, help: NewHelp(), cooldown: NewCooldown(3, 10*time.Second), logger: &nop}
}

var italy = &format.Response{
	Title:  "Coronavirus (COVID-19) Cases | Italy",
	Fields: []format.Field{{Name: "Cases:", Value: "1,234"}, {Name: "Deaths Today:", Value: "5"}},
}

func TestHandleStat(t *testing.T) {
	cmds := &fakeCommands{resp: italy}
	b := newTestBot(cmds)

	ctx := &MockContext{PayloadVal: `us "New York"`}
	if err := b.handleStat(ctx); err != nil {
		t.Fatal(err)
	}
	if want := []string{"stat", "us", "New York"}; !reflect.DeepEqual(cmds.args, want) {
		t.Errorf("called with %q, want %q", cmds.args, want)
	}
	msg := ctx.SentMsg.(string)
	want := "Coronavirus (COVID-19) Cases | Italy\n\nCases: 1,234\nDeaths Today: 5"
	if msg != want {
		t.Errorf("sent %q, want %q", msg, want)
	}

	ctx = &MockContext{}
	if err := b.handleStat(ctx); err != nil {
		t.Fatal(err)
	}
	if want := []string{"stat", "", ""}; !reflect.DeepEqual(cmds.args, want) {
		t.Errorf("called with %q, want %q", cmds.args, want)
	}
}

func TestHandleGraphSendsPhoto(t *testing.T) {
	cmds := &fakeCommands{resp: &format.Response{Title: "France", Image: []byte("png")}}
	b := newTestBot(cmds)

	ctx := &MockContext{PayloadVal: "log south korea"}
	if err := b.handleGraph(ctx); err != nil {
		t.Fatal(err)
	}
	if want := []string{"graph", "log", "", "south korea"}; !reflect.DeepEqual(cmds.args, want) {
		t.Errorf("called with %q, want %q", cmds.args, want)
	}
	photo, ok := ctx.SentMsg.(*tele.Photo)
	if !ok {
		t.Fatalf("expected a photo, got %T", ctx.SentMsg)
	}
	if !strings.HasPrefix(photo.Caption, "France") {
		t.Errorf("caption = %q", photo.Caption)
	}

	ctx = &MockContext{PayloadVal: `linear deaths "South Korea"`}
	if err := b.handleGraph(ctx); err != nil {
		t.Fatal(err)
	}
	if want := []string{"graph", "linear", "deaths", "South Korea"}; !reflect.DeepEqual(cmds.args, want) {
		t.Errorf("called with %q, want %q", cmds.args, want)
	}

	ctx = &MockContext{}
	b.handleGraph(ctx)
	if ctx.SentMsg != graphHelp {
		t.Errorf("expected usage, got %v", ctx.SentMsg)
	}
}

func TestHandleTop(t *testing.T) {
	cmds := &fakeCommands{resp: italy}
	b := newTestBot(cmds)

	ctx := &MockContext{PayloadVal: "deaths 5"}
	if err := b.handleTop(ctx); err != nil {
		t.Fatal(err)
	}
	if want := []string{"top", "deaths", "5"}; !reflect.DeepEqual(cmds.args, want) {
		t.Errorf("called with %q, want %q", cmds.args, want)
	}

	ctx = &MockContext{PayloadVal: "deaths lots"}
	b.handleTop(ctx)
	if ctx.SentMsg != topHelp {
		t.Errorf("expected usage, got %v", ctx.SentMsg)
	}
}

func TestErrorsBecomeMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&errs.CountryError{Name: "Atlantis"}, noDataMsg},
		{&errs.CountryError{Name: "Congo", Matches: 2}, `"Congo" matches 2 locations | Try the full country name`},
		{errs.Fetch("GET countries", errors.New("connection refused")), upstreamMsg},
		{errs.Fetch("GET countries", context.DeadlineExceeded), timeoutMsg},
		{errs.Parse("countries table", nil), upstreamMsg},
		{errs.EmptyTimeline("none"), emptyMsg},
		{errs.BadArgument(`"bar" is not a graph type, use linear or log`), `"bar" is not a graph type, use linear or log`},
		{errors.New("boom"), unexpectedMsg},
	}
	for _, c := range cases {
		b := newTestBot(&fakeCommands{err: c.err})
		ctx := &MockContext{PayloadVal: "x"}
		if err := b.handleStat(ctx); err != nil {
			t.Fatal(err)
		}
		if ctx.SentMsg != c.want {
			t.Errorf("%v: sent %q, want %q", c.err, ctx.SentMsg, c.want)
		}
	}

	msg := userMessage(errs.InvalidSortKey("bogus"))
	if !strings.HasPrefix(msg, `"bogus" is not a valid sort key | Valid keys: cases, todayCases`) {
		t.Errorf("sort key message %q", msg)
	}
}

func TestHandleHelp(t *testing.T) {
	b := newTestBot(&fakeCommands{})

	ctx := &MockContext{PayloadVal: "s"}
	b.handleHelp(ctx)
	if ctx.SentMsg != statHelp {
		t.Errorf("help for alias s: %v", ctx.SentMsg)
	}

	ctx = &MockContext{PayloadVal: "/graph"}
	b.handleHelp(ctx)
	if ctx.SentMsg != graphHelp {
		t.Errorf("help for /graph: %v", ctx.SentMsg)
	}

	ctx = &MockContext{PayloadVal: "dance"}
	b.handleHelp(ctx)
	if ctx.SentMsg != "That command does not exist" {
		t.Errorf("help for unknown command: %v", ctx.SentMsg)
	}

	ctx = &MockContext{}
	b.handleHelp(ctx)
	msg := ctx.SentMsg.(string)
	for _, want := range []string{"/graph (/g)", "/help (/h, /commands)", "/stat (/stats, /statistic, /s, /cases)", "/top (/leaderboard)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("help listing misses %q:\n%s", want, msg)
		}
	}
}

func TestCooldown(t *testing.T) {
	b := newTestBot(&fakeCommands{resp: italy})
	now := time.Date(2020, 9, 13, 12, 0, 0, 0, time.UTC)
	b.cooldown.now = func() time.Time { return now }
	h := b.limit(b.handleStat)

	for i := 0; i < 3; i++ {
		ctx := &MockContext{UserID: 1}
		h(ctx)
		if _, ok := ctx.SentMsg.(string); !ok || ctx.SentMsg == b.cooldown.Message() {
			t.Fatalf("call %d was limited", i+1)
		}
	}

	ctx := &MockContext{UserID: 1}
	h(ctx)
	want := "To prevent spam, the command has been rate limited to 3 times every 10 seconds"
	if ctx.SentMsg != want {
		t.Fatalf("fourth call sent %v", ctx.SentMsg)
	}

	other := &MockContext{UserID: 2}
	h(other)
	if other.SentMsg == want {
		t.Fatal("users share a cooldown")
	}

	now = now.Add(10 * time.Second)
	ctx = &MockContext{UserID: 1}
	h(ctx)
	if ctx.SentMsg == want {
		t.Fatal("cooldown did not refill")
	}
}

func TestCooldownForgetsIdleUsers(t *testing.T) {
	c := NewCooldown(3, 10*time.Second)
	now := time.Date(2020, 9, 13, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	for user := int64(1); user <= 100; user++ {
		c.Allow(user)
	}
	if len(c.limiters) != 100 {
		t.Fatalf("tracking %d users, want 100", len(c.limiters))
	}

	now = now.Add(5 * time.Second)
	c.Allow(1)
	now = now.Add(5 * time.Second)
	if !c.Allow(2) {
		t.Fatal("idle user was limited")
	}
	if len(c.limiters) != 2 {
		t.Fatalf("tracking %d users after a window, want 2", len(c.limiters))
	}
}

func TestSplitArgs(t *testing.T) {
	cases := map[string][]string{
		"":                         nil,
		"  Italy ":                 {"Italy"},
		`"South Korea"`:            {"South Korea"},
		`us "New York"`:            {"us", "New York"},
		`log  deaths "" x`:         {"log", "deaths", "", "x"},
		`"unterminated quote here`: {"unterminated quote here"},
	}
	for in, want := range cases {
		if got := splitArgs(in); !reflect.DeepEqual(got, want) {
			t.Errorf("splitArgs(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewHelpCoversRoutes(t *testing.T) {
	r := NewHelp()
	if got, want := r.Commands(), []string{"graph", "help", "stat", "top"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Commands() = %v, want %v", got, want)
	}
}
