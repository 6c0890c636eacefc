package slogbridge

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/anindyasen/stumpless/sink"
	"github.com/anindyasen/stumpless/target"
)

func TestHandlerDispatchesRecordToTarget(t *testing.T) {
	tg := target.NewBuffer("t", 4096)
	tg.Open()

	h := New(tg, slog.LevelInfo)
	logger := slog.New(h)
	logger.Info("hello from slog", "user", "ada")

	buf := tg.Adapter().(*sink.BufferSink)
	got := string(buf.Bytes())

	if want := regexp.MustCompile(`^<14>1 `); !want.MatchString(got) {
		t.Fatalf("buffer contents = %q, want prefix <14>1 (user.info)", got)
	}
	if want := regexp.MustCompile(`user="ada"`); !want.MatchString(got) {
		t.Fatalf("buffer contents = %q, want the slog attr as a structured-data param", got)
	}
}

func TestHandlerEnabledRespectsMinimumLevel(t *testing.T) {
	tg := target.NewBuffer("t", 4096)
	tg.Open()

	h := New(tg, slog.LevelWarn)
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("Enabled() should reject levels below the configured minimum")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("Enabled() should accept levels at or above the configured minimum")
	}
}

func TestHandlerWithAttrsCarriesOverToChildren(t *testing.T) {
	tg := target.NewBuffer("t", 4096)
	tg.Open()

	h := New(tg, slog.LevelInfo).WithAttrs([]slog.Attr{slog.String("service", "api")})
	logger := slog.New(h)
	logger.Info("hi")

	buf := tg.Adapter().(*sink.BufferSink)
	if want := regexp.MustCompile(`service="api"`); !want.MatchString(string(buf.Bytes())) {
		t.Fatalf("buffer contents = %q, want the pre-bound attr present", buf.Bytes())
	}
}
