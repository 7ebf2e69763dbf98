// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging with [slog], with levels
// colored on terminals that support it.
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging messages should be shown. It defaults to Info, or
// Debug and Warn in builds with the debug and release tags.
var UserLevel = defaultUserLevel

// UseColor is whether to color log levels on terminals.
var UseColor = true

// Handler is a [slog.Handler] writing one line per record: the level,
// colored on terminals, then the message and the attributes in
// key=value form. Times are omitted.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler

	// attrs formats the attributes into buf; all handlers derived
	// through WithAttrs and WithGroup share buf and mu.
	attrs slog.Handler
	buf   *bytes.Buffer
	mu    *sync.Mutex
}

// NewHandler returns a handler writing to w at the given level.
// Options are passed to [termenv.NewOutput] to override terminal
// detection.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	buf := &bytes.Buffer{}
	return &Handler{
		out:   termenv.NewOutput(w, opts...),
		level: level,
		attrs: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: slog.LevelDebug - 4,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 {
					switch a.Key {
					case slog.TimeKey, slog.LevelKey, slog.MessageKey:
						return slog.Attr{}
					}
				}
				return a
			},
		}),
		buf: buf,
		mu:  &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.attrs.Handle(ctx, r); err != nil {
		return err
	}
	attrs := strings.TrimSpace(h.buf.String())
	line := LevelString(h.out, r.Level) + " " + r.Message
	if attrs != "" {
		line += " " + attrs
	}
	_, err := io.WriteString(h.out, line+"\n")
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = h.attrs.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.attrs = h.attrs.WithGroup(name)
	return &nh
}

// LevelString returns the name of lvl, colored by severity when
// [UseColor] is set and out supports colors: cyan for debug, green for
// info, yellow for warnings and red for errors.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	if !UseColor {
		return lvl.String()
	}
	clr := "1"
	switch {
	case lvl < slog.LevelInfo:
		clr = "6"
	case lvl < slog.LevelWarn:
		clr = "2"
	case lvl < slog.LevelError:
		clr = "3"
	}
	return out.String(lvl.String()).Foreground(out.Color(clr)).String()
}

// SetDefault makes a [NewHandler] writing to w at [UserLevel]
// the default slog logger.
func SetDefault(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, UserLevel)))
}

// ParseLevel parses a level name such as "debug" or "warn",
// ignoring case. The empty string is [UserLevel].
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return UserLevel, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("logx: invalid level %q", s)
	}
	return lvl, nil
}
