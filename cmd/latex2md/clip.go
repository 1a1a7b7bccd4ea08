package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	latex2md "github.com/alnah/go-latex2md"
)

// runClip converts the clipboard text in place, once or on every change.
func runClip(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseClipFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, levelFor(flags.common))
	warnUnknownEnvVars(logger)

	cfg, err := loadEffectiveConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	mergePipelineFlags(flags.pipeline, cfg)

	conv, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	var echo io.Writer
	if flags.print {
		echo = env.Stdout
	}

	if flags.watch {
		return watchClipboard(ctx, env.Clipboard, conv, echo, logger)
	}

	data, err := env.Clipboard.ReadText()
	if err != nil {
		return err
	}
	out, written, err := convertClipboardText(env.Clipboard, conv, data, 1)
	if err != nil {
		return err
	}
	if err := echoText(echo, out); err != nil {
		return err
	}
	if !flags.common.quiet {
		if written {
			fmt.Fprintln(env.Stderr, "Clipboard converted")
		} else {
			fmt.Fprintln(env.Stderr, "Clipboard unchanged")
		}
	}
	return nil
}

// maxSettlePasses bounds the repeated conversion in watch mode.
const maxSettlePasses = 8

// convertClipboardText converts data up to passes times, stopping early
// once a pass leaves the text unchanged, writes it back when it differs
// from data, and returns the converted text.
func convertClipboardText(cb Clipboard, conv *latex2md.Converter, data []byte, passes int) ([]byte, bool, error) {
	out := settle(conv, string(data), passes)
	if bytes.Equal(out, data) {
		return out, false, nil
	}
	if err := cb.WriteText(out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// settle applies conv until the text stops changing or passes run out.
// Some rewrites expose new matches, e.g. "$a,,b$" takes two passes.
func settle(conv *latex2md.Converter, text string, passes int) []byte {
	for range max(passes, 1) {
		next := conv.Convert(text)
		if next == text {
			break
		}
		text = next
	}
	return []byte(text)
}

func echoText(w io.Writer, data []byte) error {
	if w == nil {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// watchClipboard converts each new clipboard text until ctx is done.
// Converted text written back comes around as a new event. Each event is
// converted to a fixed point first, so that echo is normally left alone;
// text that has not settled within maxSettlePasses is written again.
func watchClipboard(ctx context.Context, cb Clipboard, conv *latex2md.Converter, echo io.Writer, logger zerolog.Logger) error {
	events, err := cb.WatchText(ctx)
	if err != nil {
		return err
	}
	logger.Info().Msg("watching clipboard")

	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-events:
			if !ok {
				return nil
			}
			out, written, err := convertClipboardText(cb, conv, data, maxSettlePasses)
			if err != nil {
				return err
			}
			if written {
				if err := echoText(echo, out); err != nil {
					return err
				}
			}
			logger.Debug().Int("bytes", len(data)).Bool("rewritten", written).Msg("clipboard event")
		}
	}
}
