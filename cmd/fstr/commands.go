package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rawbytedev/faststring/bytebuf"
	"github.com/rawbytedev/faststring/pkg/compactwire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runEncode(cmd *cobra.Command, log *zap.Logger, opts *options, text string) error {
	c, err := codecFor(opts.capacity)
	if err != nil {
		return err
	}
	v, err := c.value(text, opts.safe)
	if err != nil {
		return err
	}

	var out []byte
	if opts.frame || opts.compress {
		var flags byte
		if opts.compress {
			flags |= compactwire.FlagCompressed
		}
		var d compactwire.DataFrame
		if out, err = d.EncodeFields(flags, v); err != nil {
			return fmt.Errorf("encode frame: %w", err)
		}
	} else {
		buf := bytebuf.NewBuffer(0)
		buf.WriteValue(v)
		out = buf.Bytes()
	}

	log.Debug("encoded",
		zap.Int("capacity", c.capacity),
		zap.Int("input", len(text)),
		zap.Int("wire", len(out)),
		zap.Bool("frame", opts.frame || opts.compress))
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
	return nil
}

func runDecode(cmd *cobra.Command, log *zap.Logger, opts *options, arg string) error {
	c, err := codecFor(opts.capacity)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	payload := data
	if opts.frame {
		var d compactwire.DataFrame
		if payload, _, _, err = d.DecodeDataFrame(data); err != nil {
			return err
		}
	}

	res, err := c.decode(payload)
	if err != nil {
		log.Debug("decode failed", zap.Int("capacity", c.capacity), zap.Error(err))
		return err
	}
	report, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(report))
	return nil
}
