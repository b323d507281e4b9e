// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"io"

	"github.com/gogpu/tailor/render"
)

func init() {
	render.Register("png", func() render.Exporter {
		return exporter{}
	})
}

// exporter writes the sheet overview.
type exporter struct{}

func (exporter) Ext() string { return ".png" }

func (exporter) Export(w io.Writer, job render.Job) error {
	opts := DefaultOptions()
	opts.Fonts = job.FontsOrDefault()
	r, err := New(opts)
	if err != nil {
		return err
	}
	return r.WriteSheet(w, job.Pattern)
}
