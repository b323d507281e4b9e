// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"io"

	"github.com/gogpu/tailor/render"
)

func init() {
	render.Register("pdf", func() render.Exporter {
		return exporter{}
	})
}

type exporter struct{}

func (exporter) Ext() string { return ".pdf" }

func (exporter) Export(w io.Writer, job render.Job) error {
	return Write(w, job.Pattern, job.Layout, WithFonts(job.FontsOrDefault()))
}
