// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pdf writes tiled patterns as multi-page PDF documents with
// go-pdf/fpdf.
//
// Each page shows one tile of the sheet at 1:1 scale, clipped to the
// printable area, followed by the alignment marks, the page info, the
// assembly helpers and, on page 1, the scale verification square.
package pdf
