// Package tile partitions a pattern sheet into printable pages.
//
// Pattern coordinates are internal units; one unit prints as one
// millimetre. Pages are enumerated row-major and numbered from 1. Each page
// carries its crop window into the sheet, alignment marks on the edges it
// shares with other pages, the page numbers of its left and top
// neighbours, and on page 1 a scale verification square.
//
// Paper-space geometry (marks, text anchors, the scale square) is in
// millimetres from the page's top-left corner.
package tile
