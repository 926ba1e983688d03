// Copyright (C) 2020-2025 Vladimir Bauer
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package marquee scrolls a single line of content horizontally through a
fixed width viewport, looping forever while the content overflows.

The offset state machine lives in Controller. It is driven by measured
content width, viewport width and Config. Marquee wraps a Controller into
a rendering goroutine writing to a terminal, in the same way mpb.Progress
drives its bars. Package tcellview draws sampled frames into a tcell.Screen.

A Controller is owned by exactly one goroutine. Don't share it:

	c := marquee.NewController(conf)
	go func() { c.SetContentWidth(10) }() // data race
	c.Sample()

Use Marquee if you need to reconfigure from multiple goroutines, all its
methods are serialized through its serve loop.
*/
package marquee
