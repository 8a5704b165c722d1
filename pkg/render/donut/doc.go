// Package donut draws animated donut charts into a [render.Container].
//
// [Single] draws one ring from one array of magnitudes; [Double] draws two
// concentric rings from two independent arrays sharing one color scale.
// Both validate every input before touching the container, so a failed
// call appends nothing.
//
// Each call appends exactly one subtree:
//
//	<svg id width height>
//	  <g transform="translate(w/2,h/2)">
//	    <g class="arc">             one per slice, "arc outerarc" / "arc innerarc" for Double
//	      <path d="..." style="fill:...">   d tweens from the zero arc to the slice
//	      <text dy=".35em">50.00%</text>    transform tweens to the arc centroid
//
// Slices are ordered by descending proportion (stable for ties) and colored
// by their original index, so slice 0 of the outer and inner ring share a
// color. Labels are omitted for slices of 4% or less.
package donut
