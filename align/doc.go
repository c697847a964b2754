// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*Package align aligns two monomer lists by dynamic programming.

  Both lists are expected in prepared form (see interval.Prepare): index 0
  holds the sentinel and the real monomers occupy 1..len-1.  Fill builds the
  score matrix with a linear gap score and a zero floor on interior cells,
  Extract picks an end point with free trailing gaps and backtraces one
  path, and Records turns that path into alignment rows.

  Typical use:

    m := align.Fill(source, target, align.DefaultScoring)
    path := align.Extract(m)
    recs, err := align.Records(source, target, path)
*/
package align
