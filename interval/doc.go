// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*Package interval reads the labeled genomic intervals ("monomers") that
  horscan aligns.  A monomer list is a BED-like, tab-separated file with the
  columns sample, start, end and label; any further columns are ignored.
  Lines starting with "track" or "#", and blank lines, are skipped.

  Lists are sorted by start and prefixed with a sentinel monomer before they
  are aligned, so that index 0 of the prepared slice stands for "before the
  first monomer".
*/
package interval
