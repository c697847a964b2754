// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*Command bio-horscan aligns the monomer lists of two samples.

  Usage:
    bio-horscan align -source a.bed -target b.bed -output prefix [-mode 4,5,2]
    bio-horscan optimize prefix.alignment
    bio-horscan stats prefix.alignment

  align writes prefix.alignment, one row per aligned position:
    source start end label target start end label tag
  with tag one of MTH, MIS, INS (target only) and DEL (source only).
*/
package main

import "github.com/grailbio/horscan/cmd/bio-horscan/cmd"

func main() {
	cmd.Run()
}
