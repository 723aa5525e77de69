// Package genoarray stores one genotype per position in a bit-packed byte buffer.
//
// A Descriptor lists the marker model governing each position and derives the bit offset
// of every field from the models' bit widths: field i occupies bits
// [Offset(i), Offset(i+1)) of the buffer, most significant bit first. An Array holds the
// packed bytes for one descriptor and reads and writes interned *marker.Genotype values.
//
// Two interchangeable backends implement the bit access and concordance counting. The
// reference backend works one bit at a time and compares decoded genotypes; the word
// backend moves whole 64-bit words and compares raw codes. Both produce identical buffers
// and identical results.
//
// Example:
//
//	m, _ := marker.FromAlleles([]marker.Allele{"A", "B"})
//	d, _ := genoarray.NewDescriptor([]*marker.Model{m, m, m})
//	a, _ := genoarray.FromPairs(d, []marker.Pair{{"A", "A"}, {"A", "B"}, {}})
//	g, _ := a.Get(-1) // the Missing genotype
package genoarray
