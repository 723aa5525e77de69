package marker

import (
	"fmt"
	"math/bits"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/internal/hash"
	"github.com/PiRSquared17/glu-genetics/internal/options"
)

// BitWidth returns the number of bits needed to code every genotype over n alleles.
//
// Parameters:
//   - n: number of distinct non-missing alleles
//   - allowHemizygote: whether genotypes with exactly one missing allele are representable
//
// Returns:
//   - int: ceil(log2(m)) where m is (n+1)(n+2)/2 with hemizygotes and n(n+1)/2+1 without
func BitWidth(n int, allowHemizygote bool) int {
	var m int
	if allowHemizygote {
		m = (n + 1) * (n + 2) / 2
	} else {
		m = n*(n+1)/2 + 1
	}
	if m <= 1 {
		return 0
	}

	return bits.Len(uint(m - 1))
}

type modelConfig struct {
	allowHemizygote bool
	hemizygoteSet   bool
	maxAlleles      int
}

// ModelOption configures a model at construction.
type ModelOption = options.Option[*modelConfig]

// WithHemizygotes enables or disables hemizygous genotypes. Models reject hemizygous
// genotypes unless this is set.
func WithHemizygotes(enabled bool) ModelOption {
	return options.NoError(func(c *modelConfig) {
		c.allowHemizygote = enabled
		c.hemizygoteSet = true
	})
}

// AlleleLimit is the largest allele count a model can reserve bits for.
const AlleleLimit = 1 << 16

// WithMaxAlleles sets the number of alleles the model reserves bits for. Values below 2
// reserve bits for 2 alleles. The builders default it to the number of alleles they are given.
func WithMaxAlleles(n int) ModelOption {
	return options.New(func(c *modelConfig) error {
		if n < 0 || n > AlleleLimit {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxAlleles, n)
		}
		c.maxAlleles = n

		return nil
	})
}

func newModelConfig(opts []ModelOption) (*modelConfig, error) {
	cfg := &modelConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Model is the genotype model of one locus: the registered alleles, the registered
// genotypes and a bit width that is fixed at construction.
type Model struct {
	alleles         []Allele
	alleleSlots     map[Allele]int
	genotypes       []*Genotype
	genotypeIndex   map[Pair]*Genotype
	bitWidth        int
	allowHemizygote bool
	maxAlleles      int
}

// NewModel creates an empty model holding only the Missing allele and the Missing/Missing
// genotype with code 0.
//
// Parameters:
//   - opts: WithHemizygotes and WithMaxAlleles
//
// Returns:
//   - *Model: the new model
//   - error: errs.ErrInvalidMaxAlleles for an allele count outside [0, AlleleLimit]
func NewModel(opts ...ModelOption) (*Model, error) {
	cfg, err := newModelConfig(opts)
	if err != nil {
		return nil, err
	}

	return newModel(cfg), nil
}

func newModel(cfg *modelConfig) *Model {
	n := max(2, cfg.maxAlleles)
	m := &Model{
		alleles:         []Allele{Missing},
		alleleSlots:     map[Allele]int{Missing: 0},
		genotypeIndex:   make(map[Pair]*Genotype),
		bitWidth:        BitWidth(n, cfg.allowHemizygote),
		allowHemizygote: cfg.allowHemizygote,
		maxAlleles:      n,
	}

	missing := &Genotype{model: m, code: 0, class: ClassMissing}
	m.genotypes = append(m.genotypes, missing)
	m.genotypeIndex[MissingPair] = missing

	return m
}

// AddAllele registers a and returns its allele slot. Registering a known allele returns
// its existing slot.
//
// Returns errs.ErrBitWidthExceeded, leaving the model unchanged, when the model's bit width
// cannot code the genotypes of one more allele.
func (m *Model) AddAllele(a Allele) (int, error) {
	if slot, ok := m.alleleSlots[a]; ok {
		return slot, nil
	}

	// slot 0 is Missing, so the current length is the non-missing count after the append
	n := len(m.alleles)
	if BitWidth(n, m.allowHemizygote) > m.bitWidth {
		return 0, fmt.Errorf("%w: allele %q would be allele %d of a %d-bit model",
			errs.ErrBitWidthExceeded, a, n, m.bitWidth)
	}

	m.alleles = append(m.alleles, a)
	m.alleleSlots[a] = n

	return n, nil
}

// AddGenotype registers the unordered pair p and returns its interned genotype. The
// alleles of p are registered first if needed.
//
// Returns errs.ErrHemizygoteNotAllowed for a hemizygous pair when the model does not allow
// hemizygotes, and the errors of AddAllele.
func (m *Model) AddGenotype(p Pair) (*Genotype, error) {
	if g, ok := m.genotypeIndex[p]; ok {
		return g, nil
	}

	p = p.Canonical()
	if !m.allowHemizygote && p.Class() == ClassHemizygous {
		return nil, fmt.Errorf("%w: %s", errs.ErrHemizygoteNotAllowed, p)
	}

	lo, err := m.AddAllele(p[0])
	if err != nil {
		return nil, err
	}
	hi, err := m.AddAllele(p[1])
	if err != nil {
		return nil, err
	}

	g, err := newGenotype(m, lo, hi, len(m.genotypes))
	if err != nil {
		return nil, err
	}

	m.genotypes = append(m.genotypes, g)
	m.genotypeIndex[p] = g
	m.genotypeIndex[Pair{p[1], p[0]}] = g

	return g, nil
}

// Genotype returns the interned genotype of p in either allele order.
func (m *Model) Genotype(p Pair) (*Genotype, error) {
	g, ok := m.genotypeIndex[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrGenotypeNotFound, p)
	}

	return g, nil
}

// AlleleCode returns the allele slot of a.
func (m *Model) AlleleCode(a Allele) (int, error) {
	slot, ok := m.alleleSlots[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrAlleleNotFound, a)
	}

	return slot, nil
}

// GenotypeAt returns the genotype with the given code, or nil if no genotype has it.
func (m *Model) GenotypeAt(code int) *Genotype {
	if code < 0 || code >= len(m.genotypes) {
		return nil
	}

	return m.genotypes[code]
}

// Alleles returns the registered alleles in slot order, starting with Missing.
// The returned slice must not be modified.
func (m *Model) Alleles() []Allele {
	return m.alleles
}

// Genotypes returns the registered genotypes in code order.
// The returned slice must not be modified.
func (m *Model) Genotypes() []*Genotype {
	return m.genotypes
}

// NumAlleles returns the number of registered alleles, not counting Missing.
func (m *Model) NumAlleles() int {
	return len(m.alleles) - 1
}

// NumGenotypes returns the number of registered genotypes, including Missing/Missing.
func (m *Model) NumGenotypes() int {
	return len(m.genotypes)
}

func (m *Model) BitWidth() int {
	return m.bitWidth
}

func (m *Model) AllowHemizygote() bool {
	return m.allowHemizygote
}

// MaxAlleles returns the allele count the bit width was derived from.
func (m *Model) MaxAlleles() int {
	return m.maxAlleles
}

// Fingerprint returns an xxHash64 of the options, alleles and genotype codes of m. Models
// with equal fingerprints code genotypes identically.
func (m *Model) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteBool(m.allowHemizygote)
	d.WriteUint(uint64(m.maxAlleles))
	d.WriteUint(uint64(len(m.alleles)))
	for _, a := range m.alleles {
		d.WriteString(string(a))
	}
	d.WriteUint(uint64(len(m.genotypes)))
	for _, g := range m.genotypes {
		d.WriteUint(uint64(g.lo))
		d.WriteUint(uint64(g.hi))
	}

	return d.Sum64()
}

// String returns a short description such as "Model(alleles=2, genotypes=4, width=2)".
func (m *Model) String() string {
	return fmt.Sprintf("Model(alleles=%d, genotypes=%d, width=%d)", m.NumAlleles(), m.NumGenotypes(), m.bitWidth)
}
