package reedsolomon

import (
	"sync"

	"github.com/qr-go/qrencode/gf256"
)

// generatorCache memoizes RS generator polynomials per field. QR codes only
// ever need degrees up to 30, so the cache stays small; it is shared across
// every Encoder and every goroutine in the process, guarded by a single
// mutex since building an entry is cheap and entries never change once
// computed (deterministic given field+degree).
var (
	generatorMu    sync.Mutex
	generatorCache = map[*gf256.Field][]*gf256.Poly{}
)

// generatorPolynomial returns (building and caching as needed) the degree-k
// generator polynomial over field: prod_{i=0..k-1} (x - alpha^i).
func generatorPolynomial(field *gf256.Field, degree int) *gf256.Poly {
	generatorMu.Lock()
	defer generatorMu.Unlock()

	generators, ok := generatorCache[field]
	if !ok {
		generators = []*gf256.Poly{gf256.NewPoly(field, []int{1})}
	}
	for d := len(generators); d <= degree; d++ {
		last := generators[d-1]
		next := last.Multiply(gf256.NewPoly(field, []int{1, field.ExpOf(d - 1 + field.GeneratorBase())}))
		generators = append(generators, next)
	}
	generatorCache[field] = generators
	return generators[degree]
}
